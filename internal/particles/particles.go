// Package particles implements short-lived point-mass visual effects.
//
// A System is a flat collection of independent particles. Each tick every
// particle moves by its velocity, gains gravity on its vertical velocity and
// loses one tick of life. Dead particles are dropped; a System with no live
// particles is finished and must be discarded by its owner.
//
// Emitters take an explicit *rand.Rand so that effects are reproducible for a
// given seed.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultGravity is the downward acceleration applied to particles per tick.
const DefaultGravity = 0.1

// Particle is a single point mass.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Life    int // Remaining ticks
	MaxLife int
	Size    float64
	Gravity float64
	Fade    bool
}

// Alpha returns the particle opacity in [0, 1].
// Fading particles lose opacity linearly with remaining life.
func (p Particle) Alpha() float64 {
	if !p.Fade || p.MaxLife <= 0 {
		return 1
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Range is a closed interval used to draw uniform random values.
type Range struct {
	Min, Max float64
}

func (r Range) draw(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Params describes one emission.
type Params struct {
	Count   int
	Color   core.Color
	Speed   float64 // Used by Burst and Fountain
	Life    int     // Lifetime in ticks (minimum when LifeMax is set)
	LifeMax int     // Upper lifetime bound, 0 for a fixed lifetime
	Size    float64
	SizeMax float64 // Upper size bound, 0 for a fixed size
	Fade    bool
}

func (p Params) life(rng *rand.Rand) int {
	life := p.Life
	if p.LifeMax > p.Life {
		life += rng.Intn(p.LifeMax - p.Life + 1)
	}
	if life < 1 {
		life = 1
	}
	return life
}

func (p Params) size(rng *rand.Rand) float64 {
	if p.SizeMax > p.Size {
		return Range{p.Size, p.SizeMax}.draw(rng)
	}
	return p.Size
}

// System owns a set of live particles.
type System struct {
	particles []Particle
	gravity   float64
}

// New creates an empty system with the default gravity.
func New() *System {
	return &System{gravity: DefaultGravity}
}

// NewWithGravity creates an empty system with a custom gravity.
func NewWithGravity(g float64) *System {
	return &System{gravity: g}
}

func (s *System) add(rng *rand.Rand, x, y, vx, vy float64, p Params) {
	life := p.life(rng)
	s.particles = append(s.particles, Particle{
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Color:   p.Color,
		Life:    life,
		MaxLife: life,
		Size:    p.size(rng),
		Gravity: s.gravity,
		Fade:    p.Fade,
	})
}

// Spray emits particles with velocities drawn independently per axis.
func (s *System) Spray(rng *rand.Rand, x, y float64, vx, vy Range, p Params) {
	for range p.Count {
		s.add(rng, x, y, vx.draw(rng), vy.draw(rng), p)
	}
}

// Burst emits particles evenly spaced around a full circle at equal speed.
func (s *System) Burst(rng *rand.Rand, x, y float64, p Params) {
	if p.Count <= 0 {
		return
	}
	step := 2 * math.Pi / float64(p.Count)
	for i := range p.Count {
		angle := step * float64(i)
		s.add(rng, x, y, math.Cos(angle)*p.Speed, math.Sin(angle)*p.Speed, p)
	}
}

// Fountain emits particles upward with a narrow horizontal jitter.
func (s *System) Fountain(rng *rand.Rand, x, y float64, p Params) {
	s.Spray(rng, x, y, Range{-1, 1}, Range{-p.Speed, -p.Speed * 0.5}, p)
}

// Update advances every particle by one tick and drops dead ones.
func (s *System) Update() {
	alive := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += p.Gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Done reports whether the system has no live particles.
func (s *System) Done() bool {
	return len(s.particles) == 0
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The slice must not be modified.
func (s *System) Particles() []Particle {
	return s.particles
}

// UpdateAll ticks every system and returns the ones still alive.
// The input slice is reused.
func UpdateAll(systems []*System) []*System {
	alive := systems[:0]
	for _, sys := range systems {
		sys.Update()
		if !sys.Done() {
			alive = append(alive, sys)
		}
	}
	for i := len(alive); i < len(systems); i++ {
		systems[i] = nil
	}
	return alive
}
