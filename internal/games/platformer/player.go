package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// AnimState is the player's animation tag.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	default:
		return "unknown"
	}
}

// runThreshold is the horizontal speed above which a grounded player runs.
const runThreshold = 0.5

// knockbackEpsilon is the magnitude below which knockback snaps to zero.
const knockbackEpsilon = 0.1

// Player is the controllable character.
type Player struct {
	Body
	VX, VY      float64
	OnGround    bool
	FacingRight bool

	Anim  AnimState
	clips [3]anim.Clock

	Lives       int
	Invincible  int     // Ticks of damage immunity left
	Flash       int     // Ticks spent invincible, drives the blink
	KnockbackVX float64 // Horizontal push that survives Stop

	speed     float64
	jumpPower float64
	decay     float64
}

// NewPlayer creates a player standing at (x, y).
func NewPlayer(x, y float64, cfg config.PlatformerConfig) *Player {
	return &Player{
		Body:        Body{X: x, Y: y, W: cfg.Player.Width, H: cfg.Player.Height},
		FacingRight: true,
		Lives:       cfg.Player.Lives,
		clips: [3]anim.Clock{
			AnimIdle: anim.New(4, 0.08, true),
			AnimRun:  anim.New(4, 0.25, true),
			AnimJump: anim.New(3, 0.2, false),
		},
		speed:     cfg.Player.Speed,
		jumpPower: cfg.Physics.JumpPower,
		decay:     cfg.Combat.KnockbackDecay,
	}
}

// MoveLeft sets leftward velocity and facing.
func (p *Player) MoveLeft() {
	p.VX = -p.speed
	p.FacingRight = false
}

// MoveRight sets rightward velocity and facing.
func (p *Player) MoveRight() {
	p.VX = p.speed
	p.FacingRight = true
}

// Stop zeroes horizontal input velocity. Knockback is not affected.
func (p *Player) Stop() {
	p.VX = 0
}

// Jump launches a grounded player and reports whether it did.
func (p *Player) Jump() bool {
	return p.launch(p.jumpPower)
}

// launch applies an upward velocity when grounded.
func (p *Player) launch(vy float64) bool {
	if !p.OnGround {
		return false
	}
	p.VY = vy
	p.OnGround = false
	p.clips[AnimJump].Reset()
	return true
}

// Update applies gravity, integrates position, decays knockback and clamps
// the player to the world.
func (p *Player) Update(world config.WorldConfig, phys config.PhysicsConfig) {
	p.VY += phys.Gravity
	if phys.MaxFallSpeed > 0 && p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}

	p.X += p.VX + p.KnockbackVX
	p.Y += p.VY

	p.KnockbackVX *= p.decay
	if math.Abs(p.KnockbackVX) < knockbackEpsilon {
		p.KnockbackVX = 0
	}

	p.ClampToWorld(world)
}

// ClampToWorld keeps the player inside the play field. Side clamps move the
// player only, the top clamp stops upward motion and the optional floor
// grounds the player.
func (p *Player) ClampToWorld(world config.WorldConfig) {
	if p.X < 0 {
		p.SetLeft(0)
	}
	if p.Right() > world.Width {
		p.SetRight(world.Width)
	}
	if p.Y < 0 {
		p.SetTop(0)
		p.VY = 0
	}
	if world.FloorClamp && p.Bottom() > world.Height {
		p.SetBottom(world.Height)
		p.VY = 0
		p.OnGround = true
	}
	// Resolution may leave the player resting exactly on the floor.
	if world.FloorClamp && p.Bottom() == world.Height && p.VY >= 0 {
		p.OnGround = true
	}
}

// Animate recomputes the animation tag and advances its clip.
func (p *Player) Animate() {
	next := AnimIdle
	switch {
	case !p.OnGround:
		next = AnimJump
	case math.Abs(p.VX) > runThreshold:
		next = AnimRun
	}
	if next != p.Anim {
		p.clips[next].Reset()
		p.Anim = next
	}
	p.clips[p.Anim].Update()
}

// Clip returns the clock of the current animation.
func (p *Player) Clip() anim.Clock {
	return p.clips[p.Anim]
}

// Visible reports whether the player is drawn this tick; it blinks while
// invincible.
func (p *Player) Visible() bool {
	return p.Invincible == 0 || (p.Flash/4)%2 == 0
}

// Respawn puts the player back at (x, y) at rest.
func (p *Player) Respawn(x, y float64) {
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.KnockbackVX = 0
	p.OnGround = false
}
