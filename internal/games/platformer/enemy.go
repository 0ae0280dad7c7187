package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/anim"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// DamageResult is the outcome of hitting an enemy.
type DamageResult int

const (
	DamageIgnored DamageResult = iota // Enemy was already dead
	DamageSurvived
	DamageKilled
)

// stunTicks is how long a stomped enemy that survived stays harmless.
const stunTicks = 20

// Bullet is a shooter projectile.
type Bullet struct {
	Body
	VX, VY   float64
	Lifetime int
}

// update moves the bullet and reports whether it is still alive.
func (b *Bullet) update(world config.WorldConfig) bool {
	b.X += b.VX
	b.Y += b.VY
	b.Lifetime--
	if b.Lifetime <= 0 {
		return false
	}
	return b.Right() >= 0 && b.X <= world.Width && b.Bottom() >= 0 && b.Y <= world.Height
}

// Enemy is a hostile body driven by one of three behaviours.
type Enemy struct {
	Body
	Kind        levels.EnemyKind
	Health      int
	StartX      float64
	Dir         float64 // +1 or -1, patrol heading
	FacingRight bool
	Cooldown    int // Shooter ticks until the next shot may fire
	Stunned     int // Ticks of harmlessness after a stomp it survived
	Bullets     []*Bullet

	clip anim.Clock
	cfg  config.EnemyConfig
}

// NewEnemy creates an enemy from its level descriptor.
func NewEnemy(spec levels.EnemySpec, cfg config.EnemyConfig) *Enemy {
	e := &Enemy{
		Body:   Body{X: spec.X, Y: spec.Y, W: cfg.Width, H: cfg.Height},
		Kind:   spec.Kind,
		Health: 1,
		StartX: spec.X,
		Dir:    1,
		clip:   anim.New(2, 0.1, true),
		cfg:    cfg,
	}
	e.FacingRight = true
	if spec.Kind == levels.EnemyChaser {
		e.Health = cfg.ChaserHealth
	}
	return e
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// Frame returns the current animation frame.
func (e *Enemy) Frame() int {
	return e.clip.Index()
}

// Update runs the enemy's behaviour for one tick. speedScale multiplies
// movement speeds and is 1 unless difficulty scaling is enabled.
func (e *Enemy) Update(player *Player, world config.WorldConfig, speedScale float64) {
	e.clip.Update()
	if e.Stunned > 0 {
		e.Stunned--
	}

	switch e.Kind {
	case levels.EnemyPatrol:
		e.patrol(speedScale)
	case levels.EnemyChaser:
		if e.Stunned == 0 {
			e.chase(player, speedScale)
		}
	case levels.EnemyShooter:
		e.shoot(player, world)
	}
}

func (e *Enemy) patrol(scale float64) {
	e.X += e.cfg.PatrolSpeed * scale * e.Dir
	switch {
	case e.X >= e.StartX+e.cfg.PatrolRange:
		e.X = e.StartX + e.cfg.PatrolRange
		e.Dir = -1
	case e.X <= e.StartX:
		e.X = e.StartX
		e.Dir = 1
	}
	e.FacingRight = e.Dir > 0
}

func (e *Enemy) chase(player *Player, scale float64) {
	dx := player.CenterX() - e.CenterX()
	if math.Abs(dx) >= e.cfg.SightRange || math.Abs(dx) <= e.cfg.ChaseDeadZone {
		return
	}
	step := e.cfg.ChaseSpeed * scale
	if dx < 0 {
		e.X -= step
		e.FacingRight = false
	} else {
		e.X += step
		e.FacingRight = true
	}
}

func (e *Enemy) shoot(player *Player, world config.WorldConfig) {
	if e.Cooldown > 0 {
		e.Cooldown--
	}

	alive := e.Bullets[:0]
	for _, b := range e.Bullets {
		if b.update(world) {
			alive = append(alive, b)
		}
	}
	for i := len(alive); i < len(e.Bullets); i++ {
		e.Bullets[i] = nil
	}
	e.Bullets = alive

	dx := player.CenterX() - e.CenterX()
	dy := player.CenterY() - e.CenterY()
	e.FacingRight = dx >= 0
	dist := math.Hypot(dx, dy)
	if e.Cooldown > 0 || dist >= e.cfg.ShootRange || dist == 0 {
		return
	}

	size := e.cfg.BulletSize
	e.Bullets = append(e.Bullets, &Bullet{
		Body:     Body{X: e.CenterX() - size/2, Y: e.CenterY() - size/2, W: size, H: size},
		VX:       dx / dist * e.cfg.BulletSpeed,
		VY:       dy / dist * e.cfg.BulletSpeed,
		Lifetime: e.cfg.BulletLifetime,
	})
	e.Cooldown = e.cfg.ShootCooldown
}

// TakeDamage removes one point of health.
func (e *Enemy) TakeDamage() DamageResult {
	if e.Health <= 0 {
		return DamageIgnored
	}
	e.Health--
	if e.Health == 0 {
		return DamageKilled
	}
	e.Stunned = stunTicks
	return DamageSurvived
}

// RemoveBullet drops bullet i.
func (e *Enemy) RemoveBullet(i int) {
	e.Bullets = append(e.Bullets[:i], e.Bullets[i+1:]...)
}
