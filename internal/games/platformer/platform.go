package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Platform is a solid rectangle the player can stand on.
type Platform struct {
	Body
	Kind   levels.PlatformKind
	StartX float64
	Range  float64
	Speed  float64
	Dir    float64
	DX     float64 // Horizontal displacement applied in the last update
}

// NewPlatform creates a platform from its level descriptor.
func NewPlatform(spec levels.PlatformSpec, cfg config.PlatformConfig) *Platform {
	return &Platform{
		Body:   Body{X: spec.X, Y: spec.Y, W: spec.W, H: spec.H},
		Kind:   spec.Kind,
		StartX: spec.X,
		Range:  cfg.MoveRange,
		Speed:  cfg.MoveSpeed,
		Dir:    1,
	}
}

// Update moves a moving platform back and forth over [StartX, StartX+Range].
func (p *Platform) Update() {
	p.DX = 0
	if p.Kind != levels.PlatformMoving {
		return
	}
	prev := p.X
	p.X += p.Speed * p.Dir
	switch {
	case p.X >= p.StartX+p.Range:
		p.X = p.StartX + p.Range
		p.Dir = -1
	case p.X <= p.StartX:
		p.X = p.StartX
		p.Dir = 1
	}
	p.DX = p.X - prev
}
