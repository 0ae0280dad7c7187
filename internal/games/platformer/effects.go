package platformer

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// Effects holds the screen shake and damage flash.
type Effects struct {
	Shake   int // Current shake magnitude in world units
	OffsetX int
	OffsetY int

	Flash int // Flash ticks remaining

	cfg config.EffectsConfig
}

// AddShake raises the shake magnitude to at least amount.
func (e *Effects) AddShake(amount int) {
	if amount > e.Shake {
		e.Shake = amount
	}
}

// StartFlash restarts the damage flash.
func (e *Effects) StartFlash() {
	e.Flash = e.cfg.FlashTicks
}

// FlashAlpha returns the flash opacity in [0, 255].
func (e *Effects) FlashAlpha() int {
	if e.Flash <= 0 || e.cfg.FlashTicks <= 0 {
		return 0
	}
	return e.cfg.FlashAlpha * e.Flash / e.cfg.FlashTicks
}

// Update rolls a new shake offset and decays both effects.
func (e *Effects) Update(rng *rand.Rand) {
	if e.Shake > 0 {
		e.OffsetX = rng.Intn(2*e.Shake+1) - e.Shake
		e.OffsetY = rng.Intn(2*e.Shake+1) - e.Shake
		e.Shake--
	} else {
		e.OffsetX, e.OffsetY = 0, 0
	}
	if e.Flash > 0 {
		e.Flash--
	}
}
