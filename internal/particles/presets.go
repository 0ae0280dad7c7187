package particles

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Collect is the coin pickup burst, tinted by coin type.
func Collect(rng *rand.Rand, x, y float64, color core.Color) *System {
	s := New()
	s.Burst(rng, x, y, Params{Count: 15, Color: color, Speed: 3, Life: 30, Size: 3, Fade: true})
	return s
}

// Jump is the dust fountain at the player's feet.
func Jump(rng *rand.Rand, x, y float64) *System {
	s := New()
	s.Fountain(rng, x, y, Params{Count: 8, Color: core.ColorLavender, Speed: 4, Life: 40, Size: 2, Fade: true})
	return s
}

// EnemyDeath is the red spray left by a stomped enemy.
func EnemyDeath(rng *rand.Rand, x, y float64) *System {
	s := New()
	s.Spray(rng, x, y, Range{-3, 3}, Range{-3, 3}, Params{
		Count:   20,
		Color:   core.ColorRed,
		Life:    20,
		LifeMax: 40,
		Size:    2,
		SizeMax: 4,
		Fade:    true,
	})
	return s
}

// Hit is the burst shown when the player takes damage.
func Hit(rng *rand.Rand, x, y float64) *System {
	s := New()
	s.Burst(rng, x, y, Params{Count: 10, Color: core.ColorRed, Speed: 2, Life: 20, Size: 3, Fade: true})
	return s
}

// Celebration is the level-complete firework around (x, y).
func Celebration(rng *rand.Rand, x, y float64) *System {
	s := New()
	s.Burst(rng, x, y, Params{Count: 24, Color: core.ColorGold, Speed: 4, Life: 50, Size: 3, Fade: true})
	s.Burst(rng, x-150, y+40, Params{Count: 16, Color: core.ColorCyan, Speed: 3, Life: 45, Size: 3, Fade: true})
	s.Burst(rng, x+150, y+40, Params{Count: 16, Color: core.ColorMagenta, Speed: 3, Life: 45, Size: 3, Fade: true})
	s.Fountain(rng, x, y+120, Params{Count: 20, Color: core.ColorSilver, Speed: 6, Life: 60, Size: 2, Fade: true})
	return s
}
