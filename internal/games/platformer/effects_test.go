package platformer

import (
	"math/rand"
	"testing"
)

func TestEffectsDecay(t *testing.T) {
	cfg := testConfig()
	e := Effects{cfg: cfg.Effects}
	rng := rand.New(rand.NewSource(1))

	e.AddShake(cfg.Effects.CoinShake)
	e.AddShake(cfg.Effects.DamageShake)
	e.AddShake(cfg.Effects.CoinShake)
	if e.Shake != cfg.Effects.DamageShake {
		t.Fatalf("shake = %d, want the larger magnitude %d", e.Shake, cfg.Effects.DamageShake)
	}

	e.StartFlash()
	prevAlpha := e.FlashAlpha()
	for range 30 {
		mag := e.Shake
		e.Update(rng)
		if abs(e.OffsetX) > mag || abs(e.OffsetY) > mag {
			t.Fatalf("offset (%d, %d) exceeds magnitude %d", e.OffsetX, e.OffsetY, mag)
		}
		if a := e.FlashAlpha(); a > prevAlpha {
			t.Fatalf("flash alpha grew from %d to %d", prevAlpha, a)
		}
		prevAlpha = e.FlashAlpha()
	}
	if e.Shake != 0 || e.OffsetX != 0 || e.OffsetY != 0 {
		t.Errorf("shake did not settle: %+v", e)
	}
	if e.FlashAlpha() != 0 {
		t.Errorf("flash alpha = %d, want 0", e.FlashAlpha())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	cfg := loadConfig(Options{})
	if cfg.Player.Lives != 5 {
		t.Errorf("easy lives = %d, want 5", cfg.Player.Lives)
	}

	explicit := testConfig()
	if got := loadConfig(Options{Config: &explicit}); got.Player.Lives != 3 {
		t.Errorf("explicit config should be used as is, lives = %d", got.Player.Lives)
	}
}
