package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning.
// It matches defaults/platformer.yaml and is used when that cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:      800,
			Height:     600,
			FloorClamp: true,
			FallMargin: 100,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			JumpPower:    -15,
			MaxFallSpeed: 15,
			BouncePower:  -20,
		},
		Player: PlayerConfig{
			Width:         40,
			Height:        60,
			Speed:         5,
			Lives:         3,
			Invincibility: 90,
		},
		Combat: CombatConfig{
			KillBonus:      50,
			StompTolerance: 20,
			StompBounce:    -8,
			KnockbackSpeed: 8,
			KnockbackUp:    -10,
			KnockbackDecay: 0.8,
		},
		Enemies: EnemyConfig{
			Width:          40,
			Height:         40,
			PatrolSpeed:    2,
			PatrolRange:    150,
			SightRange:     300,
			ChaseSpeed:     3,
			ChaseDeadZone:  10,
			ChaserHealth:   2,
			ShootRange:     400,
			ShootCooldown:  60,
			BulletSpeed:    5,
			BulletSize:     8,
			BulletLifetime: 120,
		},
		Platforms: PlatformConfig{
			MoveSpeed: 2,
			MoveRange: 100,
		},
		Coins: CoinConfig{
			Size:         24,
			GoldValue:    50,
			BobSpeed:     0.05,
			BobAmplitude: 10,
			CollectTicks: 20,
			CollectRise:  1.5,
			SpinFrames:   4,
			SpinSpeed:    0.15,
		},
		Effects: EffectsConfig{
			CoinShake:   3,
			KillShake:   8,
			DamageShake: 12,
			FlashAlpha:  150,
			FlashTicks:  20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}
