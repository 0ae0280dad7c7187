// Package config provides YAML-based tuning for the platformer and the
// difficulty presets selectable from the command line.
package config

// PlatformerConfig contains every tunable constant of the simulation.
// All distances are world units (the play field is World.Width x World.Height),
// all durations are ticks.
type PlatformerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Combat     CombatConfig     `yaml:"combat"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Coins      CoinConfig       `yaml:"coins"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the play field.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FloorClamp bool    `yaml:"floor_clamp"` // Bottom edge acts as a fallback floor
	FallMargin float64 `yaml:"fall_margin"` // Distance below the field that counts as a fall
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BouncePower  float64 `yaml:"bounce_power"` // Launch velocity of bouncing platforms
}

// PlayerConfig defines the player body and survivability.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Lives         int     `yaml:"lives"`
	Invincibility int     `yaml:"invincibility_ticks"`
}

// CombatConfig defines stomps, kill rewards and knockback.
type CombatConfig struct {
	KillBonus      int     `yaml:"kill_bonus"`
	StompTolerance float64 `yaml:"stomp_tolerance"`
	StompBounce    float64 `yaml:"stomp_bounce"`
	KnockbackSpeed float64 `yaml:"knockback_speed"`
	KnockbackUp    float64 `yaml:"knockback_up"`
	KnockbackDecay float64 `yaml:"knockback_decay"`
}

// EnemyConfig defines enemy bodies and behaviour parameters.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	PatrolRange    float64 `yaml:"patrol_range"`
	SightRange     float64 `yaml:"sight_range"`
	ChaseSpeed     float64 `yaml:"chase_speed"`
	ChaseDeadZone  float64 `yaml:"chase_dead_zone"`
	ChaserHealth   int     `yaml:"chaser_health"`
	ShootRange     float64 `yaml:"shoot_range"`
	ShootCooldown  int     `yaml:"shoot_cooldown"`
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletSize     float64 `yaml:"bullet_size"`
	BulletLifetime int     `yaml:"bullet_lifetime"`
}

// PlatformConfig defines moving platform travel.
type PlatformConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	MoveRange float64 `yaml:"move_range"`
}

// CoinConfig defines coin size, values and animation.
type CoinConfig struct {
	Size         float64 `yaml:"size"`
	GoldValue    int     `yaml:"gold_value"`
	BobSpeed     float64 `yaml:"bob_speed"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	CollectTicks int     `yaml:"collect_ticks"`
	CollectRise  float64 `yaml:"collect_rise"` // Upward drift per tick while collecting
	SpinFrames   int     `yaml:"spin_frames"`
	SpinSpeed    float64 `yaml:"spin_speed"`
}

// EffectsConfig defines screen shake and flash.
type EffectsConfig struct {
	CoinShake   int `yaml:"coin_shake"`
	KillShake   int `yaml:"kill_shake"`
	DamageShake int `yaml:"damage_shake"`
	FlashAlpha  int `yaml:"flash_alpha"`
	FlashTicks  int `yaml:"flash_ticks"`
}

// DifficultyConfig defines optional enemy speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
