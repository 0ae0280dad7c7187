// Package platformer implements the platformer simulation: player physics,
// platform collision, enemy AI, damage and scoring, and the particle and
// screen effects those events trigger.
//
// The Game type is a pure fixed-step simulation. It talks to the outside
// world only through the Audio and Progress collaborators passed in Options.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/levels"
)

// Sound names sent to the Audio collaborator.
const (
	SoundJump       = "jump"
	SoundCoin       = "coin"
	SoundEnemyDeath = "enemy_death"
	SoundHurt       = "hurt"
	SoundWin        = "win"
)

// Audio receives fire-and-forget sound requests.
type Audio interface {
	PlaySound(name string)
	PlayMusic()
	StopMusic()
	SetVolume(v float64)
}

// Progress receives persistence requests. Implementations own their error
// handling; the simulation never waits on or inspects the outcome.
type Progress interface {
	// HighScore returns the best score known so far.
	HighScore() int
	// SaveHighScore is called only with a score that beats HighScore.
	SaveHighScore(score int)
	// UnlockLevel is called once each time level completed is cleared.
	UnlockLevel(completed int)
	// RecordRun is called when a run on a level ends.
	RecordRun(level, score int, completed bool)
}

type nopAudio struct{}

func (nopAudio) PlaySound(string)  {}
func (nopAudio) PlayMusic()        {}
func (nopAudio) StopMusic()        {}
func (nopAudio) SetVolume(float64) {}

type nopProgress struct{}

func (nopProgress) HighScore() int           { return 0 }
func (nopProgress) SaveHighScore(int)        {}
func (nopProgress) UnlockLevel(int)          {}
func (nopProgress) RecordRun(int, int, bool) {}

// Options configures a Game.
type Options struct {
	Level    int                      // Starting level, 1-based; out of range starts at 1
	Config   *config.PlatformerConfig // Nil loads platformer.yaml via the config search path
	Levels   *levels.Catalog          // Nil uses the active level catalog
	Audio    Audio
	Progress Progress
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// loadConfig resolves the tuning used by a new Game.
func loadConfig(opts Options) config.PlatformerConfig {
	if opts.Config != nil {
		return *opts.Config
	}
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	return cfg
}

// Body is an axis-aligned box in world units. Its rectangle is derived on
// every call so it can never go stale.
type Body struct {
	X, Y, W, H float64
}

// Rect returns the bounding box.
func (b Body) Rect() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Body) Bottom() float64 { return b.Y + b.H }

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 { return b.X + b.W }

// CenterX returns the horizontal centre.
func (b Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical centre.
func (b Body) CenterY() float64 { return b.Y + b.H/2 }

// SetBottom moves the body so its bottom edge is at y.
func (b *Body) SetBottom(y float64) { b.Y = y - b.H }

// SetTop moves the body so its top edge is at y.
func (b *Body) SetTop(y float64) { b.Y = y }

// SetLeft moves the body so its left edge is at x.
func (b *Body) SetLeft(x float64) { b.X = x }

// SetRight moves the body so its right edge is at x.
func (b *Body) SetRight(x float64) { b.X = x - b.W }
