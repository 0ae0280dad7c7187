package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Settings are the user preferences kept between runs.
type Settings struct {
	Volume  float64 // 0.0 - 1.0
	ShowFPS bool
}

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{Volume: 0.7, ShowFPS: false}
}

// Persistence is the storage boundary for high score, progress and settings.
// Reads return ErrNotFound, *ParseError or an I/O error; writes return *WriteError.
type Persistence interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
	UnlockedLevel() (int, error)
	SaveUnlockedLevel(level int) error
	Settings() (Settings, error)
	SaveSettings(s Settings) error
	Close() error
}

// Storage keys shared by both backends.
const (
	keyHighScore = "highscore"
	keyProgress  = "progress"
	keyVolume    = "volume"
	keyShowFPS   = "show_fps"
)

// LoadHighScore reads the high score, substituting 0 on any failure.
// The returned error is nil when the value was simply never stored.
func LoadHighScore(p Persistence) (int, error) {
	v, err := p.HighScore()
	if err != nil || v < 0 {
		return 0, absence(err)
	}
	return v, nil
}

// LoadUnlocked reads the highest unlocked level, substituting 1 on any failure.
// Values are clamped to [1, count].
func LoadUnlocked(p Persistence, count int) (int, error) {
	v, err := p.UnlockedLevel()
	if err != nil {
		return 1, absence(err)
	}
	return clampLevel(v, count), nil
}

// LoadSettings reads settings, substituting DefaultSettings on any failure.
func LoadSettings(p Persistence) (Settings, error) {
	s, err := p.Settings()
	if err != nil {
		return DefaultSettings(), absence(err)
	}
	s.Volume = clampVolume(s.Volume)
	return s, nil
}

// RecordHighScore stores score only when it beats the stored high score.
// It reports whether a write happened.
func RecordHighScore(p Persistence, score int) (bool, error) {
	best, err := LoadHighScore(p)
	if score <= best {
		return false, err
	}
	if werr := p.SaveHighScore(score); werr != nil {
		return false, werr
	}
	return true, nil
}

// RecordProgress unlocks the level after completed, clamped to count.
// Progress never goes down. Returns the unlocked level now stored.
func RecordProgress(p Persistence, completed, count int) (int, error) {
	stored, _ := LoadUnlocked(p, count)
	next := clampLevel(completed+1, count)
	if next <= stored {
		return stored, nil
	}
	if err := p.SaveUnlockedLevel(next); err != nil {
		return stored, err
	}
	return next, nil
}

// absence hides ErrNotFound, which is an expected state rather than a failure.
func absence(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func clampLevel(level, count int) int {
	if count < 1 {
		count = 1
	}
	if level < 1 {
		return 1
	}
	if level > count {
		return count
	}
	return level
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
