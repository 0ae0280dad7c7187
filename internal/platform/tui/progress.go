package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// ScoreHistory is implemented by stores that keep every finished run.
type ScoreHistory interface {
	SaveScore(level, score int, completed bool) (int64, error)
}

// Progress connects the game to a storage backend. Storage failures are
// logged and never reach the game; a nil store keeps everything in memory.
type Progress struct {
	store  storage.Persistence
	count  int
	logger *log.Logger

	best     int
	unlocked int
}

var _ platformer.Progress = (*Progress)(nil)

// NewProgress loads the stored high score and unlocked level.
// count is the number of levels in the active catalog.
func NewProgress(store storage.Persistence, count int, logger *log.Logger) *Progress {
	if logger == nil {
		logger = log.Default()
	}
	p := &Progress{store: store, count: count, logger: logger, unlocked: 1}
	if store == nil {
		return p
	}
	best, err := storage.LoadHighScore(store)
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}
	p.best = best
	unlocked, err := storage.LoadUnlocked(store, count)
	if err != nil {
		logger.Warn("could not read progress", "error", err)
	}
	p.unlocked = unlocked
	return p
}

// HighScore returns the best score seen so far.
func (p *Progress) HighScore() int {
	return p.best
}

// SaveHighScore stores score when it beats the current best.
func (p *Progress) SaveHighScore(score int) {
	if score <= p.best {
		return
	}
	p.best = score
	if p.store == nil {
		return
	}
	if _, err := storage.RecordHighScore(p.store, score); err != nil {
		p.logger.Error("could not save high score", "score", score, "error", err)
	}
}

// UnlockLevel unlocks the level after completed.
func (p *Progress) UnlockLevel(completed int) {
	next := completed + 1
	if next > p.count {
		next = p.count
	}
	if next > p.unlocked {
		p.unlocked = next
	}
	if p.store == nil {
		return
	}
	stored, err := storage.RecordProgress(p.store, completed, p.count)
	if err != nil {
		p.logger.Error("could not save progress", "level", completed, "error", err)
		return
	}
	if stored > p.unlocked {
		p.unlocked = stored
	}
}

// RecordRun appends a finished run to the score history when the
// store keeps one.
func (p *Progress) RecordRun(level, score int, completed bool) {
	history, ok := p.store.(ScoreHistory)
	if !ok {
		return
	}
	if _, err := history.SaveScore(level, score, completed); err != nil {
		p.logger.Error("could not save run", "level", level, "score", score, "error", err)
		return
	}
	p.logger.Debug("run saved", "level", level, "score", score, "completed", completed)
}

// Unlocked returns the highest playable level.
func (p *Progress) Unlocked() int {
	return p.unlocked
}

// Settings loads the stored settings, falling back to defaults.
func (p *Progress) Settings() storage.Settings {
	if p.store == nil {
		return storage.DefaultSettings()
	}
	s, err := storage.LoadSettings(p.store)
	if err != nil {
		p.logger.Warn("could not read settings", "error", err)
	}
	return s
}

// SaveSettings stores settings.
func (p *Progress) SaveSettings(s storage.Settings) {
	if p.store == nil {
		return
	}
	if err := p.store.SaveSettings(s); err != nil {
		p.logger.Error("could not save settings", "error", err)
	}
}
