package tui

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// fakeStore is an in-memory store with a score history.
type fakeStore struct {
	high     int
	unlocked int
	settings *storage.Settings
	runs     []storage.ScoreEntry
	writeErr error
}

func (f *fakeStore) HighScore() (int, error) {
	if f.high == 0 {
		return 0, storage.ErrNotFound
	}
	return f.high, nil
}

func (f *fakeStore) SaveHighScore(score int) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.high = score
	return nil
}

func (f *fakeStore) UnlockedLevel() (int, error) {
	if f.unlocked == 0 {
		return 0, storage.ErrNotFound
	}
	return f.unlocked, nil
}

func (f *fakeStore) SaveUnlockedLevel(level int) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.unlocked = level
	return nil
}

func (f *fakeStore) Settings() (storage.Settings, error) {
	if f.settings == nil {
		return storage.Settings{}, storage.ErrNotFound
	}
	return *f.settings, nil
}

func (f *fakeStore) SaveSettings(s storage.Settings) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.settings = &s
	return nil
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) SaveScore(level, score int, completed bool) (int64, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.runs = append(f.runs, storage.ScoreEntry{
		ID:        int64(len(f.runs) + 1),
		Level:     level,
		Score:     score,
		Completed: completed,
		CreatedAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC),
	})
	return int64(len(f.runs)), nil
}

func (f *fakeStore) TopScores(level, limit int) ([]storage.ScoreEntry, error) {
	var out []storage.ScoreEntry
	for _, r := range f.runs {
		if level == 0 || r.Level == level {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) AllLevelStats() ([]storage.LevelStats, error) {
	byLevel := map[int]*storage.LevelStats{}
	var order []int
	for _, r := range f.runs {
		st, ok := byLevel[r.Level]
		if !ok {
			st = &storage.LevelStats{Level: r.Level}
			byLevel[r.Level] = st
			order = append(order, r.Level)
		}
		st.AvgScore = (st.AvgScore*float64(st.Runs) + float64(r.Score)) / float64(st.Runs+1)
		st.Runs++
		if r.Completed {
			st.Clears++
		}
		if r.Score > st.HighScore {
			st.HighScore = r.Score
		}
	}
	out := make([]storage.LevelStats, 0, len(order))
	for _, l := range order {
		out = append(out, *byLevel[l])
	}
	return out, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestProgressLoadsStoredValues(t *testing.T) {
	store := &fakeStore{high: 120, unlocked: 2}
	p := NewProgress(store, 3, quietLogger())

	if got := p.HighScore(); got != 120 {
		t.Errorf("HighScore() = %d, want 120", got)
	}
	if got := p.Unlocked(); got != 2 {
		t.Errorf("Unlocked() = %d, want 2", got)
	}
}

func TestProgressEmptyStoreDefaults(t *testing.T) {
	p := NewProgress(&fakeStore{}, 3, quietLogger())
	if p.HighScore() != 0 || p.Unlocked() != 1 {
		t.Errorf("got high %d unlocked %d, want 0 and 1", p.HighScore(), p.Unlocked())
	}
	if got := p.Settings(); got != storage.DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", got)
	}
}

func TestProgressSaveHighScoreOnlyWhenBeaten(t *testing.T) {
	store := &fakeStore{high: 50}
	p := NewProgress(store, 3, quietLogger())

	p.SaveHighScore(40)
	if store.high != 50 {
		t.Errorf("stored high = %d after lower score, want 50", store.high)
	}
	p.SaveHighScore(70)
	if store.high != 70 || p.HighScore() != 70 {
		t.Errorf("stored high = %d, cached %d, want 70", store.high, p.HighScore())
	}
}

func TestProgressUnlockLevel(t *testing.T) {
	tests := []struct {
		name      string
		stored    int
		completed int
		want      int
	}{
		{"first clear", 0, 1, 2},
		{"replaying an old level", 3, 1, 3},
		{"last level clamps", 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{unlocked: tt.stored}
			p := NewProgress(store, 3, quietLogger())
			p.UnlockLevel(tt.completed)
			if p.Unlocked() != tt.want {
				t.Errorf("Unlocked() = %d, want %d", p.Unlocked(), tt.want)
			}
			if store.unlocked != tt.want {
				t.Errorf("stored unlocked = %d, want %d", store.unlocked, tt.want)
			}
		})
	}
}

func TestProgressRecordRun(t *testing.T) {
	store := &fakeStore{}
	p := NewProgress(store, 3, quietLogger())
	p.RecordRun(2, 45, true)

	if len(store.runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(store.runs))
	}
	if r := store.runs[0]; r.Level != 2 || r.Score != 45 || !r.Completed {
		t.Errorf("run = %+v", r)
	}
}

func TestProgressWriteFailuresStayInMemory(t *testing.T) {
	store := &fakeStore{writeErr: errors.New("disk full")}
	p := NewProgress(store, 3, quietLogger())

	p.SaveHighScore(90)
	p.UnlockLevel(1)
	p.RecordRun(1, 90, true)
	p.SaveSettings(storage.Settings{Volume: 0.2})

	if p.HighScore() != 90 {
		t.Errorf("HighScore() = %d, want 90 kept in memory", p.HighScore())
	}
	if p.Unlocked() != 2 {
		t.Errorf("Unlocked() = %d, want 2 kept in memory", p.Unlocked())
	}
	if store.high != 0 || len(store.runs) != 0 {
		t.Error("failed writes reached the store")
	}
}

func TestProgressNilStore(t *testing.T) {
	p := NewProgress(nil, 3, quietLogger())
	p.SaveHighScore(10)
	p.UnlockLevel(1)
	p.RecordRun(1, 10, true)
	p.SaveSettings(storage.Settings{Volume: 1})

	if p.HighScore() != 10 || p.Unlocked() != 2 {
		t.Errorf("got high %d unlocked %d, want 10 and 2", p.HighScore(), p.Unlocked())
	}
	if got := p.Settings(); got != storage.DefaultSettings() {
		t.Errorf("Settings() = %+v, want defaults", got)
	}
}
