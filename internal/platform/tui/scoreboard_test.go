package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

func TestScoreboardWithoutHistory(t *testing.T) {
	m := NewScoreboardModel(nil, levels.Default(), quietLogger(), 100, 30)
	if !strings.Contains(m.renderTableContent(), "sqlite") {
		t.Error("board without history does not explain the sqlite requirement")
	}
	if m.summary() != "" {
		t.Errorf("summary = %q, want empty", m.summary())
	}
}

func TestScoreboardLevelTabs(t *testing.T) {
	store := &fakeStore{}
	store.SaveScore(1, 40, true)
	store.SaveScore(1, 20, false)
	store.SaveScore(2, 55, true)

	m := NewScoreboardModel(store, levels.Default(), quietLogger(), 100, 30)
	if len(m.tabs) != levels.Default().Count()+1 {
		t.Fatalf("tabs = %d, want %d", len(m.tabs), levels.Default().Count()+1)
	}
	if len(m.scores) != 3 {
		t.Errorf("all levels shows %d runs, want 3", len(m.scores))
	}
	if got := m.summary(); !strings.Contains(got, "Runs: 3") || !strings.Contains(got, "Clears: 2") || !strings.Contains(got, "Best: 55") {
		t.Errorf("summary = %q", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 2 {
		t.Errorf("level 1 shows %d runs, want 2", len(m.scores))
	}
	if got := m.summary(); !strings.Contains(got, "Runs: 2") || !strings.Contains(got, "Avg: 30") {
		t.Errorf("level 1 summary = %q", got)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if got := m.tabs[m.cursor].level; got != levels.Default().Count() {
		t.Errorf("shift+tab wrapped to level %d, want %d", got, levels.Default().Count())
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, levels.Default(), quietLogger(), 60, 20)

	back, _ := m.Update(runeKey('b'))
	if !back.(ScoreboardModel).IsGoingBack() {
		t.Error("b did not go back")
	}
	quit, _ := m.Update(runeKey('q'))
	if !quit.(ScoreboardModel).IsQuitting() {
		t.Error("q did not quit")
	}
}
