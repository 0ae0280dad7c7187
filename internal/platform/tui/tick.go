// Package tui provides the Bubble Tea front end of the platformer: the
// fixed-step tick loop, key mapping, level menu, scoreboard and the SSH
// server that serves the same session to remote players.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it, so a loop left
// behind by a previous game cannot drive the current one.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopSeq atomic.Int64

// nextLoop returns a fresh tick loop id.
func nextLoop() int64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// fpsCounter measures the delivered tick rate over one-second windows.
type fpsCounter struct {
	start  time.Time
	frames int
	value  float64
}

// tick records one frame delivered at t.
func (c *fpsCounter) tick(t time.Time) {
	if c.start.IsZero() {
		c.start = t
	}
	c.frames++
	if elapsed := t.Sub(c.start); elapsed >= time.Second {
		c.value = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.start = t
	}
}
