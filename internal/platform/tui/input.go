package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its
// last press. Terminals only report key presses, so holding an arrow key
// arrives as a stream of repeats; the window bridges the gap between them.
const DefaultHoldWindow = 200 * time.Millisecond

// HeldInput accumulates key presses between ticks and turns them into
// input frames. Left and right stay active until their hold window
// expires; every other action lasts a single frame.
type HeldInput struct {
	holdTicks  int
	tick       int
	leftUntil  int
	rightUntil int
	pressed    core.InputFrame
}

// NewHeldInput creates an input accumulator for the given hold window
// and simulation rate.
func NewHeldInput(window time.Duration, tickRate int) *HeldInput {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(window * time.Duration(tickRate) / time.Second)
	if ticks < 1 {
		ticks = 1
	}
	return &HeldInput{
		holdTicks: ticks,
		pressed:   core.NewInputFrame(),
	}
}

// HoldTicks returns the hold window in ticks.
func (h *HeldInput) HoldTicks() int {
	return h.holdTicks
}

// Press records an action for the next frame.
func (h *HeldInput) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		h.leftUntil = h.tick + h.holdTicks
		h.rightUntil = h.tick
	case core.ActionRight:
		h.rightUntil = h.tick + h.holdTicks
		h.leftUntil = h.tick
	default:
		h.pressed.Set(a)
	}
}

// Release drops any held movement, used when the game leaves play.
func (h *HeldInput) Release() {
	h.leftUntil = h.tick
	h.rightUntil = h.tick
	h.pressed.Clear()
}

// Frame returns the input for the current tick and advances the clock.
func (h *HeldInput) Frame() core.InputFrame {
	f := h.pressed.Clone()
	if h.tick < h.leftUntil {
		f.Set(core.ActionLeft)
	}
	if h.tick < h.rightUntil {
		f.Set(core.ActionRight)
	}
	h.pressed.Clear()
	h.tick++
	return f
}
