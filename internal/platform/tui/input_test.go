package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestHeldInputHoldTicks(t *testing.T) {
	tests := []struct {
		window time.Duration
		rate   int
		want   int
	}{
		{200 * time.Millisecond, 60, 12},
		{100 * time.Millisecond, 30, 3},
		{time.Millisecond, 60, 1},
		{0, 60, 12},
		{200 * time.Millisecond, 0, 12},
	}

	for _, tt := range tests {
		h := NewHeldInput(tt.window, tt.rate)
		if got := h.HoldTicks(); got != tt.want {
			t.Errorf("NewHeldInput(%v, %d).HoldTicks() = %d, want %d", tt.window, tt.rate, got, tt.want)
		}
	}
}

func TestHeldInputMovementExpires(t *testing.T) {
	h := NewHeldInput(100*time.Millisecond, 30) // 3 ticks
	h.Press(core.ActionRight)

	for i := range 3 {
		if f := h.Frame(); !f.Has(core.ActionRight) {
			t.Fatalf("frame %d: right not held", i)
		}
	}
	if f := h.Frame(); f.Has(core.ActionRight) {
		t.Error("right still held after the hold window")
	}
}

func TestHeldInputRepeatExtends(t *testing.T) {
	h := NewHeldInput(100*time.Millisecond, 30)
	h.Press(core.ActionLeft)
	h.Frame()
	h.Frame()
	h.Press(core.ActionLeft) // key repeat
	for i := range 3 {
		if f := h.Frame(); !f.Has(core.ActionLeft) {
			t.Fatalf("frame %d after repeat: left not held", i)
		}
	}
}

func TestHeldInputOppositeCancels(t *testing.T) {
	h := NewHeldInput(200*time.Millisecond, 60)
	h.Press(core.ActionLeft)
	h.Frame()
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) {
		t.Error("left still held after pressing right")
	}
	if !f.Has(core.ActionRight) {
		t.Error("right not held")
	}
}

func TestHeldInputOneShotActions(t *testing.T) {
	h := NewHeldInput(200*time.Millisecond, 60)
	h.Press(core.ActionJump)
	h.Press(core.ActionPause)
	h.Press(core.ActionNone)

	f := h.Frame()
	if !f.Has(core.ActionJump) || !f.Has(core.ActionPause) {
		t.Fatalf("frame = %v, want jump and pause", f.Actions)
	}
	if f.Has(core.ActionNone) {
		t.Error("ActionNone was recorded")
	}
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("second frame = %v, want empty", f.Actions)
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput(200*time.Millisecond, 60)
	h.Press(core.ActionRight)
	h.Press(core.ActionJump)
	h.Release()

	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("frame after release = %v, want empty", f.Actions)
	}
}
