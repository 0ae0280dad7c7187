package anim

import "testing"

func TestClockLoops(t *testing.T) {
	c := New(4, 0.5, true)

	seen := make([]int, 0, 10)
	for range 10 {
		c.Update()
		seen = append(seen, c.Index())
	}

	expected := []int{0, 1, 1, 2, 2, 3, 3, 0, 0, 1}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("frame sequence = %v, expected %v", seen, expected)
		}
	}
	if c.Done {
		t.Error("looping clock should never be done")
	}
}

func TestClockHoldsLastFrame(t *testing.T) {
	c := New(3, 1, false)

	for range 10 {
		c.Update()
	}
	if !c.Done {
		t.Fatal("non-looping clip should finish")
	}
	if c.Index() != 2 {
		t.Errorf("Index() = %d, expected last frame 2", c.Index())
	}
	if c.Progress() != 1 {
		t.Errorf("Progress() = %v, expected 1", c.Progress())
	}

	c.Reset()
	if c.Done || c.Index() != 0 {
		t.Error("Reset should rewind the clip")
	}
}

func TestClockSingleFrame(t *testing.T) {
	c := New(0, 1, false)
	if c.Count != 1 {
		t.Fatalf("Count = %d, expected clamp to 1", c.Count)
	}
	c.Update()
	if c.Index() != 0 || !c.Done {
		t.Error("single frame clip should finish on first update")
	}
}

func TestCountdown(t *testing.T) {
	c := Countdown(2)

	if !c.Tick() {
		t.Error("countdown should still run after first tick")
	}
	if c.Tick() {
		t.Error("countdown should stop at zero")
	}
	if c.Tick() || c != 0 {
		t.Errorf("countdown must not go negative, got %d", c)
	}
	if c.Active() {
		t.Error("zero countdown reported active")
	}
}
