// Package anim holds per-entity animation clocks.
// A clock is pure data: renderers derive a frame index from it every frame.
package anim

// Clock advances a frame phase by Speed frames per tick.
type Clock struct {
	Frame float64 // Current phase, the integer part is the frame index
	Speed float64 // Frames advanced per tick
	Count int     // Number of frames in the clip
	Loop  bool    // Wrap around instead of holding the last frame
	Done  bool    // Set once a non-looping clip reached its last frame
}

// New creates a clock for a clip with count frames.
func New(count int, speed float64, loop bool) Clock {
	if count < 1 {
		count = 1
	}
	return Clock{Speed: speed, Count: count, Loop: loop}
}

// Update advances the clock by one tick.
func (c *Clock) Update() {
	if c.Done {
		return
	}
	c.Frame += c.Speed
	if c.Frame < float64(c.Count) {
		return
	}
	if c.Loop {
		for c.Frame >= float64(c.Count) {
			c.Frame -= float64(c.Count)
		}
		return
	}
	c.Frame = float64(c.Count - 1)
	c.Done = true
}

// Index returns the current frame index in [0, Count).
func (c Clock) Index() int {
	i := int(c.Frame)
	if i >= c.Count {
		return c.Count - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// Reset rewinds the clock to the first frame.
func (c *Clock) Reset() {
	c.Frame = 0
	c.Done = false
}

// Progress returns the clip completion in [0, 1].
func (c Clock) Progress() float64 {
	if c.Count <= 1 {
		if c.Done {
			return 1
		}
		return 0
	}
	p := c.Frame / float64(c.Count-1)
	if p > 1 {
		return 1
	}
	return p
}

// Countdown is a tick counter that stops at zero.
type Countdown int

// Tick decrements the counter and reports whether it is still running.
func (c *Countdown) Tick() bool {
	if *c > 0 {
		*c--
	}
	return *c > 0
}

// Active reports whether ticks remain.
func (c Countdown) Active() bool {
	return c > 0
}
