package splat

import "time"

// FrameCounter measures an observed rate as a moving-window count: each
// Tick records the current instant and returns how many ticks landed inside
// the trailing window. The display loop feeds the result into
// State.FrameRate once per tick.
type FrameCounter struct {
	window time.Duration
	marks  []time.Time
	now    func() time.Time // swapped out in tests
}

// NewFrameCounter creates a counter over the given trailing window.
// Panics on a nonpositive window — that is a fixed configuration mistake,
// not a runtime condition.
func NewFrameCounter(window time.Duration) *FrameCounter {
	if window <= 0 {
		panic("splat: nonpositive frame counter window")
	}
	return &FrameCounter{window: window, now: time.Now}
}

// Tick records one frame and returns the count of frames observed within
// the trailing window, including this one.
func (c *FrameCounter) Tick() int {
	now := c.now()
	c.marks = append(c.marks, now)

	cutoff := now.Add(-c.window)
	expired := 0
	for expired < len(c.marks) && c.marks[expired].Before(cutoff) {
		expired++
	}
	if expired > 0 {
		n := copy(c.marks, c.marks[expired:])
		c.marks = c.marks[:n]
	}
	return len(c.marks)
}
