package core

import "time"

// Clock is the time source used by the playback loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when Advance is called. It lets tests drive the
// playback loop deterministically.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.now = c.now.Add(d)
}

// Interval converts a per-second rate into the wait between two cycles.
// Non-positive rates fall back to 60 per second.
func Interval(rate float64) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(float64(time.Second) / rate)
}
