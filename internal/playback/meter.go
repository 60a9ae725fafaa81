package playback

import (
	"time"

	"lifeview/internal/core"
)

// RateMeter measures how many events per second happened over a sliding
// window.
type RateMeter struct {
	clock  core.Clock
	window time.Duration
	marks  []time.Time
}

// NewRateMeter returns a meter over window. A nil clock uses the wall clock.
func NewRateMeter(clock core.Clock, window time.Duration) *RateMeter {
	if clock == nil {
		clock = core.SystemClock{}
	}
	if window <= 0 {
		window = time.Second
	}
	return &RateMeter{clock: clock, window: window}
}

// Mark records one event now.
func (m *RateMeter) Mark() {
	now := m.clock.Now()
	m.marks = append(m.marks, now)
	m.trim(now)
}

// Rate returns events per second within the window ending now.
func (m *RateMeter) Rate() float64 {
	m.trim(m.clock.Now())
	return float64(len(m.marks)) / m.window.Seconds()
}

func (m *RateMeter) trim(now time.Time) {
	cutoff := now.Add(-m.window)
	drop := 0
	for drop < len(m.marks) && !m.marks[drop].After(cutoff) {
		drop++
	}
	if drop > 0 {
		m.marks = append(m.marks[:0], m.marks[drop:]...)
	}
}
