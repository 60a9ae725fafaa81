// Package playback drives the render and step cadence of the viewer.
package playback

import "math"

const (
	// DefaultRate is the initial target rate in cycles per second.
	DefaultRate = 60.0
	// MinRate is the slowest accepted target rate.
	MinRate = 1.0
	// MaxRate is the fastest accepted target rate.
	MaxRate = 120.0
)

// State is the mutable view state shared by the scheduler, the interaction
// controller and the control bindings.
type State struct {
	ticking  bool
	rate     float64
	inverted bool
}

// NewState returns a paused state at rate, clamped to [MinRate, MaxRate].
func NewState(rate float64) *State {
	s := &State{}
	s.SetTargetRate(rate)
	return s
}

// Ticking reports whether generations advance each cycle.
func (s *State) Ticking() bool { return s.ticking }

// SetTicking starts or pauses generation stepping.
func (s *State) SetTicking(v bool) { s.ticking = v }

// TargetRate returns the target cycles per second.
func (s *State) TargetRate() float64 { return s.rate }

// SetTargetRate updates the target rate, clamping it to [MinRate, MaxRate].
func (s *State) SetTargetRate(rate float64) {
	switch {
	case math.IsNaN(rate):
		rate = DefaultRate
	case rate < MinRate:
		rate = MinRate
	case rate > MaxRate:
		rate = MaxRate
	}
	s.rate = rate
}

// Inverted reports whether the display palette is swapped.
func (s *State) Inverted() bool { return s.inverted }

// SetInverted swaps the display palette. It never reaches the engine.
func (s *State) SetInverted(v bool) { s.inverted = v }
