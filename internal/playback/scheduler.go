package playback

import (
	"time"

	"lifeview/internal/core"
)

// Host provides the software timer and the animation-frame primitive.
type Host interface {
	AfterFunc(d time.Duration, fn func())
	RequestFrame(fn func())
}

// Renderer paints a full frame.
type Renderer interface {
	Render()
}

// Stepper advances the engine by one generation.
type Stepper interface {
	Step()
}

// Scheduler is the recurring render loop. Each cycle waits one interval of
// the target rate, renders, steps the engine when ticking, and requests the
// next animation frame to start the following cycle. It never stops; a
// paused view keeps rendering static frames.
type Scheduler struct {
	state    *State
	host     Host
	renderer Renderer
	engine   Stepper
	meter    *RateMeter

	started     bool
	cycles      uint64
	generations uint64
	lastWait    time.Duration
}

// NewScheduler wires a scheduler. clock feeds the rate meter and may be nil.
func NewScheduler(state *State, host Host, r Renderer, engine Stepper, clock core.Clock) *Scheduler {
	return &Scheduler{
		state:    state,
		host:     host,
		renderer: r,
		engine:   engine,
		meter:    NewRateMeter(clock, time.Second),
	}
}

// Start requests the first animation frame. Calling it again is a no-op.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	s.host.RequestFrame(s.cycle)
}

// Render paints a frame outside the regular cadence.
func (s *Scheduler) Render() { s.renderer.Render() }

// Step advances one generation outside the regular cadence and renders it.
func (s *Scheduler) Step() {
	s.engine.Step()
	s.generations++
	s.renderer.Render()
}

// Cycles returns the number of completed cycles.
func (s *Scheduler) Cycles() uint64 { return s.cycles }

// Generations returns the number of generations the scheduler requested.
func (s *Scheduler) Generations() uint64 { return s.generations }

// ResetGenerations zeroes the generation counter, e.g. after a clear.
func (s *Scheduler) ResetGenerations() { s.generations = 0 }

// LastWait returns the timer delay used by the most recent cycle.
func (s *Scheduler) LastWait() time.Duration { return s.lastWait }

// MeasuredRate returns the observed cycles per second.
func (s *Scheduler) MeasuredRate() float64 { return s.meter.Rate() }

func (s *Scheduler) cycle() {
	s.lastWait = core.Interval(s.state.TargetRate())
	s.host.AfterFunc(s.lastWait, s.frame)
}

func (s *Scheduler) frame() {
	s.renderer.Render()
	if s.state.Ticking() {
		s.engine.Step()
		s.generations++
	}
	s.cycles++
	s.meter.Mark()
	s.host.RequestFrame(s.cycle)
}
