package playback

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"lifeview/internal/core"
)

// Controls are the entry points used by buttons, keys and sliders.
type Controls struct {
	state     *State
	engine    core.Engine
	scheduler *Scheduler
	clock     core.Clock
}

// NewControls binds the control entry points. A nil clock uses the wall
// clock to seed randomization.
func NewControls(state *State, engine core.Engine, scheduler *Scheduler, clock core.Clock) *Controls {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Controls{state: state, engine: engine, scheduler: scheduler, clock: clock}
}

// Ticking reports whether playback is running.
func (c *Controls) Ticking() bool { return c.state.Ticking() }

// TargetRate returns the target cycles per second.
func (c *Controls) TargetRate() float64 { return c.state.TargetRate() }

// Inverted reports whether the palette is inverted.
func (c *Controls) Inverted() bool { return c.state.Inverted() }

// SetTicking starts or pauses playback.
func (c *Controls) SetTicking(v bool) { c.state.SetTicking(v) }

// ToggleTicking flips between running and paused.
func (c *Controls) ToggleTicking() { c.state.SetTicking(!c.state.Ticking()) }

// SetTargetRate changes the target rate from the next cycle on.
func (c *Controls) SetTargetRate(rate float64) { c.state.SetTargetRate(rate) }

// SetInverted swaps the display palette.
func (c *Controls) SetInverted(v bool) { c.state.SetInverted(v) }

// Render paints a frame right away, e.g. after an edit while paused.
func (c *Controls) Render() { c.scheduler.Render() }

// RenderEdit paints a frame after toggles made while paused. Running views
// are redrawn by the controller itself. It reports whether it rendered.
func (c *Controls) RenderEdit(toggles int) bool {
	if toggles <= 0 || c.state.Ticking() {
		return false
	}
	c.scheduler.Render()
	return true
}

// RequestClear kills every cell and resets the generation counter.
func (c *Controls) RequestClear() {
	c.engine.Clear()
	c.scheduler.ResetGenerations()
}

// RequestRandomize replaces the universe with a random one.
func (c *Controls) RequestRandomize() {
	c.engine.Reset(c.clock.Now().UnixNano())
	c.scheduler.ResetGenerations()
}

// RequestStep advances one generation while paused.
func (c *Controls) RequestStep() {
	if c.state.Ticking() {
		return
	}
	c.scheduler.Step()
}

// RequestToggle flips (row, col), clamped into the grid. A paused view is
// rendered right away so the edit is visible.
func (c *Controls) RequestToggle(row, col int) {
	size := c.engine.Size()
	c.engine.Toggle(clampInt(row, size.H), clampInt(col, size.W))
	c.scheduler.Render()
}

// ParseRate parses slider or text input into a rate. Non-numeric input is
// rejected so it never reaches the scheduler.
func ParseRate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse rate %q: not a number", s)
	}
	return v, nil
}

func clampInt(v, count int) int {
	if v < 0 || count <= 0 {
		return 0
	}
	if v > count-1 {
		return count - 1
	}
	return v
}
