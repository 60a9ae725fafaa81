package elementary

import (
	"strconv"

	"lifeview/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary runs a one-dimensional Wolfram rule on the top row and
// scrolls history downwards. Cells are bit-packed like the Life engine.
type Elementary struct {
	w, h int
	rule uint8
	cur  []byte
	row  []bool
}

// New creates an automaton with the given dimensions and rule, seeded with
// a single live cell in the middle of the top row.
func New(w, h int, rule uint8) *Elementary {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	e := &Elementary{w: w, h: h, rule: rule, cur: make([]byte, core.PackedLen(w*h)), row: make([]bool, w)}
	e.set(w/2, true)
	return e
}

// Name returns the engine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells borrows the packed buffer.
func (e *Elementary) Cells() []byte { return e.cur }

// Reset fills the top row from seed and clears the history.
func (e *Elementary) Reset(seed int64) {
	buf := make([]byte, len(e.cur))
	rng := core.NewRNG(seed)
	e.cur = buf
	for x := 0; x < e.w; x++ {
		e.set(x, rng.Bool())
	}
}

// Clear kills every cell.
func (e *Elementary) Clear() {
	e.cur = make([]byte, len(e.cur))
}

// Toggle flips the cell at (row, col).
func (e *Elementary) Toggle(row, col int) {
	if row < 0 || row >= e.h || col < 0 || col >= e.w {
		return
	}
	idx := core.Index(row, col, e.w)
	e.set(idx, !core.Alive(e.cur, idx))
}

// Step computes the next top row and scrolls history downwards.
func (e *Elementary) Step() {
	for x := 0; x < e.w; x++ {
		e.row[x] = core.Alive(e.cur, x)
	}
	for idx := e.w*e.h - 1; idx >= e.w; idx-- {
		e.set(idx, core.Alive(e.cur, idx-e.w))
	}
	for x := 0; x < e.w; x++ {
		var left, center, right uint8
		if e.row[(x-1+e.w)%e.w] {
			left = 1
		}
		if e.row[x] {
			center = 1
		}
		if e.row[(x+1)%e.w] {
			right = 1
		}
		idx := (left << 2) | (center << 1) | right
		e.set(x, (e.rule>>idx)&1 == 1)
	}
}

func (e *Elementary) set(idx int, v bool) {
	if v {
		e.cur[idx/8] |= 1 << (idx % 8)
		return
	}
	e.cur[idx/8] &^= 1 << (idx % 8)
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
