package life

import "lifeview/internal/core"

// Life implements Conway's Game of Life on a toroidal grid. State is kept
// one bit per cell, bit i%8 of byte i/8, in row-major order.
type Life struct {
	w, h int
	cur  []byte
	nxt  []byte
}

// New returns a Life engine seeded with the default stripe pattern.
func New(w, h int) *Life {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	n := core.PackedLen(w * h)
	l := &Life{w: w, h: h, cur: make([]byte, n), nxt: make([]byte, n)}
	for i := 0; i < w*h; i++ {
		l.set(l.cur, i, i%2 == 0 || i%7 == 0)
	}
	return l
}

// Name returns the engine identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells borrows the packed buffer of the current generation.
func (l *Life) Cells() []byte { return l.cur }

// Reset replaces the universe with random cells derived from seed. The
// previous buffer is abandoned, so earlier borrows must not be reused.
func (l *Life) Reset(seed int64) {
	buf := make([]byte, len(l.cur))
	core.NewRNG(seed).FillBits(buf, l.w*l.h)
	l.cur = buf
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur = make([]byte, len(l.cur))
}

// Toggle flips the cell at (row, col). Coordinates outside the grid are
// ignored.
func (l *Life) Toggle(row, col int) {
	if row < 0 || row >= l.h || col < 0 || col >= l.w {
		return
	}
	idx := core.Index(row, col, l.w)
	l.set(l.cur, idx, !l.get(l.cur, idx))
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.w, l.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if l.get(l.cur, ny*w+nx) {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := l.get(l.cur, idx)
			l.set(l.nxt, idx, (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) get(buf []byte, idx int) bool {
	return buf[idx/8]&(1<<(idx%8)) != 0
}

func (l *Life) set(buf []byte, idx int, v bool) {
	if v {
		buf[idx/8] |= 1 << (idx % 8)
		return
	}
	buf[idx/8] &^= 1 << (idx % 8)
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
