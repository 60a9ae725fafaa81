// Package input turns pointer gestures on the drawing surface into cell
// toggles.
package input

import (
	"math"

	"lifeview/internal/core"
)

// Point is a pointer position in screen space.
type Point struct {
	X, Y float64
}

// Rect is the on-screen bounding rectangle of the drawing surface.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Cell addresses one cell of the grid.
type Cell struct {
	Row, Col int
}

// Mapper converts pointer positions into cell coordinates.
type Mapper struct {
	CellSize int
	Grid     core.Size
}

// backing returns the pixel resolution of the surface.
func (m Mapper) backing() (float64, float64) {
	pitch := m.CellSize + 1
	return float64(pitch*m.Grid.W + 1), float64(pitch*m.Grid.H + 1)
}

// MapToCell resolves p to the cell beneath it. The pointer offset is scaled
// from displayed size to backing resolution on each axis; results outside
// the grid clamp to the nearest edge cell.
func (m Mapper) MapToCell(p Point, bounds Rect) Cell {
	bw, bh := m.backing()
	pitch := float64(m.CellSize + 1)
	x := (p.X - bounds.Left) * scale(bw, bounds.Width)
	y := (p.Y - bounds.Top) * scale(bh, bounds.Height)
	return Cell{
		Row: clamp(math.Floor(y/pitch), m.Grid.H),
		Col: clamp(math.Floor(x/pitch), m.Grid.W),
	}
}

func scale(backing, displayed float64) float64 {
	if displayed <= 0 || math.IsNaN(displayed) || math.IsInf(displayed, 0) {
		return 1
	}
	return backing / displayed
}

func clamp(v float64, count int) int {
	if math.IsNaN(v) || v < 0 || count <= 0 {
		return 0
	}
	if v > float64(count-1) {
		return count - 1
	}
	return int(v)
}
