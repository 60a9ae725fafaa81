package term

import (
	"testing"

	"lifeview/internal/core"
	"lifeview/internal/input"
)

func TestFieldPoint(t *testing.T) {
	grid := core.Size{W: 10, H: 8}
	cases := []struct {
		name         string
		x, y         int
		viewW, viewH int
		ok           bool
	}{
		{"inside", 3, 2, 40, 20, true},
		{"last cell", 9, 7, 40, 20, true},
		{"right of grid", 10, 2, 40, 20, false},
		{"below grid", 3, 8, 40, 20, false},
		{"last visible row when cropped", 3, 4, 40, 5, true},
		{"crop warning line", 3, 5, 40, 5, false},
		{"cropped column", 6, 0, 6, 20, false},
		{"negative", -1, 0, 40, 20, false},
	}
	for _, c := range cases {
		p, ok := fieldPoint(c.x, c.y, grid, c.viewW, c.viewH)
		if ok != c.ok {
			t.Fatalf("%s: ok=%v, expected %v", c.name, ok, c.ok)
		}
		if ok && p != (input.Point{X: float64(c.x), Y: float64(c.y)}) {
			t.Fatalf("%s: point %+v", c.name, p)
		}
	}
}

func TestFieldPointMapsToCell(t *testing.T) {
	grid := core.Size{W: 10, H: 8}
	m := input.Mapper{CellSize: 0, Grid: grid}
	bounds := input.Rect{Width: float64(grid.W + 1), Height: float64(grid.H + 1)}
	p, ok := fieldPoint(7, 4, grid, 40, 20)
	if !ok {
		t.Fatal("point rejected")
	}
	if got := m.MapToCell(p, bounds); got != (input.Cell{Row: 4, Col: 7}) {
		t.Fatalf("cell %+v, expected (4,7)", got)
	}
}
