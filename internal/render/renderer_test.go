package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"lifeview/internal/core"
)

type fillCall struct {
	x, y, w, h float64
	c          color.Color
}

type recordingSurface struct {
	begins  int
	moves   int
	lines   [][4]float64
	strokes []color.Color
	fills   []fillCall
	penX    float64
	penY    float64
}

func (s *recordingSurface) BeginPath()          { s.begins++ }
func (s *recordingSurface) MoveTo(x, y float64) { s.moves++; s.penX, s.penY = x, y }
func (s *recordingSurface) LineTo(x, y float64) {
	s.lines = append(s.lines, [4]float64{s.penX, s.penY, x, y})
	s.penX, s.penY = x, y
}
func (s *recordingSurface) Stroke(c color.Color) { s.strokes = append(s.strokes, c) }
func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.fills = append(s.fills, fillCall{x, y, w, h, c})
}

type staticSource struct {
	cells  []byte
	borrow int
}

func (s *staticSource) Cells() []byte {
	s.borrow++
	return s.cells
}

func TestViewportBounds(t *testing.T) {
	vp := Viewport{CellSize: 10, Grid: core.Size{W: 64, H: 32}}
	if got, want := vp.Bounds(), image.Pt(11*64+1, 11*32+1); got != want {
		t.Fatalf("bounds %v, expected %v", got, want)
	}
	if got := vp.CellOrigin(2, 3); got != image.Pt(34, 23) {
		t.Fatalf("cell origin %v, expected (34,23)", got)
	}
}

func TestDrawGridGeometry(t *testing.T) {
	s := &recordingSurface{}
	vp := Viewport{CellSize: 4, Grid: core.Size{W: 3, H: 2}}
	r := NewGridRenderer(s, vp, DefaultPalette())
	r.DrawGrid()

	if s.begins != 1 || len(s.strokes) != 1 {
		t.Fatalf("begins=%d strokes=%d, expected one path", s.begins, len(s.strokes))
	}
	if len(s.lines) != (3+1)+(2+1) {
		t.Fatalf("%d lines, expected 7", len(s.lines))
	}
	first := s.lines[0]
	if first != [4]float64{0.5, 0, 0.5, 11} {
		t.Fatalf("first vertical line %v", first)
	}
	lastH := s.lines[len(s.lines)-1]
	if lastH != [4]float64{0, 10.5, 16, 10.5} {
		t.Fatalf("last horizontal line %v", lastH)
	}
}

func TestDrawCellsAppliesInversion(t *testing.T) {
	p := DefaultPalette()
	vp := Viewport{CellSize: 10, Grid: core.Size{W: 2, H: 2}}
	cells := []byte{0b00000011}

	for _, inverted := range []bool{false, true} {
		s := &recordingSurface{}
		NewGridRenderer(s, vp, p).DrawCells(cells, inverted)
		if len(s.fills) != 4 {
			t.Fatalf("%d fills, expected 4", len(s.fills))
		}
		want := []bool{true, true, false, false}
		for i, f := range s.fills {
			expected := p.Dead
			if want[i] != inverted {
				expected = p.Alive
			}
			if f.c != expected {
				t.Fatalf("inverted=%v cell %d color %v, expected %v", inverted, i, f.c, expected)
			}
			if f.w != 10 || f.h != 10 {
				t.Fatalf("cell %d size %vx%v", i, f.w, f.h)
			}
		}
		if f := s.fills[3]; f.x != 12 || f.y != 12 {
			t.Fatalf("cell (1,1) at (%v,%v), expected (12,12)", f.x, f.y)
		}
	}
}

func TestFrameBorrowsEveryRender(t *testing.T) {
	s := &recordingSurface{}
	src := &staticSource{cells: []byte{0x01}}
	inverted := false
	f := NewFrame(NewGridRenderer(s, Viewport{CellSize: 2, Grid: core.Size{W: 2, H: 2}}, DefaultPalette()), src, func() bool { return inverted })

	f.Render()
	src.cells = []byte{0x02}
	f.Render()

	if src.borrow != 2 {
		t.Fatalf("buffer borrowed %d times, expected 2", src.borrow)
	}
	if f.Frames() != 2 {
		t.Fatalf("frames %d, expected 2", f.Frames())
	}
	p := DefaultPalette()
	second := s.fills[4:]
	if second[0].c != p.Dead || second[1].c != p.Alive {
		t.Fatal("second render did not reflect the replaced buffer")
	}
}

func TestImageSurfaceRendersPixels(t *testing.T) {
	vp := Viewport{CellSize: 3, Grid: core.Size{W: 2, H: 2}}
	b := vp.Bounds()
	s := NewImageSurface(b.X, b.Y)
	p := DefaultPalette()
	f := NewFrame(NewGridRenderer(s, vp, p), &staticSource{cells: []byte{0b1001}}, nil)
	f.Render()

	img := s.Image()
	grid := color.RGBAModel.Convert(p.Grid)
	for _, pt := range []image.Point{{0, 0}, {4, 2}, {8, 8}, {2, 4}} {
		if got := img.RGBAAt(pt.X, pt.Y); got != grid {
			t.Fatalf("separator pixel %v = %v, expected %v", pt, got, grid)
		}
	}
	alive := color.RGBAModel.Convert(p.Alive)
	dead := color.RGBAModel.Convert(p.Dead)
	checks := map[image.Point]color.Color{
		{1, 1}: alive, {3, 3}: alive,
		{5, 1}: dead, {7, 3}: dead,
		{1, 5}: dead,
		{5, 5}: alive, {7, 7}: alive,
	}
	for pt, want := range checks {
		if got := img.RGBAAt(pt.X, pt.Y); got != want {
			t.Fatalf("pixel %v = %v, expected %v", pt, got, want)
		}
	}

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty PNG")
	}
}

func TestTextRenderer(t *testing.T) {
	tr := TextRenderer{Live: "#", Dead: "."}
	grid := core.Size{W: 3, H: 2}
	cells := []byte{0b00100001}

	var buf bytes.Buffer
	crop, err := tr.Write(&buf, grid, cells, false, 0, 0)
	if err != nil || crop {
		t.Fatalf("crop=%v err=%v", crop, err)
	}
	if got := buf.String(); got != "#..\n..#" {
		t.Fatalf("text %q", got)
	}

	buf.Reset()
	crop, _ = tr.Write(&buf, grid, cells, true, 2, 1)
	if !crop {
		t.Fatal("expected crop")
	}
	if got := buf.String(); got != ".#" {
		t.Fatalf("cropped inverted text %q", got)
	}
}
