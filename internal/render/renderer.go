package render

import (
	"image/color"

	"lifeview/internal/core"
)

// Surface is a 2D immediate-mode paint target.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path one pixel wide.
	Stroke(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}

// GridRenderer paints grid separators and cells onto a Surface.
type GridRenderer struct {
	surface  Surface
	viewport Viewport
	palette  Palette
}

// NewGridRenderer constructs a renderer for the given geometry and colors.
func NewGridRenderer(s Surface, vp Viewport, p Palette) *GridRenderer {
	return &GridRenderer{surface: s, viewport: vp, palette: p}
}

// Viewport returns the renderer geometry.
func (r *GridRenderer) Viewport() Viewport { return r.viewport }

// DrawGrid strokes the separator lines. Lines sit on pixel centers so each
// one covers exactly the pixel column or row left free between cells.
func (r *GridRenderer) DrawGrid() {
	pitch := float64(r.viewport.Pitch())
	size := r.viewport.Bounds()
	w, h := float64(size.X), float64(size.Y)

	r.surface.BeginPath()
	for i := 0; i <= r.viewport.Grid.W; i++ {
		x := float64(i)*pitch + 0.5
		r.surface.MoveTo(x, 0)
		r.surface.LineTo(x, h)
	}
	for j := 0; j <= r.viewport.Grid.H; j++ {
		y := float64(j)*pitch + 0.5
		r.surface.MoveTo(0, y)
		r.surface.LineTo(w, y)
	}
	r.surface.Stroke(r.palette.Grid)
}

// DrawCells fills every cell from the packed buffer in row-major order.
func (r *GridRenderer) DrawCells(cells []byte, inverted bool) {
	grid := r.viewport.Grid
	size := float64(r.viewport.CellSize)
	for row := 0; row < grid.H; row++ {
		for col := 0; col < grid.W; col++ {
			alive := core.Alive(cells, core.Index(row, col, grid.W))
			o := r.viewport.CellOrigin(row, col)
			r.surface.FillRect(float64(o.X), float64(o.Y), size, size, r.palette.Fill(alive, inverted))
		}
	}
}

// Source provides the cell buffer to render.
type Source interface {
	Cells() []byte
}

// Frame paints a full frame from a source, borrowing its buffer anew on
// every call.
type Frame struct {
	renderer *GridRenderer
	source   Source
	inverted func() bool
	frames   uint64
}

// NewFrame binds a renderer to a source. inverted may be nil.
func NewFrame(r *GridRenderer, src Source, inverted func() bool) *Frame {
	return &Frame{renderer: r, source: src, inverted: inverted}
}

// Render draws the grid and then the cells.
func (f *Frame) Render() {
	inv := false
	if f.inverted != nil {
		inv = f.inverted()
	}
	f.renderer.DrawGrid()
	f.renderer.DrawCells(f.source.Cells(), inv)
	f.frames++
}

// Frames returns the number of frames rendered.
func (f *Frame) Frames() uint64 { return f.frames }
