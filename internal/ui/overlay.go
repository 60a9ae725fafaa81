//go:build ebiten

package ui

import (
	"image/color"

	"lifeview/internal/input"
	"lifeview/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the cell under the pointer on top of the canvas.
type Overlay struct {
	viewport render.Viewport
	zoom     float64
	color    color.Color
}

// NewOverlay constructs an overlay for the canvas geometry and display zoom.
func NewOverlay(vp render.Viewport, zoom float64) *Overlay {
	if zoom <= 0 {
		zoom = 1
	}
	return &Overlay{viewport: vp, zoom: zoom, color: color.RGBA{R: 255, G: 120, B: 40, A: 200}}
}

// Draw outlines cell in screen space.
func (o *Overlay) Draw(screen *ebiten.Image, cell input.Cell) {
	origin := o.viewport.CellOrigin(cell.Row, cell.Col)
	x := float32(float64(origin.X-1) * o.zoom)
	y := float32(float64(origin.Y-1) * o.zoom)
	side := float32(float64(o.viewport.Pitch()+1) * o.zoom)
	vector.StrokeRect(screen, x, y, side, side, 1, o.color, false)
}
