package render

import (
	"image"
	"image/color"

	"lifeview/internal/core"
)

// Palette holds the colors used to paint the grid.
type Palette struct {
	Grid  color.Color
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette returns light gray separators, black live cells and white
// dead cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Alive: color.RGBA{A: 0xff},
		Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Fill returns the fill color for a cell. Inversion swaps the two colors
// for display only.
func (p Palette) Fill(alive, inverted bool) color.Color {
	if alive != inverted {
		return p.Alive
	}
	return p.Dead
}

// Viewport describes the fixed geometry of the drawing surface.
type Viewport struct {
	CellSize int
	Grid     core.Size
}

// Pitch is the distance in pixels between the origins of adjacent cells.
func (v Viewport) Pitch() int { return v.CellSize + 1 }

// Bounds returns the pixel size of the surface: (CellSize+1)*count+1 on
// each axis.
func (v Viewport) Bounds() image.Point {
	return image.Pt(v.Pitch()*v.Grid.W+1, v.Pitch()*v.Grid.H+1)
}

// CellOrigin returns the top-left pixel of the fill area of (row, col).
func (v Viewport) CellOrigin(row, col int) image.Point {
	return image.Pt(col*v.Pitch()+1, row*v.Pitch()+1)
}
