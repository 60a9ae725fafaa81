//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface paints onto an offscreen ebiten image. The image keeps its
// pixels between frames, like a canvas element.
type EbitenSurface struct {
	img  *ebiten.Image
	path []segment
	penX float64
	penY float64
}

// NewEbitenSurface allocates a surface of w*h pixels.
func NewEbitenSurface(w, h int) *EbitenSurface {
	return &EbitenSurface{img: ebiten.NewImage(w, h)}
}

// Image exposes the offscreen image so hosts can blit it.
func (s *EbitenSurface) Image() *ebiten.Image { return s.img }

// Size returns the dimensions of the underlying image.
func (s *EbitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// BeginPath discards the current path.
func (s *EbitenSurface) BeginPath() { s.path = s.path[:0] }

// MoveTo starts a new subpath at (x, y).
func (s *EbitenSurface) MoveTo(x, y float64) { s.penX, s.penY = x, y }

// LineTo adds a segment from the pen position to (x, y).
func (s *EbitenSurface) LineTo(x, y float64) {
	s.path = append(s.path, segment{x0: s.penX, y0: s.penY, x1: x, y1: y})
	s.penX, s.penY = x, y
}

// Stroke draws the path segments one pixel wide.
func (s *EbitenSurface) Stroke(c color.Color) {
	for _, seg := range s.path {
		vector.StrokeLine(s.img, float32(seg.x0), float32(seg.y0), float32(seg.x1), float32(seg.y1), 1, c, false)
	}
}

// FillRect fills an axis-aligned rectangle.
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}
