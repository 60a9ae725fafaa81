package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

type segment struct {
	x0, y0, x1, y1 float64
}

// ImageSurface paints onto an in-memory RGBA image. It backs headless
// snapshots and tests.
type ImageSurface struct {
	img  *image.RGBA
	path []segment
	penX float64
	penY float64
}

// NewImageSurface allocates a transparent surface of the given pixel size.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() { s.path = s.path[:0] }

// MoveTo starts a new subpath at (x, y).
func (s *ImageSurface) MoveTo(x, y float64) { s.penX, s.penY = x, y }

// LineTo adds a segment from the pen position to (x, y).
func (s *ImageSurface) LineTo(x, y float64) {
	s.path = append(s.path, segment{x0: s.penX, y0: s.penY, x1: x, y1: y})
	s.penX, s.penY = x, y
}

// Stroke rasterizes every segment of the path one pixel wide.
func (s *ImageSurface) Stroke(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for _, seg := range s.path {
		dx, dy := seg.x1-seg.x0, seg.y1-seg.y0
		steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
		if steps == 0 {
			s.setPixel(int(math.Floor(seg.x0)), int(math.Floor(seg.y0)), rgba)
			continue
		}
		for i := 0; i < steps; i++ {
			t := float64(i) / float64(steps)
			s.setPixel(int(math.Floor(seg.x0+dx*t)), int(math.Floor(seg.y0+dy*t)), rgba)
		}
	}
}

// FillRect fills the pixels covered by the rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Floor(x+w)), int(math.Floor(y+h))).Intersect(s.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			s.setPixel(px, py, rgba)
		}
	}
}

// WritePNG encodes the surface as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *ImageSurface) setPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	base := s.img.PixOffset(x, y)
	s.img.Pix[base+0] = c.R
	s.img.Pix[base+1] = c.G
	s.img.Pix[base+2] = c.B
	s.img.Pix[base+3] = c.A
}
