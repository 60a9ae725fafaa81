//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	// HUDHeight is the height of the status strip below the canvas.
	HUDHeight = panelPadding*2 + lineHeight*3
	// MinWidth keeps the status text readable on small universes.
	MinWidth = 420

	panelPadding = 6
	lineHeight   = 16
	baseline     = 12
)

// HUD renders the status strip below the drawing surface.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width < MinWidth {
		width = MinWidth
	}
	return &HUD{width: width, panel: ebiten.NewImage(width, HUDHeight)}
}

// Draw paints the strip with its top edge at y.
func (h *HUD) Draw(screen *ebiten.Image, y int, s Status) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	for i, line := range s.Lines() {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 && s.Ticking {
			clr = color.RGBA{R: 120, G: 220, B: 140, A: 255}
		}
		if i == 2 {
			clr = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+baseline+i*lineHeight, clr)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}
