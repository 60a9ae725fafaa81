//go:build !ebiten

package ui

const (
	// HUDHeight is zero in the headless build.
	HUDHeight = 0
	// MinWidth is zero in the headless build.
	MinWidth = 0
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, Status) {}
