//go:build !ebiten

package ui

// HUD is a placeholder that satisfies the API expected by the GUI build.
type HUD struct{}

// NewHUD panics to indicate that the ebiten build tag is required.
func NewHUD() *HUD {
	panic("ui.NewHUD requires building with the 'ebiten' tag")
}

// SetLines is a no-op placeholder.
func (h *HUD) SetLines([]string) {}

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any) {}
