//go:build !ebiten

package ui

// Overlay is a placeholder that satisfies the API expected by the GUI build.
type Overlay struct{}

// NewOverlay panics to indicate that the ebiten build tag is required.
func NewOverlay() *Overlay {
	panic("ui.NewOverlay requires building with the 'ebiten' tag")
}

// Update is a no-op placeholder.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (o *Overlay) Draw(any) {}
