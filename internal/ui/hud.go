//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 6
)

// HUD renders a read-only panel of map facts in the top-left corner: view
// name, seed, metrics and the parameter snapshot. The grid is immutable
// after generation, so the HUD never mutates anything.
type HUD struct {
	lines   []string
	visible bool
	pixel   *ebiten.Image
}

// NewHUD constructs a visible HUD with no content yet.
func NewHUD() *HUD {
	h := &HUD{visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// SetLines replaces the HUD content.
func (h *HUD) SetLines(lines []string) {
	h.lines = lines
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw paints the panel onto the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible || len(h.lines) == 0 {
		return
	}

	width := 0
	for _, line := range h.lines {
		if w := len(line) * 7; w > width {
			width = w
		}
	}
	height := len(h.lines)*hudLineHeight + hudPadding*2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+hudPadding*2), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 180})
	screen.DrawImage(h.pixel, op)

	y := hudPadding + hudLineHeight - 3
	for _, line := range h.lines {
		text.Draw(screen, line, basicfont.Face7x13, hudPadding, y, color.White)
		y += hudLineHeight
	}
}
