//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var helpLines = []string{
	"terramap viewer",
	"",
	"1-6    select view",
	"Tab    cycle views",
	"R      regenerate (same seed)",
	"S      reseed from the clock",
	"H      toggle HUD",
	"F1     toggle this help",
	"Q/Esc  quit",
}

// Overlay draws the keybinding help on top of the map view.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden help overlay.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the help toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.visible = !o.visible
	}
}

// Draw paints the help panel centered near the top of the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}

	width := 0
	for _, line := range helpLines {
		if w := len(line) * 7; w > width {
			width = w
		}
	}
	height := len(helpLines)*hudLineHeight + hudPadding*2

	bounds := screen.Bounds()
	x := (bounds.Dx() - width - hudPadding*2) / 2
	if x < 0 {
		x = 0
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+hudPadding*2), float64(height))
	op.GeoM.Translate(float64(x), 40)
	op.ColorScale.ScaleWithColor(color.RGBA{A: 210})
	screen.DrawImage(o.pixel, op)

	y := 40 + hudPadding + hudLineHeight - 3
	for _, line := range helpLines {
		text.Draw(screen, line, basicfont.Face7x13, x+hudPadding, y, color.White)
		y += hudLineHeight
	}
}
