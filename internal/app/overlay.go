//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a single status line over the simulation view.
type Overlay struct {
	fg color.RGBA
}

// NewOverlay returns an Overlay with the default text color.
func NewOverlay() *Overlay {
	return &Overlay{fg: color.RGBA{R: 200, G: 200, B: 210, A: 255}}
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, status string) {
	if status == "" {
		return
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, o.fg)
}
