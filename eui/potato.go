package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var potatoMode bool

// SetPotatoMode toggles creation of unmanaged ebiten images for dial frames.
func SetPotatoMode(v bool) {
	potatoMode = v
}

func newImage(w, h int) *ebiten.Image {
	if potatoMode {
		return ebiten.NewImageWithOptions(image.Rect(0, 0, w, h), &ebiten.NewImageOptions{Unmanaged: true})
	}
	return ebiten.NewImage(w, h)
}
