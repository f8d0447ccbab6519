package eui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// UpdateDials routes this frame's pointer input to the dials. Presses go to
// the topmost dial under the pointer (later dials are on top); motion and
// release go to whichever dial holds grab.
func UpdateDials(grab *Grab, dials ...*Dial) {
	if owner := grab.Owner(); owner != nil {
		if pointerPressed() {
			owner.Motion(pointerEvent(ButtonPrimary), grab)
		}
		if pointerJustReleased() || !pointerPressed() {
			owner.ButtonRelease(pointerEvent(ButtonPrimary), grab)
		}
		return
	}

	x, y := PointerPosition()
	var hit *Dial
	for i := len(dials) - 1; i >= 0; i-- {
		if dials[i] != nil && dials[i].Contains(x, y) {
			hit = dials[i]
			break
		}
	}
	if hit == nil {
		return
	}
	switch {
	case contextJustPressed():
		hit.ButtonPress(pointerEvent(ButtonSecondary), grab)
	case pointerJustPressed():
		hit.ButtonPress(pointerEvent(ButtonPrimary), grab)
	default:
		if wy := pointerWheel(); wy != 0 {
			hit.Rotate(wy * wheelStep)
		}
	}
}

// DrawDial paints d onto screen at its allocation. The dial is rasterized
// again only when it is dirty or its allocation changed size.
func DrawDial(screen *ebiten.Image, d *Dial) {
	w, h := d.allocation.Dx(), d.allocation.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if d.Render == nil || d.Render.Bounds().Dx() != w || d.Render.Bounds().Dy() != h {
		if d.Render != nil {
			d.Render.Deallocate()
		}
		d.Render = newImage(w, h)
		d.Dirty = true
	}
	if d.Dirty {
		d.Render.WritePixels(d.RenderImage().Pix)
	}
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest, DisableMipmaps: true}
	op.GeoM.Translate(float64(d.allocation.Min.X), float64(d.allocation.Min.Y))
	screen.DrawImage(d.Render, op)
}
