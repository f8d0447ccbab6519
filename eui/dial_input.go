package eui

import (
	"math"
	"time"
)

// PointerButton identifies the button of a press or release.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonMiddle
	ButtonSecondary
)

// Modifier is a bit set of keyboard modifiers held during a pointer event.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// PointerEvent is a press, release or motion in screen coordinates.
type PointerEvent struct {
	X, Y      float64
	Button    PointerButton
	Modifiers Modifier
	Time      time.Time
}

// pointerAngle converts a screen position to an angle around the
// allocation center, along with its distance from that center.
func (d *Dial) pointerAngle(ev PointerEvent) (angle, dist float64) {
	cx := float64(d.allocation.Dx()) / 2
	cy := float64(d.allocation.Dy()) / 2
	x := ev.X - float64(d.allocation.Min.X)
	y := ev.Y - float64(d.allocation.Min.Y)
	angle = normalizeAngle(angleTo(cy-y, x-cx))
	dist = math.Sqrt((y-cy)*(y-cy) + (x-cx)*(x-cx))
	return angle, dist
}

// ButtonPress starts a drag. A primary press takes the grab and picks the
// target: a press away from the center and within 15° of a handle grabs that
// handle and snaps it under the pointer, anything else rotates both.
// A secondary press is a context-menu request and skips the geometry.
func (d *Dial) ButtonPress(ev PointerEvent, grab *Grab) {
	switch ev.Button {
	case ButtonSecondary:
		d.pressModifiers = 0
		d.emit(EventDialContext, 0)
		return
	case ButtonPrimary:
	default:
		return
	}
	if !grab.Acquire(d) {
		return
	}

	l := layoutDial(d.allocation.Dx(), d.allocation.Dy(), d.borderWidth)

	d.hasGrab = true
	d.pressModifiers = ev.Modifiers
	d.pressTime = ev.Time

	angle, dist := d.pointerAngle(ev)
	d.pressAngle = angle

	if dist > l.radius()*dialEachOrBoth &&
		minDistanceToEither(d.alpha, d.beta, angle) < dialGrabProximity {
		d.target = closestHandle(d.alpha, d.beta, angle)
		d.emit(EventDialGrab, 0)
		if d.target == TargetAlpha {
			d.setAngles(angle, d.beta, 0)
		} else {
			d.setAngles(d.alpha, angle, 0)
		}
		return
	}
	d.target = TargetBoth
	d.emit(EventDialGrab, 0)
}

// Motion continues a drag. It is ignored unless d holds the grab.
//
// The step is the raw difference between successive pointer angles. Across
// the 0/2π seam it is off by a full turn, which normalizeAngle absorbs when
// both handles rotate together.
func (d *Dial) Motion(ev PointerEvent, grab *Grab) {
	if !d.hasGrab || !grab.Held(d) {
		return
	}
	angle, _ := d.pointerAngle(ev)

	delta := angle - d.pressAngle
	d.pressAngle = angle

	if delta == 0 {
		return
	}
	switch d.target {
	case TargetAlpha:
		d.setAngles(angle, d.beta, delta)
	case TargetBeta:
		d.setAngles(d.alpha, angle, delta)
	default:
		d.setAngles(normalizeAngle(d.alpha+delta), normalizeAngle(d.beta+delta), delta)
	}
}

// ButtonRelease ends a drag on primary release.
func (d *Dial) ButtonRelease(ev PointerEvent, grab *Grab) {
	if ev.Button != ButtonPrimary {
		return
	}
	d.endDrag(grab, ev.Time)
}

// Unmap drops a held grab so a dial removed mid-drag cannot keep the
// pointer captured.
func (d *Dial) Unmap(grab *Grab) {
	if d.hasGrab {
		d.endDrag(grab, time.Time{})
	}
}

func (d *Dial) endDrag(grab *Grab, at time.Time) {
	grab.Release(d)
	if !d.hasGrab {
		return
	}
	d.hasGrab = false
	if d.Handler == nil {
		return
	}
	ev := UIEvent{
		Dial:      d,
		Type:      EventDialRelease,
		Target:    d.target,
		Alpha:     d.alpha,
		Beta:      d.beta,
		Clockwise: d.clockwise,
		Modifiers: d.pressModifiers,
	}
	if !at.IsZero() && !d.pressTime.IsZero() {
		ev.Duration = at.Sub(d.pressTime)
	}
	d.Handler.Emit(ev)
}
