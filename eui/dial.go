package eui

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrOutOfRange is returned by dial setters given a value outside the
// property's bounds.
var ErrOutOfRange = errors.New("value out of range")

// Dial is a round widget with two angular handles over an HSV wheel.
// Angles are radians measured counterclockwise from the positive x axis.
type Dial struct {
	alpha       float64
	beta        float64
	clockwise   bool
	borderWidth int

	// allocation is the host-assigned area in screen coordinates.
	allocation image.Rectangle

	target         DialTarget
	pressAngle     float64
	pressModifiers Modifier
	pressTime      time.Time
	hasGrab        bool

	// WrapDelta reports drag deltas wrapped into (-π, π] on change events.
	// Handle positions are identical either way.
	WrapDelta bool

	Handler *EventHandler

	// OnRedraw runs whenever the dial needs repainting.
	OnRedraw func()
	// OnRelayout runs when the requested size changes.
	OnRelayout func()

	// Dirty is set by every visual change and cleared by the renderer.
	Dirty bool

	// Render caches the last uploaded frame for the ebiten adapter.
	Render *ebiten.Image
	// RenderCount tracks how often the dial has been rasterized.
	RenderCount int
}

// NewDial returns a dial with alpha 0, beta π and counterclockwise sweep.
func NewDial() *Dial {
	return &Dial{
		beta:  math.Pi,
		Dirty: true,
	}
}

func (d *Dial) Alpha() float64   { return d.alpha }
func (d *Dial) Beta() float64    { return d.beta }
func (d *Dial) Clockwise() bool  { return d.clockwise }
func (d *Dial) BorderWidth() int { return d.borderWidth }

// Target returns the handle being dragged. The second result is false when
// no drag is in progress.
func (d *Dial) Target() (DialTarget, bool) {
	return d.target, d.hasGrab
}

// PressModifiers returns the modifier state captured by the last press.
func (d *Dial) PressModifiers() Modifier { return d.pressModifiers }

// SetAlpha moves the first handle. Valid values are [0, 2π].
func (d *Dial) SetAlpha(a float64) error {
	if err := checkAngle("alpha", a); err != nil {
		return err
	}
	d.setAngles(a, d.beta, 0)
	return nil
}

// SetBeta moves the second handle. Valid values are [0, 2π].
func (d *Dial) SetBeta(b float64) error {
	if err := checkAngle("beta", b); err != nil {
		return err
	}
	d.setAngles(d.alpha, b, 0)
	return nil
}

// SetClockwise selects the sweep direction of the arc and tick.
func (d *Dial) SetClockwise(cw bool) {
	if d.clockwise == cw {
		return
	}
	d.clockwise = cw
	d.changed(0)
}

// SetBorderWidth changes the inset around the wheel. Valid values are
// [0, MaxDialBorder].
func (d *Dial) SetBorderWidth(w int) error {
	if w < 0 || w > MaxDialBorder {
		return fmt.Errorf("border-width %d: %w", w, ErrOutOfRange)
	}
	if d.borderWidth == w {
		return nil
	}
	d.borderWidth = w
	d.markDirty()
	if d.OnRelayout != nil {
		d.OnRelayout()
	}
	return nil
}

// SizeRequest returns the preferred width and height.
func (d *Dial) SizeRequest() (int, int) {
	s := 2*d.borderWidth + dialBaseSize
	return s, s
}

// SetAllocation assigns the screen area the dial draws into and receives
// pointer input from.
func (d *Dial) SetAllocation(r image.Rectangle) {
	r = r.Canon()
	if d.allocation == r {
		return
	}
	if d.allocation.Dx() != r.Dx() || d.allocation.Dy() != r.Dy() {
		d.markDirty()
	}
	d.allocation = r
}

// Allocation returns the area set by SetAllocation.
func (d *Dial) Allocation() image.Rectangle { return d.allocation }

// Contains reports whether the screen point lies in the allocation.
func (d *Dial) Contains(x, y int) bool {
	return image.Pt(x, y).In(d.allocation)
}

// Rotate turns both handles by delta radians, keeping their offset.
func (d *Dial) Rotate(delta float64) {
	if delta == 0 {
		return
	}
	delta = math.Mod(delta, fullTurn)
	d.setAngles(normalizeAngle(d.alpha+delta), normalizeAngle(d.beta+delta), delta)
}

func checkAngle(name string, a float64) error {
	if math.IsNaN(a) || a < 0 || a > fullTurn {
		return fmt.Errorf("%s %g: %w", name, a, ErrOutOfRange)
	}
	return nil
}

func (d *Dial) setAngles(alpha, beta, delta float64) {
	if d.alpha == alpha && d.beta == beta {
		return
	}
	d.alpha, d.beta = alpha, beta
	d.changed(delta)
}

func (d *Dial) changed(delta float64) {
	d.markDirty()
	if d.WrapDelta {
		delta = wrapDelta(delta)
	}
	d.emit(EventDialChanged, delta)
}

func (d *Dial) emit(t UIEventType, delta float64) {
	if d.Handler == nil {
		return
	}
	d.Handler.Emit(UIEvent{
		Dial:      d,
		Type:      t,
		Target:    d.target,
		Alpha:     d.alpha,
		Beta:      d.beta,
		Clockwise: d.clockwise,
		Delta:     delta,
		Modifiers: d.pressModifiers,
	})
}

func (d *Dial) markDirty() {
	d.Dirty = true
	if d.OnRedraw != nil {
		d.OnRedraw()
	}
}
