package eui

import (
	"math"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

var (
	isWasm       = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	wheelLimiter = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

// wheelStep is the rotation in radians applied per wheel notch.
const wheelStep = math.Pi / 180

// PointerPosition returns the current pointer position in screen pixels.
// If a touch is active, the first touch is used; otherwise the mouse cursor
// position is returned.
func PointerPosition() (int, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// pointerWheel returns the vertical wheel delta.
func pointerWheel() float64 {
	_, wy := ebiten.Wheel()
	if isWasm && wy != 0 {
		if !wheelLimiter.Allow() {
			return 0
		}
		// Browsers report pixel deltas; keep one notch per event.
		if wy > 0 {
			wy = 1
		} else {
			wy = -1
		}
	}
	return wy
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

// pointerJustReleased reports whether the primary pointer was just lifted.
func pointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButton0)
}

// pointerPressed reports whether the primary pointer is currently pressed.
func pointerPressed() bool {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 1 {
		return false
	}
	if len(ids) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

// contextJustPressed reports a context-menu request: a right click, or a
// ctrl-click on macOS.
func contextJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return true
	}
	return runtime.GOOS == "darwin" &&
		ebiten.IsKeyPressed(ebiten.KeyControl) &&
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

func pointerModifiers() Modifier {
	var m Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ModMeta
	}
	return m
}

func pointerEvent(b PointerButton) PointerEvent {
	x, y := PointerPosition()
	return PointerEvent{
		X:         float64(x),
		Y:         float64(y),
		Button:    b,
		Modifiers: pointerModifiers(),
		Time:      time.Now(),
	}
}
