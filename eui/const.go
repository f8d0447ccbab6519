package eui

import "math"

const (
	// dialBarbLength is the fraction of the radius where arrow barbs end.
	dialBarbLength = 0.8
	// dialBarbSpread is the angular offset in radians of each barb.
	dialBarbSpread = 0.1
	// dialTickLength is the length in pixels of the direction tick on beta.
	dialTickLength = 10

	// dialEachOrBoth is the fraction of the radius inside which a press
	// always rotates both handles. The arc and tick are drawn at the same
	// fraction.
	dialEachOrBoth = 0.3

	// dialGrabProximity is how close, in radians, a press must land to a
	// handle to grab it alone.
	dialGrabProximity = math.Pi / 12

	// dialBaseSize is the requested diameter before borders are added.
	dialBaseSize = 96

	// MaxDialBorder bounds the border width property.
	MaxDialBorder = 64

	fullTurn = 2 * math.Pi
)
