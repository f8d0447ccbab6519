package eui

import (
	"image"
	"math"
)

// DialTarget names the handle or handles a drag gesture controls.
type DialTarget int

const (
	TargetAlpha DialTarget = iota
	TargetBeta
	TargetBoth
)

func (t DialTarget) String() string {
	switch t {
	case TargetAlpha:
		return "alpha"
	case TargetBeta:
		return "beta"
	case TargetBoth:
		return "both"
	}
	return "unknown"
}

// normalizeAngle wraps an angle by at most one turn into [0, 2π).
// Inputs further than one turn out of range are not fully reduced.
func normalizeAngle(angle float64) float64 {
	if angle < 0 {
		angle += fullTurn
	} else if angle >= fullTurn {
		angle -= fullTurn
	}
	// A tiny negative input rounds up to a full turn.
	if angle >= fullTurn {
		return 0
	}
	return angle
}

// angleTo returns the direction of (dx, dy) in [0, 2π) with y pointing up.
func angleTo(dy, dx float64) float64 {
	a := math.Atan2(dy, dx)
	if a < 0 {
		return a + fullTurn
	}
	return a
}

// angularDistance is the shorter rotation between two normalized angles.
func angularDistance(a, b float64) float64 {
	d := normalizeAngle(a - b)
	return math.Min(d, fullTurn-d)
}

// closestHandle picks the handle nearer to angle. Equal distances pick beta.
func closestHandle(alpha, beta, angle float64) DialTarget {
	if angularDistance(alpha, angle)-angularDistance(beta, angle) < 0 {
		return TargetAlpha
	}
	return TargetBeta
}

func minDistanceToEither(alpha, beta, angle float64) float64 {
	return math.Min(angularDistance(alpha, angle), angularDistance(beta, angle))
}

// wrapDelta maps a raw angle difference into (-π, π].
func wrapDelta(d float64) float64 {
	d = math.Mod(d, fullTurn)
	if d <= -math.Pi {
		d += fullTurn
	} else if d > math.Pi {
		d -= fullTurn
	}
	return d
}

// dialLayout is the square the dial occupies inside its allocation.
type dialLayout struct {
	// Size is the diameter in pixels, never negative.
	Size int
	// Origin is the top-left of the square relative to the allocation.
	Origin image.Point
}

func (l dialLayout) radius() float64 { return float64(l.Size) / 2 }

// layoutDial centers the largest square that fits inside w×h minus the border.
func layoutDial(w, h, border int) dialLayout {
	size := min(w, h) - 2*border
	if size < 0 {
		size = 0
	}
	return dialLayout{
		Size: size,
		Origin: image.Point{
			X: border + (w-2*border-size)/2,
			Y: border + (h-2*border-size)/2,
		},
	}
}
