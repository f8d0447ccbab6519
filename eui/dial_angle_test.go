package eui

import (
	"image"
	"math"
	"testing"
)

const angleEps = 1e-9

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestNormalizeAngleRange(t *testing.T) {
	for x := -fullTurn + 0.001; x < 2*fullTurn; x += 0.0137 {
		n := normalizeAngle(x)
		if n < 0 || n >= fullTurn {
			t.Fatalf("normalizeAngle(%v) = %v out of range", x, n)
		}
		if nn := normalizeAngle(n); nn != n {
			t.Fatalf("normalizeAngle not idempotent at %v: %v then %v", x, n, nn)
		}
	}
	if n := normalizeAngle(fullTurn); n != 0 {
		t.Fatalf("full turn should wrap to 0, got %v", n)
	}
	if n := normalizeAngle(-1e-18); n != 0 {
		t.Fatalf("tiny negative should wrap to 0, got %v", n)
	}
}

func TestAngleToCardinals(t *testing.T) {
	tests := []struct {
		dy, dx, want float64
	}{
		{0, 1, 0},
		{1, 0, math.Pi / 2},
		{0, -1, math.Pi},
		{-1, 0, 3 * math.Pi / 2},
		{1, 1, math.Pi / 4},
		{-1, 1, 7 * math.Pi / 4},
	}
	for _, tt := range tests {
		got := angleTo(tt.dy, tt.dx)
		if !near(got, tt.want, angleEps) {
			t.Errorf("angleTo(%v, %v) = %v, want %v", tt.dy, tt.dx, got, tt.want)
		}
		if got < 0 || got >= fullTurn {
			t.Errorf("angleTo(%v, %v) = %v out of range", tt.dy, tt.dx, got)
		}
	}
}

func TestAngularDistance(t *testing.T) {
	for a := 0.0; a < fullTurn; a += 0.31 {
		for b := 0.0; b < fullTurn; b += 0.29 {
			ab := angularDistance(a, b)
			ba := angularDistance(b, a)
			if !near(ab, ba, angleEps) {
				t.Fatalf("asymmetric distance for %v, %v: %v vs %v", a, b, ab, ba)
			}
			if ab < 0 || ab > math.Pi+angleEps {
				t.Fatalf("distance %v out of [0, π] for %v, %v", ab, a, b)
			}
		}
		if d := angularDistance(a, a); d != 0 {
			t.Fatalf("angularDistance(%v, %v) = %v", a, a, d)
		}
	}
	if d := angularDistance(0.1, fullTurn-0.1); !near(d, 0.2, angleEps) {
		t.Fatalf("distance across the seam = %v, want 0.2", d)
	}
}

func TestClosestHandle(t *testing.T) {
	tests := []struct {
		name               string
		alpha, beta, angle float64
		want               DialTarget
	}{
		{"near alpha", 0, math.Pi, 0.01, TargetAlpha},
		{"near beta", 0, math.Pi, math.Pi - 0.01, TargetBeta},
		{"tie goes to beta", 0, math.Pi, math.Pi / 2, TargetBeta},
		{"alpha across seam", 0.05, math.Pi, fullTurn - 0.05, TargetAlpha},
	}
	for _, tt := range tests {
		if got := closestHandle(tt.alpha, tt.beta, tt.angle); got != tt.want {
			t.Errorf("%s: closestHandle = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMinDistanceToEither(t *testing.T) {
	if d := minDistanceToEither(0, math.Pi, 0.2); !near(d, 0.2, angleEps) {
		t.Fatalf("got %v, want 0.2", d)
	}
	if d := minDistanceToEither(0, math.Pi, math.Pi+0.3); !near(d, 0.3, angleEps) {
		t.Fatalf("got %v, want 0.3", d)
	}
}

func TestWrapDelta(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.1, 0.1},
		{-0.1, -0.1},
		{fullTurn - 0.1, -0.1},
		{-(fullTurn - 0.1), 0.1},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := wrapDelta(tt.in); !near(got, tt.want, angleEps) {
			t.Errorf("wrapDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLayoutDial(t *testing.T) {
	tests := []struct {
		w, h, border int
		want         dialLayout
	}{
		{100, 100, 0, dialLayout{Size: 100}},
		{100, 60, 5, dialLayout{Size: 50, Origin: image.Pt(25, 5)}},
		{60, 100, 0, dialLayout{Size: 60, Origin: image.Pt(0, 20)}},
		{10, 10, 8, dialLayout{Size: 0, Origin: image.Pt(8, 8)}},
	}
	for _, tt := range tests {
		got := layoutDial(tt.w, tt.h, tt.border)
		if got.Size != tt.want.Size {
			t.Errorf("layoutDial(%d, %d, %d) size = %d, want %d", tt.w, tt.h, tt.border, got.Size, tt.want.Size)
		}
		if tt.want.Size > 0 && got.Origin != tt.want.Origin {
			t.Errorf("layoutDial(%d, %d, %d) origin = %v, want %v", tt.w, tt.h, tt.border, got.Origin, tt.want.Origin)
		}
	}
}
