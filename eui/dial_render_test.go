package eui

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestArcSweep(t *testing.T) {
	tests := []struct {
		a1, a2   float64
		negative bool
		want     float64
	}{
		{0, -math.Pi, true, -math.Pi},
		{0, -math.Pi, false, math.Pi},
		{-1, -0.5, true, -0.5 - fullTurn},
		{-1, -0.5, false, -0.5},
		{-1, -1, true, -1},
	}
	for _, tt := range tests {
		a1, a2 := arcSweep(tt.a1, tt.a2, tt.negative)
		if a1 != tt.a1 || !near(a2, tt.want, angleEps) {
			t.Errorf("arcSweep(%v, %v, %v) = %v, %v want %v", tt.a1, tt.a2, tt.negative, a1, a2, tt.want)
		}
	}
}

func TestArrowGeometry(t *testing.T) {
	g := arrowGeometry(100, 0, math.Pi, false)

	if g.Center != (vec2{X: 50, Y: 50}) {
		t.Fatalf("center = %+v", g.Center)
	}
	if g.ArcRadius != 15 {
		t.Fatalf("arc radius = %v, want 15", g.ArcRadius)
	}
	// Two arrows of three strokes each plus the tick.
	if len(g.Segments) != 7 {
		t.Fatalf("got %d segments, want 7", len(g.Segments))
	}
	if g.Segments[0][1] != (vec2{X: 100, Y: 50}) {
		t.Fatalf("alpha shaft ends at %+v", g.Segments[0][1])
	}
	if g.Segments[3][1] != (vec2{X: 0, Y: 50}) {
		t.Fatalf("beta shaft ends at %+v", g.Segments[3][1])
	}
	// Barbs of alpha: 40*cos(0.1), ∓40*sin(0.1) from the center.
	if g.Segments[1][1] != (vec2{X: 90, Y: 54}) || g.Segments[2][1] != (vec2{X: 90, Y: 46}) {
		t.Fatalf("alpha barbs end at %+v and %+v", g.Segments[1][1], g.Segments[2][1])
	}
	tick := g.Segments[6]
	if !near(tick[0].X, 35, 1e-9) || !near(tick[0].Y, 50, 1e-9) {
		t.Fatalf("tick starts at %+v", tick[0])
	}
	if tick[1] != (vec2{X: 35, Y: 40}) {
		t.Fatalf("counterclockwise tick ends at %+v", tick[1])
	}
	// Counterclockwise sweeps the upper half: screen angles -π..0.
	if !near(g.ArcStart, -math.Pi, angleEps) || !near(g.ArcEnd, 0, angleEps) {
		t.Fatalf("arc = %v..%v", g.ArcStart, g.ArcEnd)
	}

	cw := arrowGeometry(100, 0, math.Pi, true)
	if cw.Segments[6][1] != (vec2{X: 35, Y: 60}) {
		t.Fatalf("clockwise tick ends at %+v", cw.Segments[6][1])
	}
	if !near(cw.ArcStart, 0, angleEps) || !near(cw.ArcEnd, math.Pi, angleEps) {
		t.Fatalf("clockwise arc = %v..%v", cw.ArcStart, cw.ArcEnd)
	}
}

func TestArrowGeometryOddSize(t *testing.T) {
	g := arrowGeometry(101, 0, math.Pi, false)
	if g.Center != (vec2{X: 50, Y: 50}) {
		t.Fatalf("center = %+v, radius should truncate", g.Center)
	}
}

func TestBackgroundParallelMatchesSerial(t *testing.T) {
	const size = 80
	img := dialBackgroundImage(size)
	half := float64(size) / 2
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			dx, dy := float64(i)-half, float64(j)-half
			dist := math.Min(1, math.Sqrt((dx*dx+dy*dy)/(half*half)))
			r, g, b := dialBackground(angleTo(half-float64(j), float64(i)-half)/fullTurn, dist)
			got := img.RGBAAt(i, j)
			if got != (color.RGBA{R: r, G: g, B: b, A: 255}) {
				t.Fatalf("pixel %d,%d = %+v, want %d,%d,%d", i, j, got, r, g, b)
			}
		}
	}
	if c := img.RGBAAt(size/2, size/2); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("center = %+v, want white", c)
	}
	if c := img.RGBAAt(size-1, size/2); !(c.R > c.G && c.G == c.B) {
		t.Fatalf("east edge should be red-dominant, got %+v", c)
	}
}

func TestBackgroundZeroSize(t *testing.T) {
	if img := dialBackgroundImage(0); !img.Bounds().Empty() {
		t.Fatalf("zero size image has bounds %v", img.Bounds())
	}
}

func closeRGBA(a, b color.RGBA, tol int) bool {
	diff := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return diff(a.R, b.R) && diff(a.G, b.G) && diff(a.B, b.B) && diff(a.A, b.A)
}

func TestRenderImage(t *testing.T) {
	d := NewDial()
	d.SetAllocation(image.Rect(0, 0, 100, 100))
	img := d.RenderImage()
	bg := dialBackgroundImage(100)

	if c := img.RGBAAt(0, 0); c != (color.RGBA{}) {
		t.Fatalf("corner outside the circle painted: %+v", c)
	}
	// Lower half, away from both arrows, the arc and the tick.
	if c := img.RGBAAt(50, 85); !closeRGBA(c, bg.RGBAAt(50, 85), 1) {
		t.Fatalf("background pixel = %+v, want %+v", c, bg.RGBAAt(50, 85))
	}
	if c := img.RGBAAt(30, 70); c.A != 255 {
		t.Fatalf("inside pixel not opaque: %+v", c)
	}
	// On the alpha shaft.
	if c := img.RGBAAt(75, 49); closeRGBA(c, bg.RGBAAt(75, 49), 10) {
		t.Fatalf("arrow pixel %+v matches background %+v", c, bg.RGBAAt(75, 49))
	}
	if d.Dirty {
		t.Fatalf("render left the dial dirty")
	}
	if d.RenderCount != 1 {
		t.Fatalf("RenderCount = %d", d.RenderCount)
	}
}

func TestRenderImageBorder(t *testing.T) {
	d := NewDial()
	if err := d.SetBorderWidth(10); err != nil {
		t.Fatal(err)
	}
	d.SetAllocation(image.Rect(0, 0, 120, 100))
	img := d.RenderImage()

	// Square is 80×80 at (20, 10).
	if c := img.RGBAAt(15, 50); c != (color.RGBA{}) {
		t.Fatalf("pixel left of the square painted: %+v", c)
	}
	if c := img.RGBAAt(60, 80); c.A != 255 {
		t.Fatalf("pixel inside the wheel not opaque: %+v", c)
	}
}

func TestDrawAtAllocation(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 200))
	d := NewDial()
	d.SetAllocation(image.Rect(30, 40, 130, 140))
	d.Draw(dst)

	if c := dst.RGBAAt(10, 10); c != (color.RGBA{}) {
		t.Fatalf("pixel outside the allocation painted: %+v", c)
	}
	if c := dst.RGBAAt(80, 125); c.A != 255 {
		t.Fatalf("pixel inside the wheel not opaque: %+v", c)
	}
}

func TestDrawClipsToDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	d := NewDial()
	d.SetAllocation(image.Rect(20, 20, 120, 120))
	d.Draw(dst)
	if c := dst.RGBAAt(59, 59); c.A != 255 {
		t.Fatalf("visible part of the wheel not drawn: %+v", c)
	}
}
