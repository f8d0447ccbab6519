package eui

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// canvas accumulates filled polygons for one draw call. Coordinates are
// relative to origin; the rasterizer covers rect, which may start before
// origin to leave room for strokes that spill past the square.
type canvas struct {
	z      *vector.Rasterizer
	rect   image.Rectangle
	origin image.Point
}

// newCanvas covers area (in dst coordinates) clipped to clip. Returns nil
// when nothing is visible.
func newCanvas(area, clip image.Rectangle, origin image.Point) *canvas {
	r := area.Intersect(clip)
	if r.Empty() {
		return nil
	}
	return &canvas{
		z:      vector.NewRasterizer(r.Dx(), r.Dy()),
		rect:   r,
		origin: origin,
	}
}

func (c *canvas) pt(p vec2) (float32, float32) {
	return float32(p.X + float64(c.origin.X-c.rect.Min.X)),
		float32(p.Y + float64(c.origin.Y-c.rect.Min.Y))
}

// polygon adds a closed polygon. Every polygon is emitted with the same
// winding so overlapping strokes merge instead of cancelling.
func (c *canvas) polygon(pts []vec2) {
	if len(pts) < 3 {
		return
	}
	var area float64
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if area == 0 {
		return
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	c.z.MoveTo(c.pt(pts[0]))
	for _, p := range pts[1:] {
		c.z.LineTo(c.pt(p))
	}
	c.z.ClosePath()
}

// strokeSegment adds a butt-capped line of the given width.
func (c *canvas) strokeSegment(a, b vec2, width float64) {
	d := b.sub(a)
	l := d.len()
	if l < 1e-9 {
		return
	}
	n := vec2{X: -d.Y / l * width / 2, Y: d.X / l * width / 2}
	c.polygon([]vec2{a.add(n), b.add(n), b.sub(n), a.sub(n)})
}

// strokeArc adds a butt-capped circular arc between two screen angles.
func (c *canvas) strokeArc(center vec2, radius, start, end, width float64) {
	if start > end {
		start, end = end, start
	}
	sweep := end - start
	if sweep <= 0 || radius <= 0 {
		return
	}
	outer := radius + width/2
	inner := math.Max(radius-width/2, 0)
	steps := int(math.Ceil(sweep * outer / 2))
	if steps < 8 {
		steps = 8
	}
	pts := make([]vec2, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		pts = append(pts, center.add(polar(outer, a)))
	}
	for i := steps; i >= 0; i-- {
		a := start + sweep*float64(i)/float64(steps)
		pts = append(pts, center.add(polar(inner, a)))
	}
	c.polygon(pts)
}

// circle adds a filled circle built from four cubic curves.
func (c *canvas) circle(center vec2, r float64) {
	k := r * kappa
	c.z.MoveTo(c.pt(vec2{center.X + r, center.Y}))
	c.z.CubeTo(pt3(c, vec2{center.X + r, center.Y + k}, vec2{center.X + k, center.Y + r}, vec2{center.X, center.Y + r}))
	c.z.CubeTo(pt3(c, vec2{center.X - k, center.Y + r}, vec2{center.X - r, center.Y + k}, vec2{center.X - r, center.Y}))
	c.z.CubeTo(pt3(c, vec2{center.X - r, center.Y - k}, vec2{center.X - k, center.Y - r}, vec2{center.X, center.Y - r}))
	c.z.CubeTo(pt3(c, vec2{center.X + k, center.Y - r}, vec2{center.X + r, center.Y - k}, vec2{center.X + r, center.Y}))
	c.z.ClosePath()
}

func pt3(c *canvas, a, b, d vec2) (float32, float32, float32, float32, float32, float32) {
	ax, ay := c.pt(a)
	bx, by := c.pt(b)
	dx, dy := c.pt(d)
	return ax, ay, bx, by, dx, dy
}

// paint composites src through the accumulated coverage. srcOrigin is the
// dst point that src's bounds minimum lines up with.
func (c *canvas) paint(dst draw.Image, src image.Image, srcOrigin image.Point) {
	c.z.DrawOp = draw.Over
	sp := src.Bounds().Min.Add(c.rect.Min.Sub(srcOrigin))
	c.z.Draw(dst, c.rect, src, sp)
}

// vec2 is a point in float pixel space.
type vec2 struct {
	X, Y float64
}

func (a vec2) add(b vec2) vec2 { return vec2{X: a.X + b.X, Y: a.Y + b.Y} }
func (a vec2) sub(b vec2) vec2 { return vec2{X: a.X - b.X, Y: a.Y - b.Y} }
func (a vec2) len() float64    { return math.Hypot(a.X, a.Y) }

func polar(r, a float64) vec2 {
	return vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}
}
