package eui

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// strokePad is how far the widest stroke can reach past the dial square.
const strokePad = 2

var (
	dialHighlight = image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 153})
	dialOutline   = image.NewUniform(color.NRGBA{A: 204})
)

// dialArrows is the overlay geometry in square-local pixel coordinates.
type dialArrows struct {
	Segments [][2]vec2
	Center   vec2
	// ArcRadius is both the arc radius and the distance of the tick from
	// the center.
	ArcRadius float64
	// ArcStart and ArcEnd are screen angles (y down) with ArcStart <= ArcEnd
	// after the sweep direction has been resolved.
	ArcStart, ArcEnd float64
}

// roundC rounds halves up, truncating toward zero after the shift.
func roundC(v float64) float64 { return float64(int(v + 0.5)) }

// arrowGeometry lays out both arrows, the direction tick and the arc for a
// dial of the given diameter.
func arrowGeometry(size int, alpha, beta float64, clockwise bool) dialArrows {
	radius := float64(int(float64(size) / 2))
	dist := float64(int(radius * dialEachOrBoth))
	direction := 1.0
	if clockwise {
		direction = -1
	}
	center := vec2{X: radius, Y: radius}

	var segs [][2]vec2
	for _, th := range []float64{alpha, beta} {
		rim := vec2{X: radius + radius*math.Cos(th), Y: radius - radius*math.Sin(th)}
		segs = append(segs, [2]vec2{center, {X: roundC(rim.X), Y: roundC(rim.Y)}})
		for _, off := range []float64{-dialBarbSpread, dialBarbSpread} {
			barb := vec2{
				X: roundC(radius + radius*dialBarbLength*math.Cos(th+off)),
				Y: roundC(radius - radius*dialBarbLength*math.Sin(th+off)),
			}
			segs = append(segs, [2]vec2{rim, barb})
		}
	}

	tick := vec2{X: radius + dist*math.Cos(beta), Y: radius - dist*math.Sin(beta)}
	segs = append(segs, [2]vec2{tick, {
		X: roundC(tick.X + direction*dialTickLength*math.Sin(beta)),
		Y: roundC(tick.Y + direction*dialTickLength*math.Cos(beta)),
	}})

	start, end := arcSweep(-alpha, -beta, !clockwise)
	if start > end {
		start, end = end, start
	}
	return dialArrows{
		Segments:  segs,
		Center:    center,
		ArcRadius: dist,
		ArcStart:  start,
		ArcEnd:    end,
	}
}

// arcSweep resolves the end angle the way a path arc does: a positive arc
// advances a2 until it is not below a1, a negative arc pulls it back until
// it is not above a1.
func arcSweep(a1, a2 float64, negative bool) (float64, float64) {
	if negative {
		for a2 > a1 {
			a2 -= fullTurn
		}
	} else {
		for a2 < a1 {
			a2 += fullTurn
		}
	}
	return a1, a2
}

// dialBackgroundImage fills a size×size opaque HSV wheel. Rows are
// independent and computed in parallel.
func dialBackgroundImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if size == 0 {
		return img
	}
	half := float64(size) / 2
	norm := half * half

	row := func(j int) {
		p := img.Pix[j*img.Stride:]
		for i := 0; i < size; i++ {
			dx := float64(i) - half
			dy := float64(j) - half
			distance := math.Min(1, math.Sqrt((dx*dx+dy*dy)/norm))
			angle := angleTo(half-float64(j), float64(i)-half) / fullTurn
			r, g, b := dialBackground(angle, distance)
			p[i*4+0] = r
			p[i*4+1] = g
			p[i*4+2] = b
			p[i*4+3] = 0xff
		}
	}

	if size < 64 {
		for j := 0; j < size; j++ {
			row(j)
		}
		return img
	}
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for j := 0; j < size; j++ {
		wg.Add()
		go func(j int) {
			defer wg.Done()
			row(j)
		}(j)
	}
	wg.Wait()
	return img
}

// Draw paints the dial into dst at its allocation.
func (d *Dial) Draw(dst draw.Image) {
	l := layoutDial(d.allocation.Dx(), d.allocation.Dy(), d.borderWidth)
	drawDial(dst, d.allocation.Min.Add(l.Origin), l.Size, d.alpha, d.beta, d.clockwise)
	d.Dirty = false
	d.RenderCount++
}

// RenderImage draws the dial into a new image the size of its allocation.
// The image origin is the allocation's top-left corner.
func (d *Dial) RenderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.allocation.Dx(), d.allocation.Dy()))
	l := layoutDial(d.allocation.Dx(), d.allocation.Dy(), d.borderWidth)
	drawDial(img, l.Origin, l.Size, d.alpha, d.beta, d.clockwise)
	d.Dirty = false
	d.RenderCount++
	return img
}

// drawDial paints a size×size dial with its top-left corner at origin.
func drawDial(dst draw.Image, origin image.Point, size int, alpha, beta float64, clockwise bool) {
	if size <= 0 {
		return
	}
	square := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
	clip := dst.Bounds()

	if c := newCanvas(square, clip, origin); c != nil {
		bg := dialBackgroundImage(size)
		c.circle(vec2{X: float64(size) / 2, Y: float64(size) / 2}, float64(size)/2)
		c.paint(dst, bg, origin)
	}

	arrows := arrowGeometry(size, alpha, beta, clockwise)
	for _, pass := range []struct {
		width float64
		src   *image.Uniform
	}{
		{3, dialHighlight},
		{1, dialOutline},
	} {
		c := newCanvas(square.Inset(-strokePad), clip, origin)
		if c == nil {
			return
		}
		for _, s := range arrows.Segments {
			c.strokeSegment(s[0], s[1], pass.width)
		}
		c.strokeArc(arrows.Center, arrows.ArcRadius, arrows.ArcStart, arrows.ArcEnd, pass.width)
		c.paint(dst, pass.src, origin)
	}
}
