package eui

import "math"

// hsvToRGB converts hue, saturation and value in [0,1] to 8-bit RGB using
// the six-sector model. A hue of exactly 1 wraps to red.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	if s == 0 {
		c := round8(v)
		return c, c, c
	}
	h *= 6
	if h >= 6 {
		h = 0
	}
	sector := int(h)
	f := h - float64(sector)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch sector {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return round8(rf), round8(gf), round8(bf)
}

// dialBackground is the wheel color for an angle fraction and a distance
// fraction from the center. Saturation grows outward while value dims
// slightly toward the rim.
func dialBackground(angle, distance float64) (r, g, b uint8) {
	v := 1 - math.Sqrt(distance)/4
	return hsvToRGB(angle, distance, v)
}

func round8(v float64) uint8 {
	return uint8(clamp(v*255+0.5, 0, 255))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
