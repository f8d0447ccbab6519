package eui

// Grab is an exclusive claim on pointer routing. The host owns one Grab and
// passes it to every dial; while a dial holds it, the host delivers motion
// to that dial only, even when the pointer leaves its allocation.
type Grab struct {
	owner *Dial
}

// Acquire gives the grab to d. It fails when another dial holds it.
func (g *Grab) Acquire(d *Dial) bool {
	if g == nil || d == nil {
		return false
	}
	if g.owner != nil && g.owner != d {
		return false
	}
	g.owner = d
	return true
}

// Release drops the grab if d holds it.
func (g *Grab) Release(d *Dial) {
	if g != nil && g.owner == d {
		g.owner = nil
	}
}

// Owner returns the dial holding the grab, or nil.
func (g *Grab) Owner() *Dial {
	if g == nil {
		return nil
	}
	return g.owner
}

// Held reports whether d is the current owner.
func (g *Grab) Held(d *Dial) bool {
	return g != nil && d != nil && g.owner == d
}
