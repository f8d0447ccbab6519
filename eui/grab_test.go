package eui

import "testing"

func TestGrabOwnership(t *testing.T) {
	var g Grab
	a, b := NewDial(), NewDial()

	if !g.Acquire(a) {
		t.Fatalf("acquire on empty grab failed")
	}
	if !g.Acquire(a) {
		t.Fatalf("re-acquire by owner failed")
	}
	if g.Acquire(b) {
		t.Fatalf("second dial acquired a held grab")
	}
	g.Release(b)
	if g.Owner() != a {
		t.Fatalf("release by non-owner dropped the grab")
	}
	if !g.Held(a) || g.Held(b) {
		t.Fatalf("Held reports wrong owner")
	}
	g.Release(a)
	if g.Owner() != nil {
		t.Fatalf("owner release kept the grab")
	}
	if g.Acquire(nil) {
		t.Fatalf("nil dial acquired the grab")
	}
}

func TestNilGrab(t *testing.T) {
	var g *Grab
	d := NewDial()
	if g.Acquire(d) || g.Held(d) || g.Owner() != nil {
		t.Fatalf("nil grab should refuse everything")
	}
	g.Release(d)
}
