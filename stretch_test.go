package pullzoom

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestStretchHeader(t *testing.T) {
	n := NewNode("header", 0, 0, 400, 100)
	s := NewStretch(ModelHeader, 0.3)
	s.SetTarget(n)

	s.ApplyZoom(-32)
	if !approx(n.ScaleY, 1.32) || !approx(n.ScaleX, 1.32) {
		t.Errorf("scale = (%v, %v), want (1.32, 1.32)", n.ScaleX, n.ScaleY)
	}
	b := n.Bounds()
	if !approx(b.Y, 0) || !approx(b.Height, 132) {
		t.Errorf("header should grow downward from its top edge, bounds %+v", b)
	}
	if !approx(b.X+b.Width/2, 200) {
		t.Errorf("header should stay horizontally centered, bounds %+v", b)
	}
	if s.Extent() != 32 {
		t.Errorf("Extent = %v, want 32", s.Extent())
	}
}

func TestStretchFooter(t *testing.T) {
	n := NewNode("footer", 0, 500, 400, 100)
	s := NewStretch(ModelFooter, 0.3)
	s.KeepAspect = false
	s.SetTarget(n)

	s.ApplyZoom(50)
	b := n.Bounds()
	if !approx(b.Y+b.Height, 600) || !approx(b.Height, 150) {
		t.Errorf("footer should grow upward from its bottom edge, bounds %+v", b)
	}
	if n.ScaleX != 1 {
		t.Errorf("ScaleX = %v, want 1 without KeepAspect", n.ScaleX)
	}
}

func TestStretchSnapBack(t *testing.T) {
	n := NewNode("header", 0, 0, 400, 100)
	s := NewStretch(ModelHeader, 1)
	s.SetTarget(n)
	s.ApplyZoom(-40)

	s.SnapBack()
	if !s.Animating() {
		t.Fatal("SnapBack should start a tween")
	}
	if s.Extent() != 40 {
		t.Errorf("SnapBack must not move the node synchronously, extent %v", s.Extent())
	}

	s.Update(0.5)
	if !s.Animating() {
		t.Error("tween should still run at half time")
	}
	if e := s.Extent(); e <= 0 || e >= 40 {
		t.Errorf("half-way extent = %v, want in (0, 40)", e)
	}

	s.Update(1)
	if s.Animating() {
		t.Error("tween should be done")
	}
	if s.Extent() != 0 || n.ScaleY != 1 {
		t.Errorf("after snap: extent %v, ScaleY %v", s.Extent(), n.ScaleY)
	}
}

func TestStretchSnapBackImmediate(t *testing.T) {
	n := NewNode("header", 0, 0, 400, 100)
	s := NewStretch(ModelHeader, 0)
	s.SetTarget(n)
	s.ApplyZoom(-40)
	s.SnapBack()
	if s.Animating() || s.Extent() != 0 || n.ScaleY != 1 {
		t.Errorf("zero duration should snap at once: animating %v extent %v ScaleY %v",
			s.Animating(), s.Extent(), n.ScaleY)
	}
}

func TestStretchNewGestureDuringSnap(t *testing.T) {
	n := NewNode("header", 0, 0, 400, 100)
	s := NewStretch(ModelHeader, 1)
	s.SetTarget(n)
	s.ApplyZoom(-40)
	s.SnapBack()
	s.Update(0.25)

	s.ApplyZoom(-10)
	if s.Animating() {
		t.Error("ApplyZoom should abandon the running snap-back")
	}
	s.Update(1)
	if s.Extent() != 10 {
		t.Errorf("Extent = %v, want 10 from the new gesture", s.Extent())
	}
}

func TestStretchWithoutTarget(t *testing.T) {
	s := NewStretch(ModelHeader, 0.3)
	s.ApplyZoom(-20)
	s.SnapBack()
	s.Update(1)
	if s.Target() != nil {
		t.Error("Target should be nil")
	}
}
