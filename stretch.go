package pullzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Stretch grows a header or footer node by the pulled distance and tweens it
// back to rest. It implements ZoomApplier, SnapAnimator and TargetSetter.
//
// A header stretches downward from its top edge, a footer upward from its
// bottom edge. With KeepAspect the width scales with the height around the
// horizontal center, the usual "zoom the header image" look.
type Stretch struct {
	Model      Model
	KeepAspect bool
	Duration   float32
	Ease       ease.TweenFunc

	target *Node
	extent float64
	snap   *gween.Tween
}

// NewStretch creates a stretch for model m that snaps back over duration
// seconds with ease.OutQuad.
func NewStretch(m Model, duration float32) *Stretch {
	return &Stretch{
		Model:      m,
		KeepAspect: true,
		Duration:   duration,
		Ease:       ease.OutQuad,
	}
}

// SetTarget sets the node to stretch and resets it to rest.
func (s *Stretch) SetTarget(n *Node) {
	s.target = n
	s.snap = nil
	s.extent = 0
	if n == nil {
		return
	}
	if s.Model == ModelFooter {
		n.SetPivot(0.5, 1)
	} else {
		n.SetPivot(0.5, 0)
	}
	s.apply()
}

// Target returns the stretched node.
func (s *Stretch) Target() *Node {
	return s.target
}

// ApplyZoom stretches the target by |scrollValue| pixels. A running snap-back
// is abandoned.
func (s *Stretch) ApplyZoom(scrollValue float64) {
	s.snap = nil
	s.extent = math.Abs(scrollValue)
	s.apply()
}

// SnapBack starts the return-to-rest tween. It returns immediately; call
// Update each frame to advance it.
func (s *Stretch) SnapBack() {
	if s.extent == 0 {
		s.snap = nil
		return
	}
	if s.Duration <= 0 {
		s.snap = nil
		s.extent = 0
		s.apply()
		return
	}
	fn := s.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	s.snap = gween.New(float32(s.extent), 0, s.Duration, fn)
}

// Update advances the snap-back tween by dt seconds.
func (s *Stretch) Update(dt float32) {
	if s.snap == nil {
		return
	}
	val, done := s.snap.Update(dt)
	s.extent = math.Max(float64(val), 0)
	if done {
		s.extent = 0
		s.snap = nil
	}
	s.apply()
}

// Animating reports whether a snap-back is running.
func (s *Stretch) Animating() bool {
	return s.snap != nil
}

// Extent returns the current stretch in pixels.
func (s *Stretch) Extent() float64 {
	return s.extent
}

func (s *Stretch) apply() {
	n := s.target
	if n == nil || n.Height <= 0 {
		return
	}
	sy := (n.Height + s.extent) / n.Height
	sx := 1.0
	if s.KeepAspect {
		sx = sy
	}
	n.SetScale(sx, sy)
}
