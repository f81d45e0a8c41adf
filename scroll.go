package pullzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollView is a vertically scrolling content area: the view a Controller
// wraps. Offset runs from 0 (top) to MaxOffset (bottom).
type ScrollView struct {
	Viewport      Rect
	ContentHeight float64
	Offset        float64

	scrollTween *gween.Tween
	dragging    bool
	lastY       float64
}

// NewScrollView creates a view scrolled to the top.
func NewScrollView(viewport Rect, contentHeight float64) *ScrollView {
	return &ScrollView{Viewport: viewport, ContentHeight: contentHeight}
}

// MaxOffset is the largest valid Offset. Content shorter than the viewport
// cannot scroll.
func (v *ScrollView) MaxOffset() float64 {
	return math.Max(0, v.ContentHeight-v.Viewport.Height)
}

// AtTop reports whether the content is scrolled to its first row.
func (v *ScrollView) AtTop() bool {
	return v.Offset <= 0
}

// AtBottom reports whether the content is scrolled to its last row.
func (v *ScrollView) AtBottom() bool {
	return v.Offset >= v.MaxOffset()
}

// IsReadyForPull implements ReadinessOracle: a header pulls at the top, a
// footer at the bottom.
func (v *ScrollView) IsReadyForPull(m Model) bool {
	switch m {
	case ModelHeader:
		return v.AtTop()
	case ModelFooter:
		return v.AtBottom()
	default:
		return false
	}
}

// ScrollBy moves the content by dy pixels, clamped to [0, MaxOffset].
func (v *ScrollView) ScrollBy(dy float64) {
	v.Offset = v.clamp(v.Offset + dy)
}

// ScrollTo animates Offset to y over duration seconds. A duration of 0 jumps.
func (v *ScrollView) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 {
		v.scrollTween = nil
		v.Offset = y
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	v.scrollTween = gween.New(float32(v.Offset), float32(y), duration, easeFn)
}

// Update advances a ScrollTo animation by dt seconds.
func (v *ScrollView) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	val, done := v.scrollTween.Update(dt)
	v.Offset = v.clamp(float64(val))
	if done {
		v.scrollTween = nil
	}
}

// HandleSample scrolls the content with the finger. Presses outside the
// viewport are declined, as is the rest of their stream.
func (v *ScrollView) HandleSample(s Sample) bool {
	switch s.Action {
	case ActionDown:
		if !v.Viewport.Contains(s.X, s.Y) {
			return false
		}
		v.scrollTween = nil
		v.dragging = true
		v.lastY = s.Y
		return true
	case ActionMove:
		if !v.dragging {
			return false
		}
		v.ScrollBy(v.lastY - s.Y)
		v.lastY = s.Y
		return true
	case ActionUp, ActionCancel:
		was := v.dragging
		v.dragging = false
		return was
	}
	return false
}

func (v *ScrollView) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxOffset()))
}

// ScrollFactory is a WrapperFactory producing ScrollViews. The most recently
// created view backs the factory's Oracle.
type ScrollFactory struct {
	Viewport      Rect
	ContentHeight float64
	Model         Model

	View *ScrollView
}

// CreateWrapperView implements WrapperFactory.
func (f *ScrollFactory) CreateWrapperView() any {
	f.View = NewScrollView(f.Viewport, f.ContentHeight)
	return f.View
}

// DefaultModel implements WrapperFactory.
func (f *ScrollFactory) DefaultModel() Model {
	return f.Model
}

// Oracle returns a ReadinessOracle reading the created view. It reports
// false until CreateWrapperView has run.
func (f *ScrollFactory) Oracle() ReadinessOracle {
	return ReadinessFunc(func(m Model) bool {
		return f.View != nil && f.View.IsReadyForPull(m)
	})
}
