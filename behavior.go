package pullzoom

// WrapperFactory builds the scrollable content the controller wraps.
type WrapperFactory interface {
	CreateWrapperView() any
	// DefaultModel is used when no model is configured explicitly.
	DefaultModel() Model
}

// ZoomApplier stretches or shrinks the header or footer. scrollValue is
// non-positive for a header pull and non-negative for a footer pull.
type ZoomApplier interface {
	ApplyZoom(scrollValue float64)
}

// SnapAnimator returns the zoomed region to rest. SnapBack is called
// synchronously when a gesture ends; the animation itself may run later.
type SnapAnimator interface {
	SnapBack()
}

// ReadinessOracle reports whether the wrapped content sits at the edge that
// permits a pull for the given model.
type ReadinessOracle interface {
	IsReadyForPull(m Model) bool
}

// ReadinessFunc adapts a plain function to ReadinessOracle.
type ReadinessFunc func(m Model) bool

// IsReadyForPull calls f(m).
func (f ReadinessFunc) IsReadyForPull(m Model) bool { return f(m) }

// TargetSetter is implemented by appliers that accept a zoom target from
// Controller.SetZoomTarget.
type TargetSetter interface {
	SetTarget(n *Node)
}

// Behavior is the capability set a Controller calls out to. Any member may
// be nil: a nil Oracle never reports ready, so no gesture ever starts.
type Behavior struct {
	Factory  WrapperFactory
	Applier  ZoomApplier
	Animator SnapAnimator
	Oracle   ReadinessOracle
}

// Listener receives gesture lifecycle callbacks. Per gesture it sees one
// OnPullStart, zero or more OnPullZooming, then one OnPullZoomEnd.
type Listener interface {
	OnPullStart()
	OnPullZooming(scrollValue float64)
	OnPullZoomEnd(scrollValue float64)
}

// ListenerFuncs implements Listener with optional function fields.
type ListenerFuncs struct {
	PullStart   func()
	PullZooming func(scrollValue float64)
	PullZoomEnd func(scrollValue float64)
}

func (l ListenerFuncs) OnPullStart() {
	if l.PullStart != nil {
		l.PullStart()
	}
}

func (l ListenerFuncs) OnPullZooming(scrollValue float64) {
	if l.PullZooming != nil {
		l.PullZooming(scrollValue)
	}
}

func (l ListenerFuncs) OnPullZoomEnd(scrollValue float64) {
	if l.PullZoomEnd != nil {
		l.PullZoomEnd(scrollValue)
	}
}
