package pullzoom

import "log"

// DisablePolicy decides what happens to a gesture that is already dragging
// when zoom is disabled.
type DisablePolicy uint8

const (
	// FinishGesture lets the in-flight gesture run to its release. Only new
	// gestures are refused.
	FinishGesture DisablePolicy = iota
	// AbortGesture ends the in-flight gesture immediately: the region snaps
	// back and OnPullZoomEnd reports the last value.
	AbortGesture
)

func (p DisablePolicy) String() string {
	switch p {
	case FinishGesture:
		return "finish"
	case AbortGesture:
		return "abort"
	default:
		return "unknown"
	}
}

// Controller recognizes pull gestures on the header or footer of a wrapped
// scrollable view. It is a synchronous reducer over touch samples and must be
// driven from a single goroutine.
//
// A parent container feeds every sample to Intercept until it returns true,
// then feeds the rest of the stream to Handle. See Dispatcher.
type Controller struct {
	behavior Behavior
	content  any

	state   gestureState
	model   Model
	enabled bool
	slop    float64
	policy  DisablePolicy

	listener Listener
	target   *Node
	logger   *log.Logger
}

// NewController creates a controller calling out to b. The wrapped content is
// created immediately through b.Factory. A cfg.Model of ModelDefault asks the
// factory for the model.
func NewController(b Behavior, cfg Config) *Controller {
	c := &Controller{
		behavior: b,
		enabled:  cfg.ZoomEnabled,
		policy:   cfg.DisablePolicy,
	}
	c.SetTouchSlop(cfg.TouchSlop)
	c.SetModel(cfg.Model)
	c.SetDebugMode(cfg.Debug)
	if b.Factory != nil {
		c.content = b.Factory.CreateWrapperView()
	}
	return c
}

// Content returns the view created by the wrapper factory, or nil.
func (c *Controller) Content() any {
	return c.content
}

// Intercept decides whether the controller claims the touch stream before the
// wrapped content sees the sample. It returns true once a pull has been
// recognized, and for every move after that.
//
// A move arms the gesture when the content reaches its pull edge mid-stream,
// so a pull can start without an armed press.
func (c *Controller) Intercept(s Sample) bool {
	if s.released() && !c.state.capturing {
		// The content may consume the release, so Handle can't be relied on.
		c.state.reset()
		return false
	}
	if !c.enabled && !c.state.capturing {
		return false
	}
	if s.Action == ActionMove && c.state.capturing {
		return true
	}

	switch s.Action {
	case ActionDown:
		if c.state.capturing {
			// A press without a release for the previous stream.
			c.abort()
		}
		if c.enabled && c.ready() {
			c.state.arm(s.Pos())
			c.debugf("armed at (%.1f, %.1f)", s.X, s.Y)
		} else {
			c.state.reset()
		}

	case ActionMove:
		if !c.ready() {
			break
		}
		p := s.Pos()
		if !c.state.armed {
			// Content reached the pull edge mid-stream.
			c.state.arm(p)
			c.debugf("armed mid-stream at (%.1f, %.1f)", s.X, s.Y)
			break
		}
		if c.state.recognizes(p, c.model, c.slop) {
			c.state.capture(p)
			c.debugf("pull start (%s) at (%.1f, %.1f)", c.model, s.X, s.Y)
			c.listen().OnPullStart()
		}

	}
	return c.state.capturing
}

// Handle processes a sample of a stream the parent has claimed, or one the
// wrapped content declined. It reports whether the sample was consumed.
func (c *Controller) Handle(s Sample) bool {
	if s.released() && !c.state.capturing {
		c.state.reset()
		return false
	}
	if !c.enabled && !c.state.capturing {
		return false
	}

	switch s.Action {
	case ActionDown:
		// Arming happens in Intercept.
		return false

	case ActionMove:
		if !c.state.capturing {
			return false
		}
		c.state.drag(s.Pos())
		v := c.state.scrollValue(c.model)
		if c.behavior.Applier != nil {
			c.behavior.Applier.ApplyZoom(v)
		}
		c.listen().OnPullZooming(v)
		return true

	case ActionUp, ActionCancel:
		if c.state.release() {
			c.finish()
		}
		c.debugf("pull %s", s.Action)
		return true
	}
	return false
}

// finish snaps the region back and reports the final scroll value.
func (c *Controller) finish() {
	if c.behavior.Animator != nil {
		c.behavior.Animator.SnapBack()
	}
	v := c.state.scrollValue(c.model)
	c.debugf("pull end value=%v", v)
	c.listen().OnPullZoomEnd(v)
}

// abort ends any in-flight gesture without waiting for a release.
func (c *Controller) abort() {
	if c.state.capturing && c.state.release() {
		c.finish()
	}
	c.state.reset()
}

func (c *Controller) ready() bool {
	return c.behavior.Oracle != nil && c.behavior.Oracle.IsReadyForPull(c.model)
}

func (c *Controller) listen() Listener {
	if c.listener == nil {
		return ListenerFuncs{}
	}
	return c.listener
}

// --- Configuration ---

// SetZoomEnabled enables or disables pull recognition. Disabling while a
// gesture is dragging follows the controller's DisablePolicy.
func (c *Controller) SetZoomEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled && c.policy == AbortGesture && c.state.armed {
		c.debugf("zoom disabled, aborting %s gesture", c.state.phase())
		c.abort()
	}
}

// ZoomEnabled reports whether new pulls can start.
func (c *Controller) ZoomEnabled() bool {
	return c.enabled
}

// SetModel switches between header and footer zoom. ModelDefault asks the
// wrapper factory, falling back to ModelHeader.
func (c *Controller) SetModel(m Model) {
	if m == ModelDefault {
		m = ModelHeader
		if c.behavior.Factory != nil {
			if fm := c.behavior.Factory.DefaultModel(); fm != ModelDefault {
				m = fm
			}
		}
	}
	c.model = m
}

// Model returns the active model.
func (c *Controller) Model() Model {
	return c.model
}

// SetZoomTarget sets the node the applier stretches. It is forwarded to any
// behavior member implementing TargetSetter; an applier that is also the
// animator receives it twice.
func (c *Controller) SetZoomTarget(n *Node) {
	c.target = n
	if ts, ok := c.behavior.Applier.(TargetSetter); ok {
		ts.SetTarget(n)
	}
	if ts, ok := c.behavior.Animator.(TargetSetter); ok {
		ts.SetTarget(n)
	}
}

// ZoomTarget returns the node set by SetZoomTarget.
func (c *Controller) ZoomTarget() *Node {
	return c.target
}

// SetListener sets the lifecycle listener. nil removes it.
func (c *Controller) SetListener(l Listener) {
	c.listener = l
}

// SetTouchSlop sets the recognition threshold in pixels. Negative values are
// treated as 0.
func (c *Controller) SetTouchSlop(px float64) {
	if px < 0 {
		px = 0
	}
	c.slop = px
}

// TouchSlop returns the recognition threshold in pixels.
func (c *Controller) TouchSlop() float64 {
	return c.slop
}

// SetDisablePolicy selects how SetZoomEnabled(false) treats a gesture in
// flight.
func (c *Controller) SetDisablePolicy(p DisablePolicy) {
	c.policy = p
}

// --- Introspection ---

// Phase returns the recognizer phase.
func (c *Controller) Phase() Phase {
	return c.state.phase()
}

// IsCapturing reports whether the controller owns the touch stream.
func (c *Controller) IsCapturing() bool {
	return c.state.capturing
}

// IsZooming reports whether a captured gesture has consumed at least one move.
func (c *Controller) IsZooming() bool {
	return c.state.dragging
}

// ScrollValue returns the scroll value for the current initial and last
// touch. It is 0 when idle.
func (c *Controller) ScrollValue() float64 {
	if !c.state.armed {
		return 0
	}
	return c.state.scrollValue(c.model)
}
