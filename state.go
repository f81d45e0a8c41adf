package pullzoom

import "math"

// Phase is the externally visible state of the gesture recognizer.
type Phase uint8

const (
	PhaseIdle     Phase = iota // no gesture, or content not at the pull edge
	PhaseArmed                 // pressed at the pull edge, threshold not crossed
	PhaseDragging              // pull recognized; the controller owns the stream
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// gestureState is the per-gesture touch state. It is reset to the zero value
// after every gesture.
//
// Invariant: dragging implies capturing, capturing implies armed.
type gestureState struct {
	initial Vec2
	last    Vec2

	armed     bool
	capturing bool
	// dragging is set once the handler has consumed a move after capture.
	dragging bool
}

func (g *gestureState) phase() Phase {
	switch {
	case g.capturing:
		return PhaseDragging
	case g.armed:
		return PhaseArmed
	default:
		return PhaseIdle
	}
}

// arm records the press position as both initial and last touch.
func (g *gestureState) arm(p Vec2) {
	*g = gestureState{initial: p, last: p, armed: true}
}

// recognizes reports whether moving to p from the last touch starts a pull
// for model m: the drag must exceed slop on the vertical axis, in the
// model's direction, and dominate the horizontal movement.
func (g *gestureState) recognizes(p Vec2, m Model, slop float64) bool {
	dx := p.X - g.last.X
	dy := p.Y - g.last.Y
	if m == ModelFooter {
		dy = -dy
	}
	return dy > slop && dy > math.Abs(dx)
}

// capture moves an armed gesture into the dragging phase.
func (g *gestureState) capture(p Vec2) {
	g.last = p
	g.capturing = true
}

// drag records a move consumed by the handler.
func (g *gestureState) drag(p Vec2) {
	g.dragging = true
	g.last = p
}

// release ends the gesture and reports whether the handler had consumed any
// move since capture.
func (g *gestureState) release() (wasDragging bool) {
	wasDragging = g.dragging
	*g = gestureState{initial: g.initial, last: g.last}
	return wasDragging
}

func (g *gestureState) reset() {
	*g = gestureState{}
}

// scrollValue converts the vertical distance between initial and last touch
// into the damped scroll value for model m.
func (g *gestureState) scrollValue(m Model) float64 {
	return scrollValue(g.initial.Y-g.last.Y, m)
}

// scrollValue clamps delta to the sign allowed by m (non-positive for a
// header, non-negative for a footer) and divides by Friction. Halves round
// toward positive infinity.
func scrollValue(delta float64, m Model) float64 {
	if m == ModelFooter {
		delta = math.Max(delta, 0)
	} else {
		delta = math.Min(delta, 0)
	}
	v := math.Floor(delta/Friction + 0.5)
	if v == 0 {
		return 0 // drop -0
	}
	return v
}
