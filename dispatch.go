package pullzoom

// Interceptor is the parent side of the capture protocol. *Controller
// implements it.
type Interceptor interface {
	Intercept(s Sample) bool
	Handle(s Sample) bool
}

// TouchHandler is the child side of the capture protocol. *ScrollView
// implements it.
type TouchHandler interface {
	HandleSample(s Sample) bool
}

// Dispatcher routes one pointer's samples between a parent Interceptor and
// its scrollable child:
//
//   - Until the parent claims the stream, every sample goes to Intercept
//     first, then to the child. The parent's Handle sees a sample only if the
//     child declines it.
//   - The sample that makes Intercept return true is consumed by the claim;
//     the child receives a CANCEL in its place.
//   - Once claimed, every sample goes straight to Handle until UP or CANCEL.
type Dispatcher struct {
	Parent Interceptor
	Child  TouchHandler

	owned       bool
	childActive bool
}

// NewDispatcher wires parent over child. child may be nil.
func NewDispatcher(parent Interceptor, child TouchHandler) *Dispatcher {
	return &Dispatcher{Parent: parent, Child: child}
}

// Dispatch delivers s and reports whether anyone consumed it.
func (d *Dispatcher) Dispatch(s Sample) bool {
	if s.Action == ActionDown {
		// A press always starts a fresh stream.
		d.owned = false
		d.childActive = false
	}

	if d.owned {
		consumed := d.Parent.Handle(s)
		if s.released() {
			d.owned = false
		}
		return consumed
	}

	if d.Parent.Intercept(s) {
		d.owned = !s.released()
		if d.childActive && d.Child != nil {
			cancel := s
			cancel.Action = ActionCancel
			d.Child.HandleSample(cancel)
		}
		d.childActive = false
		return true
	}

	consumed := false
	if d.Child != nil {
		consumed = d.Child.HandleSample(s)
		if consumed && s.Action == ActionDown {
			d.childActive = true
		}
	}
	if !consumed {
		consumed = d.Parent.Handle(s)
	}
	if s.released() {
		d.childActive = false
	}
	return consumed
}

// Owned reports whether the parent currently owns the stream.
func (d *Dispatcher) Owned() bool {
	return d.owned
}
