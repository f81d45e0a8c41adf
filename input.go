package pullzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SampleSink consumes touch samples. *Dispatcher implements it.
type SampleSink interface {
	Dispatch(s Sample) bool
}

// Poller turns ebiten's polled mouse and touch state into a stream of
// Samples, one pointer at a time. The mouse is pointer 0; a touch is pointer
// 1 and takes precedence while it is down. Call Update once per frame from
// the game's Update.
type Poller struct {
	Sink SampleSink

	down      bool
	pointerID int
	lastX     float64
	lastY     float64

	touchID      ebiten.TouchID
	touchActive  bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []Sample
}

// NewPoller creates a poller feeding sink.
func NewPoller(sink SampleSink) *Poller {
	return &Poller{Sink: sink}
}

// Update polls input for this frame. A queued injected sample replaces real
// input for the frame.
func (p *Poller) Update() {
	if p.processInjected() {
		return
	}
	if p.processTouch() {
		return
	}
	p.processMouse()
}

// processTouch tracks the first touch that went down. Returns true while a
// touch is being tracked or was just released.
func (p *Poller) processTouch() bool {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	if p.touchActive {
		for _, tid := range touchIDs {
			if tid == p.touchID {
				tx, ty := ebiten.TouchPosition(tid)
				p.processPointer(1, float64(tx), float64(ty), true)
				return true
			}
		}
		p.touchActive = false
		p.processPointer(1, p.lastX, p.lastY, false)
		return true
	}

	if len(touchIDs) == 0 || p.down {
		return false
	}
	p.touchID = touchIDs[0]
	p.touchActive = true
	tx, ty := ebiten.TouchPosition(p.touchID)
	p.processPointer(1, float64(tx), float64(ty), true)
	return true
}

func (p *Poller) processMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(0, float64(mx), float64(my), pressed)
}

// processPointer converts a pressed/position snapshot into at most one
// sample.
func (p *Poller) processPointer(pointerID int, x, y float64, pressed bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.pointerID = pointerID
		p.emit(ActionDown, x, y)
	case pressed && p.down:
		if x != p.lastX || y != p.lastY {
			p.emit(ActionMove, x, y)
		}
	case !pressed && p.down:
		p.down = false
		p.emit(ActionUp, x, y)
	}
}

func (p *Poller) emit(a Action, x, y float64) {
	p.lastX = x
	p.lastY = y
	if p.Sink != nil {
		p.Sink.Dispatch(Sample{Action: a, X: x, Y: y, PointerID: p.pointerID})
	}
}

// --- Injection ---

// Inject queues a synthetic sample. Queued samples are consumed one per
// Update, ahead of real input.
func (p *Poller) Inject(s Sample) {
	p.injectQueue = append(p.injectQueue, s)
}

// InjectPress queues a press at (x, y).
func (p *Poller) InjectPress(x, y float64) {
	p.Inject(Sample{Action: ActionDown, X: x, Y: y})
}

// InjectMove queues a move to (x, y) with the pointer held.
func (p *Poller) InjectMove(x, y float64) {
	p.Inject(Sample{Action: ActionMove, X: x, Y: y})
}

// InjectRelease queues a release at (x, y).
func (p *Poller) InjectRelease(x, y float64) {
	p.Inject(Sample{Action: ActionUp, X: x, Y: y})
}

// InjectCancel queues a cancel at (x, y).
func (p *Poller) InjectCancel(x, y float64) {
	p.Inject(Sample{Action: ActionCancel, X: x, Y: y})
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (p *Poller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected samples.
func (p *Poller) Pending() int {
	return len(p.injectQueue)
}

// processInjected pops one queued sample and dispatches it. Returns true if a
// sample was consumed.
func (p *Poller) processInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	s := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.down = s.Action == ActionDown || s.Action == ActionMove
	p.lastX, p.lastY = s.X, s.Y
	if p.Sink != nil {
		p.Sink.Dispatch(s)
	}
	return true
}
