package pullzoom

// Friction divides the raw vertical drag distance to produce the emitted
// scroll value.
const Friction = 2.5

// DefaultTouchSlop is the minimum movement in pixels, on the dominant axis,
// before a drag is recognized as a pull.
const DefaultTouchSlop = 8.0

// SnapDuration is the default length in seconds of the return-to-rest
// animation.
const SnapDuration float32 = 0.3

// Vec2 is a 2D vector used for touch positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Model selects which edge of the wrapped content zooms.
type Model uint8

const (
	ModelDefault Model = iota // resolved through WrapperFactory.DefaultModel
	ModelHeader               // pull down at the top edge
	ModelFooter               // pull up at the bottom edge
)

func (m Model) String() string {
	switch m {
	case ModelDefault:
		return "default"
	case ModelHeader:
		return "header"
	case ModelFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Action identifies the kind of a touch sample.
type Action uint8

const (
	ActionDown   Action = iota // pointer pressed
	ActionMove                 // pointer moved while pressed
	ActionUp                   // pointer released
	ActionCancel               // stream aborted by the platform or a parent
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Sample is one raw pointer event in screen coordinates.
type Sample struct {
	Action    Action
	X, Y      float64
	PointerID int
}

// Pos returns the sample position as a Vec2.
func (s Sample) Pos() Vec2 {
	return Vec2{s.X, s.Y}
}

// released reports whether the sample ends a stream.
func (s Sample) released() bool {
	return s.Action == ActionUp || s.Action == ActionCancel
}
