package pullzoom

// Node is the zoom target: a rectangle with a scale applied around a
// normalized pivot. The pivot point stays fixed while the node scales.
type Node struct {
	Name string

	// X, Y, Width and Height describe the unscaled rectangle.
	X, Y          float64
	Width, Height float64

	ScaleX, ScaleY float64
	// PivotX and PivotY are in [0, 1] relative to the unscaled rectangle.
	PivotX, PivotY float64

	// UserData is free for the host application.
	UserData any

	dirty bool
}

// NewNode creates an unscaled node with a top-left pivot.
func NewNode(name string, x, y, w, h float64) *Node {
	return &Node{
		Name:   name,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		ScaleX: 1,
		ScaleY: 1,
		dirty:  true,
	}
}

// SetPosition sets the unscaled top-left corner and marks the node dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.dirty = true
}

// SetScale sets the scale factors and marks the node dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.dirty = true
}

// SetPivot sets the normalized pivot and marks the node dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	n.dirty = true
}

// MarkDirty flags the node for redraw. Call after writing fields directly.
func (n *Node) MarkDirty() {
	n.dirty = true
}

// Dirty reports whether the node changed since the last ClearDirty.
func (n *Node) Dirty() bool {
	return n.dirty
}

// ClearDirty resets the dirty flag, typically after drawing.
func (n *Node) ClearDirty() {
	n.dirty = false
}

// Bounds returns the scaled rectangle.
func (n *Node) Bounds() Rect {
	px := n.X + n.PivotX*n.Width
	py := n.Y + n.PivotY*n.Height
	w := n.Width * n.ScaleX
	h := n.Height * n.ScaleY
	return Rect{
		X:      px - n.PivotX*w,
		Y:      py - n.PivotY*h,
		Width:  w,
		Height: h,
	}
}
