package pullzoom

// Zoom wires the bundled collaborators into a ready-to-drive pull-to-zoom
// view: a ScrollView wrapped by a Controller that stretches a target node.
//
//	z := pullzoom.New(header, pullzoom.Rect{Y: 160, Width: 640, Height: 320}, 2000, pullzoom.DefaultConfig())
//	// in ebiten.Game.Update:
//	z.Update(1 / float32(ebiten.TPS()))
type Zoom struct {
	Controller *Controller
	View       *ScrollView
	Stretch    *Stretch
	Dispatcher *Dispatcher
	Poller     *Poller
}

// New builds a Zoom over a list of contentHeight pixels shown in viewport.
// target is the header or footer node to stretch; it may be nil and set
// later through Controller.SetZoomTarget.
func New(target *Node, viewport Rect, contentHeight float64, cfg Config) *Zoom {
	factory := &ScrollFactory{
		Viewport:      viewport,
		ContentHeight: contentHeight,
		Model:         ModelHeader,
	}
	stretch := NewStretch(ModelHeader, cfg.SnapDuration)
	c := NewController(Behavior{
		Factory:  factory,
		Applier:  stretch,
		Animator: stretch,
		Oracle:   factory.Oracle(),
	}, cfg)
	stretch.Model = c.Model()
	if target != nil {
		c.SetZoomTarget(target)
	}

	view := c.Content().(*ScrollView)
	d := NewDispatcher(c, view)
	return &Zoom{
		Controller: c,
		View:       view,
		Stretch:    stretch,
		Dispatcher: d,
		Poller:     NewPoller(d),
	}
}

// SetModel switches the controller and the stretch to m and re-pivots the
// target.
func (z *Zoom) SetModel(m Model) {
	z.Controller.SetModel(m)
	z.Stretch.Model = z.Controller.Model()
	z.Controller.SetZoomTarget(z.Stretch.Target())
}

// Update polls input and advances the snap-back and scroll animations by dt
// seconds.
func (z *Zoom) Update(dt float32) {
	z.Poller.Update()
	z.Stretch.Update(dt)
	z.View.Update(dt)
}
