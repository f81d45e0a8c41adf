// Package pullzoom recognizes pull-to-zoom gestures for [Ebitengine] games
// and apps: when a scrollable list is dragged past its top (or bottom) edge,
// the header (or footer) above it stretches with the finger and springs back
// on release.
//
// # Quick start
//
// [New] wires everything together: a [ScrollView] for the list, a [Stretch]
// that scales the header node, a [Controller] that recognizes the gesture,
// and a [Poller] that reads ebiten input:
//
//	header := pullzoom.NewNode("header", 0, 0, 480, 160)
//	z := pullzoom.New(header, pullzoom.Rect{Y: 160, Width: 480, Height: 480},
//		2000, pullzoom.DefaultConfig())
//
//	func (g *Game) Update() error {
//		g.zoom.Update(1 / float32(ebiten.TPS()))
//		return nil
//	}
//
// Draw the header from [Node.Bounds] and the list from [ScrollView.Offset].
//
// # Gesture recognition
//
// [Controller] is a synchronous state machine (idle, armed, dragging) with two
// entry points that mirror nested-scroll capture: [Controller.Intercept] is
// asked about every sample before the list sees it and returns true once a
// pull is recognized; [Controller.Handle] then receives the rest of the
// stream. [Dispatcher] implements that routing.
//
// A pull starts when the [ReadinessOracle] reports the list is at the pull
// edge and a move exceeds the touch slop in the model's direction while
// dominating horizontal movement. Each move emits
//
//	scrollValue = round(clamp(initialY - lastY) / Friction)
//
// which is never positive for [ModelHeader] and never negative for
// [ModelFooter].
//
// # Custom behaviors
//
// The controller only calls out through [Behavior]: a [WrapperFactory], a
// [ZoomApplier], a [SnapAnimator] and a [ReadinessOracle]. Supply your own to
// zoom anything; the bundled [Stretch] tweens back with [gween].
//
// # Configuration
//
// [Config] can be loaded from TOML with [LoadConfig]:
//
//	zoom_enabled = true
//	touch_slop = 8.0
//	model = "footer"
//	disable_policy = "abort"
//	snap_duration = 0.3
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package pullzoom
