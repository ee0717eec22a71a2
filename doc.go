// Package drawer is a drag-driven slide-out panel for [Ebitengine].
//
// A content [Layer] sits over a left and a right panel. Dragging it
// horizontally reveals one of them; on release the [Drawer] snaps the layer
// fully open, or closed, based on how far it travelled, whether the last
// stretch of travel was a flick, and whether it was dragged past its bound
// (where motion is damped by the configured resistance).
//
// # Quick start
//
//	layer := drawer.NewLayer(content)
//	d := drawer.New(drawer.DefaultConfig(), layer)
//	ptr := drawer.NewPointer(d)
//
//	func (g *Game) Update() error {
//		ptr.Update()
//		layer.Update(float32(1.0 / float64(ebiten.TPS())))
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		// draw the panels, then the content on top
//		layer.Draw(screen)
//	}
//
// # Gestures
//
// A gesture is a press, any number of moves and a release. The first move
// decides, once, whether the drag is horizontal enough to be a drawer drag
// (see [HasIntent]); a drag that starts out vertical never moves the drawer.
// Every accepted move rebuilds a [Snapshot] that [Drawer.EndDrag] uses to
// pick the resting offset.
//
// Presses can also come from [Pointer.InjectDrag] and friends, or from a
// YAML script loaded with [LoadScript], which is how the tests and demos
// drive the drawer without a window.
//
// # Events
//
// [Drawer.On] holds one handler per [EventType]; registering again replaces
// the previous handler. [Drawer.SetEventSink] forwards every event to another
// system, such as the Donburi bridge in drawer/ecs.
//
// Settling uses [gween] tweens with any curve from [Easings].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package drawer
