package drawer

import "github.com/tanema/gween/ease"

// Renderer applies offsets to the content layer. Offset is the single source
// of truth for how far open the drawer is; the drawer reads it back rather
// than tracking the value itself.
type Renderer interface {
	// Offset returns the current resting offset. While a settle is in
	// flight it returns the last stable value.
	Offset() float64
	// SetOffset moves the layer immediately.
	SetOffset(offset float64)
	// AnimateTo settles the layer at target over duration seconds. step is
	// called on every tick; done is called exactly once on completion.
	AnimateTo(target float64, duration float32, fn ease.TweenFunc, step, done func())
}

// stopper is implemented by renderers that can abandon an in-flight settle,
// keeping the layer wherever the animation had reached.
type stopper interface {
	Stop()
}

// drawnRenderer is implemented by renderers whose drawn position can run
// ahead of Offset while a settle is in flight.
type drawnRenderer interface {
	Rendered() float64
}

// drawnOffset returns where r currently draws the layer.
func drawnOffset(r Renderer) float64 {
	if dr, ok := r.(drawnRenderer); ok {
		return dr.Rendered()
	}
	return r.Offset()
}
