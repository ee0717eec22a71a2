package drawer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Layer is the Ebitengine Renderer: it holds the content image and the
// horizontal offset it is drawn at. Settles started with AnimateTo advance
// in Update, so call Update once per tick from the game loop.
type Layer struct {
	// Content is drawn at (X+offset, Y). May be nil.
	Content *ebiten.Image
	X, Y    float64

	offset float64 // value drawn this frame
	stable float64 // value reported by Offset

	settle *Settle
	onStep func()
	onDone func()
}

// NewLayer creates a layer at rest at offset 0.
func NewLayer(content *ebiten.Image) *Layer {
	return &Layer{Content: content}
}

// Offset returns the resting offset. During a settle this is the value the
// settle started from, not the animated position.
func (l *Layer) Offset() float64 {
	return l.stable
}

// Rendered returns the offset drawn this frame, including settle progress.
func (l *Layer) Rendered() float64 {
	return l.offset
}

// Settling reports whether a settle is in flight.
func (l *Layer) Settling() bool {
	return l.settle != nil
}

// SetOffset moves the layer immediately, abandoning any settle without
// calling its completion callback.
func (l *Layer) SetOffset(offset float64) {
	l.clearSettle()
	l.offset = offset
	l.stable = offset
}

// AnimateTo starts settling at target. A settle already in flight is
// replaced and its completion callback never fires.
func (l *Layer) AnimateTo(target float64, duration float32, fn ease.TweenFunc, step, done func()) {
	l.settle = NewSettle(l.offset, target, duration, fn)
	l.onStep = step
	l.onDone = done
}

// Stop abandons the settle in flight and rests the layer where the
// animation had reached.
func (l *Layer) Stop() {
	if l.settle == nil {
		return
	}
	l.clearSettle()
	l.stable = l.offset
}

// Update advances the settle by dt seconds, calling the step callback every
// tick and the done callback once when it finishes.
func (l *Layer) Update(dt float32) {
	if l.settle == nil {
		return
	}
	l.offset = l.settle.Update(dt)
	finished := l.settle.Done
	step, done := l.onStep, l.onDone
	if finished {
		l.stable = l.offset
		l.clearSettle()
	}
	if step != nil {
		step()
	}
	if finished && done != nil {
		done()
	}
}

func (l *Layer) clearSettle() {
	if l.settle != nil {
		l.settle.Cancel()
	}
	l.settle = nil
	l.onStep = nil
	l.onDone = nil
}

// Draw renders Content onto dst at the current offset.
func (l *Layer) Draw(dst *ebiten.Image) {
	if l.Content == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(l.X+l.offset, l.Y)
	dst.DrawImage(l.Content, &op)
}
