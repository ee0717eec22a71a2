package drawer

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLayerAnimateTo(t *testing.T) {
	l := NewLayer(nil)
	var steps, dones int
	l.AnimateTo(266, 1.0, ease.Linear, func() { steps++ }, func() { dones++ })

	if !l.Settling() {
		t.Fatal("expected Settling after AnimateTo")
	}
	l.Update(0.5)
	if l.Offset() != 0 {
		t.Errorf("Offset during settle = %v, want last stable 0", l.Offset())
	}
	if math.Abs(l.Rendered()-133) > 0.5 {
		t.Errorf("Rendered = %v, want ~133", l.Rendered())
	}
	if steps != 1 || dones != 0 {
		t.Errorf("steps=%d dones=%d, want 1 and 0", steps, dones)
	}

	l.Update(0.5)
	if l.Offset() != 266 || l.Rendered() != 266 {
		t.Errorf("Offset=%v Rendered=%v, want 266", l.Offset(), l.Rendered())
	}
	if steps != 2 || dones != 1 {
		t.Errorf("steps=%d dones=%d, want 2 and 1", steps, dones)
	}
	if l.Settling() {
		t.Error("still Settling after completion")
	}

	l.Update(0.5)
	if steps != 2 || dones != 1 {
		t.Error("callbacks fired after completion")
	}
}

func TestLayerStop(t *testing.T) {
	l := NewLayer(nil)
	var dones int
	l.AnimateTo(200, 1.0, ease.Linear, nil, func() { dones++ })
	l.Update(0.5)
	l.Stop()

	if l.Settling() {
		t.Error("still Settling after Stop")
	}
	if math.Abs(l.Offset()-100) > 0.5 {
		t.Errorf("Offset after Stop = %v, want ~100", l.Offset())
	}
	l.Update(0.5)
	if dones != 0 {
		t.Error("done fired for a stopped settle")
	}
}

func TestLayerSetOffsetAbandonsSettle(t *testing.T) {
	l := NewLayer(nil)
	var dones int
	l.AnimateTo(200, 1.0, ease.Linear, nil, func() { dones++ })
	l.SetOffset(42)
	l.Update(1)

	if l.Offset() != 42 || l.Rendered() != 42 {
		t.Errorf("Offset=%v Rendered=%v, want 42", l.Offset(), l.Rendered())
	}
	if dones != 0 {
		t.Error("done fired for an abandoned settle")
	}
}

func TestLayerAnimateToReplaces(t *testing.T) {
	l := NewLayer(nil)
	var first, second int
	l.AnimateTo(266, 1.0, ease.Linear, nil, func() { first++ })
	l.AnimateTo(0, 1.0, ease.Linear, nil, func() { second++ })
	l.Update(0.5)
	l.Update(0.5)

	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want 0 and 1", first, second)
	}
}

func TestLayerDrawNilContent(t *testing.T) {
	l := NewLayer(nil)
	l.Draw(nil) // must not touch dst without content
}

// settleAll ticks the layer at 60 TPS until its settle finishes.
func settleAll(t *testing.T, l *Layer) {
	t.Helper()
	for i := 0; i < 600 && l.Settling(); i++ {
		l.Update(1.0 / 60)
	}
	if l.Settling() {
		t.Fatal("settle did not finish")
	}
}

func TestDrawerWithLayerOpenAndState(t *testing.T) {
	l := NewLayer(nil)
	d := New(DefaultConfig(), l)

	var animating, animated int
	d.On(EventAnimating, func() { animating++ })
	d.On(EventAnimated, func() { animated++ })

	d.Open(SideLeft)
	l.Update(1.0 / 60)
	if st := d.State(); st.State != StateClosed {
		t.Errorf("State mid-settle = %v, want closed", st.State)
	}
	settleAll(t, l)

	if st := d.State(); st.State != StateLeft {
		t.Errorf("State = %v, want left", st.State)
	}
	if animated != 1 {
		t.Errorf("animated = %d, want 1", animated)
	}
	if animating < 2 {
		t.Errorf("animating = %d, want one per tick", animating)
	}
}

func TestDrawerGrabDuringSettle(t *testing.T) {
	l := NewLayer(nil)
	d := New(DefaultConfig(), l)

	d.Open(SideLeft)
	for i := 0; i < 9; i++ {
		l.Update(1.0 / 60)
	}
	mid := l.Rendered()
	if mid <= 0 || mid >= 266 {
		t.Fatalf("Rendered = %v, want strictly between 0 and 266", mid)
	}

	d.StartDrag(300, 100)
	if l.Settling() {
		t.Fatal("StartDrag should stop the settle")
	}
	d.UpdateDrag(310, 100)
	if math.Abs(l.Rendered()-(mid+10)) > 1e-9 {
		t.Errorf("Rendered = %v, want %v (no jump)", l.Rendered(), mid+10)
	}
}

func TestIgnoreRegionFollowsSettlingLayer(t *testing.T) {
	l := NewLayer(nil)
	d := New(DefaultConfig(), l)
	d.AddIgnoreRegion(HitRect{X: 0, Y: 0, Width: 40, Height: 40})

	var ignored int
	d.On(EventIgnore, func() { ignored++ })

	d.Open(SideLeft)
	for i := 0; i < 9; i++ {
		l.Update(1.0 / 60)
	}
	drawn := l.Rendered()
	if drawn < 60 || l.Offset() != 0 {
		t.Fatalf("Rendered = %v Offset = %v, want a settle well under way", drawn, l.Offset())
	}

	// The button is drawn at drawn..drawn+40; its old spot is empty.
	d.StartDrag(drawn+20, 20)
	if ignored != 1 || d.Dragging() {
		t.Errorf("press on the drawn button: ignored=%d dragging=%v", ignored, d.Dragging())
	}
	if !l.Settling() {
		t.Error("an ignored press should leave the settle running")
	}

	d.StartDrag(20, 20)
	if ignored != 1 || !d.Dragging() {
		t.Errorf("press on the vacated spot: ignored=%d dragging=%v", ignored, d.Dragging())
	}
}
