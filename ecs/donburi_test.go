package ecs

import (
	"testing"

	"github.com/phanxgames/drawer"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// memRenderer settles instantly so a single call drives a full cycle.
type memRenderer struct{ offset float64 }

func (r *memRenderer) Offset() float64     { return r.offset }
func (r *memRenderer) SetOffset(v float64) { r.offset = v }
func (r *memRenderer) AnimateTo(target float64, _ float32, _ ease.TweenFunc, step, done func()) {
	r.offset = target
	step()
	done()
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []drawer.Event
	DrawerEventType.Subscribe(world, func(w donburi.World, e drawer.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(drawer.Event{Type: drawer.EventStart})
	sink.EmitEvent(drawer.Event{Type: drawer.EventAnimated, Offset: 266})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	DrawerEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != drawer.EventStart {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != drawer.EventAnimated || received[1].Offset != 266 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FullDrag(t *testing.T) {
	world := donburi.NewWorld()
	r := &memRenderer{}
	d := drawer.New(drawer.DefaultConfig(), r)
	d.SetEventSink(NewDonburiSink(world))

	var types []drawer.EventType
	DrawerEventType.Subscribe(world, func(w donburi.World, e drawer.Event) {
		types = append(types, e.Type)
	})

	d.StartDrag(10, 100)
	d.UpdateDrag(200, 100)
	d.EndDrag(200, 100)
	events.ProcessAllEvents(world)

	want := []drawer.EventType{
		drawer.EventStart, drawer.EventDrag, drawer.EventEnd,
		drawer.EventAnimating, drawer.EventAnimated,
	}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if r.offset != 266 {
		t.Errorf("offset = %v, want 266", r.offset)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	DrawerEventType.Subscribe(world, func(w donburi.World, e drawer.Event) { count1++ })
	DrawerEventType.Subscribe(world, func(w donburi.World, e drawer.Event) { count2++ })

	sink.EmitEvent(drawer.Event{Type: drawer.EventIgnore})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
