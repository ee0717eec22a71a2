package drawer

// EventType identifies a drawer notification.
type EventType uint8

const (
	EventStart     EventType = iota // a drag gesture began
	EventDrag                       // an accepted move updated the offset
	EventEnd                        // the pointer was released, before the snap decision
	EventIgnore                     // a press landed in an ignore region
	EventAnimating                  // fires on every settle tick
	EventAnimated                   // fires once when a settle completes
	eventCount
)

var eventNames = [eventCount]string{
	EventStart:     "start",
	EventDrag:      "drag",
	EventEnd:       "end",
	EventIgnore:    "ignore",
	EventAnimating: "animating",
	EventAnimated:  "animated",
}

// String returns the event name, e.g. "animated".
func (e EventType) String() string {
	if e < eventCount {
		return eventNames[e]
	}
	return "unknown"
}

// Event is what an EventSink receives for every notification.
type Event struct {
	Type   EventType
	Offset float64
	Info   Snapshot
}

// EventSink is the optional bridge for forwarding drawer events elsewhere,
// for example into an ECS world. It sees every event, independent of the
// single handler slot per event type.
type EventSink interface {
	EmitEvent(event Event)
}

type eventHandler struct {
	id uint32
	fn func()
}

// eventRegistry holds one handler slot per event type. Registering replaces
// whatever was in the slot.
type eventRegistry struct {
	slots  [eventCount]eventHandler
	nextID uint32
}

// CallbackHandle identifies one registration made with Drawer.On.
type CallbackHandle struct {
	id    uint32
	reg   *eventRegistry
	event EventType
}

// Remove clears the slot if it still holds this registration. A handle whose
// handler has since been replaced is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventCount {
		return
	}
	if h.reg.slots[h.event].id == h.id {
		h.reg.slots[h.event] = eventHandler{}
	}
}

// On sets the handler for evt, replacing any previous one.
func (d *Drawer) On(evt EventType, fn func()) CallbackHandle {
	if evt >= eventCount {
		return CallbackHandle{}
	}
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.slots[evt] = eventHandler{id: id, fn: fn}
	return CallbackHandle{id: id, reg: &d.handlers, event: evt}
}

// Off clears the handler for evt.
func (d *Drawer) Off(evt EventType) {
	if evt < eventCount {
		d.handlers.slots[evt] = eventHandler{}
	}
}

// SetEventSink sets the optional event bridge. Pass nil to detach it.
func (d *Drawer) SetEventSink(sink EventSink) {
	d.sink = sink
}

func (d *Drawer) emit(evt EventType) {
	if fn := d.handlers.slots[evt].fn; fn != nil {
		fn()
	}
	if d.sink != nil {
		d.sink.EmitEvent(Event{Type: evt, Offset: d.renderer.Offset(), Info: d.snap})
	}
}
