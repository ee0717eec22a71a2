package ecs

import (
	"github.com/phanxgames/drawer"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DrawerEventType is the Donburi event type carrying drawer events.
var DrawerEventType = events.NewEventType[drawer.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes every drawer event to
// DrawerEventType in world.
func NewDonburiSink(world donburi.World) drawer.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event drawer.Event) {
	DrawerEventType.Publish(s.world, event)
}
