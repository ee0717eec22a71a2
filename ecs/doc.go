// Package ecs forwards drawer events into a [Donburi] world.
//
// Usage:
//
//	d.SetEventSink(ecs.NewDonburiSink(world))
//
// Subscribe to [DrawerEventType] in your ECS systems and call ProcessEvents
// (or events.ProcessAllEvents) once per tick to receive them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
