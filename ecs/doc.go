// Package ecs provides ECS adapters for panzoom's gesture event system.
//
// The primary adapter is [NewDonburiSink], which bridges gesture events
// (session start/end, drag, pinch, fling, reset) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	registry.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
