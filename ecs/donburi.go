// Package ecs provides ECS adapters for panzoom.
package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for panzoom gesture events.
// Subscribe to this in your ECS systems to receive session, drag, pinch,
// fling and reset transitions.
var GestureEventType = events.NewEventType[panzoom.GestureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Gesture events are published to GestureEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) panzoom.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event panzoom.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
