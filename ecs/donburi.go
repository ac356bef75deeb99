// Package ecs provides ECS adapters for tinsel.
package ecs

import (
	"github.com/phanxgames/tinsel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for tinsel scene events.
// Subscribe to this in your ECS systems to receive mode changes, gesture
// detections, and photo appends.
var SceneEventType = events.NewEventType[tinsel.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Scene events are published to SceneEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tinsel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tinsel.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
