package ecs

import (
	"github.com/phanxgames/layeranim"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for layeranim transition and
// gesture events. Subscribe to this in your ECS systems to react to
// installs, completions, interruptions and toggles.
var TransitionEventType = events.NewEventType[layeranim.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to TransitionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) layeranim.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event layeranim.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
