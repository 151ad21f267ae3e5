package ecs

import (
	"github.com/phanxgames/confetti"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for confetti lifecycle events.
var LifecycleEventType = events.NewEventType[confetti.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on LifecycleEventType and delivered by ProcessEvents, so a fading
// event raised mid-tick reaches systems on their next pass.
func NewDonburiSink(world donburi.World) confetti.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Dispatch(ev confetti.Event) {
	LifecycleEventType.Publish(s.world, ev)
}
