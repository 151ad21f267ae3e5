// Package ecs provides ECS adapters for confetti's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which forwards confetti events
// (such as [confetti.EventFading]) into a [Donburi] world as typed events.
// Subscribe to [LifecycleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	c := confetti.New(confetti.Options{Events: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
