// Package ecs provides ECS adapters for layeranim's transition events.
//
// The primary adapter is [NewDonburiSink], which bridges layer events
// (transition installed, removed and completed, value committed by a tap,
// value toggled by a double tap) into a [Donburi] world as typed events.
// Subscribe to [TransitionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
