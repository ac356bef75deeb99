// Package ecs provides ECS adapters for tinsel's scene event system.
//
// The primary adapter is [NewDonburiSink], which bridges tinsel scene
// events (mode changes, gesture detections, photo appends) into a [Donburi]
// world as typed events. Subscribe to [SceneEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
