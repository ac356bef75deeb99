// Package tinsel is a gesture-driven 3D particle scene engine.
//
// Tinsel simulates a holiday scene of a few thousand particles (tree
// ornaments, falling dust, photo cards) whose motion is steered by hand
// gestures classified from MediaPipe-style hand landmarks. The engine is
// render-agnostic: a host drives it once per tick and reads back particle
// transforms for drawing with whatever renderer it likes. The [view]
// subpackage ships a ready-made [Ebitengine] host.
//
// # Quick start
//
// Create an [Engine], feed it hand frames from your detector, and advance
// it once per tick:
//
//	eng, err := tinsel.New(tinsel.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng.AppendPhoto(photoImage)
//
//	// From the detector goroutine, whenever a hand is seen:
//	eng.SubmitHand(frame)
//
//	// Once per tick, from the host loop:
//	eng.Advance(1.0 / 60.0)
//	for i := range eng.Particles() {
//		p := &eng.Particles()[i]
//		// draw p.Current.Pos / p.Current.Quat / p.Current.Scale
//	}
//
// Or let the view package run the whole loop:
//
//	view.Run(eng, view.RunConfig{Title: "Tinsel", Width: 1280, Height: 720})
//
// # Modes and gestures
//
// The scene is always in one of three modes. A fist gathers the ornaments
// into a conical tree with the photos in a ring around it ([ModeTree]), an
// open palm scatters everything into slow orbits ([ModeScatter]), and a
// pinch pulls the next photo up close ([ModeFocus]). Classification is a
// pure function over 21 hand landmarks; see [ClassifyHand]. Without a hand
// in frame the scene simply keeps doing what it was doing.
//
// # Key features
//
// Engine-side motion smoothing (exponential approach toward per-mode
// targets, quaternion slerp for orientation), per-flake dust kinematics
// with wrap-around recycling, a latest-wins hand mailbox safe to feed from
// a detector goroutine, synthetic hand frames and JSON gesture scripts for
// tests and demos, optional scene events (via [EventSink], with a [Donburi]
// adapter in tinsel/ecs), and an [Ebitengine] reference renderer with
// camera tweens (via [gween]) in tinsel/view.
//
// All 3D math uses [math32] vectors and quaternions.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
// [math32]: https://pkg.go.dev/cogentcore.org/core/math32
package tinsel
