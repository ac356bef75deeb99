package tinsel

import "cogentcore.org/core/math32"

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// HandFrame holds the 21 hand landmarks of a single detector observation.
// X and Y are normalized image coordinates in [0, 1] with the origin at the
// top-left; Z is relative depth. HandFrame is a value type: submitting one
// to the engine copies it, so the caller may reuse its buffer.
type HandFrame [NumLandmarks]math32.Vector3

// PinchDistance returns the distance between the thumb tip and index tip.
// Small values mean the two fingers are touching.
func (f *HandFrame) PinchDistance() float32 {
	return f[ThumbTip].DistanceTo(f[IndexTip])
}

// FingerSpread returns the mean distance from the wrist to the index,
// middle, ring, and pinky fingertips. Small values mean a closed fist,
// large values an open palm.
func (f *HandFrame) FingerSpread() float32 {
	w := f[Wrist]
	sum := w.DistanceTo(f[IndexTip]) +
		w.DistanceTo(f[MiddleTip]) +
		w.DistanceTo(f[RingTip]) +
		w.DistanceTo(f[PinkyTip])
	return sum / 4
}

// Pointer returns the pointing signal derived from the middle finger MCP:
// each image axis remapped from [0, 1] to [-1, 1]. The signal is reported
// for every frame with a hand, whatever the gesture.
func (f *HandFrame) Pointer() (x, y float32) {
	return (f[MiddleMCP].X - 0.5) * 2, (f[MiddleMCP].Y - 0.5) * 2
}
