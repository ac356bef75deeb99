package tinsel

import "cogentcore.org/core/math32"

// Synthetic hand frames let tests, scripts, and demos drive the engine
// without a detector. Each builder returns a full 21-landmark frame in
// normalized image coordinates, shaped so ClassifyHand reports the named
// gesture under DefaultConfig thresholds. The frame is centered so the
// pointing signal reads ((x-0.5)*2, (y-0.5)*2), identical to a real hand
// whose middle knuckle sits at (x, y).

// PinchHand returns a frame with the thumb and index tips touching and
// the remaining fingers half-curled.
func PinchHand(x, y float32) HandFrame {
	return synthHand(x, y, &pinchOffsets)
}

// FistHand returns a frame with every fingertip curled in toward the
// wrist.
func FistHand(x, y float32) HandFrame {
	return synthHand(x, y, &fistOffsets)
}

// OpenHand returns a frame with all fingers fully extended and spread.
func OpenHand(x, y float32) HandFrame {
	return synthHand(x, y, &openOffsets)
}

// PointHand returns a relaxed half-open frame that classifies as no
// gesture. Use it to move the pointing signal without switching modes.
func PointHand(x, y float32) HandFrame {
	offsets := pinchOffsets
	offsets[ThumbCMC] = openOffsets[ThumbCMC]
	offsets[ThumbMCP] = openOffsets[ThumbMCP]
	offsets[ThumbIP] = openOffsets[ThumbIP]
	offsets[ThumbTip] = openOffsets[ThumbTip]
	return synthHand(x, y, &offsets)
}

// synthHand translates an offset table so the middle finger MCP lands
// exactly at (x, y).
func synthHand(x, y float32, offsets *[NumLandmarks]math32.Vector3) HandFrame {
	var f HandFrame
	wx := x - offsets[MiddleMCP].X
	wy := y - offsets[MiddleMCP].Y
	for i, off := range offsets {
		f[i] = math32.Vec3(wx+off.X, wy+off.Y, off.Z)
	}
	return f
}

// Landmark offsets are relative to the wrist in normalized image units,
// fingers pointing up the image (negative y). Proportions follow what
// MediaPipe reports for a hand filling about half the frame.

var openOffsets = [NumLandmarks]math32.Vector3{
	Wrist:     {X: 0, Y: 0, Z: 0},
	ThumbCMC:  {X: 0.05, Y: -0.03, Z: 0.02},
	ThumbMCP:  {X: 0.11, Y: -0.08, Z: 0.03},
	ThumbIP:   {X: 0.17, Y: -0.13, Z: 0.03},
	ThumbTip:  {X: 0.22, Y: -0.18, Z: 0.03},
	IndexMCP:  {X: 0.06, Y: -0.16, Z: 0},
	IndexPIP:  {X: 0.07, Y: -0.26, Z: 0},
	IndexDIP:  {X: 0.08, Y: -0.35, Z: 0},
	IndexTip:  {X: 0.08, Y: -0.44, Z: 0},
	MiddleMCP: {X: 0.00, Y: -0.17, Z: 0},
	MiddlePIP: {X: 0.00, Y: -0.28, Z: 0},
	MiddleDIP: {X: 0.00, Y: -0.38, Z: 0},
	MiddleTip: {X: 0.00, Y: -0.46, Z: 0},
	RingMCP:   {X: -0.05, Y: -0.16, Z: 0},
	RingPIP:   {X: -0.06, Y: -0.27, Z: 0},
	RingDIP:   {X: -0.07, Y: -0.36, Z: 0},
	RingTip:   {X: -0.08, Y: -0.44, Z: 0},
	PinkyMCP:  {X: -0.10, Y: -0.14, Z: 0},
	PinkyPIP:  {X: -0.12, Y: -0.23, Z: 0},
	PinkyDIP:  {X: -0.14, Y: -0.32, Z: 0},
	PinkyTip:  {X: -0.15, Y: -0.41, Z: 0},
}

var fistOffsets = [NumLandmarks]math32.Vector3{
	Wrist:     {X: 0, Y: 0, Z: 0},
	ThumbCMC:  {X: 0.05, Y: -0.03, Z: 0.02},
	ThumbMCP:  {X: 0.09, Y: -0.06, Z: 0.03},
	ThumbIP:   {X: 0.11, Y: -0.05, Z: 0.02},
	ThumbTip:  {X: 0.12, Y: -0.05, Z: 0.01},
	IndexMCP:  {X: 0.05, Y: -0.15, Z: 0},
	IndexPIP:  {X: 0.06, Y: -0.18, Z: -0.04},
	IndexDIP:  {X: 0.05, Y: -0.15, Z: -0.05},
	IndexTip:  {X: 0.04, Y: -0.13, Z: -0.02},
	MiddleMCP: {X: 0.00, Y: -0.16, Z: 0},
	MiddlePIP: {X: 0.00, Y: -0.19, Z: -0.05},
	MiddleDIP: {X: 0.00, Y: -0.16, Z: -0.06},
	MiddleTip: {X: 0.00, Y: -0.14, Z: -0.03},
	RingMCP:   {X: -0.05, Y: -0.15, Z: 0},
	RingPIP:   {X: -0.05, Y: -0.18, Z: -0.05},
	RingDIP:   {X: -0.05, Y: -0.15, Z: -0.06},
	RingTip:   {X: -0.04, Y: -0.13, Z: -0.03},
	PinkyMCP:  {X: -0.09, Y: -0.13, Z: 0},
	PinkyPIP:  {X: -0.10, Y: -0.15, Z: -0.04},
	PinkyDIP:  {X: -0.09, Y: -0.13, Z: -0.05},
	PinkyTip:  {X: -0.07, Y: -0.11, Z: -0.03},
}

var pinchOffsets = [NumLandmarks]math32.Vector3{
	Wrist:     {X: 0, Y: 0, Z: 0},
	ThumbCMC:  {X: 0.05, Y: -0.03, Z: 0.02},
	ThumbMCP:  {X: 0.10, Y: -0.10, Z: 0.03},
	ThumbIP:   {X: 0.11, Y: -0.20, Z: 0.03},
	ThumbTip:  {X: 0.10, Y: -0.30, Z: 0.02},
	IndexMCP:  {X: 0.06, Y: -0.16, Z: 0},
	IndexPIP:  {X: 0.08, Y: -0.25, Z: 0},
	IndexDIP:  {X: 0.10, Y: -0.29, Z: 0.01},
	IndexTip:  {X: 0.105, Y: -0.305, Z: 0.02},
	MiddleMCP: {X: 0.00, Y: -0.17, Z: 0},
	MiddlePIP: {X: 0.00, Y: -0.27, Z: 0},
	MiddleDIP: {X: 0.00, Y: -0.30, Z: -0.01},
	MiddleTip: {X: 0.00, Y: -0.32, Z: -0.01},
	RingMCP:   {X: -0.05, Y: -0.16, Z: 0},
	RingPIP:   {X: -0.06, Y: -0.24, Z: 0},
	RingDIP:   {X: -0.06, Y: -0.28, Z: -0.01},
	RingTip:   {X: -0.06, Y: -0.30, Z: -0.01},
	PinkyMCP:  {X: -0.10, Y: -0.14, Z: 0},
	PinkyPIP:  {X: -0.11, Y: -0.20, Z: 0},
	PinkyDIP:  {X: -0.11, Y: -0.24, Z: -0.01},
	PinkyTip:  {X: -0.11, Y: -0.27, Z: -0.01},
}
