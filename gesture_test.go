package tinsel

import (
	"testing"

	"cogentcore.org/core/math32"
)

func defaultThresholds() Thresholds {
	return Thresholds{Pinch: 0.05, Fist: 0.25, Open: 0.40}
}

// --- Frame metrics ---

func TestPinchDistance(t *testing.T) {
	var f HandFrame
	f[ThumbTip] = math32.Vec3(0.5, 0.5, 0)
	f[IndexTip] = math32.Vec3(0.5, 0.53, 0.04)
	assertNear(t, "pinch distance", f.PinchDistance(), 0.05)
}

func TestFingerSpread(t *testing.T) {
	var f HandFrame
	f[Wrist] = math32.Vec3(0.5, 0.8, 0)
	f[IndexTip] = math32.Vec3(0.5, 0.5, 0)  // 0.3
	f[MiddleTip] = math32.Vec3(0.5, 0.4, 0) // 0.4
	f[RingTip] = math32.Vec3(0.5, 0.6, 0)   // 0.2
	f[PinkyTip] = math32.Vec3(0.5, 0.7, 0)  // 0.1
	assertNear(t, "spread", f.FingerSpread(), 0.25)
}

func TestPointerRemapsToSigned(t *testing.T) {
	var f HandFrame
	f[MiddleMCP] = math32.Vec3(0.5, 0.5, 0)
	x, y := f.Pointer()
	assertNear(t, "center x", x, 0)
	assertNear(t, "center y", y, 0)

	f[MiddleMCP] = math32.Vec3(1, 0, 0)
	x, y = f.Pointer()
	assertNear(t, "right x", x, 1)
	assertNear(t, "top y", y, -1)

	f[MiddleMCP] = math32.Vec3(0.25, 0.75, 0)
	x, y = f.Pointer()
	assertNear(t, "quarter x", x, -0.5)
	assertNear(t, "quarter y", y, 0.5)
}

// --- Classification ---

func TestClassifyPresets(t *testing.T) {
	th := defaultThresholds()
	tests := []struct {
		name  string
		frame HandFrame
		want  Gesture
	}{
		{"pinch", PinchHand(0.5, 0.5), GesturePinch},
		{"fist", FistHand(0.5, 0.5), GestureFist},
		{"open", OpenHand(0.5, 0.5), GestureOpen},
		{"point", PointHand(0.5, 0.5), GestureNone},
	}
	for _, tt := range tests {
		if got := ClassifyHand(&tt.frame, th); got != tt.want {
			t.Errorf("%s frame classified as %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassifyPresetsOffCenter(t *testing.T) {
	// Classification must not depend on where the hand sits in the image.
	th := defaultThresholds()
	for _, pos := range [][2]float32{{0.1, 0.1}, {0.9, 0.2}, {0.3, 0.9}} {
		f := PinchHand(pos[0], pos[1])
		if got := ClassifyHand(&f, th); got != GesturePinch {
			t.Errorf("pinch at (%v, %v) classified as %s", pos[0], pos[1], got)
		}
	}
}

func TestClassifyPinchBeatsFist(t *testing.T) {
	// A pinch with every finger curled is both pinch-tight and fist-tight.
	// The pinch check runs first, so pinch wins.
	f := FistHand(0.5, 0.5)
	f[ThumbTip] = f[IndexTip]
	th := defaultThresholds()
	if f.FingerSpread() >= th.Fist {
		t.Fatalf("fixture spread = %v, expected below fist threshold %v", f.FingerSpread(), th.Fist)
	}
	if got := ClassifyHand(&f, th); got != GesturePinch {
		t.Errorf("classified as %s, want pinch to take precedence", got)
	}
}

func TestClassifyDeadZoneIsNone(t *testing.T) {
	// A spread between the fist and open thresholds with no pinch contact
	// matches nothing.
	var f HandFrame
	f[Wrist] = math32.Vec3(0.5, 0.8, 0)
	for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
		f[tip] = math32.Vec3(0.5, 0.48, 0) // spread 0.32
	}
	f[ThumbTip] = math32.Vec3(0.7, 0.8, 0)
	if got := ClassifyHand(&f, defaultThresholds()); got != GestureNone {
		t.Errorf("dead-zone frame classified as %s, want none", got)
	}
}

func TestClassifyThresholdsAreStrict(t *testing.T) {
	th := defaultThresholds()

	// Exactly at the pinch threshold: not a pinch.
	var f HandFrame
	f[Wrist] = math32.Vec3(0.5, 0.8, 0)
	f[ThumbTip] = math32.Vec3(0.5, 0.5, 0)
	for _, tip := range []int{MiddleTip, RingTip, PinkyTip} {
		f[tip] = math32.Vec3(0.5, 0.50, 0) // spread ~0.30, dead zone
	}
	f[IndexTip] = math32.Vec3(0.55, 0.5, 0) // pinch distance exactly 0.05
	if got := ClassifyHand(&f, th); got == GesturePinch {
		t.Error("distance equal to the pinch threshold should not classify as pinch")
	}

	// Exactly at the open threshold: not open.
	var g HandFrame
	g[Wrist] = math32.Vec3(0.5, 0.8, 0)
	for _, tip := range []int{IndexTip, MiddleTip, RingTip, PinkyTip} {
		g[tip] = math32.Vec3(0.5, 0.4, 0) // spread exactly 0.40
	}
	g[ThumbTip] = math32.Vec3(0.8, 0.8, 0)
	if got := ClassifyHand(&g, th); got != GestureNone {
		t.Errorf("spread equal to the open threshold classified as %s, want none", got)
	}
}

func TestSynthPointerPlacement(t *testing.T) {
	// Builders center the middle MCP at the requested image position.
	f := OpenHand(0.25, 0.75)
	x, y := f.Pointer()
	assertNear(t, "x", x, -0.5)
	assertNear(t, "y", y, 0.5)
}
