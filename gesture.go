package tinsel

// Thresholds holds the classifier's decision boundaries, all in normalized
// image units. Pinch must be the tightest and Open the widest; Config
// validation enforces Pinch < Fist < Open.
type Thresholds struct {
	// Pinch is the thumb-to-index distance below which a pinch is reported.
	Pinch float32
	// Fist is the finger spread below which a fist is reported.
	Fist float32
	// Open is the finger spread above which an open palm is reported.
	Open float32
}

// ClassifyHand classifies a single hand frame into a Gesture.
//
// The checks run in a fixed order and the first match wins: pinch before
// fist before open. A pinch with curled fingers therefore still reports
// GesturePinch even though its spread is fist-like. Frames matching no
// check report GestureNone.
func ClassifyHand(frame *HandFrame, th Thresholds) Gesture {
	if frame.PinchDistance() < th.Pinch {
		return GesturePinch
	}
	spread := frame.FingerSpread()
	if spread < th.Fist {
		return GestureFist
	}
	if spread > th.Open {
		return GestureOpen
	}
	return GestureNone
}
