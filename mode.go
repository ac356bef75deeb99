package tinsel

import "cogentcore.org/core/math32"

// ModeState is the scene's control state: the current mode, the smoothed
// pointing signal, and the running focus counter. The engine owns one and
// hands out copies via Engine.State.
type ModeState struct {
	// Mode is the current scene arrangement. Starts as ModeTree.
	Mode Mode
	// HandX and HandY are the smoothed pointing signal in [-1, 1], derived
	// from the hand's position in the image. Hosts typically feed these to
	// a camera for parallax.
	HandX, HandY float32
	// ActivePhoto counts focus entries: -1 until the first pinch, then
	// incremented once per tree/scatter-to-focus edge. It never wraps;
	// resolve it against the photo count with activeOrdinal.
	ActivePhoto int
}

// apply folds one classified gesture into the state and reports the
// previous mode and whether the mode changed. GestureNone changes nothing.
// A pinch while already focused is a no-op, so ActivePhoto advances only
// on the entering edge.
func (s *ModeState) apply(g Gesture) (prev Mode, changed bool) {
	prev = s.Mode
	switch g {
	case GesturePinch:
		if s.Mode != ModeFocus {
			s.ActivePhoto++
			s.Mode = ModeFocus
		}
	case GestureFist:
		s.Mode = ModeTree
	case GestureOpen:
		s.Mode = ModeScatter
	}
	return prev, s.Mode != prev
}

// point folds a raw pointing sample into the smoothed hand signal.
func (s *ModeState) point(x, y, alpha float32) {
	s.HandX = math32.Lerp(s.HandX, x, alpha)
	s.HandY = math32.Lerp(s.HandY, y, alpha)
}

// activeOrdinal resolves a focus counter to a photo ordinal, or -1 when
// focus was never entered or there are no photos to show.
func activeOrdinal(active, photoCount int) int {
	if active < 0 || photoCount == 0 {
		return -1
	}
	return active % photoCount
}
