package tinsel

import "math/rand/v2"

// Kind distinguishes simulation and targeting behavior for a Particle.
// A particle keeps its Kind for life.
type Kind uint8

const (
	KindOrnament Kind = iota // decorative bauble, steered by per-mode targets
	KindDust                 // free-falling flake, ignores targets
	KindPhoto                // photo card, steered by per-mode targets
	numKinds
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOrnament:
		return "ornament"
	case KindDust:
		return "dust"
	case KindPhoto:
		return "photo"
	default:
		return "unknown"
	}
}

// Mode identifies the scene's current arrangement. The engine starts in
// ModeTree and switches modes only in response to classified gestures.
type Mode uint8

const (
	ModeTree    Mode = iota // ornaments form a conical helix, photos ring it
	ModeScatter             // everything drifts in slow orbits
	ModeFocus               // one photo enlarged up front, the rest pushed out
	numModes
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeScatter:
		return "scatter"
	case ModeFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Gesture is the result of classifying a hand frame.
type Gesture uint8

const (
	GestureNone  Gesture = iota // no recognized pose; leaves the mode unchanged
	GesturePinch                // thumb and index tip touching; enters focus
	GestureFist                 // fingertips curled to the wrist; enters tree
	GestureOpen                 // fingers spread wide; enters scatter
)

// String returns the lowercase name of the gesture.
func (g Gesture) String() string {
	switch g {
	case GesturePinch:
		return "pinch"
	case GestureFist:
		return "fist"
	case GestureOpen:
		return "open"
	default:
		return "none"
	}
}

// EventType identifies a kind of scene event delivered to an EventSink.
type EventType uint8

const (
	EventModeChanged     EventType = iota // fires when a gesture switches the mode
	EventGestureDetected                  // fires for every non-none classification
	EventPhotoAppended                    // fires when AppendPhoto grows the registry
)

// Range is a general-purpose min/max range.
// Used by Config for dust fall speeds and ornament spin rates.
type Range struct {
	Min, Max float32
}

// Random returns a random float32 in [Min, Max].
func (r Range) Random() float32 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float32()*(r.Max-r.Min)
}
