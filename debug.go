package tinsel

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and count metrics.
// Only populated when Engine debug mode is on.
type tickStats struct {
	handTime      time.Duration
	retargetTime  time.Duration
	stepTime      time.Duration
	hadHand       bool
	gesture       Gesture
	mode          Mode
	particleCount int
}

// debugLog prints per-tick timing and scene stats to stderr.
func (e *Engine) debugLog(stats tickStats) {
	if !e.debug {
		return
	}
	total := stats.handTime + stats.retargetTime + stats.stepTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[tinsel] hand: %v | retarget: %v | step: %v | total: %v\n",
		stats.handTime, stats.retargetTime, stats.stepTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[tinsel] mode: %s | hand seen: %t | gesture: %s | particles: %d\n",
		stats.mode, stats.hadHand, stats.gesture, stats.particleCount)
}

// debugWarnf prints a one-line warning to stderr. Callers gate on debug
// mode themselves.
func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[tinsel] warning: "+format+"\n", args...)
}

// globalDebug mirrors the most recently set Engine debug flag so helpers
// without an Engine pointer (script runner narration) can check it
// cheaply. Only valid with a single Engine; multiple Engines with
// differing debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool
