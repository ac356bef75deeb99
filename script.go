package tinsel

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted gesture sequence against an engine,
// submitting synthetic hand frames tick by tick. Useful for demos and
// automated runs without a camera or detector.
//
// Actions: "pinch", "fist", "open" hold the named pose; "point" holds a
// neutral pose that only moves the pointing signal; "wait" leaves the
// hand out of frame. "frames" is how many ticks the step lasts (default
// 1). "x" and "y" place the hand in normalized image coordinates; a step
// with both omitted (or zero) targets the image center.
type ScriptRunner struct {
	steps  []scriptStep
	cursor int
	frame  HandFrame
	hold   int // remaining ticks submitting frame
	wait   int // remaining hand-absent ticks
	done   bool
}

// validActions lists the step actions LoadScript accepts.
var validActions = map[string]bool{
	"pinch": true,
	"fist":  true,
	"open":  true,
	"point": true,
	"wait":  true,
}

// LoadScript parses a JSON gesture script and returns a ScriptRunner
// ready to drive an engine.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("tinsel: parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("tinsel: parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("tinsel: gesture script step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step in the script has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step feeds the runner's current action into the engine for one tick.
// Call once per tick, before Engine.Advance, so the submitted frame is
// the one that tick consumes.
func (r *ScriptRunner) Step(e *Engine) {
	if r.done {
		return
	}
	// Drain the current hold or wait before advancing the cursor.
	if r.hold > 0 {
		e.SubmitHand(r.frame)
		r.hold--
		r.checkDone()
		return
	}
	if r.wait > 0 {
		r.wait--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	frames := st.Frames
	if frames < 1 {
		frames = 1
	}
	x, y := st.X, st.Y
	if x == 0 && y == 0 {
		x, y = 0.5, 0.5
	}
	if globalDebug {
		_, _ = fmt.Fprintf(os.Stderr, "[tinsel] script: %s (%d frames)\n", st.Action, frames)
	}

	switch st.Action {
	case "pinch":
		r.frame = PinchHand(x, y)
		r.hold = frames
	case "fist":
		r.frame = FistHand(x, y)
		r.hold = frames
	case "open":
		r.frame = OpenHand(x, y)
		r.hold = frames
	case "point":
		r.frame = PointHand(x, y)
		r.hold = frames
	case "wait":
		r.wait = frames
	}

	// Execute the new step's first tick immediately.
	if r.hold > 0 {
		e.SubmitHand(r.frame)
		r.hold--
	} else if r.wait > 0 {
		r.wait--
	}
	r.checkDone()
}

// checkDone marks the runner done once the cursor is exhausted and the
// final step has fully played out.
func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.hold == 0 && r.wait == 0 {
		r.done = true
	}
}
