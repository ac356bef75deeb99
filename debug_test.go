package tinsel

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// --- Debug mode ---

func TestDebugMode_TickStatsLogged(t *testing.T) {
	e := newTestEngine(t, 20, 10)
	e.SetDebugMode(true)
	defer e.SetDebugMode(false)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	e.Advance(1.0 / 60.0)

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "[tinsel] hand:") {
		t.Errorf("expected timing line in stderr, got: %q", output)
	}
	if !strings.Contains(output, "mode: tree") {
		t.Errorf("expected mode line in stderr, got: %q", output)
	}
	if !strings.Contains(output, "particles: 30") {
		t.Errorf("expected particle count in stderr, got: %q", output)
	}
}

func TestDebugMode_FocusWithoutPhotosWarning(t *testing.T) {
	e := newTestEngine(t, 10, 0)
	e.SetDebugMode(true)
	defer e.SetDebugMode(false)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	// Pinch with zero photos loaded: focus has nothing to spotlight.
	e.SubmitHand(PinchHand(0.5, 0.5))
	e.Advance(1.0 / 60.0)

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "warning: focus entered with no photos") {
		t.Errorf("expected no-photos warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ScriptNarration(t *testing.T) {
	e := newTestEngine(t, 10, 0)
	e.SetDebugMode(true)
	defer e.SetDebugMode(false)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "open", "frames": 2}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	runner.Step(e)

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "[tinsel] script: open (2 frames)") {
		t.Errorf("expected script narration in stderr, got: %q", output)
	}
}

func TestReleaseMode_SilentTicks(t *testing.T) {
	e := newTestEngine(t, 10, 5)
	e.SetDebugMode(false)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	e.SubmitHand(PinchHand(0.5, 0.5))
	for i := 0; i < 5; i++ {
		e.Advance(1.0 / 60.0)
	}

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)

	if buf.Len() != 0 {
		t.Errorf("release mode should log nothing, got: %q", buf.String())
	}
}
