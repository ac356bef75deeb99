package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/tinsel"
)

// RunConfig controls the window and input sources for Run.
type RunConfig struct {
	// Title is the window title. Empty uses "tinsel".
	Title string
	// Width and Height are the window size. Zero uses 1280x720.
	Width, Height int

	// Script, when set, replays a gesture script into the engine, one
	// step per tick, until it finishes.
	Script *tinsel.ScriptRunner
	// Keyboard, when true, synthesizes hand frames from held keys:
	// P pinch, F fist, O open, Space a neutral pointing hand. The mouse
	// cursor places the hand in the image.
	Keyboard bool
	// HUD, when true, overlays frame rates and scene state.
	HUD bool
}

// game adapts an engine plus view to the ebiten.Game interface.
type game struct {
	engine  *tinsel.Engine
	view    *View
	hud     *HUD
	cfg     RunConfig
	f12Held bool
}

func (g *game) Update() error {
	if g.cfg.Script != nil && !g.cfg.Script.Done() {
		g.cfg.Script.Step(g.engine)
	}
	if g.cfg.Keyboard {
		g.pollKeyboard()
	}

	// F12 captures a screenshot on the press edge.
	if ebiten.IsKeyPressed(ebiten.KeyF12) {
		if !g.f12Held {
			g.view.Screenshot(g.engine.State().Mode.String())
		}
		g.f12Held = true
	} else {
		g.f12Held = false
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.engine.Advance(dt)
	g.view.Update()
	if g.hud != nil {
		g.hud.Update(dt, g.engine)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// pollKeyboard submits a synthetic hand frame for the held gesture key,
// placed at the mouse cursor. Holding a key submits every tick, matching
// how a detector holds a pose across frames.
func (g *game) pollKeyboard() {
	cx, cy := ebiten.CursorPosition()
	x := clamp01(float32(cx) / float32(g.cfg.Width))
	y := clamp01(float32(cy) / float32(g.cfg.Height))

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyP):
		g.engine.SubmitHand(tinsel.PinchHand(x, y))
	case ebiten.IsKeyPressed(ebiten.KeyF):
		g.engine.SubmitHand(tinsel.FistHand(x, y))
	case ebiten.IsKeyPressed(ebiten.KeyO):
		g.engine.SubmitHand(tinsel.OpenHand(x, y))
	case ebiten.IsKeyPressed(ebiten.KeySpace):
		g.engine.SubmitHand(tinsel.PointHand(x, y))
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Run opens a window and drives the engine at the display tick rate
// until the window closes. It blocks the calling goroutine; detector
// goroutines keep submitting hands through Engine.SubmitHand while it
// runs.
func Run(engine *tinsel.Engine, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "tinsel"
	}
	if cfg.Width == 0 {
		cfg.Width = 1280
	}
	if cfg.Height == 0 {
		cfg.Height = 720
	}

	g := &game{
		engine: engine,
		view:   New(engine),
		cfg:    cfg,
	}
	if cfg.HUD {
		g.hud = NewHUD()
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("tinsel/view: run: %w", err)
	}
	return nil
}
