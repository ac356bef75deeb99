package tinsel

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cogentcore.org/core/math32"
)

// ErrConfig is wrapped by every configuration error returned from New.
// Configuration errors are fatal: there is no degraded mode to fall back to.
var ErrConfig = errors.New("invalid config")

// EventSink is the interface for optional event integration.
// When set on an Engine, scene events are forwarded to it from the tick
// goroutine. The tinsel/ecs package provides a Donburi-backed sink.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// SceneEvent carries scene event data for an EventSink.
type SceneEvent struct {
	Type EventType
	// Mode is the scene mode after the event.
	Mode Mode
	// PrevMode is the mode before the event (valid for EventModeChanged).
	PrevMode Mode
	// Gesture is the classification that caused the event (valid for
	// EventGestureDetected and gesture-driven EventModeChanged).
	Gesture Gesture
	// Photo is a photo ordinal: the newly active photo for a change to
	// focus (-1 when there are no photos), or the appended photo for
	// EventPhotoAppended.
	Photo int
	// Time is the engine clock in seconds at emission.
	Time float64
}

// Config controls scene population, gesture classification, and motion.
// Distances share one arbitrary world unit; the defaults put the whole
// scene within roughly 20 units of the origin.
type Config struct {
	// OrnamentCount is the number of ornaments, fixed at startup.
	// At least 1: ornament rank divides by it.
	OrnamentCount int
	// DustCount is the number of dust flakes, fixed at startup. May be 0.
	DustCount int

	// Gesture holds the classifier decision boundaries.
	Gesture Thresholds

	// SmoothFactor is the fraction of the remaining distance to a target
	// covered each tick, in (0, 1]. 1 snaps. Deliberately per-tick rather
	// than per-second: hosts run fixed tick rates and the lag is part of
	// the look.
	SmoothFactor float32
	// PointLerp is the fraction folded into the pointing signal per
	// submitted hand frame, in (0, 1].
	PointLerp float32

	// Tree mode: ornament cone and photo ring.
	TreeRadius      float32 // cone base radius
	TreeHeight      float32 // cone height, centered on y=0
	PhotoRingRadius float32 // photo ring radius around the cone
	PhotoRingY      float32 // photo ring height

	// Scatter mode: orbit shape.
	ScatterRadius      float32 // base orbit radius for ornaments
	ScatterSway        float32 // radial sway amplitude
	ScatterLift        float32 // vertical bob amplitude
	ScatterPhotoRadius float32 // photo ring radius, wider than the orbits

	// Focus mode: spotlight and clearing ring.
	FocusPos         math32.Vector3 // active photo position
	FocusScale       float32        // active photo uniform scale
	FocusShrink      float32        // uniform scale for everything else
	FocusClearRadius float32        // ring radius for everything else

	// Dust kinematics, all per tick.
	DustFall    Range   // downward fall speed drawn once per flake
	DustDrift   float32 // max lateral drift speed per axis
	DustSpread  float32 // side length of the spawn volume in x and z
	DustFloor   float32 // height below which a flake recycles
	DustCeiling float32 // height a recycled flake teleports to

	// Spin is the per-axis self-spin range in radians per tick, drawn
	// once per ornament for scatter mode.
	Spin Range
}

// DefaultConfig returns the configuration used by the stock scene:
// 1500 ornaments, 2500 dust flakes, and geometry sized for a camera
// 10 to 20 units out.
func DefaultConfig() Config {
	return Config{
		OrnamentCount:      1500,
		DustCount:          2500,
		Gesture:            Thresholds{Pinch: 0.05, Fist: 0.25, Open: 0.40},
		SmoothFactor:       0.05,
		PointLerp:          0.25,
		TreeRadius:         3,
		TreeHeight:         8,
		PhotoRingRadius:    4.5,
		PhotoRingY:         1.5,
		ScatterRadius:      6,
		ScatterSway:        2,
		ScatterLift:        3,
		ScatterPhotoRadius: 7,
		FocusPos:           math32.Vec3(0, 1, 2.5),
		FocusScale:         4.5,
		FocusShrink:        0.5,
		FocusClearRadius:   9,
		DustFall:           Range{Min: 0.015, Max: 0.03},
		DustDrift:          0.004,
		DustSpread:         12,
		DustFloor:          -8,
		DustCeiling:        8,
		Spin:               Range{Min: 0.01, Max: 0.05},
	}
}

// validate reports the first problem with the config, wrapped in ErrConfig.
func (c *Config) validate() error {
	switch {
	case c.OrnamentCount < 1:
		return fmt.Errorf("tinsel: ornament count %d, need at least 1: %w", c.OrnamentCount, ErrConfig)
	case c.DustCount < 0:
		return fmt.Errorf("tinsel: dust count %d is negative: %w", c.DustCount, ErrConfig)
	case c.Gesture.Pinch <= 0:
		return fmt.Errorf("tinsel: pinch threshold %g, need > 0: %w", c.Gesture.Pinch, ErrConfig)
	case c.Gesture.Fist <= c.Gesture.Pinch:
		return fmt.Errorf("tinsel: fist threshold %g not above pinch %g: %w", c.Gesture.Fist, c.Gesture.Pinch, ErrConfig)
	case c.Gesture.Open <= c.Gesture.Fist:
		return fmt.Errorf("tinsel: open threshold %g not above fist %g: %w", c.Gesture.Open, c.Gesture.Fist, ErrConfig)
	case c.SmoothFactor <= 0 || c.SmoothFactor > 1:
		return fmt.Errorf("tinsel: smooth factor %g outside (0, 1]: %w", c.SmoothFactor, ErrConfig)
	case c.PointLerp <= 0 || c.PointLerp > 1:
		return fmt.Errorf("tinsel: point lerp %g outside (0, 1]: %w", c.PointLerp, ErrConfig)
	case c.DustCeiling < c.DustFloor:
		return fmt.Errorf("tinsel: dust ceiling %g below floor %g: %w", c.DustCeiling, c.DustFloor, ErrConfig)
	}
	return nil
}

// Engine owns the particle registry and mode state and advances the whole
// scene once per Advance call.
//
// The engine is single-threaded by design: Advance, AppendPhoto, and all
// read accessors belong to one goroutine (the host's tick loop). The sole
// exception is SubmitHand, which may be called from a detector goroutine
// at its own cadence.
type Engine struct {
	cfg   Config
	reg   *Registry
	state ModeState
	clock float64
	sink  EventSink
	debug bool

	// Hand mailbox: the only state shared across goroutines. Latest-wins;
	// a frame submitted twice between ticks simply replaces the first.
	mu         sync.Mutex
	pending    HandFrame
	hasPending bool
}

// New creates an Engine for the given config. The scene starts in tree
// mode with ornaments and dust populated; photos are added afterwards with
// AppendPhoto.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		reg:   NewRegistry(cfg.OrnamentCount, cfg.DustCount),
		state: ModeState{Mode: ModeTree, ActivePhoto: -1},
	}
	e.seed()
	return e, nil
}

// seed draws the per-particle random state: dust spawn positions and fall
// velocities, and ornament spin rates. Ornaments themselves start at the
// origin and ease into the tree over the first ticks, which doubles as the
// scene's assembly moment.
func (e *Engine) seed() {
	half := e.cfg.DustSpread / 2
	lateral := Range{Min: -e.cfg.DustDrift, Max: e.cfg.DustDrift}
	dust := e.reg.Dust()
	for i := range dust {
		p := &dust[i]
		p.Current.Pos = math32.Vec3(
			Range{Min: -half, Max: half}.Random(),
			Range{Min: e.cfg.DustFloor, Max: e.cfg.DustCeiling}.Random(),
			Range{Min: -half, Max: half}.Random(),
		)
		p.Velocity = math32.Vec3(
			lateral.Random(),
			-e.cfg.DustFall.Random(),
			lateral.Random(),
		)
	}

	orn := e.reg.Ornaments()
	for i := range orn {
		p := &orn[i]
		p.SpinRate = math32.Vec3(e.cfg.Spin.Random(), e.cfg.Spin.Random(), e.cfg.Spin.Random())
	}
}

// SubmitHand publishes one hand observation to the engine. Safe to call
// from any goroutine. Only the newest frame since the last tick is kept;
// the detector may run faster or slower than the tick rate without either
// side blocking. Ticks with no submitted frame keep the prior mode state.
func (e *Engine) SubmitHand(frame HandFrame) {
	e.mu.Lock()
	e.pending = frame
	e.hasPending = true
	e.mu.Unlock()
}

// takeHand consumes the pending hand frame, if any.
func (e *Engine) takeHand() (HandFrame, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasPending {
		return HandFrame{}, false
	}
	e.hasPending = false
	return e.pending, true
}

// Advance runs one tick: consume the latest hand frame if one arrived,
// recompute targets for every steered particle, then advance the motion
// smoother. dt is the host's tick duration in seconds and accumulates
// into the engine clock that drives all time-dependent targets.
//
// A tick always completes its target and smoothing passes, hand or no
// hand. Call exactly once per host tick.
func (e *Engine) Advance(dt float64) {
	if dt < 0 {
		panic("tinsel: negative dt")
	}
	e.clock += dt
	tm := float32(e.clock)

	var stats tickStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	if frame, ok := e.takeHand(); ok {
		stats.gesture = e.applyHand(&frame)
		stats.hadHand = true
	}

	if e.debug {
		stats.handTime = time.Since(t0)
		t0 = time.Now()
	}

	e.retarget(tm)

	if e.debug {
		stats.retargetTime = time.Since(t0)
		t0 = time.Now()
	}

	e.step()

	if e.debug {
		stats.stepTime = time.Since(t0)
		stats.mode = e.state.Mode
		stats.particleCount = e.reg.Len()
		e.debugLog(stats)
	}
}

// applyHand folds one consumed hand frame into the mode state: pointing
// first (reported for every frame regardless of gesture), then the
// classified gesture's transition. Returns the classification.
func (e *Engine) applyHand(frame *HandFrame) Gesture {
	px, py := frame.Pointer()
	e.state.point(px, py, e.cfg.PointLerp)

	g := ClassifyHand(frame, e.cfg.Gesture)
	if g == GestureNone {
		return g
	}
	if e.sink != nil {
		e.sink.EmitEvent(SceneEvent{
			Type:    EventGestureDetected,
			Mode:    e.state.Mode,
			Gesture: g,
			Photo:   -1,
			Time:    e.clock,
		})
	}
	prev, changed := e.state.apply(g)
	if changed {
		if e.sink != nil {
			e.sink.EmitEvent(SceneEvent{
				Type:     EventModeChanged,
				Mode:     e.state.Mode,
				PrevMode: prev,
				Gesture:  g,
				Photo:    activeOrdinal(e.state.ActivePhoto, e.reg.CountOf(KindPhoto)),
				Time:     e.clock,
			})
		}
		if e.debug && e.state.Mode == ModeFocus && e.reg.CountOf(KindPhoto) == 0 {
			debugWarnf("focus entered with no photos; showing clearing ring only")
		}
	}
	return g
}

// AppendPhoto adds a photo particle carrying the given payload (typically
// the host's image handle; the engine never inspects it) and returns its
// ordinal. The photo spawns directly at its current-mode target rather
// than flying out of the origin. Existing particle indices are unaffected,
// though the other photos redistribute around their ring as the count
// changes. Call from the tick goroutine.
func (e *Engine) AppendPhoto(payload any) int {
	p := e.reg.AppendPhoto(payload)
	if fn := targetTable[e.state.Mode][KindPhoto]; fn != nil {
		fn(e, p, float32(e.clock))
		p.Current = p.Target
	}
	if e.sink != nil {
		e.sink.EmitEvent(SceneEvent{
			Type:  EventPhotoAppended,
			Mode:  e.state.Mode,
			Photo: p.Ordinal,
			Time:  e.clock,
		})
	}
	return p.Ordinal
}

// Particles returns every particle in stable creation order for drawing.
// The returned slice MUST NOT be mutated; read it between Advance calls.
func (e *Engine) Particles() []Particle {
	return e.reg.All()
}

// Registry returns the particle registry for rank and by-kind queries.
func (e *Engine) Registry() *Registry {
	return e.reg
}

// State returns a copy of the scene's control state.
func (e *Engine) State() ModeState {
	return e.state
}

// ActivePhotoOrdinal resolves the focus counter against the current photo
// count: the ordinal of the spotlit photo, or -1 if focus was never
// entered or no photos exist.
func (e *Engine) ActivePhotoOrdinal() int {
	return activeOrdinal(e.state.ActivePhoto, e.reg.CountOf(KindPhoto))
}

// Clock returns seconds of accumulated Advance time since engine start.
func (e *Engine) Clock() float64 {
	return e.clock
}

// Config returns a pointer to the engine's config for live tuning.
// Count fields are read once at construction; changing them later has no
// effect on the registry.
func (e *Engine) Config() *Config {
	return &e.cfg
}

// SetEventSink sets the optional event bridge. Pass nil to detach.
// Events are emitted synchronously from the tick goroutine.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick
// timing stats and degenerate-state warnings are logged to stderr and
// script runners narrate their steps.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	globalDebug = enabled
}
