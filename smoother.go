package tinsel

import "cogentcore.org/core/math32"

// step advances every particle's smoothed transform by one tick.
//
// Ornaments and photos ease toward their targets by the configured smooth
// factor and never snap, so a mode change reads as everything flying to
// its new arrangement. Two paths bypass that easing: dust moves on its own
// fixed velocity, and scattered ornaments keep their eased position but
// accumulate SpinRate into their orientation instead of chasing a target.
func (e *Engine) step() {
	alpha := e.cfg.SmoothFactor
	scatter := e.state.Mode == ModeScatter
	parts := e.reg.All()
	for i := range parts {
		p := &parts[i]
		switch {
		case p.Kind == KindDust:
			e.stepDust(p)
		case scatter && p.Kind == KindOrnament:
			p.Current.Pos = p.Current.Pos.Lerp(p.Target.Pos, alpha)
			p.Current.Scale = p.Current.Scale.Lerp(p.Target.Scale, alpha)
			spin(p)
		default:
			p.Current.Approach(p.Target, alpha)
		}
	}
}

// stepDust moves a flake by its per-tick velocity and recycles it: a flake
// falling below the floor teleports to the ceiling the same tick, keeping
// the flake count constant without respawning.
func (e *Engine) stepDust(p *Particle) {
	p.Current.Pos.SetAdd(p.Velocity)
	if p.Current.Pos.Y < e.cfg.DustFloor {
		p.Current.Pos.Y = e.cfg.DustCeiling
	}
}

// spin advances a scattered ornament's orientation by its per-tick spin,
// composing in the world frame and renormalizing to keep the quaternion
// unit length over thousands of ticks.
func spin(p *Particle) {
	dq := math32.NewQuatEuler(p.SpinRate)
	p.Current.Quat = dq.Mul(p.Current.Quat)
	p.Current.Quat.Normalize()
}
