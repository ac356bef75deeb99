package tinsel

import "cogentcore.org/core/math32"

// targetFunc computes one particle's target transform for the current tick.
// tm is the engine clock in seconds; all angles are radians.
type targetFunc func(e *Engine, p *Particle, tm float32)

// targetTable selects the policy for a (mode, kind) pair. Dust rows are
// nil: dust ignores targets in every mode and moves on its own kinematics.
var targetTable = [numModes][numKinds]targetFunc{
	ModeTree:    {KindOrnament: treeOrnamentTarget, KindPhoto: treePhotoTarget},
	ModeScatter: {KindOrnament: scatterOrnamentTarget, KindPhoto: scatterPhotoTarget},
	ModeFocus:   {KindOrnament: focusRingTarget, KindPhoto: focusPhotoTarget},
}

// retarget recomputes targets for every steered particle. Runs every tick;
// the policies are pure functions of rank, ordinal, clock, and mode state,
// so a dropped tick never leaves stale state behind.
func (e *Engine) retarget(tm float32) {
	parts := e.reg.All()
	for i := range parts {
		p := &parts[i]
		if fn := targetTable[e.state.Mode][p.Kind]; fn != nil {
			fn(e, p, tm)
		}
	}
}

// treeOrnamentTarget winds the ornaments into a slowly turning conical
// helix. Rank t places each ornament along the cone: radius shrinks and
// height rises as t grows, and the 50πt term spreads neighbors around the
// axis. The whole cone precesses at 0.2 rad/s.
func treeOrnamentTarget(e *Engine, p *Particle, tm float32) {
	t := e.reg.Rank(p)
	r := e.cfg.TreeRadius * (1 - t)
	ang := 50*t*math32.Pi + 0.2*tm
	p.Target.Pos = math32.Vec3(
		r*math32.Cos(ang),
		t*e.cfg.TreeHeight-e.cfg.TreeHeight/2,
		r*math32.Sin(ang),
	)
	p.Target.Quat = yaw(ang)
	p.Target.Scale = math32.Vector3Scalar(1)
}

// treePhotoTarget rings the photos around the tree at eye height, drifting
// at 0.1 rad/s, each card yawed to face against its ring angle.
func treePhotoTarget(e *Engine, p *Particle, tm float32) {
	n := e.reg.CountOf(KindPhoto)
	ang := 2*math32.Pi*float32(p.Ordinal)/float32(n) + 0.1*tm
	p.Target.Pos = math32.Vec3(
		e.cfg.PhotoRingRadius*math32.Cos(ang),
		e.cfg.PhotoRingY,
		e.cfg.PhotoRingRadius*math32.Sin(ang),
	)
	p.Target.Quat = yaw(-ang)
	p.Target.Scale = math32.Vector3Scalar(1)
}

// scatterOrnamentTarget puts each ornament on a wide orbit with a per-rank
// radial sway and vertical bob, so the cloud breathes instead of orbiting
// rigidly. Orientation is left alone: scattered ornaments self-spin from
// SpinRate in the smoother rather than chasing a target.
func scatterOrnamentTarget(e *Engine, p *Particle, tm float32) {
	t := e.reg.Rank(p)
	ang := 2*math32.Pi*t + 0.1*tm
	r := e.cfg.ScatterRadius + e.cfg.ScatterSway*math32.Sin(tm+10*t)
	p.Target.Pos = math32.Vec3(
		r*math32.Cos(ang),
		e.cfg.ScatterLift*math32.Sin(0.5*tm+5*t),
		r*math32.Sin(ang),
	)
	p.Target.Scale = math32.Vector3Scalar(1)
}

// scatterPhotoTarget rings the photos wider than in tree mode and drifts
// them the other way, each card slowly turning in place.
func scatterPhotoTarget(e *Engine, p *Particle, tm float32) {
	n := e.reg.CountOf(KindPhoto)
	ang := 2*math32.Pi*float32(p.Ordinal)/float32(n) - 0.05*tm
	p.Target.Pos = math32.Vec3(
		e.cfg.ScatterPhotoRadius*math32.Cos(ang),
		e.cfg.PhotoRingY,
		e.cfg.ScatterPhotoRadius*math32.Sin(ang),
	)
	p.Target.Quat = yaw(tm)
	p.Target.Scale = math32.Vector3Scalar(1)
}

// focusPhotoTarget pulls the active photo to the spotlight position at
// full focus scale with identity orientation; every other photo is pushed
// to the clearing ring. With no photos appended there is no active photo
// and the table never reaches this function.
func focusPhotoTarget(e *Engine, p *Particle, tm float32) {
	if p.Ordinal == activeOrdinal(e.state.ActivePhoto, e.reg.CountOf(KindPhoto)) {
		p.Target.Pos = e.cfg.FocusPos
		p.Target.Quat.SetIdentity()
		p.Target.Scale = math32.Vector3Scalar(e.cfg.FocusScale)
		return
	}
	focusRingTarget(e, p, tm)
}

// focusRingTarget parks a particle on a flat ring outside the spotlight,
// shrunk so it reads as background. Ring angle comes from the particle's
// rank within its own kind, so ornaments and photos distribute evenly.
func focusRingTarget(e *Engine, p *Particle, _ float32) {
	ang := 2 * math32.Pi * e.reg.Rank(p)
	p.Target.Pos = math32.Vec3(
		e.cfg.FocusClearRadius*math32.Cos(ang),
		0,
		e.cfg.FocusClearRadius*math32.Sin(ang),
	)
	p.Target.Quat = yaw(ang)
	p.Target.Scale = math32.Vector3Scalar(e.cfg.FocusShrink)
}
