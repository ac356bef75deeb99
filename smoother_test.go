package tinsel

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestStepEasesTowardTarget(t *testing.T) {
	e := newTestEngine(t, 1, 0)
	orn := &e.Registry().Ornaments()[0]
	orn.Target.Pos = math32.Vec3(10, 0, 0)

	e.step()
	assertNear(t, "first step", orn.Current.Pos.X, 0.5)
	e.step()
	assertNear(t, "second step", orn.Current.Pos.X, 0.5+9.5*0.05)
}

func TestDustFallsByVelocity(t *testing.T) {
	e := newTestEngine(t, 1, 1)
	flake := &e.Registry().Dust()[0]
	flake.Current.Pos = math32.Vec3(1, 2, 3)
	flake.Velocity = math32.Vec3(0.001, -0.02, -0.001)

	e.step()
	assertVec3(t, "after one tick", flake.Current.Pos, math32.Vec3(1.001, 1.98, 2.999))
	assertVec3(t, "velocity is constant", flake.Velocity, math32.Vec3(0.001, -0.02, -0.001))
}

func TestDustRecyclesAtFloor(t *testing.T) {
	e := newTestEngine(t, 1, 1)
	flake := &e.Registry().Dust()[0]
	flake.Current.Pos = math32.Vec3(0, e.Config().DustFloor+0.001, 0)
	flake.Velocity = math32.Vec3(0, -0.02, 0)

	e.step()
	assertNear(t, "recycled height", flake.Current.Pos.Y, e.Config().DustCeiling)

	// The recycled flake keeps falling on the next tick.
	e.step()
	assertNear(t, "falling again", flake.Current.Pos.Y, e.Config().DustCeiling-0.02)
}

func TestDustIgnoresSmoothing(t *testing.T) {
	e := newTestEngine(t, 1, 1)
	flake := &e.Registry().Dust()[0]
	flake.Current.Pos = math32.Vec3(0, 0, 0)
	flake.Velocity = math32.Vec3(0, -0.01, 0)
	flake.Target.Pos = math32.Vec3(100, 100, 100)

	e.step()
	assertVec3(t, "pos", flake.Current.Pos, math32.Vec3(0, -0.01, 0))
}

func TestScatterOrnamentSpins(t *testing.T) {
	e := newTestEngine(t, 1, 0)
	e.state.Mode = ModeScatter
	orn := &e.Registry().Ornaments()[0]
	orn.SpinRate = math32.Vec3(0, 0.1, 0)

	e.step()
	e.step()
	want := math32.Vec3(math32.Cos(0.2), 0, -math32.Sin(0.2))
	assertVec3(t, "spun facing", rotateX(orn.Current.Quat), want)
}

func TestSpinStaysUnitLength(t *testing.T) {
	e := newTestEngine(t, 1, 0)
	e.state.Mode = ModeScatter
	orn := &e.Registry().Ornaments()[0]
	orn.SpinRate = math32.Vec3(0.04, 0.03, 0.05)

	for i := 0; i < 5000; i++ {
		e.step()
	}
	assertNear(t, "quat length", orn.Current.Quat.Length(), 1)
}

func TestTreeModeDoesNotSpin(t *testing.T) {
	e := newTestEngine(t, 1, 0)
	orn := &e.Registry().Ornaments()[0]
	orn.SpinRate = math32.Vec3(1, 1, 1)

	e.step()
	if !orn.Current.Quat.IsIdentity() {
		t.Error("tree mode applied self-spin; only scatter should")
	}
}

func TestScatterPhotosStillEase(t *testing.T) {
	e := newTestEngine(t, 1, 0)
	e.AppendPhoto(nil)
	e.state.Mode = ModeScatter
	photo := &e.Registry().Photos()[0]
	photo.SpinRate = math32.Vec3(0, 5, 0)
	photo.Current.Quat.SetIdentity()
	photo.Target.Quat.SetIdentity()

	e.step()
	if !photo.Current.Quat.IsIdentity() {
		t.Error("photo picked up self-spin; spin is an ornament behavior")
	}
}
