package tinsel

import "cogentcore.org/core/math32"

// Transform is a 3D position, orientation, and scale.
// Particles carry two of these: the smoothed on-screen transform and the
// target the current mode wants the particle to reach.
type Transform struct {
	Pos   math32.Vector3
	Quat  math32.Quat
	Scale math32.Vector3
}

// IdentityTransform returns a transform at the origin with identity
// orientation and unit scale.
func IdentityTransform() Transform {
	t := Transform{Scale: math32.Vector3Scalar(1)}
	t.Quat.SetIdentity()
	return t
}

// SetIdentity resets the transform to the origin with identity orientation
// and unit scale.
func (t *Transform) SetIdentity() {
	t.Pos = math32.Vector3{}
	t.Quat.SetIdentity()
	t.Scale = math32.Vector3Scalar(1)
}

// Approach moves the transform a fraction of the way toward target:
// position and scale by linear interpolation, orientation by spherical
// interpolation. alpha is the per-step fraction in [0, 1]; 1 snaps.
// The step is deliberately not time-corrected. Callers apply it exactly
// once per tick so convergence speed is a function of tick rate.
func (t *Transform) Approach(target Transform, alpha float32) {
	t.Pos = t.Pos.Lerp(target.Pos, alpha)
	t.Scale = t.Scale.Lerp(target.Scale, alpha)
	t.Quat.Slerp(target.Quat, alpha)
}

// yaw returns a rotation of angle radians about the world Y axis.
func yaw(angle float32) math32.Quat {
	return math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), angle)
}
