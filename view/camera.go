package view

import (
	"cogentcore.org/core/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera orbits the scene origin. Azimuth and elevation ease toward the
// hand-parallax offsets each frame; distance is tweened between per-mode
// framing presets.
type Camera struct {
	// Azimuth is the orbit angle around the y axis in radians.
	Azimuth float32
	// Elevation is the angle above the horizontal plane in radians.
	Elevation float32
	// Distance is the orbit radius from Target.
	Distance float32
	// Target is the world-space point the camera looks at.
	Target math32.Vector3
	// FOV is the vertical field of view in radians.
	FOV float32

	// ParallaxSwing is the azimuth offset in radians for a hand at the
	// image edge. ParallaxRise is the elevation counterpart.
	ParallaxSwing float32
	ParallaxRise  float32

	azimuthGoal   float32
	elevationGoal float32
	followLerp    float32

	pushTween *gween.Tween

	eye     math32.Vector3
	right   math32.Vector3
	up      math32.Vector3
	forward math32.Vector3
	dirty   bool
}

// NewCamera creates a Camera with the stock framing: slightly above the
// scene, far enough out to hold the whole tree.
func NewCamera() *Camera {
	return &Camera{
		Distance:      14,
		Elevation:     0.12,
		Target:        math32.Vec3(0, 0.5, 0),
		FOV:           math32.DegToRad(50),
		ParallaxSwing: 0.6,
		ParallaxRise:  0.35,
		followLerp:    0.08,
		dirty:         true,
	}
}

// Parallax sets the orbit goal from the smoothed pointing signal, both
// components in [-1, 1]. The camera eases toward the goal over the
// following frames rather than snapping.
func (c *Camera) Parallax(handX, handY float32) {
	c.azimuthGoal = handX * c.ParallaxSwing
	c.elevationGoal = 0.12 - handY*c.ParallaxRise
}

// PushTo animates the orbit distance to the given value over duration
// seconds. A new push replaces any push still in flight.
func (c *Camera) PushTo(distance float32, duration float32, easeFn ease.TweenFunc) {
	c.pushTween = gween.New(c.Distance, distance, duration, easeFn)
}

// update advances parallax easing and the distance tween. Called once per
// frame from View.Update.
func (c *Camera) update(dt float32) {
	prevAz, prevEl, prevDist := c.Azimuth, c.Elevation, c.Distance

	c.Azimuth += (c.azimuthGoal - c.Azimuth) * c.followLerp
	c.Elevation += (c.elevationGoal - c.Elevation) * c.followLerp

	if c.pushTween != nil {
		val, done := c.pushTween.Update(dt)
		c.Distance = val
		if done {
			c.pushTween = nil
		}
	}

	if c.Azimuth != prevAz || c.Elevation != prevEl || c.Distance != prevDist {
		c.dirty = true
	}
}

// computeBasis refreshes the cached eye position and view basis vectors.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	cosEl := math32.Cos(c.Elevation)
	c.eye = c.Target.Add(math32.Vec3(
		c.Distance*cosEl*math32.Sin(c.Azimuth),
		c.Distance*math32.Sin(c.Elevation),
		c.Distance*cosEl*math32.Cos(c.Azimuth),
	))
	c.forward = c.Target.Sub(c.eye).Normal()
	c.right = c.forward.Cross(math32.Vec3(0, 1, 0)).Normal()
	c.up = c.right.Cross(c.forward)
}

// Eye returns the camera's world-space position.
func (c *Camera) Eye() math32.Vector3 {
	c.computeBasis()
	return c.eye
}

// MarkDirty forces a recomputation of the view basis. Call this after
// modifying Azimuth, Elevation, Distance, or Target directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// Project maps a world-space point to screen coordinates. depth is the
// distance along the view axis; ok is false for points at or behind the
// near plane, which must not be drawn.
func (c *Camera) Project(p math32.Vector3, screenW, screenH float32) (sx, sy, depth float32, ok bool) {
	c.computeBasis()

	rel := p.Sub(c.eye)
	z := rel.Dot(c.forward)
	if z <= nearPlane {
		return 0, 0, 0, false
	}

	focal := screenH / (2 * math32.Tan(c.FOV/2))
	sx = screenW/2 + focal*rel.Dot(c.right)/z
	sy = screenH/2 - focal*rel.Dot(c.up)/z
	return sx, sy, z, true
}

// focalLength returns the projection scale for the given screen height:
// a unit-length segment at depth 1 spans this many pixels.
func (c *Camera) focalLength(screenH float32) float32 {
	return screenH / (2 * math32.Tan(c.FOV/2))
}

const nearPlane = 0.1
