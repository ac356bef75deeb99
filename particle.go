package tinsel

import "cogentcore.org/core/math32"

// Particle is one element of the scene. It is a flat struct on purpose:
// the engine iterates thousands of these per tick and per-kind behavior is
// selected by the Kind tag, not by interface dispatch.
//
// Current is mutated only by the motion smoother and Target only by the
// mode's target policy. Hosts read Current for drawing and MUST NOT write
// any field.
type Particle struct {
	// Kind selects targeting and smoothing behavior. Fixed for life.
	Kind Kind
	// Ordinal is the particle's creation rank within its kind, starting
	// at 0. For ornaments it derives the normalized rank that shapes the
	// tree helix and scatter orbits.
	Ordinal int
	// Current is the smoothed transform actually on screen.
	Current Transform
	// Target is where the current mode wants the particle.
	Target Transform
	// Velocity is the per-tick displacement for dust. Fixed at spawn;
	// unused by other kinds.
	Velocity math32.Vector3
	// SpinRate is the per-tick self-rotation in radians per axis for
	// ornaments in scatter mode. Fixed at spawn; unused by other kinds.
	SpinRate math32.Vector3
	// Payload is an opaque host handle, typically the photo's image.
	// The engine never touches it.
	Payload any
}

// photoHeadroom is the extra capacity reserved for appended photos so the
// first few AppendPhoto calls don't reallocate the registry.
const photoHeadroom = 32

// Registry owns every particle in one flat slice in creation order:
// ornaments first, then dust, then photos in append order. Slice indices
// are stable for the life of the registry; photos only ever grow the tail.
type Registry struct {
	particles []Particle
	ornaments int
	dust      int
	photos    int
}

// NewRegistry creates a registry pre-populated with the given ornament and
// dust counts, all at the identity transform. Photos start empty and are
// added with AppendPhoto.
func NewRegistry(ornaments, dust int) *Registry {
	r := &Registry{
		particles: make([]Particle, ornaments+dust, ornaments+dust+photoHeadroom),
		ornaments: ornaments,
		dust:      dust,
	}
	for i := range r.particles {
		p := &r.particles[i]
		if i < ornaments {
			p.Kind = KindOrnament
			p.Ordinal = i
		} else {
			p.Kind = KindDust
			p.Ordinal = i - ornaments
		}
		p.Current = IdentityTransform()
		p.Target = IdentityTransform()
	}
	return r
}

// All returns the backing particle slice in stable creation order.
// The slice and its elements MUST NOT be mutated by callers; pointers into
// it are invalidated by AppendPhoto.
func (r *Registry) All() []Particle {
	return r.particles
}

// Len returns the total particle count.
func (r *Registry) Len() int {
	return len(r.particles)
}

// CountOf returns the number of particles of the given kind.
func (r *Registry) CountOf(k Kind) int {
	switch k {
	case KindOrnament:
		return r.ornaments
	case KindDust:
		return r.dust
	case KindPhoto:
		return r.photos
	default:
		return 0
	}
}

// Ornaments returns the ornament sub-slice. Same aliasing rules as All.
func (r *Registry) Ornaments() []Particle {
	return r.particles[:r.ornaments]
}

// Dust returns the dust sub-slice. Same aliasing rules as All.
func (r *Registry) Dust() []Particle {
	return r.particles[r.ornaments : r.ornaments+r.dust]
}

// Photos returns the photo sub-slice in append order. Same aliasing rules
// as All.
func (r *Registry) Photos() []Particle {
	return r.particles[r.ornaments+r.dust:]
}

// Rank returns the particle's normalized rank within its kind, in [0, 1):
// ordinal divided by the kind's count. Ornament rank is load-bearing: the
// tree helix and scatter orbits are functions of it.
func (r *Registry) Rank(p *Particle) float32 {
	n := r.CountOf(p.Kind)
	if n == 0 {
		return 0
	}
	return float32(p.Ordinal) / float32(n)
}

// AppendPhoto adds a photo particle carrying the given payload and returns
// a pointer to it, valid until the next AppendPhoto. The new photo's
// ordinal is the previous photo count; existing indices are unaffected.
func (r *Registry) AppendPhoto(payload any) *Particle {
	r.particles = append(r.particles, Particle{
		Kind:    KindPhoto,
		Ordinal: r.photos,
		Current: IdentityTransform(),
		Target:  IdentityTransform(),
		Payload: payload,
	})
	r.photos++
	return &r.particles[len(r.particles)-1]
}
