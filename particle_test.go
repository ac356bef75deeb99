package tinsel

import (
	"testing"

	"cogentcore.org/core/math32"
)

// --- Registry construction ---

func TestRegistryCreationOrder(t *testing.T) {
	r := NewRegistry(4, 3)
	parts := r.All()
	if len(parts) != 7 {
		t.Fatalf("len = %d, want 7", len(parts))
	}
	for i := 0; i < 4; i++ {
		if parts[i].Kind != KindOrnament || parts[i].Ordinal != i {
			t.Errorf("index %d = %s/%d, want ornament/%d", i, parts[i].Kind, parts[i].Ordinal, i)
		}
	}
	for i := 4; i < 7; i++ {
		if parts[i].Kind != KindDust || parts[i].Ordinal != i-4 {
			t.Errorf("index %d = %s/%d, want dust/%d", i, parts[i].Kind, parts[i].Ordinal, i-4)
		}
	}
}

func TestRegistryCounts(t *testing.T) {
	r := NewRegistry(10, 20)
	if got := r.CountOf(KindOrnament); got != 10 {
		t.Errorf("ornaments = %d, want 10", got)
	}
	if got := r.CountOf(KindDust); got != 20 {
		t.Errorf("dust = %d, want 20", got)
	}
	if got := r.CountOf(KindPhoto); got != 0 {
		t.Errorf("photos = %d, want 0", got)
	}
	if r.Len() != 30 {
		t.Errorf("Len = %d, want 30", r.Len())
	}
}

func TestRegistrySubSlices(t *testing.T) {
	r := NewRegistry(5, 4)
	r.AppendPhoto(nil)
	r.AppendPhoto(nil)

	if n := len(r.Ornaments()); n != 5 {
		t.Errorf("Ornaments len = %d, want 5", n)
	}
	if n := len(r.Dust()); n != 4 {
		t.Errorf("Dust len = %d, want 4", n)
	}
	if n := len(r.Photos()); n != 2 {
		t.Errorf("Photos len = %d, want 2", n)
	}
	for i, p := range r.Photos() {
		if p.Kind != KindPhoto || p.Ordinal != i {
			t.Errorf("photo %d = %s/%d", i, p.Kind, p.Ordinal)
		}
	}
}

func TestRegistryStartsAtIdentity(t *testing.T) {
	r := NewRegistry(2, 2)
	for i, p := range r.All() {
		if !p.Current.Quat.IsIdentity() || !p.Target.Quat.IsIdentity() {
			t.Errorf("particle %d quats not identity", i)
		}
		assertVec3(t, "scale", p.Current.Scale, math32.Vec3(1, 1, 1))
	}
}

// --- Rank ---

func TestRankDividesByKindCount(t *testing.T) {
	r := NewRegistry(8, 2)
	orn := r.Ornaments()
	assertNear(t, "first ornament", r.Rank(&orn[0]), 0)
	assertNear(t, "mid ornament", r.Rank(&orn[4]), 0.5)
	assertNear(t, "last ornament", r.Rank(&orn[7]), 7.0/8.0)

	r.AppendPhoto(nil)
	r.AppendPhoto(nil)
	photos := r.Photos()
	assertNear(t, "second photo", r.Rank(&photos[1]), 0.5)
}

func TestRankIsAlwaysBelowOne(t *testing.T) {
	r := NewRegistry(3, 1)
	for i := range r.Ornaments() {
		if rank := r.Rank(&r.Ornaments()[i]); rank < 0 || rank >= 1 {
			t.Errorf("ornament %d rank = %v, want [0, 1)", i, rank)
		}
	}
}

// --- AppendPhoto ---

func TestAppendPhotoOrdinals(t *testing.T) {
	r := NewRegistry(2, 2)
	for i := 0; i < 5; i++ {
		p := r.AppendPhoto(i)
		if p.Ordinal != i {
			t.Errorf("append %d got ordinal %d", i, p.Ordinal)
		}
		if p.Payload.(int) != i {
			t.Errorf("append %d payload = %v", i, p.Payload)
		}
	}
	if r.CountOf(KindPhoto) != 5 {
		t.Errorf("photos = %d, want 5", r.CountOf(KindPhoto))
	}
}

func TestAppendPhotoKeepsIndicesStable(t *testing.T) {
	r := NewRegistry(3, 3)
	before := make([]Kind, r.Len())
	for i, p := range r.All() {
		before[i] = p.Kind
	}

	// Grow well past the preallocated headroom.
	for i := 0; i < photoHeadroom*2; i++ {
		r.AppendPhoto(nil)
	}

	for i, k := range before {
		if r.All()[i].Kind != k {
			t.Fatalf("index %d changed kind from %s to %s", i, k, r.All()[i].Kind)
		}
	}
	if got := r.All()[6].Kind; got != KindPhoto {
		t.Errorf("first appended index kind = %s, want photo", got)
	}
}
