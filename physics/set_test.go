package physics

import (
	"testing"

	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/vmath"
)

func TestBodySetInsertGet(t *testing.T) {
	set := NewBodySet()

	h := set.Insert(NewBody(core.BodyDynamic, vmath.Vec3{Y: 2}))
	if h.IsNil() {
		t.Fatal("Expected a non-nil handle")
	}

	body, ok := set.Get(h)
	if !ok {
		t.Fatal("Expected handle to resolve")
	}
	if body.Position.Y != 2 {
		t.Errorf("Expected position Y 2, got %f", body.Position.Y)
	}
	if set.Count() != 1 {
		t.Errorf("Expected count 1, got %d", set.Count())
	}
}

func TestBodySetRemoveInvalidatesHandle(t *testing.T) {
	set := NewBodySet()
	h := set.Insert(NewBody(core.BodyDynamic, vmath.Zero))

	if err := set.Remove(h); err != nil {
		t.Errorf("Expected remove to succeed, got %v", err)
	}
	if _, ok := set.Get(h); ok {
		t.Error("Expected stale handle to miss")
	}
	if err := set.Remove(h); err != ErrInvalidHandle {
		t.Errorf("Expected ErrInvalidHandle on double remove, got %v", err)
	}

	// Reused slot gets a fresh generation; the old handle stays dead
	h2 := set.Insert(NewBody(core.BodyStatic, vmath.Zero))
	if h2.Index() != h.Index() {
		t.Errorf("Expected slot reuse, got index %d vs %d", h2.Index(), h.Index())
	}
	if _, ok := set.Get(h); ok {
		t.Error("Expected old handle dead after slot reuse")
	}
	if _, ok := set.Get(h2); !ok {
		t.Error("Expected new handle to resolve")
	}
}

func TestNilBodyHandleNeverResolves(t *testing.T) {
	set := NewBodySet()
	set.Insert(NewBody(core.BodyDynamic, vmath.Zero))

	if _, ok := set.Get(core.NilBodyHandle); ok {
		t.Error("Expected the nil handle to miss")
	}
}

func TestColliderSetLifecycle(t *testing.T) {
	set := NewColliderSet()

	box := NewBoxCollider(vmath.Vec3{X: 1, Y: 1, Z: 1}, 0.8, 0.1)
	h := set.Insert(box)

	c, ok := set.Get(h)
	if !ok {
		t.Fatal("Expected collider handle to resolve")
	}
	if c.Friction != 0.8 {
		t.Errorf("Expected friction 0.8, got %f", c.Friction)
	}

	set.Remove(h)
	if _, ok := set.Get(h); ok {
		t.Error("Expected removed collider handle to miss")
	}
	if set.Count() != 0 {
		t.Errorf("Expected count 0, got %d", set.Count())
	}
}
