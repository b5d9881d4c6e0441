package core

import "testing"

func TestEntityPacking(t *testing.T) {
	e := MakeEntity(42, 7)

	if e.Index() != 42 {
		t.Errorf("Expected index 42, got %d", e.Index())
	}
	if e.Generation() != 7 {
		t.Errorf("Expected generation 7, got %d", e.Generation())
	}
	if e.IsNil() {
		t.Error("Expected packed entity to be non-nil")
	}
}

func TestEntityPackingExtremes(t *testing.T) {
	e := MakeEntity(0xFFFFFFFF, 0xFFFFFFFF)
	if e.Index() != 0xFFFFFFFF || e.Generation() != 0xFFFFFFFF {
		t.Errorf("Expected lossless packing at the extremes, got %d/%d", e.Index(), e.Generation())
	}
}

func TestNilEntity(t *testing.T) {
	if !NilEntity.IsNil() {
		t.Error("Expected the nil sentinel to be nil")
	}
	if NilEntity.Index() != 0 {
		t.Errorf("Expected nil index 0, got %d", NilEntity.Index())
	}

	// A bumped generation at slot 0 is still nil
	if !MakeEntity(0, 3).IsNil() {
		t.Error("Expected any slot-0 handle to be nil")
	}
}

func TestHandlePacking(t *testing.T) {
	b := MakeBodyHandle(9, 2)
	if b.Index() != 9 || b.Generation() != 2 {
		t.Errorf("Expected 9/2, got %d/%d", b.Index(), b.Generation())
	}
	if !NilBodyHandle.IsNil() {
		t.Error("Expected nil body handle sentinel")
	}

	c := MakeColliderHandle(5, 1)
	if c.Index() != 5 || c.Generation() != 1 {
		t.Errorf("Expected 5/1, got %d/%d", c.Index(), c.Generation())
	}
	if !NilColliderHandle.IsNil() {
		t.Error("Expected nil collider handle sentinel")
	}
}

func TestBodyKindString(t *testing.T) {
	cases := map[BodyKind]string{
		BodyDynamic:   "dynamic",
		BodyStatic:    "static",
		BodyKinematic: "kinematic",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Expected %q, got %q", want, kind.String())
		}
	}
}
