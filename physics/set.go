package physics

import (
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/vmath"
)

// BodySet is an arena of rigid bodies behind generation-stamped handles
// Slot 0 is reserved so the zero handle never resolves
type BodySet struct {
	bodies      []RigidBody
	generations []uint32
	live        []bool
	freeList    []uint32
}

// NewBodySet creates an empty body set
func NewBodySet() *BodySet {
	return &BodySet{
		bodies:      make([]RigidBody, 1),
		generations: make([]uint32, 1),
		live:        make([]bool, 1),
	}
}

// Insert adds a body and returns its handle
func (s *BodySet) Insert(body RigidBody) core.BodyHandle {
	var idx uint32
	if n := len(s.freeList); n > 0 {
		idx = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		s.bodies[idx] = body
	} else {
		idx = uint32(len(s.bodies))
		s.bodies = append(s.bodies, body)
		s.generations = append(s.generations, 0)
		s.live = append(s.live, false)
	}
	s.live[idx] = true
	return core.MakeBodyHandle(idx, s.generations[idx])
}

// Get resolves a handle to the stored body
// The pointer stays valid until the next Insert
func (s *BodySet) Get(h core.BodyHandle) (*RigidBody, bool) {
	idx := h.Index()
	if idx == 0 || int(idx) >= len(s.bodies) ||
		!s.live[idx] || s.generations[idx] != h.Generation() {
		return nil, false
	}
	return &s.bodies[idx], true
}

// Remove frees the slot and invalidates outstanding handles
func (s *BodySet) Remove(h core.BodyHandle) error {
	if _, ok := s.Get(h); !ok {
		return ErrInvalidHandle
	}
	idx := h.Index()
	s.live[idx] = false
	s.generations[idx]++
	s.freeList = append(s.freeList, idx)
	return nil
}

// Count returns the number of live bodies
func (s *BodySet) Count() int {
	n := 0
	for i := 1; i < len(s.live); i++ {
		if s.live[i] {
			n++
		}
	}
	return n
}

// each visits every live body
func (s *BodySet) each(visit func(*RigidBody)) {
	for i := 1; i < len(s.bodies); i++ {
		if s.live[i] {
			visit(&s.bodies[i])
		}
	}
}

// ColliderSet is an arena of colliders behind generation-stamped handles
type ColliderSet struct {
	colliders   []Collider
	generations []uint32
	live        []bool
	freeList    []uint32
}

// NewColliderSet creates an empty collider set
func NewColliderSet() *ColliderSet {
	return &ColliderSet{
		colliders:   make([]Collider, 1),
		generations: make([]uint32, 1),
		live:        make([]bool, 1),
	}
}

// Insert adds a collider and returns its handle
func (s *ColliderSet) Insert(collider Collider) core.ColliderHandle {
	var idx uint32
	if n := len(s.freeList); n > 0 {
		idx = s.freeList[n-1]
		s.freeList = s.freeList[:n-1]
		s.colliders[idx] = collider
	} else {
		idx = uint32(len(s.colliders))
		s.colliders = append(s.colliders, collider)
		s.generations = append(s.generations, 0)
		s.live = append(s.live, false)
	}
	s.live[idx] = true
	return core.MakeColliderHandle(idx, s.generations[idx])
}

// Get resolves a handle to the stored collider
func (s *ColliderSet) Get(h core.ColliderHandle) (*Collider, bool) {
	idx := h.Index()
	if idx == 0 || int(idx) >= len(s.colliders) ||
		!s.live[idx] || s.generations[idx] != h.Generation() {
		return nil, false
	}
	return &s.colliders[idx], true
}

// Remove frees the slot and invalidates outstanding handles
func (s *ColliderSet) Remove(h core.ColliderHandle) error {
	if _, ok := s.Get(h); !ok {
		return ErrInvalidHandle
	}
	idx := h.Index()
	s.live[idx] = false
	s.generations[idx]++
	s.freeList = append(s.freeList, idx)
	return nil
}

// Count returns the number of live colliders
func (s *ColliderSet) Count() int {
	n := 0
	for i := 1; i < len(s.live); i++ {
		if s.live[i] {
			n++
		}
	}
	return n
}

// Space is the world-global physics resource: the paired body and collider
// sets plus the environment the solver integrates against
type Space struct {
	Bodies    *BodySet
	Colliders *ColliderSet

	Gravity vmath.Vec3

	// Ground plane for suspension ray queries and body contact
	GroundY        float64
	GroundFriction float64
}

// NewSpace creates a space with standard gravity and a ground plane at y=0
func NewSpace() *Space {
	return &Space{
		Bodies:         NewBodySet(),
		Colliders:      NewColliderSet(),
		Gravity:        vmath.Vec3{Y: -9.81},
		GroundFriction: 0.7,
	}
}
