package core

// BodyHandle references a slot in the rigid-body set
// Packed like Entity: low 32 bits index, high 32 bits generation
// The zero value is the "uninitialized" sentinel and never resolves
type BodyHandle uint64

// ColliderHandle references a slot in the collider set
type ColliderHandle uint64

const (
	NilBodyHandle     BodyHandle     = 0
	NilColliderHandle ColliderHandle = 0
)

func MakeBodyHandle(index, generation uint32) BodyHandle {
	return BodyHandle(uint64(generation)<<32 | uint64(index))
}

func MakeColliderHandle(index, generation uint32) ColliderHandle {
	return ColliderHandle(uint64(generation)<<32 | uint64(index))
}

func (h BodyHandle) Index() uint32      { return uint32(h) }
func (h BodyHandle) Generation() uint32 { return uint32(h >> 32) }
func (h BodyHandle) IsNil() bool        { return h.Index() == 0 }

func (h ColliderHandle) Index() uint32      { return uint32(h) }
func (h ColliderHandle) Generation() uint32 { return uint32(h >> 32) }
func (h ColliderHandle) IsNil() bool        { return h.Index() == 0 }

// BodyKind selects how the solver treats a rigid body
type BodyKind uint8

const (
	BodyDynamic BodyKind = iota
	BodyStatic
	BodyKinematic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyStatic:
		return "static"
	case BodyKinematic:
		return "kinematic"
	}
	return "unknown"
}
