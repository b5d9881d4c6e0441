package core

// Entity is a generation-stamped handle to a world slot
// Low 32 bits are the slot index, high 32 bits the generation
// A destroyed slot bumps its generation, so stale handles stop resolving
// instead of aliasing whatever entity reuses the slot
type Entity uint64

// NilEntity never resolves; slot 0 is reserved for it
const NilEntity Entity = 0

// MakeEntity packs an index and generation into a handle
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the generation stamp
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsNil reports whether the handle is the reserved sentinel
func (e Entity) IsNil() bool {
	return e.Index() == 0
}
