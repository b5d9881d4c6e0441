package engine

import (
	"sync"

	"github.com/driftline/driftline/core"
)

// World contains all entities and their components using typed stores
// Exclusively owned by the driving thread for the duration of one tick
type World struct {
	mu sync.RWMutex

	// Slot 0 is reserved for core.NilEntity
	generations []uint32
	live        []bool
	freeList    []uint32
	liveCount   int

	// Global singleton resources
	Resources *ResourceStore

	// Typed component stores
	Components ComponentStore

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		generations: make([]uint32, 1),
		live:        make([]bool, 1),
		Resources:   NewResourceStore(),
		Components:  newComponentStore(),
		systems:     make([]System, 0),
	}
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity handle
// Freed slots are reused with a bumped generation
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	var idx uint32
	if n := len(w.freeList); n > 0 {
		idx = w.freeList[n-1]
		w.freeList = w.freeList[:n-1]
	} else {
		idx = uint32(len(w.generations))
		w.generations = append(w.generations, 0)
		w.live = append(w.live, false)
	}
	w.live[idx] = true
	w.liveCount++
	return core.MakeEntity(idx, w.generations[idx])
}

// Alive reports whether the handle still references a live entity
// Every consumer of an entity-to-entity relation must check this before
// dereferencing, rather than assuming referential integrity
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.aliveLocked(e)
}

func (w *World) aliveLocked(e core.Entity) bool {
	idx := e.Index()
	if idx == 0 || int(idx) >= len(w.generations) {
		return false
	}
	return w.live[idx] && w.generations[idx] == e.Generation()
}

// DestroyEntity removes the entity and all its components
// Returns ErrNotFound for dead or stale handles
func (w *World) DestroyEntity(e core.Entity) error {
	w.mu.Lock()
	if !w.aliveLocked(e) {
		w.mu.Unlock()
		return ErrNotFound
	}
	idx := e.Index()
	w.live[idx] = false
	w.generations[idx]++ // Invalidate outstanding handles
	w.freeList = append(w.freeList, idx)
	w.liveCount--
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
	return nil
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.liveCount
}

// Clear removes all entities, components and generation state
// Resources persist; they have process lifetime
func (w *World) Clear() {
	w.mu.Lock()
	w.generations = make([]uint32, 1)
	w.live = make([]bool, 1)
	w.freeList = nil
	w.liveCount = 0
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem appends a system to the fixed execution order
// Order of registration is the order of invocation; there is no
// re-sorting once the loop is running
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, system)
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update invokes every registered system exactly once, in registration
// order, synchronously. A panicking system aborts the whole tick: all
// systems share one mutable world and a partial tick leaves inconsistent
// state, so there is deliberately no isolation between them.
func (w *World) Update(dt float64) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}
}
