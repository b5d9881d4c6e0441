package engine

import (
	"sort"

	"github.com/driftline/driftline/core"
)

// QueryBuilder finds entities by component intersection using the sparse
// set pattern from stores. Execution starts with the smallest store and
// filters through the rest.
//
// Queries return owned entity slices: the caller may mutate stores or the
// world freely while iterating the result. Systems that need a cross-entity
// read plus a resource write rely on this to split into a collection pass
// and a mutation pass.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
//	entities := world.Query().
//	    With(world.Components.Cars).
//	    With(world.Components.RigidBodies).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute runs the query and returns all live entities present in every
// specified store. Repeated calls return the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes Has() checks
	sort.Slice(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for i := 1; i < len(qb.stores); i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	// Drop entities despawned since their components were removed mid-tick
	filtered := candidates[:0]
	for _, e := range candidates {
		if qb.world.Alive(e) {
			filtered = append(filtered, e)
		}
	}

	qb.results = filtered
	return qb.results
}
