package engine

import "github.com/driftline/driftline/core"

// EntityBuilder provides a fluent, type-safe interface for constructing
// entities. The entity ID is reserved upfront; components are attached as
// With calls run and the final Build returns the handle.
//
//	entity := With(With(world.NewEntity(),
//	    world.Components.Cars, car),
//	    world.Components.Transforms, transform).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates an EntityBuilder with a reserved entity handle
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With attaches a component of type T to the entity being built
// The store type must match the component type at compile time.
// Panics if called after Build().
func With[T any](eb *EntityBuilder, store *Store[T], comp T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.Set(eb.entity, comp)
	return eb
}

// Build finalizes construction and returns the entity handle
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}
