package physics

import (
	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/vmath"
)

// stagedTransform is owned, copyable data produced by the collection pass
type stagedTransform struct {
	entity   core.Entity
	position vmath.Vec3
	rotation vmath.Quat
}

// SyncTransforms copies body translation and rotation back onto entity
// transforms after a physics step. It runs in three phases so no entity's
// transform is ever read and written in the same borrow window:
//
//  1. collect (entity, handle) pairs by read-only iteration over the
//     rigid-body store, then release it
//  2. resolve each handle against the body set, staging owned copies
//  3. write each staged update through a single-entity mutation
//
// Entities whose handle is the nil sentinel or no longer resolves are
// skipped without error. Every entity with a live handle gets exactly one
// transform update per call, in store insertion order.
func SyncTransforms(w *engine.World) {
	space, ok := engine.GetResource[*Space](w.Resources)
	if !ok {
		return
	}

	// Phase 1: collect
	type pair struct {
		entity core.Entity
		handle core.BodyHandle
	}
	entities := w.Components.RigidBodies.All()
	pairs := make([]pair, 0, len(entities))
	for _, e := range entities {
		rb, ok := w.Components.RigidBodies.Get(e)
		if !ok {
			continue
		}
		pairs = append(pairs, pair{e, rb.Handle})
	}

	// Phase 2: resolve and stage
	staged := make([]stagedTransform, 0, len(pairs))
	for _, p := range pairs {
		if p.handle.IsNil() {
			continue
		}
		body, ok := space.Bodies.Get(p.handle)
		if !ok {
			continue
		}
		staged = append(staged, stagedTransform{
			entity:   p.entity,
			position: body.Position,
			rotation: body.Rotation,
		})
	}

	// Phase 3: write, one entity at a time, preserving scale
	for _, st := range staged {
		w.Components.Transforms.Mutate(st.entity, func(t *component.TransformComponent) {
			t.Position = st.position
			t.Rotation = st.rotation
		})
	}
}
