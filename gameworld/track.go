package gameworld

import (
	"errors"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/physics"
	"github.com/driftline/driftline/vmath"
)

// ErrUnimplemented marks functionality that is declared but not built.
// Returned, never panicked.
var ErrUnimplemented = errors.New("gameworld: not implemented")

// CreateSimpleTrack spawns a straight track of the given length and width:
// one segment, one start/finish checkpoint, four start positions
func CreateSimpleTrack(w *engine.World, length, width float64) core.Entity {
	track := component.TrackComponent{
		Name:   "Simple Track",
		Length: length,
		StartPositions: []vmath.Vec3{
			{},
			{X: 2},
			{X: 4},
			{X: 6},
		},
	}
	trackEntity := engine.With(w.NewEntity(), w.Components.Tracks, track).Build()

	segment := component.TrackSegmentComponent{
		Kind:     component.SegmentStraight,
		Length:   length,
		Width:    width,
		Surface:  component.SurfaceAsphalt,
		Friction: component.SurfaceAsphalt.FrictionCoefficient(),
	}

	rigidBody := component.RigidBodyComponent{Kind: core.BodyStatic}
	collider := component.ColliderComponent{Shape: component.ShapeBox}
	if space, ok := engine.GetResource[*physics.Space](w.Resources); ok {
		body := physics.NewBody(core.BodyStatic, vmath.Zero)
		rigidBody.Handle = space.Bodies.Insert(body)

		box := physics.NewBoxCollider(vmath.Vec3{X: width / 2, Y: 0.05, Z: length / 2}, 1.0, 0.1)
		box.Parent = rigidBody.Handle
		collider.Handle = space.Colliders.Insert(box)
	}

	segmentEntity := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Segments, segment),
		w.Components.Transforms, component.DefaultTransform()),
		w.Components.RigidBodies, rigidBody),
		w.Components.Colliders, collider),
		w.Components.Renders, component.RenderComponent{
			MeshID:     component.MeshSegment,
			MaterialID: component.MaterialAsphalt,
			Visible:    true,
			Scale:      vmath.Vec3{X: width, Y: 1, Z: length},
		}).Build()

	checkpoint := component.CheckpointComponent{
		Width:      width,
		FinishLine: true,
	}
	checkpointEntity := engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Checkpoints, checkpoint),
		w.Components.Transforms, component.DefaultTransform()),
		w.Components.Renders, component.RenderComponent{
			MeshID:     component.MeshCheckpoint,
			MaterialID: component.MaterialDefault,
			Visible:    true,
			Scale:      vmath.Vec3{X: width, Y: 1, Z: 1},
		}).Build()

	w.Components.Tracks.Mutate(trackEntity, func(t *component.TrackComponent) {
		t.Segments = append(t.Segments, segmentEntity)
		t.Checkpoints = append(t.Checkpoints, checkpointEntity)
	})

	return trackEntity
}

// CreateObstacle spawns a static obstacle at the given position
func CreateObstacle(w *engine.World, kind component.ObstacleKind, position vmath.Vec3) core.Entity {
	obstacle := component.ObstacleComponent{Kind: kind}
	switch kind {
	case component.ObstacleCone, component.ObstacleTire:
		obstacle.Destructible = true
		obstacle.Health = 10
	}

	transform := component.DefaultTransform()
	transform.Position = position

	rigidBody := component.RigidBodyComponent{Kind: core.BodyStatic}
	collider := component.ColliderComponent{Shape: component.ShapeBox}
	if space, ok := engine.GetResource[*physics.Space](w.Resources); ok {
		body := physics.NewBody(core.BodyStatic, position)
		rigidBody.Handle = space.Bodies.Insert(body)

		box := physics.NewBoxCollider(vmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, 0.9, 0.3)
		box.Parent = rigidBody.Handle
		collider.Handle = space.Colliders.Insert(box)
	}

	return engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Obstacles, obstacle),
		w.Components.Transforms, transform),
		w.Components.RigidBodies, rigidBody),
		w.Components.Colliders, collider),
		w.Components.Renders, component.RenderComponent{
			MeshID:     obstacleMesh(kind),
			MaterialID: obstacleMaterial(kind),
			Visible:    true,
			Scale:      vmath.Vec3{X: 1, Y: 1, Z: 1},
		}).Build()
}

// DamageObstacle depletes a destructible obstacle's health. When health
// runs out the obstacle is despawned and its body and collider leave the
// physics space. Returns true if the obstacle was destroyed.
// Indestructible obstacles and non-obstacle entities ignore damage.
func DamageObstacle(w *engine.World, e core.Entity, amount float64) bool {
	obstacle, ok := w.Components.Obstacles.Get(e)
	if !ok || !obstacle.Destructible {
		return false
	}

	obstacle.Health -= amount
	if obstacle.Health > 0 {
		w.Components.Obstacles.Set(e, obstacle)
		return false
	}

	if space, ok := engine.GetResource[*physics.Space](w.Resources); ok {
		if rb, ok := w.Components.RigidBodies.Get(e); ok && !rb.Handle.IsNil() {
			space.Bodies.Remove(rb.Handle)
		}
		if col, ok := w.Components.Colliders.Get(e); ok && !col.Handle.IsNil() {
			space.Colliders.Remove(col.Handle)
		}
	}
	w.DestroyEntity(e)
	return true
}

func obstacleMesh(kind component.ObstacleKind) int {
	switch kind {
	case component.ObstacleCone:
		return component.MeshCone
	case component.ObstacleTire:
		return component.MeshTire
	case component.ObstacleTree:
		return component.MeshTree
	case component.ObstacleRock:
		return component.MeshRock
	}
	return component.MeshBarrier
}

func obstacleMaterial(kind component.ObstacleKind) int {
	switch kind {
	case component.ObstacleTire:
		return component.MaterialRubber
	case component.ObstacleTree:
		return component.MaterialWood
	case component.ObstacleRock:
		return component.MaterialStone
	}
	return component.MaterialMetal
}

// LoadTrackFromFile parses a track definition file into entities.
// Not implemented; callers must treat the error as a normal condition.
func LoadTrackFromFile(w *engine.World, path string) (core.Entity, error) {
	return core.NilEntity, ErrUnimplemented
}
