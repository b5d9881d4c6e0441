package vehicle

import (
	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/parameter"
	"github.com/driftline/driftline/physics"
	"github.com/driftline/driftline/vmath"
)

// CreateCar spawns a complete car entity with four wheels and the binding
// relation, using the default tuning
func CreateCar(w *engine.World, name string, position vmath.Vec3, rotation vmath.Quat) core.Entity {
	car := component.DefaultCar()
	car.Name = name
	return CreateCarFrom(w, car, position, rotation)
}

// CreateCarFrom spawns a car from explicit tuning. The physics Space
// resource is the precondition for a physics-backed car; when it is absent
// the car spawns with nil handles and simply has no physics.
func CreateCarFrom(w *engine.World, car component.CarComponent, position vmath.Vec3, rotation vmath.Quat) core.Entity {
	transform := component.DefaultTransform()
	transform.Position = position
	transform.Rotation = rotation

	rigidBody := component.RigidBodyComponent{Kind: core.BodyDynamic}
	collider := component.ColliderComponent{Shape: component.ShapeBox}

	if space, ok := engine.GetResource[*physics.Space](w.Resources); ok {
		body := physics.NewBody(core.BodyDynamic, position)
		body.Rotation = rotation
		body.Mass = car.Mass
		rigidBody.Handle = space.Bodies.Insert(body)

		box := physics.NewBoxCollider(vmath.Vec3{X: 1.0, Y: 0.5, Z: 2.0}, 0.7, 0.2)
		box.Parent = rigidBody.Handle
		collider.Handle = space.Colliders.Insert(box)
	}

	carEntity := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
		w.Components.Cars, car),
		w.Components.Transforms, transform),
		w.Components.RigidBodies, rigidBody),
		w.Components.Colliders, collider),
		w.Components.Renders, component.RenderComponent{
			MeshID:     component.MeshCarBody,
			MaterialID: component.MaterialCarRed,
			Visible:    true,
			Scale:      vmath.Vec3{X: 1, Y: 1, Z: 1},
		}).Build()

	wheels := createWheels(w, car)

	engine.With(w.NewEntity(), w.Components.Bindings, component.CarWheelBindingComponent{
		Car:    carEntity,
		Wheels: wheels,
	}).Build()

	return carEntity
}

// createWheels spawns the four wheel entities: front pair steering, rear
// pair powered
func createWheels(w *engine.World, car component.CarComponent) []core.Entity {
	halfTrack := parameter.CarTrackWidth / 2
	halfBase := car.WheelBase / 2

	mounts := []vmath.Vec3{
		{X: -halfTrack, Z: halfBase},  // front left
		{X: halfTrack, Z: halfBase},   // front right
		{X: -halfTrack, Z: -halfBase}, // rear left
		{X: halfTrack, Z: -halfBase},  // rear right
	}

	wheels := make([]core.Entity, 0, len(mounts))
	for i, mount := range mounts {
		front := i < 2

		wheel := component.DefaultWheel()
		wheel.Position = mount
		wheel.Steering = front
		wheel.Powered = !front // rear wheel drive

		transform := component.DefaultTransform()
		transform.Position = mount

		entity := engine.With(engine.With(engine.With(engine.With(engine.With(w.NewEntity(),
			w.Components.Wheels, wheel),
			w.Components.Transforms, transform),
			w.Components.RigidBodies, component.RigidBodyComponent{Kind: core.BodyDynamic}),
			w.Components.Colliders, component.ColliderComponent{Shape: component.ShapeBall}),
			w.Components.Renders, component.RenderComponent{
				MeshID:     component.MeshWheel,
				MaterialID: component.MaterialRubber,
				Visible:    true,
				Scale:      vmath.Vec3{X: 1, Y: 1, Z: 1},
			}).Build()
		wheels = append(wheels, entity)
	}
	return wheels
}
