package gameworld

import (
	"testing"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/input"
	"github.com/driftline/driftline/vehicle"
	"github.com/driftline/driftline/vmath"
)

func TestCameraChasesCar(t *testing.T) {
	world := engine.NewWorld()
	InitializePhysics(world)
	vehicle.CreateCar(world, "Test", vmath.Vec3{X: 10, Y: 0.5, Z: 20}, vmath.QuatIdentity)
	cam := CreateCamera(world)

	NewCameraSystem().Update(world, 0.016)

	got, _ := world.Components.Cameras.Get(cam)
	if got.Target != (vmath.Vec3{X: 10, Y: 0.5, Z: 20}) {
		t.Errorf("Expected camera targeting the car, got %v", got.Target)
	}
	// Chase pose sits behind and above the target
	if got.Position.Z >= got.Target.Z || got.Position.Y <= got.Target.Y {
		t.Errorf("Expected camera behind and above the car, got %v", got.Position)
	}
}

func TestCameraWithoutCarStaysPut(t *testing.T) {
	world := engine.NewWorld()
	cam := CreateCamera(world)
	before, _ := world.Components.Cameras.Get(cam)

	NewCameraSystem().Update(world, 0.016)

	after, _ := world.Components.Cameras.Get(cam)
	if before != after {
		t.Errorf("Expected camera untouched without a car, got %v", after)
	}
}

func TestCameraToggleFreezes(t *testing.T) {
	world := engine.NewWorld()
	InitializePhysics(world)
	car := vehicle.CreateCar(world, "Test", vmath.Vec3{Y: 0.5}, vmath.QuatIdentity)
	cam := CreateCamera(world)

	state := input.NewActionState()
	engine.AddResource(world.Resources, state)
	system := NewCameraSystem()

	system.Update(world, 0.016)
	frozen, _ := world.Components.Cameras.Get(cam)

	// Freeze, move the car, expect the camera to hold its pose
	state.Set(input.ActionToggleCamera, 1.0)
	system.Update(world, 0.016)
	state.Reset()

	world.Components.Transforms.Mutate(car, func(tf *component.TransformComponent) {
		tf.Position = vmath.Vec3{X: 50, Y: 0.5, Z: 50}
	})
	system.Update(world, 0.016)

	got, _ := world.Components.Cameras.Get(cam)
	if got != frozen {
		t.Errorf("Expected frozen camera pose %v, got %v", frozen, got)
	}

	// Toggle again: the chase resumes
	state.Set(input.ActionToggleCamera, 1.0)
	system.Update(world, 0.016)

	got, _ = world.Components.Cameras.Get(cam)
	if got.Target.X != 50 {
		t.Errorf("Expected chase resumed toward the car, got %v", got.Target)
	}
}
