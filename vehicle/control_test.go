package vehicle

import (
	"testing"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/input"
)

func TestSteeringConvergesWithoutOvershoot(t *testing.T) {
	car := component.DefaultCar()
	state := input.NewActionState()
	state.Set(input.ActionSteerRight, 1.0)

	prev := car.CurrentSteering
	for i := 0; i < 300; i++ {
		applyControls(&car, state, 0.016)

		if car.CurrentSteering > car.MaxSteeringAngle {
			t.Fatalf("Steering overshot: %f > %f at tick %d", car.CurrentSteering, car.MaxSteeringAngle, i)
		}
		if car.CurrentSteering < prev {
			t.Fatalf("Steering regressed at tick %d: %f < %f", i, car.CurrentSteering, prev)
		}
		prev = car.CurrentSteering
	}

	if car.CurrentSteering != car.MaxSteeringAngle {
		t.Errorf("Expected steering to settle at %f, got %f", car.MaxSteeringAngle, car.CurrentSteering)
	}
}

func TestSteeringSnapsInsideEpsilon(t *testing.T) {
	car := component.DefaultCar()
	car.CurrentSteering = car.MaxSteeringAngle - 0.005

	state := input.NewActionState()
	state.Set(input.ActionSteerRight, 1.0)
	applyControls(&car, state, 0.016)

	if car.CurrentSteering != car.MaxSteeringAngle {
		t.Errorf("Expected snap to target %f, got %f", car.MaxSteeringAngle, car.CurrentSteering)
	}
}

func TestSteeringReturnsToCenter(t *testing.T) {
	car := component.DefaultCar()
	car.CurrentSteering = car.MaxSteeringAngle

	state := input.NewActionState()
	for i := 0; i < 300; i++ {
		applyControls(&car, state, 0.016)
	}

	if car.CurrentSteering != 0 {
		t.Errorf("Expected steering back at center, got %f", car.CurrentSteering)
	}
}

func TestHeldShiftRepeatsAndClamps(t *testing.T) {
	car := component.DefaultCar()
	state := input.NewActionState()
	state.Set(input.ActionShiftUp, 1.0)

	// Level-triggered by default: a held button shifts once per tick and
	// the gear index clamps at the top
	for i := 0; i < 10; i++ {
		applyControls(&car, state, 0.016)
	}
	if car.CurrentGear != len(car.GearRatios)-1 {
		t.Errorf("Expected top gear %d, got %d", len(car.GearRatios)-1, car.CurrentGear)
	}

	state.Reset()
	state.Set(input.ActionShiftDown, 1.0)
	for i := 0; i < 10; i++ {
		applyControls(&car, state, 0.016)
	}
	if car.CurrentGear != 0 {
		t.Errorf("Expected bottom gear 0, got %d", car.CurrentGear)
	}
}

func TestEdgeTriggeredShiftFiresOncePerPress(t *testing.T) {
	car := component.DefaultCar()
	car.EdgeTriggeredShift = true

	held := input.NewActionState()
	held.Set(input.ActionShiftUp, 1.0)
	for i := 0; i < 10; i++ {
		applyControls(&car, held, 0.016)
	}
	if car.CurrentGear != 1 {
		t.Errorf("Expected a single shift while held, got gear %d", car.CurrentGear)
	}

	// Release, then press again: a fresh edge fires
	released := input.NewActionState()
	applyControls(&car, released, 0.016)
	applyControls(&car, held, 0.016)
	if car.CurrentGear != 2 {
		t.Errorf("Expected gear 2 after second press, got %d", car.CurrentGear)
	}
}

func TestShiftBelowThresholdIgnored(t *testing.T) {
	car := component.DefaultCar()
	state := input.NewActionState()
	state.Set(input.ActionShiftUp, 0.4)

	applyControls(&car, state, 0.016)
	if car.CurrentGear != 0 {
		t.Errorf("Expected no shift below threshold, got gear %d", car.CurrentGear)
	}
}

func TestThrottleHeldAcrossTicks(t *testing.T) {
	car := component.DefaultCar()
	state := input.NewActionState()
	state.Set(input.ActionAccelerate, 1.0)

	for i := 0; i < 60; i++ {
		applyControls(&car, state, 0.016)
		if car.Throttle != 1.0 {
			t.Fatalf("Expected throttle 1.0 at tick %d, got %f", i, car.Throttle)
		}
	}
	if car.CurrentGear != 0 {
		t.Errorf("Expected gear unchanged without shift input, got %d", car.CurrentGear)
	}
}

func TestControlSystemUpdatesAllCars(t *testing.T) {
	world := engine.NewWorld()

	e1 := world.CreateEntity()
	world.Components.Cars.Set(e1, component.DefaultCar())
	e2 := world.CreateEntity()
	world.Components.Cars.Set(e2, component.DefaultCar())

	state := input.NewActionState()
	state.Set(input.ActionBrake, 1.0)
	engine.AddResource(world.Resources, state)

	NewControlSystem().Update(world, 0.016)

	for _, e := range []core.Entity{e1, e2} {
		car, ok := world.Components.Cars.Get(e)
		if !ok {
			t.Fatalf("Expected car component on entity %d", e)
		}
		if car.Brake != 1.0 {
			t.Errorf("Expected brake 1.0 on entity %d, got %f", e, car.Brake)
		}
	}
}

func TestControlSystemNoActionStateIsNoop(t *testing.T) {
	world := engine.NewWorld()
	e := world.CreateEntity()
	car := component.DefaultCar()
	car.Throttle = 0.5
	world.Components.Cars.Set(e, car)

	NewControlSystem().Update(world, 0.016)

	got, _ := world.Components.Cars.Get(e)
	if got.Throttle != 0.5 {
		t.Errorf("Expected throttle untouched without input state, got %f", got.Throttle)
	}
}
