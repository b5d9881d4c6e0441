package vehicle

import (
	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/input"
	"github.com/driftline/driftline/parameter"
	"github.com/driftline/driftline/vmath"
)

// ControlSystem translates the per-tick action map into each car's
// throttle, brake, handbrake, steering target and gear-shift intent.
// It mutates CarComponent runtime fields only; no physics writes.
type ControlSystem struct{}

// NewControlSystem creates the control step
func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

// Update runs the control step for every car entity
func (s *ControlSystem) Update(w *engine.World, dt float64) {
	state, ok := engine.GetResource[*input.ActionState](w.Resources)
	if !ok {
		return
	}

	for _, e := range w.Components.Cars.All() {
		w.Components.Cars.Mutate(e, func(car *component.CarComponent) {
			applyControls(car, state, dt)
		})
	}
}

func applyControls(car *component.CarComponent, state *input.ActionState, dt float64) {
	car.Throttle = state.Value(input.ActionAccelerate)
	car.Brake = state.Value(input.ActionBrake)
	car.Handbrake = state.Value(input.ActionHandbrake)

	target := (state.Value(input.ActionSteerRight) - state.Value(input.ActionSteerLeft)) *
		car.MaxSteeringAngle

	// Exponential approach gives steering weight; snapping inside the
	// epsilon band avoids asymptotic jitter near the target
	if vmath.Abs(target-car.CurrentSteering) > parameter.SteeringSnapEpsilon {
		car.CurrentSteering += (target - car.CurrentSteering) * car.SteeringSpeed * dt
	} else {
		car.CurrentSteering = target
	}

	shiftUp := state.Value(input.ActionShiftUp) > parameter.ShiftThreshold
	shiftDown := state.Value(input.ActionShiftDown) > parameter.ShiftThreshold

	// Level-triggered by default: holding the button shifts every tick it
	// remains pressed. EdgeTriggeredShift requires a fresh press instead.
	fireUp, fireDown := shiftUp, shiftDown
	if car.EdgeTriggeredShift {
		fireUp = shiftUp && !car.PrevShiftUp
		fireDown = shiftDown && !car.PrevShiftDown
	}

	if fireUp && car.CurrentGear < len(car.GearRatios)-1 {
		car.CurrentGear++
	} else if fireDown && car.CurrentGear > 0 {
		car.CurrentGear--
	}

	car.PrevShiftUp = shiftUp
	car.PrevShiftDown = shiftDown
}
