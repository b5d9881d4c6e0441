package vehicle

import (
	"math"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/parameter"
	"github.com/driftline/driftline/physics"
	"github.com/driftline/driftline/vmath"
)

// PhysicsSystem consumes car-wheel bindings and, for each car with a live
// rigid body, updates suspension and tire state and writes the resulting
// forces onto the body. Integration happens later in Space.Step; this step
// only produces intent.
//
// Per-entity failures are isolated: a stale car or wheel reference, or a
// handle that no longer resolves, skips that entity for the tick without
// affecting the rest.
type PhysicsSystem struct{}

// NewPhysicsSystem creates the vehicle physics step
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// bindingCopy is owned data collected before any mutation begins
type bindingCopy struct {
	car    core.Entity
	wheels []core.Entity
}

// Update runs the per-wheel model for every bound car
func (s *PhysicsSystem) Update(w *engine.World, dt float64) {
	if dt <= 0 {
		return
	}
	space, ok := engine.GetResource[*physics.Space](w.Resources)
	if !ok {
		return
	}

	// Collection pass: copy every binding before touching the space, so no
	// store access overlaps the body mutations below
	entities := w.Components.Bindings.All()
	bindings := make([]bindingCopy, 0, len(entities))
	for _, e := range entities {
		binding, ok := w.Components.Bindings.Get(e)
		if !ok {
			continue
		}
		wheels := make([]core.Entity, len(binding.Wheels))
		copy(wheels, binding.Wheels)
		bindings = append(bindings, bindingCopy{car: binding.Car, wheels: wheels})
	}

	for _, b := range bindings {
		s.updateCar(w, space, b, dt)
	}
}

func (s *PhysicsSystem) updateCar(w *engine.World, space *physics.Space, b bindingCopy, dt float64) {
	// Stale car reference: the whole binding is skipped this tick
	if !w.Alive(b.car) {
		return
	}
	car, ok := w.Components.Cars.Get(b.car)
	if !ok {
		return
	}
	rb, ok := w.Components.RigidBodies.Get(b.car)
	if !ok || rb.Handle.IsNil() {
		return
	}
	body, ok := space.Bodies.Get(rb.Handle)
	if !ok {
		// Handle no longer resolves: no physics this tick
		return
	}

	forward := vmath.QuatRotate(body.Rotation, vmath.UnitZ)
	longSpeed := vmath.V3Dot(body.LinearVelocity, forward)

	// A car without gears gets no drivetrain, same as zero throttle
	gearRatio := 0.0
	if len(car.GearRatios) > 0 {
		gear := car.CurrentGear
		if gear < 0 {
			gear = 0
		} else if gear >= len(car.GearRatios) {
			gear = len(car.GearRatios) - 1
		}
		gearRatio = car.GearRatios[gear]
	}

	poweredCount := 0
	wheelCount := 0
	for _, we := range b.wheels {
		if !w.Alive(we) {
			continue
		}
		if wheel, ok := w.Components.Wheels.Get(we); ok {
			wheelCount++
			if wheel.Powered {
				poweredCount++
			}
		}
	}
	if wheelCount == 0 {
		return
	}

	engineTorque := InterpolateTorque(car.TorqueCurve, car.CurrentRPM)
	driveTorque := engineTorque * gearRatio * car.FinalDriveRatio *
		parameter.TransmissionEfficiency * car.Throttle
	if poweredCount > 0 {
		driveTorque /= float64(poweredCount)
	}

	poweredSpin := 0.0
	for _, we := range b.wheels {
		// Stale wheel entries are skipped silently; the binding is never
		// pruned here
		if !w.Alive(we) {
			continue
		}
		wheel, ok := w.Components.Wheels.Get(we)
		if !ok {
			continue
		}

		s.updateWheel(&wheel, car, body, space, driveTorque, longSpeed, wheelCount, dt)
		w.Components.Wheels.Set(we, wheel)

		if wheel.Powered {
			poweredSpin += wheel.WheelSpeed
		}
	}

	// Read state back onto the car: speed from the body, rpm from the
	// powered wheels through the drivetrain
	car.CurrentSpeed = longSpeed
	if poweredCount > 0 {
		avgSpin := poweredSpin / float64(poweredCount)
		rpm := vmath.Abs(avgSpin) * gearRatio * car.FinalDriveRatio * 60 / (2 * math.Pi)
		car.CurrentRPM = vmath.Clamp(rpm, car.IdleRPM, car.MaxRPM)
	} else {
		car.CurrentRPM = car.IdleRPM
	}
	w.Components.Cars.Set(b.car, car)
}

// updateWheel runs suspension, slip and tire force for one wheel and
// accumulates the result onto the body
func (s *PhysicsSystem) updateWheel(
	wheel *component.WheelComponent,
	car component.CarComponent,
	body *physics.RigidBody,
	space *physics.Space,
	driveTorque float64,
	longSpeed float64,
	wheelCount int,
	dt float64,
) {
	mount := vmath.QuatRotate(body.Rotation, wheel.Position)

	// Suspension: compression from the ground ray, damped-spring force
	maxLen := wheel.SuspensionRestLength + wheel.Radius
	dist, hit := space.RayToGround(vmath.V3Add(body.Position, mount), maxLen)

	prevLength := wheel.SuspensionLength
	if !hit {
		wheel.Grounded = false
		wheel.SuspensionLength = wheel.SuspensionRestLength
		wheel.SuspensionForce = 0
		wheel.SlipRatio = 0
		wheel.SlipAngle = 0
		wheel.LateralForce = 0
		wheel.LongitudinalForce = 0

		// Airborne wheels still spin up under drive torque
		if wheel.Powered {
			wheel.WheelSpeed += driveTorque / parameter.WheelInertia * dt
		}
		return
	}

	wheel.Grounded = true
	length := vmath.Clamp(dist-wheel.Radius,
		wheel.SuspensionRestLength-wheel.SuspensionTravel,
		wheel.SuspensionRestLength)
	compression := wheel.SuspensionRestLength - length
	lengthRate := (length - prevLength) / dt

	normalForce := wheel.SuspensionStiffness*compression - wheel.SuspensionDamping*lengthRate
	if normalForce < 0 {
		normalForce = 0
	}
	wheel.SuspensionLength = length
	wheel.SuspensionForce = normalForce
	body.AddForceAtOffset(vmath.Vec3{Y: normalForce}, mount)

	// Wheel heading: steering wheels apply the car's current steering angle
	// before slip is computed
	heading := vmath.QuatRotate(body.Rotation, vmath.UnitZ)
	if wheel.Steering {
		heading = vmath.QuatRotate(vmath.QuatFromYaw(car.CurrentSteering), heading)
	}
	side := vmath.V3Cross(vmath.UnitY, heading)

	contactVel := vmath.V3Add(body.LinearVelocity,
		vmath.V3Cross(body.AngularVelocity, mount))
	vLong := vmath.V3Dot(contactVel, heading)
	vLat := vmath.V3Dot(contactVel, side)

	// Longitudinal: slip ratio against the epsilon-floored car speed
	surfaceSpeed := wheel.WheelSpeed * wheel.Radius
	denom := math.Max(vmath.Abs(vLong), parameter.SlipSpeedEpsilon)
	wheel.SlipRatio = (surfaceSpeed - vLong) / denom

	mu := wheel.Friction
	longForce := vmath.Clamp(
		wheel.SlipRatio*parameter.LongitudinalStiffness*normalForce,
		-mu*normalForce, mu*normalForce)

	// Lateral: slip angle between wheel heading and contact velocity
	wheel.SlipAngle = math.Atan2(vLat, denom)
	latForce := vmath.Clamp(
		-wheel.SlipAngle*parameter.CorneringStiffness*normalForce,
		-mu*normalForce, mu*normalForce)

	// Friction circle: combined magnitude never exceeds mu * N
	maxForce := mu * normalForce
	if mag := math.Hypot(longForce, latForce); mag > maxForce && mag > 0 {
		scale := maxForce / mag
		longForce *= scale
		latForce *= scale
	}
	wheel.LongitudinalForce = longForce
	wheel.LateralForce = latForce

	// Wheel spin integration: drive torque against traction reaction and
	// braking
	brakeTorque := car.Brake * car.MaxBrakeForce * wheel.Radius / float64(wheelCount)
	if !wheel.Steering {
		brakeTorque += car.Handbrake * car.MaxBrakeForce * wheel.Radius / float64(wheelCount)
	}

	spinTorque := -longForce * wheel.Radius
	if wheel.Powered {
		spinTorque += driveTorque
	}
	spinTorque -= vmath.Sign(wheel.WheelSpeed) * brakeTorque

	wheel.WheelSpeed += spinTorque / parameter.WheelInertia * dt

	// Braking to a stop must not reverse the spin direction
	if brakeTorque > 0 && car.Throttle == 0 &&
		vmath.Sign(wheel.WheelSpeed) != vmath.Sign(vLong) && vmath.Abs(vLong) < parameter.SlipSpeedEpsilon {
		wheel.WheelSpeed = 0
	}

	body.AddForceAtOffset(
		vmath.V3Add(vmath.V3Scale(heading, longForce), vmath.V3Scale(side, latForce)),
		mount)
}
