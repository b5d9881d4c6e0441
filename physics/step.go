package physics

import (
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/vmath"
)

// Step advances every dynamic body by dt seconds using semi-implicit Euler:
// velocity first, then position. Static and kinematic bodies are not
// integrated. Force and torque accumulators are cleared afterwards, so
// systems re-apply intent every tick.
func (sp *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}

	sp.Bodies.each(func(b *RigidBody) {
		if b.Kind != core.BodyDynamic {
			b.Force = vmath.Zero
			b.Torque = vmath.Zero
			return
		}

		invMass := 0.0
		if b.Mass > 0 {
			invMass = 1.0 / b.Mass
		}

		accel := vmath.V3Add(sp.Gravity, vmath.V3Scale(b.Force, invMass))
		b.LinearVelocity = vmath.V3Add(b.LinearVelocity, vmath.V3Scale(accel, dt))

		// Angular: scalar inertia approximation, enough for an upright car
		angAccel := vmath.V3Scale(b.Torque, invMass)
		b.AngularVelocity = vmath.V3Add(b.AngularVelocity, vmath.V3Scale(angAccel, dt))

		// Damping as exponential-free linear decay
		b.LinearVelocity = vmath.V3Scale(b.LinearVelocity, vmath.Clamp(1-b.LinearDamping*dt, 0, 1))
		b.AngularVelocity = vmath.V3Scale(b.AngularVelocity, vmath.Clamp(1-b.AngularDamping*dt, 0, 1))

		b.Position = vmath.V3Add(b.Position, vmath.V3Scale(b.LinearVelocity, dt))

		if w := vmath.V3Mag(b.AngularVelocity); w > 0 {
			axis := vmath.V3Scale(b.AngularVelocity, 1/w)
			spin := vmath.QuatFromAxisAngle(axis, w*dt)
			b.Rotation = vmath.QuatNormalize(vmath.QuatMul(spin, b.Rotation))
		}

		sp.resolveGroundContact(b, dt)

		b.Force = vmath.Zero
		b.Torque = vmath.Zero
	})
}

// resolveGroundContact clamps a body to the ground plane and applies sliding
// friction. A full broad/narrow phase is out of scope; the plane is the only
// world contact.
func (sp *Space) resolveGroundContact(b *RigidBody, dt float64) {
	if b.Position.Y >= sp.GroundY {
		return
	}

	b.Position.Y = sp.GroundY
	if b.LinearVelocity.Y < 0 {
		b.LinearVelocity.Y = 0
	}

	// Coulomb-ish sliding friction against the plane
	lateral := vmath.Vec3{X: b.LinearVelocity.X, Z: b.LinearVelocity.Z}
	speed := vmath.V3Mag(lateral)
	if speed > 0 {
		decel := sp.GroundFriction * -sp.Gravity.Y * dt
		if decel >= speed {
			b.LinearVelocity.X = 0
			b.LinearVelocity.Z = 0
		} else {
			scale := (speed - decel) / speed
			b.LinearVelocity.X *= scale
			b.LinearVelocity.Z *= scale
		}
	}
}

// RayToGround casts straight down from origin and reports the distance to
// the ground plane. Used by the suspension model.
func (sp *Space) RayToGround(origin vmath.Vec3, maxDist float64) (float64, bool) {
	dist := origin.Y - sp.GroundY
	if dist < 0 {
		return 0, true
	}
	if dist > maxDist {
		return maxDist, false
	}
	return dist, true
}
