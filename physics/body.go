package physics

import (
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/vmath"
)

// RigidBody is one entry in the body set. Force and Torque are per-step
// accumulators, cleared by Step after integration.
type RigidBody struct {
	Kind core.BodyKind

	Position vmath.Vec3
	Rotation vmath.Quat

	LinearVelocity  vmath.Vec3
	AngularVelocity vmath.Vec3

	Force  vmath.Vec3
	Torque vmath.Vec3

	Mass           float64
	LinearDamping  float64
	AngularDamping float64
}

// NewBody returns a body of the given kind at position with neutral state
func NewBody(kind core.BodyKind, position vmath.Vec3) RigidBody {
	return RigidBody{
		Kind:           kind,
		Position:       position,
		Rotation:       vmath.QuatIdentity,
		Mass:           1,
		LinearDamping:  0.05,
		AngularDamping: 0.5,
	}
}

// AddForce accumulates a force at the center of mass for the next step
func (b *RigidBody) AddForce(f vmath.Vec3) {
	b.Force = vmath.V3Add(b.Force, f)
}

// AddForceAtOffset accumulates a force applied at an offset from the center
// of mass, contributing torque as well
func (b *RigidBody) AddForceAtOffset(f, offset vmath.Vec3) {
	b.Force = vmath.V3Add(b.Force, f)
	b.Torque = vmath.V3Add(b.Torque, vmath.V3Cross(offset, f))
}

// AddTorque accumulates torque for the next step
func (b *RigidBody) AddTorque(t vmath.Vec3) {
	b.Torque = vmath.V3Add(b.Torque, t)
}

// Collider is one entry in the collider set, attached to a parent body
// The shape-kind tag lives on the entity's ColliderComponent
type Collider struct {
	Parent      core.BodyHandle
	HalfExtents vmath.Vec3
	Radius      float64
	Friction    float64
	Restitution float64
}

// NewBoxCollider returns a cuboid collider
func NewBoxCollider(halfExtents vmath.Vec3, friction, restitution float64) Collider {
	return Collider{
		HalfExtents: halfExtents,
		Friction:    friction,
		Restitution: restitution,
	}
}

// NewBallCollider returns a spherical collider
func NewBallCollider(radius, friction, restitution float64) Collider {
	return Collider{
		Radius:      radius,
		Friction:    friction,
		Restitution: restitution,
	}
}
