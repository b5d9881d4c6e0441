package component

import "github.com/driftline/driftline/core"

// RigidBodyComponent links an entity to its slot in the rigid-body set
// A nil handle is the explicit "no physics" sentinel: the bridge and the
// vehicle physics step skip such entities without error
type RigidBodyComponent struct {
	Handle core.BodyHandle
	Kind   core.BodyKind
}

// ColliderShape tags the collider geometry attached to a body
type ColliderShape uint8

const (
	ShapeBox ColliderShape = iota
	ShapeBall
	ShapeCapsule
	ShapeConvex
	ShapeHeightfield
	ShapeTrimesh
	ShapeCompound
)

// ColliderComponent links an entity to its slot in the collider set
type ColliderComponent struct {
	Handle core.ColliderHandle
	Shape  ColliderShape
}
