package component

import "github.com/driftline/driftline/vmath"

// TransformComponent holds world-space placement for an entity
// Written by the rigid-body bridge after each physics step, read by rendering
type TransformComponent struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Scale    vmath.Vec3
}

// DefaultTransform returns an identity transform at the origin
func DefaultTransform() TransformComponent {
	return TransformComponent{
		Rotation: vmath.QuatIdentity,
		Scale:    vmath.Vec3{X: 1, Y: 1, Z: 1},
	}
}
