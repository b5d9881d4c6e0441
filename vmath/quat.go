package vmath

import "math"

// Quat is a unit quaternion for body orientation
// Components follow the (x, y, z, w) convention with w as the scalar part
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians around axis
// Axis must be normalized
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(half),
	}
}

// QuatFromYaw rotates around the world up axis, the only free rotation
// an upright car body uses
func QuatFromYaw(yaw float64) Quat {
	return QuatFromAxisAngle(UnitY, yaw)
}

func QuatMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QuatNormalize renormalizes after drift from repeated multiplication
func QuatNormalize(q Quat) Quat {
	mag := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QuatRotate applies the rotation to v
func QuatRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + q.w*v)
	u := Vec3{q.X, q.Y, q.Z}
	t := V3Scale(V3Cross(u, v), 2)
	return V3Add(v, V3Add(V3Scale(t, q.W), V3Cross(u, t)))
}

// QuatYaw extracts the rotation angle around the world up axis
func QuatYaw(q Quat) float64 {
	// Forward axis rotated into world space, projected on XZ
	f := QuatRotate(q, UnitZ)
	return math.Atan2(f.X, f.Z)
}
