package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecClose(a, b Vec3) bool {
	return Abs(a.X-b.X) < eps && Abs(a.Y-b.Y) < eps && Abs(a.Z-b.Z) < eps
}

func TestQuatIdentityRotation(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := QuatRotate(QuatIdentity, v); !vecClose(got, v) {
		t.Errorf("Expected identity rotation to preserve %v, got %v", v, got)
	}
}

func TestQuatYawRotatesForward(t *testing.T) {
	// Quarter turn left: +Z forward swings onto +X
	q := QuatFromYaw(math.Pi / 2)
	got := QuatRotate(q, UnitZ)
	if !vecClose(got, Vec3{X: 1}) {
		t.Errorf("Expected forward on +X after quarter yaw, got %v", got)
	}
}

func TestQuatYawRoundtrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, -1.2, math.Pi / 2, -math.Pi + 0.01} {
		got := QuatYaw(QuatFromYaw(yaw))
		if Abs(got-yaw) > 1e-9 {
			t.Errorf("Expected yaw %f back, got %f", yaw, got)
		}
	}
}

func TestQuatMulComposesYaw(t *testing.T) {
	a := QuatFromYaw(0.3)
	b := QuatFromYaw(0.5)
	got := QuatYaw(QuatMul(a, b))
	if Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected composed yaw 0.8, got %f", got)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 2, Y: 0, Z: 0, W: 2}
	n := QuatNormalize(q)
	mag := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if Abs(mag-1) > eps {
		t.Errorf("Expected unit magnitude, got %f", mag)
	}

	if QuatNormalize(Quat{}) != QuatIdentity {
		t.Error("Expected zero quaternion to normalize to identity")
	}
}

func TestVectorBasics(t *testing.T) {
	if got := V3Cross(UnitY, UnitZ); !vecClose(got, Vec3{X: 1}) {
		t.Errorf("Expected Y x Z = X, got %v", got)
	}
	if got := V3Dot(Vec3{X: 1, Y: 2, Z: 3}, Vec3{X: 4, Y: 5, Z: 6}); got != 32 {
		t.Errorf("Expected dot 32, got %f", got)
	}
	if got := V3Normalize(Vec3{X: 3, Y: 4}); !vecClose(got, Vec3{X: 0.6, Y: 0.8}) {
		t.Errorf("Expected unit vector, got %v", got)
	}
	if V3Normalize(Zero) != Zero {
		t.Error("Expected zero vector to normalize to zero")
	}
	if got := V3Lerp(Zero, Vec3{X: 10}, 0.25); !vecClose(got, Vec3{X: 2.5}) {
		t.Errorf("Expected lerp 2.5, got %v", got)
	}
}
