package component

import (
	"github.com/driftline/driftline/parameter"
	"github.com/driftline/driftline/vmath"
)

// WheelComponent holds geometry, suspension tuning and per-tick contact state
// for one wheel entity
type WheelComponent struct {
	// Static tuning
	Radius               float64
	Width                float64
	Position             vmath.Vec3 // mount offset from the car body origin
	SuspensionRestLength float64
	SuspensionStiffness  float64
	SuspensionDamping    float64
	SuspensionTravel     float64 // max compression, m
	Friction             float64
	Steering             bool // wheel follows the steering angle
	Powered              bool // wheel receives drivetrain torque

	// Runtime state
	Grounded          bool
	SuspensionLength  float64 // current spring length
	SuspensionForce   float64 // normal force, N
	WheelSpeed        float64 // angular speed, rad/s
	SlipRatio         float64
	SlipAngle         float64 // rad
	LateralForce      float64
	LongitudinalForce float64
}

// DefaultWheel returns the reference wheel tuning
func DefaultWheel() WheelComponent {
	return WheelComponent{
		Radius:               parameter.WheelRadius,
		Width:                parameter.WheelWidth,
		SuspensionRestLength: parameter.SuspensionRestLength,
		SuspensionStiffness:  parameter.SuspensionStiffness,
		SuspensionDamping:    parameter.SuspensionDamping,
		SuspensionTravel:     parameter.SuspensionTravel,
		Friction:             parameter.WheelFriction,

		SuspensionLength: parameter.SuspensionRestLength,
	}
}
