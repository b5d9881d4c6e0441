package component

import (
	"github.com/driftline/driftline/parameter"
	"github.com/driftline/driftline/vmath"
)

// TorqueSample is one point of the engine torque curve
type TorqueSample struct {
	RPM    float64
	Torque float64 // N*m
}

// CarComponent holds static tuning and mutable runtime state for one vehicle
type CarComponent struct {
	Name string

	// Static tuning
	Mass             float64
	MaxEngineForce   float64
	MaxBrakeForce    float64
	MaxSteeringAngle float64 // rad
	SteeringSpeed    float64 // approach rate, 1/s
	WheelBase        float64
	EnginePosition   vmath.Vec3 // mount offset from body origin
	CenterOfMass     vmath.Vec3

	// Drivetrain characteristics
	TorqueCurve     []TorqueSample // ordered by RPM ascending
	GearRatios      []float64
	FinalDriveRatio float64
	IdleRPM         float64
	RedlineRPM      float64
	MaxRPM          float64

	// When true a shift requires a fresh press; when false (the historical
	// behavior) holding the button shifts once per tick
	EdgeTriggeredShift bool

	// Runtime state
	CurrentSpeed    float64
	CurrentRPM      float64
	CurrentGear     int
	CurrentSteering float64
	Throttle        float64 // [0,1]
	Brake           float64 // [0,1]
	Handbrake       float64 // [0,1]

	// Previous-tick shift levels, used only when EdgeTriggeredShift is set
	PrevShiftUp   bool
	PrevShiftDown bool
}

// DefaultCar returns the reference tuning
func DefaultCar() CarComponent {
	return CarComponent{
		Name:             "Default Car",
		Mass:             parameter.CarMass,
		MaxEngineForce:   parameter.CarMaxEngineForce,
		MaxBrakeForce:    parameter.CarMaxBrakeForce,
		MaxSteeringAngle: parameter.CarMaxSteeringAngle,
		SteeringSpeed:    parameter.CarSteeringSpeed,
		WheelBase:        parameter.CarWheelBase,
		EnginePosition:   vmath.Vec3{Y: 0.5, Z: 1.5},
		CenterOfMass:     vmath.Vec3{Y: 0.5},

		TorqueCurve: []TorqueSample{
			{1000, 200},
			{2000, 300},
			{3000, 350},
			{4000, 400},
			{5000, 420},
			{6000, 380},
			{7000, 350},
			{8000, 300},
		},
		GearRatios:      []float64{3.5, 2.5, 1.8, 1.3, 1.0, 0.8},
		FinalDriveRatio: parameter.CarFinalDriveRatio,
		IdleRPM:         parameter.CarIdleRPM,
		RedlineRPM:      parameter.CarRedlineRPM,
		MaxRPM:          parameter.CarMaxRPM,

		CurrentRPM:  parameter.CarIdleRPM,
		CurrentGear: 0,
	}
}
