package parameter

// Default car tuning, shared by the spawn helpers and the config loader
const (
	CarMass             = 1500.0  // kg
	CarMaxEngineForce   = 10000.0 // N
	CarMaxBrakeForce    = 15000.0 // N
	CarMaxSteeringAngle = 0.5     // rad
	CarSteeringSpeed    = 2.0     // steering approach rate, 1/s
	CarWheelBase        = 2.5     // m
	CarTrackWidth       = 1.8     // m

	CarFinalDriveRatio = 3.7
	CarIdleRPM         = 800.0
	CarRedlineRPM      = 7000.0
	CarMaxRPM          = 8000.0

	// SteeringSnapEpsilon is the band inside which steering snaps to its
	// target instead of approaching asymptotically
	SteeringSnapEpsilon = 0.01

	// ShiftThreshold is the action level above which a shift input counts
	// as pressed
	ShiftThreshold = 0.5
)

// Default wheel tuning
const (
	WheelRadius            = 0.35 // m
	WheelWidth             = 0.25 // m
	SuspensionRestLength   = 0.3  // m
	SuspensionStiffness    = 35000.0
	SuspensionDamping      = 4500.0
	SuspensionTravel       = 0.15 // m
	WheelFriction          = 1.0
	SlipSpeedEpsilon       = 0.5 // m/s floor for slip-ratio denominator
	TransmissionEfficiency = 0.9

	// WheelInertia is the spin inertia of one wheel, kg*m^2
	WheelInertia = 1.2

	// Tire force response, slip per unit normal force
	LongitudinalStiffness = 10.0
	CorneringStiffness    = 8.0
)
