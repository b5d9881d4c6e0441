package component

import (
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/vmath"
)

// SegmentKind tags the geometry of a track segment
type SegmentKind uint8

const (
	SegmentStraight SegmentKind = iota
	SegmentLeftCurve
	SegmentRightCurve
	SegmentChicane
	SegmentJump
	SegmentBanked
)

// SurfaceKind tags the driving surface of a segment
type SurfaceKind uint8

const (
	SurfaceAsphalt SurfaceKind = iota
	SurfaceConcrete
	SurfaceDirt
	SurfaceGravel
	SurfaceGrass
	SurfaceSnow
	SurfaceIce
	SurfaceSand
)

// FrictionCoefficient returns the grip multiplier for the surface
func (s SurfaceKind) FrictionCoefficient() float64 {
	switch s {
	case SurfaceAsphalt:
		return 1.0
	case SurfaceConcrete:
		return 0.95
	case SurfaceDirt:
		return 0.6
	case SurfaceGravel:
		return 0.4
	case SurfaceGrass:
		return 0.3
	case SurfaceSnow:
		return 0.2
	case SurfaceIce:
		return 0.1
	case SurfaceSand:
		return 0.4
	}
	return 1.0
}

// TrackSegmentComponent is one piece of track geometry
type TrackSegmentComponent struct {
	Kind      SegmentKind
	Length    float64
	Width     float64
	Curvature float64
	Banking   float64
	Surface   SurfaceKind
	Friction  float64
}

// TrackComponent ties segments and checkpoints into a course
// Segment and checkpoint references are non-owning, like wheel bindings
type TrackComponent struct {
	Name           string
	Length         float64
	Segments       []core.Entity
	Checkpoints    []core.Entity
	StartPositions []vmath.Vec3
}

// CheckpointComponent marks a timing line on the track
type CheckpointComponent struct {
	Index      int
	Width      float64
	FinishLine bool
}

// ObstacleKind tags obstacle geometry on or near the track
type ObstacleKind uint8

const (
	ObstacleBarrier ObstacleKind = iota
	ObstacleCone
	ObstacleTire
	ObstacleTree
	ObstacleRock
	ObstacleCar
)

// ObstacleComponent is a static or destructible object on the track
type ObstacleComponent struct {
	Kind         ObstacleKind
	Destructible bool
	Health       float64
}
