package component

import "github.com/driftline/driftline/vmath"

// Mesh identifiers referenced by RenderComponent.MeshID. Spawning code
// assigns them; the renderer resolves them through its resource table.
const (
	MeshUnknown = iota
	MeshCarBody
	MeshWheel
	MeshSegment
	MeshCheckpoint
	MeshBarrier
	MeshCone
	MeshTire
	MeshTree
	MeshRock
)

// Material identifiers referenced by RenderComponent.MaterialID
const (
	MaterialDefault = iota
	MaterialCarRed
	MaterialCarBlue
	MaterialAsphalt
	MaterialDirt
	MaterialGrass
	MaterialMetal
	MaterialRubber
	MaterialWood
	MaterialStone
)

// RenderComponent is the contract consumed read-only by the render
// collaborator once per frame after the bridge step
type RenderComponent struct {
	MeshID     int
	MaterialID int
	Visible    bool
	Scale      vmath.Vec3
}

// CameraComponent describes the active viewpoint
type CameraComponent struct {
	Position vmath.Vec3
	Target   vmath.Vec3
	Up       vmath.Vec3
	Aspect   float64
	FovY     float64 // rad
	ZNear    float64
	ZFar     float64
}
