package gameworld

import (
	"math"

	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/core"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/input"
	"github.com/driftline/driftline/vmath"
)

// chaseOffset is the camera's resting pose behind the car, in car space
var chaseOffset = vmath.Vec3{Y: 3, Z: -8}

// CreateCamera spawns the viewpoint entity with the standard lens
func CreateCamera(w *engine.World) core.Entity {
	return engine.With(w.NewEntity(), w.Components.Cameras, component.CameraComponent{
		Position: vmath.Vec3{Y: 5, Z: -10},
		Target:   vmath.Zero,
		Up:       vmath.UnitY,
		Aspect:   16.0 / 9.0,
		FovY:     45 * math.Pi / 180,
		ZNear:    0.1,
		ZFar:     1000,
	}).Build()
}

// CameraSystem trails the first car with a chase offset. The toggle-camera
// action freezes the camera in place; pressing it again resumes the chase.
type CameraSystem struct {
	frozen     bool
	prevToggle bool
}

// NewCameraSystem creates the camera step
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *engine.World, dt float64) {
	if state, ok := engine.GetResource[*input.ActionState](w.Resources); ok {
		toggle := state.Pressed(input.ActionToggleCamera)
		if toggle && !s.prevToggle {
			s.frozen = !s.frozen
		}
		s.prevToggle = toggle
	}
	if s.frozen {
		return
	}

	var carPos vmath.Vec3
	var carRot vmath.Quat
	found := false
	for _, e := range w.Query().
		With(w.Components.Cars).
		With(w.Components.Transforms).
		Execute() {
		if tf, ok := w.Components.Transforms.Get(e); ok {
			carPos = tf.Position
			carRot = tf.Rotation
			found = true
		}
		break
	}
	if !found {
		return
	}

	offset := vmath.QuatRotate(carRot, chaseOffset)
	for _, e := range w.Components.Cameras.All() {
		w.Components.Cameras.Mutate(e, func(cam *component.CameraComponent) {
			cam.Position = vmath.V3Add(carPos, offset)
			cam.Target = carPos
		})
	}
}
