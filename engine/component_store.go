package engine

import (
	"github.com/driftline/driftline/component"
)

// ComponentStore provides typed store pointers for direct system access
// Initialized once with the world; pointers remain valid for its lifetime
type ComponentStore struct {
	Transforms  *Store[component.TransformComponent]
	RigidBodies *Store[component.RigidBodyComponent]
	Colliders   *Store[component.ColliderComponent]

	// Vehicle
	Cars     *Store[component.CarComponent]
	Wheels   *Store[component.WheelComponent]
	Bindings *Store[component.CarWheelBindingComponent]

	// Presentation
	Renders *Store[component.RenderComponent]
	Cameras *Store[component.CameraComponent]

	// Track and environment
	Tracks      *Store[component.TrackComponent]
	Segments    *Store[component.TrackSegmentComponent]
	Checkpoints *Store[component.CheckpointComponent]
	Obstacles   *Store[component.ObstacleComponent]
	Weathers    *Store[component.WeatherComponent]
	DayCycles   *Store[component.TimeOfDayComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transforms:  NewStore[component.TransformComponent](),
		RigidBodies: NewStore[component.RigidBodyComponent](),
		Colliders:   NewStore[component.ColliderComponent](),

		Cars:     NewStore[component.CarComponent](),
		Wheels:   NewStore[component.WheelComponent](),
		Bindings: NewStore[component.CarWheelBindingComponent](),

		Renders: NewStore[component.RenderComponent](),
		Cameras: NewStore[component.CameraComponent](),

		Tracks:      NewStore[component.TrackComponent](),
		Segments:    NewStore[component.TrackSegmentComponent](),
		Checkpoints: NewStore[component.CheckpointComponent](),
		Obstacles:   NewStore[component.ObstacleComponent](),
		Weathers:    NewStore[component.WeatherComponent](),
		DayCycles:   NewStore[component.TimeOfDayComponent](),
	}
}

// all lists every store for uniform lifecycle cleanup
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Transforms, c.RigidBodies, c.Colliders,
		c.Cars, c.Wheels, c.Bindings,
		c.Renders, c.Cameras,
		c.Tracks, c.Segments, c.Checkpoints, c.Obstacles,
		c.Weathers, c.DayCycles,
	}
}
