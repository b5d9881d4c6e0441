package gameworld

import (
	"github.com/driftline/driftline/component"
	"github.com/driftline/driftline/engine"
	"github.com/driftline/driftline/physics"
	"github.com/driftline/driftline/vehicle"
)

// InitializePhysics creates the physics Space resource the world's
// car and track builders require
func InitializePhysics(w *engine.World) *physics.Space {
	space := physics.NewSpace()
	engine.AddResource(w.Resources, space)
	return space
}

// RegisterSystems adds the simulation systems in their fixed execution
// order: control before vehicle physics, environment after. The physics
// step itself and the bridge run outside the scheduler, driven directly
// by the main loop.
func RegisterSystems(w *engine.World) {
	w.AddSystem(vehicle.NewControlSystem())
	w.AddSystem(vehicle.NewPhysicsSystem())
	w.AddSystem(NewWeatherSystem())
	w.AddSystem(NewTimeOfDaySystem())
	w.AddSystem(NewCameraSystem())
}

// PruneBindings drops stale entity references from every car-wheel binding.
// Nothing calls this per tick: stale entries are skipped by consumers and
// accumulate until gameplay code explicitly asks for cleanup.
func PruneBindings(w *engine.World) {
	for _, e := range w.Components.Bindings.All() {
		w.Components.Bindings.Mutate(e, func(b *component.CarWheelBindingComponent) {
			kept := b.Wheels[:0]
			for _, wheel := range b.Wheels {
				if w.Alive(wheel) {
					kept = append(kept, wheel)
				}
			}
			b.Wheels = kept
		})
		// A binding whose car died is useless in full
		if binding, ok := w.Components.Bindings.Get(e); ok && !w.Alive(binding.Car) {
			_ = w.DestroyEntity(e)
		}
	}
}
