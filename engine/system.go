package engine

// System is one unit of per-tick domain logic
// Subsystems that need typed access beyond (world, delta) - terminal
// rendering, physics stepping, input sampling - are invoked directly by the
// driver outside the registered list
type System interface {
	// Update performs one step. dt is wall-clock seconds since the
	// previous tick, unclamped.
	Update(w *World, dt float64)
}

// SystemFunc adapts a plain function to the System interface
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}
