package component

import "github.com/driftline/driftline/core"

// CarWheelBindingComponent is a non-owning relation from a car entity to its
// wheel entities, in mount order. Both sides are independently destroyable:
// consumers must re-validate liveness with World.Alive before dereferencing
// and skip stale entries. Entries are never pruned automatically.
type CarWheelBindingComponent struct {
	Car    core.Entity
	Wheels []core.Entity
}
