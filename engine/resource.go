package engine

import (
	"reflect"
	"sync"
)

// ResourceStore is a container for world-global singleton values keyed by
// type. At most one value per type exists at a time; inserting a second
// value of the same type replaces the first.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource in the store
// T should be a pointer type so systems observe each other's mutations
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Absence is a normal condition: callers handle the false return rather
// than treat it as fatal
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Only for resources that are a required precondition for a subsystem,
// checked at world-construction time, never mid-tick
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// EnsureResource returns the resource of type T, lazily constructing and
// registering it with newFn on first need
func EnsureResource[T any](rs *ResourceStore, newFn func() T) T {
	if res, ok := GetResource[T](rs); ok {
		return res
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	var target T
	t := reflect.TypeOf(target)
	if val, ok := rs.resources[t]; ok {
		return val.(T)
	}
	res := newFn()
	rs.resources[reflect.TypeOf(res)] = res
	return res
}

// RemoveResource drops the resource of type T, if present
func RemoveResource[T any](rs *ResourceStore) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	var target T
	delete(rs.resources, reflect.TypeOf(target))
}
