package engine

import "errors"

var (
	// ErrNotFound indicates an entity or resource lookup on a dead or absent target.
	// Recoverable: callers skip the entity or lazily create the resource.
	ErrNotFound = errors.New("engine: entity or resource not found")
)
