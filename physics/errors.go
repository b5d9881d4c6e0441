package physics

import "errors"

var (
	// ErrInvalidHandle indicates a body or collider handle that no longer
	// resolves. Recoverable: treated as "entity has no physics this tick".
	ErrInvalidHandle = errors.New("physics: handle does not resolve")
)
