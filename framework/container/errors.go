package container

import (
	"errors"
	"fmt"
	"strings"
)

// ── Error kinds ───────────────────────────────────────────────────────────────

// NotFoundError reports that an identifier has no binding and names no
// registered type, so the container cannot produce an instance. Wraps the
// underlying type-registry lookup failure.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("container: [%s] not found: %v", e.ID, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ContainerError reports that an identifier is known but violates an
// auto-wiring precondition: the type is not instantiable, or a constructor
// parameter cannot be auto-supplied.
type ContainerError struct {
	ID     string
	Reason string
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("container: [%s]: %s", e.ID, e.Reason)
}

// CircularError reports that an identifier reappeared while already being
// resolved — an alias loop or a dependency cycle.
type CircularError struct {
	Chain []string
}

func (e *CircularError) Error() string {
	return "container: circular dependency: " + strings.Join(e.Chain, " -> ")
}

// ── Predicates ────────────────────────────────────────────────────────────────

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsCircular reports whether err is a CircularError.
func IsCircular(err error) bool {
	var target *CircularError
	return errors.As(err, &target)
}
