package singleton

import (
	"fmt"
	"sync"
)

// Accessor returns a type's shared instance. The resolved dependency list
// is passed in so the first call can construct the instance; later calls
// may ignore it.
type Accessor func(deps []any) any

// Registry records which types manage their own single instance.
// The container consults it during auto-wiring: a declared type is obtained
// through its accessor instead of direct instantiation, so the container
// composes with a type's own lifecycle rather than bypassing it.
type Registry struct {
	mu        sync.RWMutex
	accessors map[string]Accessor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accessors: make(map[string]Accessor)}
}

// Declare marks the type named by id as singleton-managed.
func (r *Registry) Declare(id string, accessor Accessor) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accessors[id] = accessor
	return r
}

// Declared reports whether id manages its own single instance.
func (r *Registry) Declared(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.accessors[id]
	return ok
}

// Instance returns the shared instance for id, constructing it through the
// declared accessor on first use.
func (r *Registry) Instance(id string, deps []any) (any, error) {
	r.mu.RLock()
	accessor, ok := r.accessors[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("singleton: %s is not declared", id)
	}
	return accessor(deps), nil
}

// Shared wraps construct so it runs exactly once; every later call returns
// the first result regardless of the dependency list passed in.
func Shared(construct func(deps []any) any) Accessor {
	var (
		once     sync.Once
		instance any
	)
	return func(deps []any) any {
		once.Do(func() { instance = construct(deps) })
		return instance
	}
}
