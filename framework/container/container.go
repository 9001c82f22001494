package container

import (
	"fmt"
	"sync"

	"github.com/km-arc/go-container/framework/inspect"
	"github.com/km-arc/go-container/framework/singleton"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Factory is a zero-argument function that builds a service instance.
// Factories needing other services close over the container:
//
//	c.Set("mailer", container.Factory(func() any {
//	    cfg := container.MustResolve[*config.Config](c, "config")
//	    return mail.New(cfg)
//	}))
type Factory func() any

// A binding is either a Factory (or plain func() any) or an alias string
// naming another identifier. The shape is checked in Get, not in Set —
// registration never fails.

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps string identifiers to bindings and resolves object graphs
// on demand — the Go rendition of a PSR-11 container with auto-wiring.
//
// Identifiers are opaque strings; by convention, auto-wirable services use
// package-qualified type names (inspect.KeyOf). An identifier with no
// binding is resolved by consulting the type registry for a constructor
// descriptor, recursively resolving each parameter, and memoizing the
// result as a Factory binding so later lookups are a single map read.
//
// There is no ambient global instance: construct one with New and hand it
// to whatever needs it.
type Container struct {
	mu sync.RWMutex

	// id → Factory | func() any | alias string
	bindings map[string]any

	// constructor descriptors for auto-wiring
	types *inspect.Registry

	// types that manage their own shared instance
	singletons *singleton.Registry
}

// Option customises a Container at construction.
type Option func(*Container)

// WithTypes supplies a shared type registry.
func WithTypes(r *inspect.Registry) Option {
	return func(c *Container) { c.types = r }
}

// WithSingletons supplies a shared singleton registry.
func WithSingletons(r *singleton.Registry) Option {
	return func(c *Container) { c.singletons = r }
}

// New creates an empty container with fresh registries.
func New(opts ...Option) *Container {
	c := &Container{
		bindings:   make(map[string]any),
		types:      inspect.NewRegistry(),
		singletons: singleton.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Types returns the type registry consulted during auto-wiring.
func (c *Container) Types() *inspect.Registry { return c.types }

// Singletons returns the singleton registry.
func (c *Container) Singletons() *singleton.Registry { return c.singletons }

// ── Registration ──────────────────────────────────────────────────────────────

// Set registers implementation under id, overwriting any prior binding.
// implementation is either a zero-argument factory or an alias string;
// validation is deferred to Get. Returns the container for chaining:
//
//	c.Set("cache", container.Factory(newRedis)).
//		Set("store", "cache")
func (c *Container) Set(id string, implementation any) *Container {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[id] = implementation
	return c
}

// Has reports whether id has a registered binding. It never triggers
// resolution: an unbound but auto-wirable type still reports false.
func (c *Container) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[id]
	return ok
}

// Forget removes the binding for id.
func (c *Container) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bindings, id)
}

// Flush removes all bindings. Intended for test teardown.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]any)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves id and returns an instance.
//
// A Factory binding is invoked on every call — the container caches no
// factory results; lifecycle beyond that belongs to the singleton protocol.
// An alias binding forwards to its target. An unbound id falls through to
// the auto-wiring path (Resolve).
func (c *Container) Get(id string) (any, error) {
	return c.get(id, &trail{})
}

// Resolve forces the auto-wiring path for id: look up the constructor
// descriptor, resolve each parameter, memoize a factory binding via Set,
// then re-invoke Get so resolution and invocation share one code path.
func (c *Container) Resolve(id string) (any, error) {
	return c.resolve(id, &trail{})
}

// ResolveDependencies resolves a constructor parameter list in declaration
// order. Exposed so callers can compose or test dependency resolution
// without registering a type.
func (c *Container) ResolveDependencies(id string, params []inspect.Param) ([]any, error) {
	t := &trail{}
	t.push(id)
	return c.resolveDependencies(id, params, t)
}

func (c *Container) get(id string, t *trail) (any, error) {
	if t.contains(id) {
		return nil, &CircularError{Chain: t.chain(id)}
	}

	c.mu.RLock()
	b, bound := c.bindings[id]
	c.mu.RUnlock()

	if !bound {
		return c.resolve(id, t)
	}

	switch impl := b.(type) {
	case Factory:
		return impl(), nil
	case func() any:
		return impl(), nil
	case string:
		// Alias: forward resolution to the target identifier.
		t.push(id)
		defer t.pop()
		return c.get(impl, t)
	default:
		return nil, &ContainerError{ID: id, Reason: fmt.Sprintf("binding is neither a factory nor an alias (got %T)", b)}
	}
}

func (c *Container) resolve(id string, t *trail) (any, error) {
	info, err := c.types.Lookup(id)
	if err != nil {
		return nil, &NotFoundError{ID: id, Err: err}
	}
	if !info.Instantiable() {
		return nil, &ContainerError{ID: id, Reason: "type is not instantiable"}
	}

	params := info.Params()
	var deps []any
	if len(params) > 0 {
		t.push(id)
		deps, err = c.resolveDependencies(id, params, t)
		t.pop()
		if err != nil {
			// A failed dependency aborts the whole resolution;
			// nothing is memoized.
			return nil, err
		}
		if err := info.Check(deps); err != nil {
			return nil, &ContainerError{ID: id, Reason: err.Error()}
		}
	}

	c.Set(id, c.buildFactory(id, info, deps))
	return c.get(id, t)
}

// buildFactory captures the resolved dependency list in a memoizing
// factory. Singleton-declared types are obtained through their own
// accessor so the container composes with the type's lifecycle instead of
// bypassing it.
func (c *Container) buildFactory(id string, info *inspect.Type, deps []any) Factory {
	if c.singletons.Declared(id) {
		return func() any {
			instance, err := c.singletons.Instance(id, deps)
			if err != nil {
				panic(fmt.Sprintf("container: [%s]: %v", id, err))
			}
			return instance
		}
	}
	return func() any {
		// deps were checked against the constructor at memoization time.
		instance, err := info.New(deps)
		if err != nil {
			panic(fmt.Sprintf("container: [%s]: %v", id, err))
		}
		return instance
	}
}

func (c *Container) resolveDependencies(id string, params []inspect.Param, t *trail) ([]any, error) {
	deps := make([]any, 0, len(params))
	for i, p := range params {
		switch {
		case !p.Declared():
			return nil, &ContainerError{
				ID:     id,
				Reason: fmt.Sprintf("cannot resolve parameter %d %s: no declared type", i, p),
			}
		case p.Ambiguous():
			return nil, &ContainerError{
				ID:     id,
				Reason: fmt.Sprintf("cannot resolve parameter %d %s: type is ambiguous", i, p),
			}
		case p.Wireable():
			dep, err := c.get(p.TypeKey(), t)
			if err != nil {
				return nil, err
			}
			deps = append(deps, dep)
		default:
			return nil, &ContainerError{
				ID:     id,
				Reason: fmt.Sprintf("cannot auto-supply parameter %d %s: primitive values must be bound explicitly", i, p),
			}
		}
	}
	return deps, nil
}

// ── trail ─────────────────────────────────────────────────────────────────────

// trail is the resolution-in-progress set for one top-level Get/Resolve
// call. An identifier reappearing while in progress is a cycle — alias
// loops and dependency loops fail fast instead of recursing unboundedly.
type trail struct {
	stack []string
}

func (t *trail) contains(id string) bool {
	for _, s := range t.stack {
		if s == id {
			return true
		}
	}
	return false
}

func (t *trail) push(id string) { t.stack = append(t.stack, id) }
func (t *trail) pop()           { t.stack = t.stack[:len(t.stack)-1] }

// chain returns the stack plus the repeated identifier, for error messages.
func (t *trail) chain(id string) []string {
	chain := make([]string, len(t.stack), len(t.stack)+1)
	copy(chain, t.stack)
	return append(chain, id)
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Get and type-asserts the result.
//
//	repo, err := container.Resolve[*UserRepo](c, inspect.TypeKey((*UserRepo)(nil)))
func Resolve[T any](c *Container, id string) (T, error) {
	var zero T
	instance, err := c.Get(id)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &ContainerError{ID: id, Reason: fmt.Sprintf("resolved to %T, want %T", instance, zero)}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure. Use at bootstrap where
// a missing binding is unrecoverable.
func MustResolve[T any](c *Container, id string) T {
	typed, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return typed
}
