// Package container provides a PSR-11 style dependency-injection container
// with constructor auto-wiring for Go.
//
// # Overview
//
// The container maps string identifiers to bindings: either a zero-argument
// factory or an alias forwarding to another identifier. Anything else is
// auto-wired — the container looks the identifier up in a type registry
// (package inspect), resolves each constructor parameter recursively, and
// memoizes the result as a factory binding so repeated lookups skip the
// reflection work.
//
//	c := container.New()
//	inspect.Register[*UserRepo](c.Types(), NewUserRepo)
//	inspect.Register[*UserService](c.Types(), NewUserService)
//
//	svc, err := container.Resolve[*UserService](c, inspect.TypeKey((*UserService)(nil)))
//
// # Bindings
//
//	// Factory — invoked on every Get; the container caches nothing
//	c.Set("clock", container.Factory(func() any { return clock.System() }))
//
//	// Alias — forwards resolution
//	c.Set("db", "database.primary")
//
// # Errors
//
// Get fails with NotFoundError when an identifier is neither bound nor
// registered as a type, with ContainerError when a known type cannot be
// auto-wired (not instantiable, untyped/ambiguous/primitive parameter), and
// with CircularError when an alias or dependency chain loops back on
// itself. All failures are terminal: a failed dependency aborts the whole
// parent resolution and memoizes nothing.
//
// # Singleton types
//
// Types that manage their own shared instance declare an accessor in the
// singleton registry (package singleton); the container routes their
// construction through it:
//
//	c.Singletons().Declare(key, singleton.Shared(func(deps []any) any {
//	    return NewEventBus(deps[0].(*Logger))
//	}))
//
// # Service providers
//
// Bootstrap wiring is organised into ServiceProviders with the usual
// two-phase Register/Boot lifecycle (see ProviderRegistry).
package container
