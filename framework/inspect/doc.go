// Package inspect is the type-introspection facility behind the container's
// auto-wiring. PHP containers read constructor signatures at runtime with
// ReflectionClass; Go cannot, so types are described once at bootstrap by
// registering their constructor functions, and the resolver consumes the
// recorded parameter descriptors instead.
//
//	reg := inspect.NewRegistry()
//	inspect.Register[*UserRepo](reg, NewUserRepo)
//	inspect.Register[*UserService](reg, NewUserService) // func(*UserRepo) *UserService
//
// Identifiers default to package-qualified type names (see KeyOf), which is
// the convention the container's dependency resolution relies on.
package inspect
