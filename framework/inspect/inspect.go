package inspect

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Type keys ─────────────────────────────────────────────────────────────────

// KeyOf returns the package-qualified name of t, the identifier convention
// used for auto-wiring. Pointer types resolve to their element type so that
// *UserService and UserService share one key.
func KeyOf(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// TypeKey returns the key for a value's type.
//
//	key := inspect.TypeKey((*UserService)(nil))
func TypeKey(v any) string {
	return KeyOf(reflect.TypeOf(v))
}

// ── Param ─────────────────────────────────────────────────────────────────────

// Param describes one constructor parameter.
// A nil Type means the parameter's type could not be determined.
type Param struct {
	Name string
	Type reflect.Type
}

// Declared reports whether the parameter carries type information.
func (p Param) Declared() bool { return p.Type != nil }

// Ambiguous reports whether the parameter accepts any type (an empty
// interface), which gives the resolver nothing to go on.
func (p Param) Ambiguous() bool {
	return p.Type != nil && p.Type.Kind() == reflect.Interface && p.Type.NumMethod() == 0
}

// Primitive reports whether the parameter is a built-in scalar that cannot
// be auto-wired (strings, numbers, booleans).
func (p Param) Primitive() bool {
	if p.Type == nil {
		return false
	}
	switch p.Type.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// Wireable reports whether the parameter names a single class-like type
// (struct, pointer, or non-empty interface) that the resolver can look up
// by key. Anything else must be bound explicitly.
func (p Param) Wireable() bool {
	if !p.Declared() || p.Ambiguous() || p.Primitive() {
		return false
	}
	switch p.Type.Kind() {
	case reflect.Ptr, reflect.Struct, reflect.Interface:
		return true
	}
	return false
}

// TypeKey returns the auto-wiring key for the parameter's declared type.
func (p Param) TypeKey() string {
	if p.Type == nil {
		return ""
	}
	return KeyOf(p.Type)
}

// String is used in error messages: "userRepo (inspect_test.UserRepo)".
func (p Param) String() string {
	name := p.Name
	if name == "" {
		name = "_"
	}
	if p.Type == nil {
		return name + " (untyped)"
	}
	return fmt.Sprintf("%s (%s)", name, p.Type.String())
}

// ── Type descriptor ───────────────────────────────────────────────────────────

// Type is a registered type descriptor: the reflected type plus its
// constructor signature, recorded once at registration time.
type Type struct {
	name   string
	rtype  reflect.Type
	ctor   reflect.Value // zero when the type has no constructor
	params []Param
}

// Name returns the type's registered identifier.
func (t *Type) Name() string { return t.name }

// Instantiable reports whether the type can be constructed: either a
// constructor was provided, or the type is a concrete struct that can be
// zero-valued. Interfaces registered via Abstract are never instantiable.
func (t *Type) Instantiable() bool {
	if t.ctor.IsValid() {
		return true
	}
	rt := t.rtype
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	return rt.Kind() == reflect.Struct
}

// Params returns the constructor's parameter descriptors in declaration
// order. Empty for zero-argument constructors and constructor-less types.
func (t *Type) Params() []Param { return t.params }

// Check verifies that args match the constructor's arity and parameter
// types without constructing anything.
func (t *Type) Check(args []any) error {
	_, err := t.coerce(args)
	return err
}

// New constructs an instance, passing args positionally to the constructor.
// Types without a constructor yield a pointer to the zero value.
func (t *Type) New(args []any) (any, error) {
	if !t.Instantiable() {
		return nil, fmt.Errorf("inspect: type %s is not instantiable", t.name)
	}
	if !t.ctor.IsValid() {
		rt := t.rtype
		for rt.Kind() == reflect.Ptr {
			rt = rt.Elem()
		}
		return reflect.New(rt).Interface(), nil
	}
	in, err := t.coerce(args)
	if err != nil {
		return nil, err
	}
	return t.ctor.Call(in)[0].Interface(), nil
}

// coerce maps args onto the constructor's parameter types.
func (t *Type) coerce(args []any) ([]reflect.Value, error) {
	if !t.ctor.IsValid() {
		if len(args) != 0 {
			return nil, fmt.Errorf("inspect: type %s has no constructor but got %d arguments", t.name, len(args))
		}
		return nil, nil
	}
	if len(args) != len(t.params) {
		return nil, fmt.Errorf("inspect: type %s needs %d constructor arguments, got %d",
			t.name, len(t.params), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := t.ctor.Type().In(i)
		if arg == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("inspect: type %s constructor argument %d: have %s, want %s",
				t.name, i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

// ── Registry ──────────────────────────────────────────────────────────────────

// Registry is the registration-time descriptor table consumed by the
// container's auto-wiring path. Go has no runtime constructor reflection,
// so types opt in once at bootstrap and the resolver reads the recorded
// signatures afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*Type)}
}

// Provide records a type under name with its constructor function.
// The constructor must be a non-variadic func returning exactly one value;
// its parameters become the type's dependency descriptors.
func (r *Registry) Provide(name string, constructor any) error {
	if constructor == nil {
		return fmt.Errorf("inspect: nil constructor for %q", name)
	}
	cv := reflect.ValueOf(constructor)
	ct := cv.Type()
	if ct.Kind() != reflect.Func {
		return fmt.Errorf("inspect: constructor for %q must be a func, got %s", name, ct)
	}
	if ct.IsVariadic() {
		return fmt.Errorf("inspect: constructor for %q must not be variadic", name)
	}
	if ct.NumOut() != 1 {
		return fmt.Errorf("inspect: constructor for %q must return exactly one value", name)
	}

	params := make([]Param, ct.NumIn())
	for i := 0; i < ct.NumIn(); i++ {
		params[i] = Param{Type: ct.In(i)}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = &Type{
		name:   name,
		rtype:  ct.Out(0),
		ctor:   cv,
		params: params,
	}
	return nil
}

// ProvideType records a concrete type under name with no constructor.
// The resolver will produce a pointer to the zero value.
func (r *Registry) ProvideType(name string, rtype reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = &Type{name: name, rtype: rtype}
}

// Lookup returns the descriptor for name, or ErrUnknownType.
func (r *Registry) Lookup(name string) (*Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return t, nil
}

// Known reports whether name has a descriptor.
func (r *Registry) Known(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.types[name]
	return ok
}

// ── Generic registration helpers ──────────────────────────────────────────────

// Register records constructor under T's package-qualified key.
//
//	inspect.Register[*UserService](reg, NewUserService)
func Register[T any](r *Registry, constructor any) error {
	return r.Provide(KeyOf(reflect.TypeOf((*T)(nil)).Elem()), constructor)
}

// RegisterType records T as a constructor-less concrete type.
func RegisterType[T any](r *Registry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.ProvideType(KeyOf(t), t)
}

// Abstract records T (typically an interface) as a known but
// non-instantiable type. Resolving it without an explicit binding fails.
func Abstract[T any](r *Registry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.ProvideType(KeyOf(t), t)
}
