package discriminator

import (
	"reflect"
	"sort"
	"sync"

	"github.com/syssam/sqldialect"
)

// TypeResolver resolves a subtype name to its runtime type.
type TypeResolver interface {
	Resolve(name string) (reflect.Type, error)
}

// TypeResolverFunc adapts a function to TypeResolver.
type TypeResolverFunc func(name string) (reflect.Type, error)

// Resolve implements TypeResolver.
func (f TypeResolverFunc) Resolve(name string) (reflect.Type, error) { return f(name) }

// Registry is a TypeResolver populated during program initialization.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register adds a named type. Registering a different type under an existing
// name fails.
func (r *Registry) Register(name string, t reflect.Type) error {
	if name == "" || t == nil {
		return sqldialect.NewInvalidArgumentError("register type", "name", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.types[name]; ok && prev != t {
		return sqldialect.NewInvalidArgumentError("register type", "name", name+" already registered as "+prev.String())
	}
	r.types[name] = t
	return nil
}

// Register adds T to the registry under name.
func Register[T any](r *Registry, name string) error {
	return r.Register(name, reflect.TypeFor[T]())
}

// Resolve implements TypeResolver.
func (r *Registry) Resolve(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, sqldialect.NewAssertionError("unknown embeddable class %s", name)
	}
	return t, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
