package dialect

import (
	"sort"
	"strings"

	"github.com/syssam/sqldialect"
)

// Function is a named SQL function template.
type Function struct {
	Name    string
	Pattern Template
	// Variadic functions join every argument with commas into ?1.
	Variadic bool
}

// Fn returns a fixed-arity function.
func Fn(name string, pattern Template) Function {
	return Function{Name: name, Pattern: pattern}
}

// VarFn returns a variadic function whose arguments are joined into ?1.
func VarFn(name string, pattern Template) Function {
	return Function{Name: name, Pattern: pattern, Variadic: true}
}

// FunctionRegistry is a read-only set of function templates, keyed by
// lowercase name. Later registrations of the same name win.
type FunctionRegistry struct {
	byName map[string]Function
	names  []string
}

// NewFunctionRegistry builds a registry from the functions.
func NewFunctionRegistry(fns ...Function) *FunctionRegistry {
	r := &FunctionRegistry{byName: make(map[string]Function, len(fns))}
	for _, fn := range fns {
		r.byName[strings.ToLower(fn.Name)] = fn
	}
	r.names = make([]string, 0, len(r.byName))
	for name := range r.byName {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r
}

// Lookup returns the function registered under name.
func (r *FunctionRegistry) Lookup(name string) (Function, bool) {
	fn, ok := r.byName[strings.ToLower(name)]
	return fn, ok
}

// Names returns the registered names in sorted order.
func (r *FunctionRegistry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered functions.
func (r *FunctionRegistry) Len() int { return len(r.names) }

// Render renders the named function with the arguments.
func (r *FunctionRegistry) Render(name string, args ...string) (string, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return "", sqldialect.NewInvalidArgumentError("render function", "function", name)
	}
	if fn.Variadic {
		return fn.Pattern.Render(strings.Join(args, ",")), nil
	}
	if n := fn.Pattern.Arity(); len(args) < n {
		return "", sqldialect.NewInvalidArgumentError("render function "+fn.Name, "argument count", len(args))
	}
	return fn.Pattern.Render(args...), nil
}
