// Package discriminator maps stored discriminator values to embeddable
// subtypes and back.
//
// A Converter is built once from the closed set of subtypes of a
// discriminated type and is read-only afterwards, so it may be shared by
// any number of goroutines without locking.
package discriminator

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/syssam/sqldialect"
)

// ValueDetails pairs a stored discriminator value with its subtype.
type ValueDetails[R comparable] struct {
	// Value is the stored form of the discriminator.
	Value R
	// Name identifies the subtype, e.g. "shapes.Circle".
	Name string
	// Type is the runtime type of the subtype.
	Type reflect.Type
}

func (d ValueDetails[R]) String() string {
	return fmt.Sprintf("%v=%s", d.Value, d.Name)
}

// Converter is a bijection between stored values and subtypes.
type Converter[R comparable] struct {
	name    string
	details []ValueDetails[R]
	byValue map[R]int
	byName  map[string]int
	byType  map[reflect.Type]int
}

// New returns a converter for the discriminator. Every value, name and type
// must be unique; all violations are reported together.
func New[R comparable](discriminator string, details []ValueDetails[R]) (*Converter[R], error) {
	c := &Converter[R]{
		name:    discriminator,
		details: make([]ValueDetails[R], 0, len(details)),
		byValue: make(map[R]int, len(details)),
		byName:  make(map[string]int, len(details)),
		byType:  make(map[reflect.Type]int, len(details)),
	}
	var errs []error
	invalid := func(arg string, v any) {
		errs = append(errs, sqldialect.NewInvalidArgumentError("discriminator "+discriminator, arg, v))
	}
	for _, d := range details {
		switch {
		case d.Name == "":
			invalid("subtype name", fmt.Sprintf("<empty> for value %v", d.Value))
			continue
		case d.Type == nil:
			invalid("subtype type", fmt.Sprintf("<nil> for %s", d.Name))
			continue
		}
		if prev, ok := c.byValue[d.Value]; ok {
			invalid("value", fmt.Sprintf("%v registered for both %s and %s", d.Value, c.details[prev].Name, d.Name))
			continue
		}
		if _, ok := c.byName[d.Name]; ok {
			invalid("subtype name", fmt.Sprintf("%s registered twice", d.Name))
			continue
		}
		if prev, ok := c.byType[d.Type]; ok {
			invalid("subtype type", fmt.Sprintf("%v registered for both %s and %s", d.Type, c.details[prev].Name, d.Name))
			continue
		}
		i := len(c.details)
		c.details = append(c.details, d)
		c.byValue[d.Value] = i
		c.byName[d.Name] = i
		c.byType[d.Type] = i
	}
	if err := sqldialect.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// variables, including generated code.
func MustNew[R comparable](discriminator string, details []ValueDetails[R]) *Converter[R] {
	c, err := New(discriminator, details)
	if err != nil {
		panic(err)
	}
	return c
}

// FromValueMappings builds a converter from stored values mapped to subtype
// names, resolving each name with r. Mappings are ordered by subtype name.
func FromValueMappings[R comparable](discriminator string, mappings map[R]string, r TypeResolver) (*Converter[R], error) {
	details := make([]ValueDetails[R], 0, len(mappings))
	var errs []error
	for v, name := range mappings {
		t, err := r.Resolve(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("discriminator %s: value %v: %w", discriminator, v, err))
			continue
		}
		details = append(details, ValueDetails[R]{Value: v, Name: name, Type: t})
	}
	if err := sqldialect.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Name < details[j].Name })
	return New(discriminator, details)
}

// Name returns the discriminator name.
func (c *Converter[R]) Name() string { return c.name }

// Len returns the number of registered subtypes.
func (c *Converter[R]) Len() int { return len(c.details) }

// ToDomainValue returns the subtype type for a stored value.
func (c *Converter[R]) ToDomainValue(v R) (reflect.Type, error) {
	d, err := c.DetailsForValue(v)
	if err != nil {
		return nil, err
	}
	return d.Type, nil
}

// ToRelationalValue returns the stored value of a subtype type. A type that
// was not registered is reported as an assertion failure.
func (c *Converter[R]) ToRelationalValue(t reflect.Type) (R, error) {
	i, ok := c.byType[t]
	if !ok {
		var zero R
		return zero, sqldialect.NewAssertionError("unrecognized embeddable type %v for %s", t, c.name)
	}
	return c.details[i].Value, nil
}

// DetailsForValue returns the details of a stored value. A value that was
// never registered fails with sqldialect.ErrUnrecognizedValue.
func (c *Converter[R]) DetailsForValue(v R) (ValueDetails[R], error) {
	i, ok := c.byValue[v]
	if !ok {
		return ValueDetails[R]{}, sqldialect.NewUnrecognizedValueError(c.name, v)
	}
	return c.details[i], nil
}

// DetailsForName returns the details of a subtype name. A name that was
// never registered fails with sqldialect.ErrAssertion.
func (c *Converter[R]) DetailsForName(name string) (ValueDetails[R], error) {
	i, ok := c.byName[name]
	if !ok {
		return ValueDetails[R]{}, sqldialect.NewAssertionError("unrecognized embeddable class %s for %s", name, c.name)
	}
	return c.details[i], nil
}

// ForEach calls fn for every registered subtype in registration order.
func (c *Converter[R]) ForEach(fn func(ValueDetails[R])) {
	for _, d := range c.details {
		fn(d)
	}
}

// All returns a copy of the registered details in registration order.
func (c *Converter[R]) All() []ValueDetails[R] {
	out := make([]ValueDetails[R], len(c.details))
	copy(out, c.details)
	return out
}

// FromValueDetails applies fn to each registered subtype in registration
// order and returns the first result fn accepts.
func FromValueDetails[R comparable, X any](c *Converter[R], fn func(ValueDetails[R]) (X, bool)) (X, bool) {
	for _, d := range c.details {
		if x, ok := fn(d); ok {
			return x, true
		}
	}
	var zero X
	return zero, false
}
