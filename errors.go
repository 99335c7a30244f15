package sqldialect

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common failure cases.
var (
	// ErrInvalidArgument is returned when a caller passes a value the
	// operation cannot render, e.g. an unknown literal precision.
	ErrInvalidArgument = errors.New("sqldialect: invalid argument")

	// ErrUnrecognizedValue is returned when a stored discriminator value was
	// never registered. It signals data or schema drift.
	ErrUnrecognizedValue = errors.New("sqldialect: unrecognized discriminator value")

	// ErrAssertion is returned when an internal consistency check fails, e.g.
	// a subtype that should have been registered at construction is missing.
	ErrAssertion = errors.New("sqldialect: assertion failure")
)

// InvalidArgumentError describes an argument an operation rejected.
type InvalidArgumentError struct {
	Op    string // Operation, e.g. "date-time literal"
	Arg   string // Argument name
	Value any    // Offending value
}

// Error returns the error string.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("sqldialect: %s: invalid %s: %v", e.Op, e.Arg, e.Value)
}

// Is reports whether the target error matches ErrInvalidArgument.
func (e *InvalidArgumentError) Is(err error) bool {
	return err == ErrInvalidArgument
}

// NewInvalidArgumentError returns a new InvalidArgumentError.
func NewInvalidArgumentError(op, arg string, value any) *InvalidArgumentError {
	return &InvalidArgumentError{Op: op, Arg: arg, Value: value}
}

// IsInvalidArgument returns true if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidArgumentError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidArgument)
}

// UnrecognizedValueError is returned when a discriminator value has no
// registered subtype.
type UnrecognizedValueError struct {
	Discriminator string
	Value         any
}

// Error returns the error string.
func (e *UnrecognizedValueError) Error() string {
	if e.Discriminator != "" {
		return fmt.Sprintf("sqldialect: unrecognized discriminator value for %s: %v", e.Discriminator, e.Value)
	}
	return fmt.Sprintf("sqldialect: unrecognized discriminator value: %v", e.Value)
}

// Is reports whether the target error matches ErrUnrecognizedValue.
func (e *UnrecognizedValueError) Is(err error) bool {
	return err == ErrUnrecognizedValue
}

// NewUnrecognizedValueError returns a new UnrecognizedValueError.
func NewUnrecognizedValueError(discriminator string, value any) *UnrecognizedValueError {
	return &UnrecognizedValueError{Discriminator: discriminator, Value: value}
}

// IsUnrecognizedValue returns true if the error is an UnrecognizedValueError.
func IsUnrecognizedValue(err error) bool {
	if err == nil {
		return false
	}
	var e *UnrecognizedValueError
	return errors.As(err, &e) || errors.Is(err, ErrUnrecognizedValue)
}

// AssertionError reports a broken internal invariant. It is a defect, not a
// recoverable runtime state.
type AssertionError struct {
	msg string
}

// Error returns the error string.
func (e *AssertionError) Error() string {
	return "sqldialect: assertion failure: " + e.msg
}

// Is reports whether the target error matches ErrAssertion.
func (e *AssertionError) Is(err error) bool {
	return err == ErrAssertion
}

// NewAssertionError returns a new AssertionError with a formatted message.
func NewAssertionError(format string, args ...any) *AssertionError {
	return &AssertionError{msg: fmt.Sprintf(format, args...)}
}

// IsAssertion returns true if the error is an AssertionError.
func IsAssertion(err error) bool {
	if err == nil {
		return false
	}
	var e *AssertionError
	return errors.As(err, &e) || errors.Is(err, ErrAssertion)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "sqldialect: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("sqldialect: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As can match
// any of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
