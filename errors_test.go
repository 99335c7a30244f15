package sqldialect_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
)

func TestInvalidArgumentError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := sqldialect.NewInvalidArgumentError("date-time literal", "precision", 7)
		assert.Equal(t, "sqldialect: date-time literal: invalid precision: 7", err.Error())
	})

	t.Run("IsInvalidArgument", func(t *testing.T) {
		err := sqldialect.NewInvalidArgumentError("cast", "type", "other")
		assert.True(t, errors.Is(err, sqldialect.ErrInvalidArgument))
		assert.True(t, sqldialect.IsInvalidArgument(fmt.Errorf("wrapper: %w", err)))
		assert.True(t, sqldialect.IsInvalidArgument(sqldialect.ErrInvalidArgument))
		assert.False(t, sqldialect.IsInvalidArgument(errors.New("other error")))
		assert.False(t, sqldialect.IsInvalidArgument(nil))
	})
}

func TestUnrecognizedValueError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := sqldialect.NewUnrecognizedValueError("shape_type", "hexagon")
		assert.Equal(t, "sqldialect: unrecognized discriminator value for shape_type: hexagon", err.Error())
		err = sqldialect.NewUnrecognizedValueError("", 3)
		assert.Equal(t, "sqldialect: unrecognized discriminator value: 3", err.Error())
	})

	t.Run("IsUnrecognizedValue", func(t *testing.T) {
		err := sqldialect.NewUnrecognizedValueError("kind", 1)
		assert.True(t, errors.Is(err, sqldialect.ErrUnrecognizedValue))
		assert.True(t, sqldialect.IsUnrecognizedValue(fmt.Errorf("load: %w", err)))
		assert.False(t, sqldialect.IsUnrecognizedValue(sqldialect.NewAssertionError("x")))
		assert.False(t, sqldialect.IsUnrecognizedValue(nil))
	})
}

func TestAssertionError(t *testing.T) {
	err := sqldialect.NewAssertionError("unrecognized embeddable %q", "Circle")
	assert.Equal(t, `sqldialect: assertion failure: unrecognized embeddable "Circle"`, err.Error())
	assert.True(t, errors.Is(err, sqldialect.ErrAssertion))
	assert.True(t, sqldialect.IsAssertion(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, sqldialect.IsAssertion(sqldialect.ErrInvalidArgument))
	assert.False(t, sqldialect.IsAssertion(nil))
}

func TestAggregateError(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		assert.NoError(t, sqldialect.NewAggregateError())
		assert.NoError(t, sqldialect.NewAggregateError(nil, nil))
	})

	t.Run("SingleError", func(t *testing.T) {
		e := errors.New("only")
		assert.Same(t, e, sqldialect.NewAggregateError(nil, e))
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		err := sqldialect.NewAggregateError(
			sqldialect.NewAssertionError("a"),
			nil,
			sqldialect.NewInvalidArgumentError("op", "arg", 1),
		)
		require.Error(t, err)
		var agg *sqldialect.AggregateError
		require.ErrorAs(t, err, &agg)
		assert.Len(t, agg.Errors, 2)
		assert.Contains(t, err.Error(), "multiple errors:")
		assert.Contains(t, err.Error(), "[1] sqldialect: assertion failure: a")
		assert.True(t, sqldialect.IsAssertion(err))
		assert.True(t, sqldialect.IsInvalidArgument(err))
	})

	t.Run("EmptyAggregate", func(t *testing.T) {
		assert.Equal(t, "sqldialect: no errors", (&sqldialect.AggregateError{}).Error())
	})
}
