package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockModeOrdering(t *testing.T) {
	assert.True(t, LockPessimisticWrite.GreaterThan(LockPessimisticRead))
	assert.True(t, LockForce.GreaterThan(LockPessimisticWrite))
	assert.True(t, LockRead.GreaterThan(LockNone))
	assert.False(t, LockRead.GreaterThan(LockOptimistic))
	assert.False(t, LockNone.GreaterThan(LockRead))
}

func TestLockOptions(t *testing.T) {
	opts := LockOptions{
		Mode: LockRead,
		Aliases: map[string]LockMode{
			"b": LockPessimisticWrite,
			"a": LockPessimisticRead,
			"c": LockPessimisticWrite,
		},
	}
	assert.Equal(t, LockPessimisticRead, opts.ModeFor("a"))
	assert.Equal(t, LockRead, opts.ModeFor("missing"))
	// Strongest wins, ties go to the first alias by name.
	assert.Equal(t, "b", opts.StrongestAlias())

	assert.Equal(t, "", LockOptions{Mode: LockPessimisticWrite, Aliases: map[string]LockMode{"a": LockRead}}.StrongestAlias())
	assert.Equal(t, "", LockOptions{}.StrongestAlias())
}
