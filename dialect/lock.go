package dialect

import "sort"

// LockMode is the row lock requested for a query.
type LockMode int

// Lock modes, ordered by strength.
const (
	LockNone LockMode = iota
	LockRead
	LockOptimistic
	LockOptimisticForceIncrement
	LockWrite
	LockUpgrade // Deprecated: use PessimisticWrite.
	LockUpgradeNoWait
	LockUpgradeSkipLocked
	LockPessimisticRead
	LockPessimisticWrite
	LockPessimisticForceIncrement
	LockForce
)

// level returns the strength used for ordering lock modes.
func (m LockMode) level() int {
	switch m {
	case LockNone:
		return 0
	case LockRead, LockOptimistic:
		return 1
	case LockOptimisticForceIncrement, LockWrite:
		return 2
	case LockPessimisticRead:
		return 3
	case LockUpgrade, LockPessimisticWrite, LockUpgradeNoWait, LockUpgradeSkipLocked:
		return 4
	case LockForce, LockPessimisticForceIncrement:
		return 5
	}
	return 0
}

// GreaterThan reports whether m is a stronger lock than o.
func (m LockMode) GreaterThan(o LockMode) bool {
	return m.level() > o.level()
}

// String returns the lock mode name.
func (m LockMode) String() string {
	switch m {
	case LockNone:
		return "none"
	case LockRead:
		return "read"
	case LockOptimistic:
		return "optimistic"
	case LockOptimisticForceIncrement:
		return "optimistic_force_increment"
	case LockWrite:
		return "write"
	case LockUpgrade:
		return "upgrade"
	case LockUpgradeNoWait:
		return "upgrade_nowait"
	case LockUpgradeSkipLocked:
		return "upgrade_skiplocked"
	case LockPessimisticRead:
		return "pessimistic_read"
	case LockPessimisticWrite:
		return "pessimistic_write"
	case LockPessimisticForceIncrement:
		return "pessimistic_force_increment"
	case LockForce:
		return "force"
	}
	return "unknown"
}

// Lock timeouts with special meaning. Positive values are milliseconds. The
// zero value waits forever.
const (
	WaitForever = 0
	NoWait      = -1
	SkipLocked  = -2
)

// LockOptions describes the locking requested for a query.
type LockOptions struct {
	// Mode is the lock mode applied to aliases without a specific mode.
	Mode LockMode
	// Timeout is NoWait, WaitForever, SkipLocked or a wait in milliseconds.
	Timeout int
	// Aliases holds per-alias lock modes.
	Aliases map[string]LockMode
}

// ModeFor returns the lock mode of the alias, or the default mode.
func (o LockOptions) ModeFor(alias string) LockMode {
	if m, ok := o.Aliases[alias]; ok {
		return m
	}
	return o.Mode
}

// StrongestAlias returns the alias holding the strongest lock mode above the
// default mode. Ties are broken by alias name. It returns "" if no alias is
// stronger than the default.
func (o LockOptions) StrongestAlias() string {
	names := make([]string, 0, len(o.Aliases))
	for name := range o.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	var (
		alias string
		mode  = o.Mode
	)
	for _, name := range names {
		if m := o.Aliases[name]; m.GreaterThan(mode) {
			alias, mode = name, m
		}
	}
	return alias
}

// RowLockStrategy describes what a "for update of" clause names.
type RowLockStrategy int

// Row lock strategies.
const (
	RowLockNone RowLockStrategy = iota
	RowLockTable
	RowLockColumn
)

// String returns the strategy name.
func (s RowLockStrategy) String() string {
	switch s {
	case RowLockTable:
		return "table"
	case RowLockColumn:
		return "column"
	}
	return "none"
}
