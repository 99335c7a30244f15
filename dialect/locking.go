package dialect

// ForUpdate returns the plain row-locking clause, e.g. " for update".
func (p *Profile) ForUpdate() string {
	if h := p.locks.ForUpdate; h != nil {
		return h(p)
	}
	return " for update"
}

// ForUpdateOf returns the locking clause naming the given aliases. The
// standard behavior ignores the aliases.
func (p *Profile) ForUpdateOf(aliases string) string {
	if h := p.locks.ForUpdateOf; h != nil {
		return h(p, aliases)
	}
	return p.ForUpdate()
}

// ForUpdateString returns the locking clause for the options' own mode and
// timeout. Per-alias modes are only consulted by ForUpdateStringOf.
func (p *Profile) ForUpdateString(opts LockOptions) string {
	if h := p.locks.ForUpdateMode; h != nil {
		return h(p, opts)
	}
	return standardLockString(p, "", opts.Mode, opts.Timeout)
}

// ForUpdateStringOf returns the locking clause for the options, restricted
// to the given aliases.
func (p *Profile) ForUpdateStringOf(aliases string, opts LockOptions) string {
	if h := p.locks.ForUpdateOptions; h != nil {
		return h(p, aliases, opts)
	}
	return standardLockString(p, aliases, opts.Mode, opts.Timeout)
}

// WriteLockString returns the pessimistic write clause with the timeout.
func (p *Profile) WriteLockString(aliases string, timeout int) string {
	if h := p.locks.WriteLock; h != nil {
		return h(p, aliases, timeout)
	}
	return p.ForUpdateOf(aliases)
}

// ReadLockString returns the pessimistic read clause with the timeout.
func (p *Profile) ReadLockString(aliases string, timeout int) string {
	if h := p.locks.ReadLock; h != nil {
		return h(p, aliases, timeout)
	}
	return p.ForUpdateOf(aliases)
}

// ForUpdateNowait returns the no-wait locking clause.
func (p *Profile) ForUpdateNowait(aliases string) string {
	if h := p.locks.ForUpdateNowait; h != nil {
		return h(p, aliases)
	}
	return p.ForUpdateOf(aliases)
}

// ForUpdateSkipLocked returns the skip-locked locking clause.
func (p *Profile) ForUpdateSkipLocked(aliases string) string {
	if h := p.locks.ForUpdateSkip; h != nil {
		return h(p, aliases)
	}
	return p.ForUpdateOf(aliases)
}

// standardLockString dispatches a lock mode to the matching clause.
func standardLockString(p *Profile, aliases string, mode LockMode, timeout int) string {
	switch mode {
	case LockUpgrade:
		return p.ForUpdateOf(aliases)
	case LockPessimisticRead:
		return p.ReadLockString(aliases, timeout)
	case LockPessimisticWrite:
		return p.WriteLockString(aliases, timeout)
	case LockUpgradeNoWait, LockForce, LockPessimisticForceIncrement:
		return p.ForUpdateNowait(aliases)
	case LockUpgradeSkipLocked:
		return p.ForUpdateSkipLocked(aliases)
	default:
		return ""
	}
}

// StandardLockString exposes the mode dispatch to backend hooks.
func StandardLockString(p *Profile, aliases string, mode LockMode, timeout int) string {
	return standardLockString(p, aliases, mode, timeout)
}
