package cockroach

import "github.com/syssam/sqldialect/dialect"

var lockHooks = dialect.LockHooks{
	ForUpdateOf:      forUpdateOf,
	ForUpdateMode:    forUpdateMode,
	ForUpdateOptions: forUpdateOptions,
	WriteLock:        writeLock,
	ReadLock:         readLock,
	ForUpdateNowait:  forUpdateNowait,
	ForUpdateSkip:    forUpdateSkipLocked,
}

func forUpdateOf(p *dialect.Profile, aliases string) string {
	if aliases == "" {
		return p.ForUpdate()
	}
	return p.ForUpdate() + " of " + aliases
}

// forUpdateMode renders the clause for the options' mode and timeout,
// ignoring per-alias modes.
func forUpdateMode(p *dialect.Profile, opts dialect.LockOptions) string {
	if p.Version().Compare(lockingSince) < 0 {
		return ""
	}
	return dialect.StandardLockString(p, "", opts.Mode, opts.Timeout)
}

// forUpdateOptions renders the clause for the lock options. Releases before
// 20.1 have no select ... for update, so the clause is empty there.
func forUpdateOptions(p *dialect.Profile, aliases string, opts dialect.LockOptions) string {
	if p.Version().Compare(lockingSince) < 0 {
		return ""
	}
	if aliases == "" {
		aliases = opts.StrongestAlias()
	}
	mode := opts.Mode
	if aliases != "" {
		mode = opts.ModeFor(aliases)
	}
	switch mode {
	case dialect.LockUpgrade:
		return p.ForUpdateOf(aliases)
	case dialect.LockPessimisticRead:
		return p.ReadLockString(aliases, opts.Timeout)
	case dialect.LockPessimisticWrite:
		return p.WriteLockString(aliases, opts.Timeout)
	case dialect.LockUpgradeNoWait, dialect.LockForce, dialect.LockPessimisticForceIncrement:
		return p.ForUpdateNowait(aliases)
	case dialect.LockUpgradeSkipLocked:
		return p.ForUpdateSkipLocked(aliases)
	default:
		return ""
	}
}

func withTimeout(p *dialect.Profile, lock string, timeout int) string {
	caps := p.Capabilities()
	switch timeout {
	case dialect.NoWait:
		if caps.SupportsNoWait {
			return lock + " nowait"
		}
	case dialect.SkipLocked:
		if caps.SupportsSkipLocked {
			return lock + " skip locked"
		}
	}
	return lock
}

func writeLock(p *dialect.Profile, aliases string, timeout int) string {
	return withTimeout(p, p.ForUpdateOf(aliases), timeout)
}

func readLock(p *dialect.Profile, aliases string, timeout int) string {
	if aliases == "" {
		return withTimeout(p, " for share", timeout)
	}
	return withTimeout(p, " for share of "+aliases, timeout)
}

func forUpdateNowait(p *dialect.Profile, aliases string) string {
	if !p.Capabilities().SupportsNoWait {
		return p.ForUpdateOf(aliases)
	}
	return p.ForUpdateOf(aliases) + " nowait"
}

func forUpdateSkipLocked(p *dialect.Profile, aliases string) string {
	if !p.Capabilities().SupportsSkipLocked {
		return p.ForUpdateOf(aliases)
	}
	return p.ForUpdateOf(aliases) + " skip locked"
}
