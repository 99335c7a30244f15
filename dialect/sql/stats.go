package sql

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/syssam/sqldialect/dialect"
	"github.com/syssam/sqldialect/dialect/cockroach"
)

// QueryStats holds statement execution statistics.
type QueryStats struct {
	Queries     atomic.Int64
	Execs       atomic.Int64
	Duration    atomic.Int64 // nanoseconds
	SlowQueries atomic.Int64
	Errors      atomic.Int64
	// Retryable counts errors the server asked the client to retry.
	Retryable atomic.Int64
	// Constraint counts unique, foreign-key and check violations.
	Constraint atomic.Int64
}

// StatsSnapshot is a point-in-time copy of QueryStats.
type StatsSnapshot struct {
	Queries     int64
	Execs       int64
	Duration    time.Duration
	SlowQueries int64
	Errors      int64
	Retryable   int64
	Constraint  int64
}

// Snapshot returns the current statistics.
func (s *QueryStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Queries:     s.Queries.Load(),
		Execs:       s.Execs.Load(),
		Duration:    time.Duration(s.Duration.Load()),
		SlowQueries: s.SlowQueries.Load(),
		Errors:      s.Errors.Load(),
		Retryable:   s.Retryable.Load(),
		Constraint:  s.Constraint.Load(),
	}
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("queries=%d execs=%d duration=%s slow=%d errors=%d retryable=%d constraint=%d",
		s.Queries, s.Execs, s.Duration, s.SlowQueries, s.Errors, s.Retryable, s.Constraint)
}

// StatsDriver wraps a Driver with statement statistics and slow statement
// logging.
type StatsDriver struct {
	*Driver
	stats         *QueryStats
	slowThreshold time.Duration
	logger        *slog.Logger
}

// StatsOption configures the StatsDriver.
type StatsOption func(*StatsDriver)

// WithSlowThreshold sets the duration above which a statement is slow.
// Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsDriver) {
		s.slowThreshold = d
	}
}

// WithStatsLogger sets the logger receiving slow statement warnings.
func WithStatsLogger(l *slog.Logger) StatsOption {
	return func(s *StatsDriver) {
		s.logger = l
	}
}

// NewStatsDriver wraps a Driver with statistics collection.
func NewStatsDriver(drv *Driver, opts ...StatsOption) *StatsDriver {
	s := &StatsDriver{
		Driver:        drv,
		stats:         &QueryStats{},
		slowThreshold: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// QueryStats returns the collected statistics.
func (d *StatsDriver) QueryStats() *QueryStats { return d.stats }

// Query executes a query and records statistics.
func (d *StatsDriver) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Query(ctx, query, args, v)
	d.record(ctx, query, start, err, &d.stats.Queries)
	return err
}

// Exec executes a statement and records statistics.
func (d *StatsDriver) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := d.Driver.Exec(ctx, query, args, v)
	d.record(ctx, query, start, err, &d.stats.Execs)
	return err
}

func (d *StatsDriver) record(ctx context.Context, query string, start time.Time, err error, counter *atomic.Int64) {
	duration := time.Since(start)
	counter.Add(1)
	d.stats.Duration.Add(int64(duration))
	if err != nil {
		d.stats.Errors.Add(1)
		switch {
		case cockroach.IsRetryable(err):
			d.stats.Retryable.Add(1)
		case cockroach.IsUniqueViolation(err), cockroach.IsForeignKeyViolation(err), cockroach.IsCheckViolation(err):
			d.stats.Constraint.Add(1)
		}
	}
	if duration > d.slowThreshold {
		d.stats.SlowQueries.Add(1)
		d.logger.WarnContext(ctx, "slow statement", "dialect", d.Dialect(), "duration", duration, "query", query)
	}
}

// Tx starts a transaction that also records statistics.
func (d *StatsDriver) Tx(ctx context.Context) (dialect.Tx, error) {
	tx, err := d.Driver.Tx(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsTx{Tx: tx, driver: d}, nil
}

// StatsTx wraps a transaction with statistics collection.
type StatsTx struct {
	dialect.Tx
	driver *StatsDriver
}

// Query executes a query within the transaction and records statistics.
func (tx *StatsTx) Query(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Query(ctx, query, args, v)
	tx.driver.record(ctx, query, start, err, &tx.driver.stats.Queries)
	return err
}

// Exec executes a statement within the transaction and records statistics.
func (tx *StatsTx) Exec(ctx context.Context, query string, args, v any) error {
	start := time.Now()
	err := tx.Tx.Exec(ctx, query, args, v)
	tx.driver.record(ctx, query, start, err, &tx.driver.stats.Execs)
	return err
}

var (
	_ dialect.Driver = (*StatsDriver)(nil)
	_ dialect.Tx     = (*StatsTx)(nil)
)
