package sql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/syssam/sqldialect/dialect"
	"github.com/syssam/sqldialect/dialect/cockroach"
)

// RetryPolicy decides the delay before the next transaction attempt.
type RetryPolicy interface {
	// NextDelay returns the delay before attempt+1, or a negative value to
	// stop retrying.
	NextDelay(attempt int) time.Duration
}

// MaxRetryDelay bounds the doubling delay of NewRetryPolicy. A base above it
// is used unchanged.
const MaxRetryDelay = 2 * time.Second

// NewRetryPolicy returns a policy allowing maxAttempts attempts with a delay
// doubling from base up to MaxRetryDelay.
func NewRetryPolicy(maxAttempts int, base time.Duration) RetryPolicy {
	return &retryPolicy{maxAttempts: maxAttempts, base: base}
}

type retryPolicy struct {
	maxAttempts int
	base        time.Duration
}

func (p *retryPolicy) NextDelay(attempt int) time.Duration {
	if attempt >= p.maxAttempts {
		return -1
	}
	d := p.base
	for i := 1; i < attempt && d < MaxRetryDelay; i++ {
		d *= 2
	}
	return min(d, max(p.base, MaxRetryDelay))
}

// DefaultRetryPolicy retries a transaction up to 5 times starting at 10ms.
var DefaultRetryPolicy = NewRetryPolicy(5, 10*time.Millisecond)

// TxOption configures ExecuteTx.
type TxOption func(*txConfig)

type txConfig struct {
	opts   *TxOptions
	policy RetryPolicy
	logger *slog.Logger
}

// WithTxOptions sets the options passed to BeginTx.
func WithTxOptions(opts *TxOptions) TxOption {
	return func(c *txConfig) {
		c.opts = opts
	}
}

// WithRetryPolicy sets the retry policy. Default is DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) TxOption {
	return func(c *txConfig) {
		c.policy = p
	}
}

// WithTxLogger sets the logger reporting retried attempts.
func WithTxLogger(l *slog.Logger) TxOption {
	return func(c *txConfig) {
		c.logger = l
	}
}

// ExecuteTx runs fn in a transaction and commits it. Attempts failing with a
// serialization error are rolled back and retried according to the policy.
// Any other error rolls back the transaction and is returned.
func ExecuteTx(ctx context.Context, drv *Driver, fn func(dialect.Tx) error, opts ...TxOption) error {
	c := &txConfig{policy: DefaultRetryPolicy}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	for attempt := 1; ; attempt++ {
		err := runTx(ctx, drv, c.opts, fn)
		if err == nil || !cockroach.IsRetryable(err) {
			return err
		}
		delay := c.policy.NextDelay(attempt)
		if delay < 0 {
			return fmt.Errorf("dialect/sql: transaction failed after %d attempts: %w", attempt, err)
		}
		c.logger.Debug("retrying transaction", "attempt", attempt, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}
	}
}

func runTx(ctx context.Context, drv *Driver, opts *TxOptions, fn func(dialect.Tx) error) error {
	tx, err := drv.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("dialect/sql: rollback: %w", rerr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dialect/sql: commit: %w", err)
	}
	return nil
}
