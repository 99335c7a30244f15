// Package sql connects dialect profiles to database/sql.
//
// Open and OpenDB wrap a *sql.DB for the pgx ("pgx") or lib/pq ("postgres")
// drivers, both of which are registered by this package. Resolve probes the
// server banner and returns the matching profile:
//
//	drv, err := sql.OpenProfile(ctx, "pgx", dsn)
//	if err != nil {
//		return err
//	}
//	p := drv.Profile()
//	stmt, args := p.ApplyLimit("SELECT id FROM users ORDER BY id", dialect.Limit{MaxRows: 10}, 1)
//
// # Transactions
//
// ExecuteTx retries transactions that fail with a serialization error, which
// CockroachDB reports under contention:
//
//	err := sql.ExecuteTx(ctx, drv, func(tx dialect.Tx) error {
//		return tx.Exec(ctx, "UPDATE accounts SET balance = balance - $1 WHERE id = $2", []any{10, 1}, nil)
//	})
//
// # Session variables
//
// WithVar attaches session variables to a context. They are set before each
// statement and reset before the connection returns to the pool.
package sql
