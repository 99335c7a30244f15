package dialect

import "context"

// Backend names.
const (
	Postgres    = "postgres"
	CockroachDB = "cockroach"
	IRIS        = "iris"
	Standard    = "standard"
)

// ExecQuerier wraps the 2 database operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in SQL, INSERT or UPDATE.
	// It scans the result into the pointer v. For SQL drivers, it is dialect/sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, it is *dialect/sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for backend drivers.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the backend name of the driver.
	Dialect() string
}

// Tx wraps the Exec and Query operations in transaction.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}

// DriverKind identifies the client library talking to a PostgreSQL-wire backend.
type DriverKind int

// Driver kinds.
const (
	DriverPGX DriverKind = iota // github.com/jackc/pgx/v5/stdlib
	DriverPQ                    // github.com/lib/pq
	DriverOther
)

// DriverKindOf maps a database/sql driver name to its kind.
func DriverKindOf(driverName string) DriverKind {
	switch driverName {
	case "pgx", "pgx/v5":
		return DriverPGX
	case "postgres", "pq":
		return DriverPQ
	default:
		return DriverOther
	}
}

// String returns the database/sql driver name for the kind.
func (k DriverKind) String() string {
	switch k {
	case DriverPGX:
		return "pgx"
	case DriverPQ:
		return "postgres"
	default:
		return "other"
	}
}
