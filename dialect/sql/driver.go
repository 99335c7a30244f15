package sql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	// Register the pgx and lib/pq database/sql drivers.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/dialect"
)

// validIdentifierRe validates session variable names.
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// Driver is a dialect.Driver implementation over database/sql. It carries
// the profile of the backend once one is attached.
type Driver struct {
	Conn
	driverName string
	profile    *dialect.Profile
}

// NewDriver creates a new Driver with the given database/sql driver name and Conn.
func NewDriver(driverName string, c Conn) *Driver {
	return &Driver{driverName: driverName, Conn: c}
}

// Open wraps the database/sql.Open method. driverName is "pgx" or
// "postgres" for the PostgreSQL-wire backends.
func Open(driverName, source string) (*Driver, error) {
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: open %s: %w", driverName, err)
	}
	return OpenDB(driverName, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(driverName string, db *sql.DB) *Driver {
	return NewDriver(driverName, Conn{db})
}

// WithProfile returns a copy of the driver carrying the profile.
func (d *Driver) WithProfile(p *dialect.Profile) *Driver {
	c := *d
	c.profile = p
	return &c
}

// Profile returns the attached profile, or nil.
func (d *Driver) Profile() *dialect.Profile { return d.profile }

// DriverName returns the database/sql driver name.
func (d *Driver) DriverName() string { return d.driverName }

// Kind returns the client library kind.
func (d *Driver) Kind() dialect.DriverKind { return dialect.DriverKindOf(d.driverName) }

// DB returns the underlying *sql.DB instance.
func (d *Driver) DB() *sql.DB {
	return d.ExecQuerier.(*sql.DB)
}

// Dialect implements the dialect.Driver interface. It returns the profile
// name, or the driver name when no profile is attached.
func (d *Driver) Dialect() string {
	if d.profile != nil {
		return d.profile.Name()
	}
	return d.driverName
}

// Tx starts and returns a transaction.
func (d *Driver) Tx(ctx context.Context) (dialect.Tx, error) {
	return d.BeginTx(ctx, nil)
}

// BeginTx starts a transaction with options.
func (d *Driver) BeginTx(ctx context.Context, opts *TxOptions) (dialect.Tx, error) {
	tx, err := d.DB().BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: begin: %w", err)
	}
	return &Tx{Conn: Conn{tx}, Tx: tx}, nil
}

// Close closes the underlying connection.
func (d *Driver) Close() error { return d.DB().Close() }

// Tx implements dialect.Tx interface.
type Tx struct {
	Conn
	driver.Tx
}

type ctxVarsKey struct{}

// sessionVars holds session variables to set before every statement.
type sessionVars struct {
	vars []struct{ k, v string }
}

// WithVar returns a new context that holds a session variable, such as
// application_name or statement_timeout, to be set before every statement.
func WithVar(ctx context.Context, name, value string) context.Context {
	sv, _ := ctx.Value(ctxVarsKey{}).(sessionVars)
	vars := make([]struct{ k, v string }, len(sv.vars), len(sv.vars)+1)
	copy(vars, sv.vars)
	vars = append(vars, struct{ k, v string }{k: name, v: value})
	return context.WithValue(ctx, ctxVarsKey{}, sessionVars{vars: vars})
}

// WithIntVar calls WithVar with the string representation of the value.
func WithIntVar(ctx context.Context, name string, value int) context.Context {
	return WithVar(ctx, name, strconv.Itoa(value))
}

// VarFromContext returns the last value set for the session variable.
func VarFromContext(ctx context.Context, name string) (string, bool) {
	sv, _ := ctx.Value(ctxVarsKey{}).(sessionVars)
	for i := len(sv.vars) - 1; i >= 0; i-- {
		if sv.vars[i].k == name {
			return sv.vars[i].v, true
		}
	}
	return "", false
}

// ExecQuerier is the subset of *sql.DB, *sql.Conn and *sql.Tx used by Conn.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn implements dialect.ExecQuerier given ExecQuerier.
type Conn struct {
	ExecQuerier
}

func argList(args any) ([]any, error) {
	argv, ok := args.([]any)
	if !ok {
		return nil, fmt.Errorf("dialect/sql: invalid type %T. expect []any for args", args)
	}
	return argv, nil
}

// Exec implements the dialect.Exec method. v is nil or a *sql.Result.
func (c Conn) Exec(ctx context.Context, query string, args, v any) (rerr error) {
	argv, err := argList(args)
	if err != nil {
		return err
	}
	res, ok := v.(*sql.Result)
	if v != nil && !ok {
		return fmt.Errorf("dialect/sql: invalid type %T. expect *sql.Result", v)
	}
	s, err := c.session(ctx)
	if err != nil {
		return fmt.Errorf("dialect/sql: exec: set session vars: %w", err)
	}
	defer func() { rerr = errors.Join(rerr, s.release()) }()
	r, err := s.ex.ExecContext(ctx, query, argv...)
	if err != nil {
		return fmt.Errorf("dialect/sql: exec: %w", err)
	}
	if res != nil {
		*res = r
	}
	return nil
}

// Query implements the dialect.Query method. v must be a *Rows.
func (c Conn) Query(ctx context.Context, query string, args, v any) error {
	vr, ok := v.(*Rows)
	if !ok {
		return fmt.Errorf("dialect/sql: invalid type %T. expect *sql.Rows", v)
	}
	argv, err := argList(args)
	if err != nil {
		return err
	}
	s, err := c.session(ctx)
	if err != nil {
		return fmt.Errorf("dialect/sql: query: set session vars: %w", err)
	}
	rows, err := s.ex.QueryContext(ctx, query, argv...)
	if err != nil {
		return fmt.Errorf("dialect/sql: query: %w", errors.Join(err, s.release()))
	}
	*vr = Rows{rows}
	if s.pinned() {
		vr.ColumnScanner = rowsWithCloser{rows, s.release}
	}
	return nil
}

// session is where one statement runs. With session variables in the
// context and no transaction, a connection is pinned so that SET, the
// statement and RESET share one backend session.
type session struct {
	ex    ExecQuerier
	conn  *sql.Conn
	reset []string
}

func (s *session) pinned() bool { return s.conn != nil }

// release resets the variables and returns a pinned connection to the pool.
func (s *session) release() error {
	if s.conn == nil {
		return nil
	}
	// The statement context may already be canceled.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var errs []error
	for _, name := range s.reset {
		if _, err := s.conn.ExecContext(ctx, "RESET "+name); err != nil {
			errs = append(errs, err)
			break
		}
	}
	errs = append(errs, s.conn.Close())
	s.conn = nil
	return errors.Join(errs...)
}

func (c Conn) session(ctx context.Context) (*session, error) {
	sv, _ := ctx.Value(ctxVarsKey{}).(sessionVars)
	if len(sv.vars) == 0 {
		return &session{ex: c.ExecQuerier}, nil
	}
	for _, v := range sv.vars {
		if !isValidIdentifier(v.k) {
			return nil, sqldialect.NewInvalidArgumentError("set session variable", "session variable name", strconv.Quote(v.k))
		}
	}
	s := &session{}
	switch e := c.ExecQuerier.(type) {
	case *sql.Tx:
		s.ex = e
	case *sql.DB:
		conn, err := e.Conn(ctx)
		if err != nil {
			return nil, err
		}
		s.ex, s.conn = conn, conn
	default:
		return nil, fmt.Errorf("unsupported ExecQuerier type: %T", c.ExecQuerier)
	}
	seen := make(map[string]bool, len(sv.vars))
	for _, v := range sv.vars {
		if !seen[v.k] {
			seen[v.k] = true
			s.reset = append(s.reset, v.k)
		}
		if _, err := s.ex.ExecContext(ctx, "SET "+v.k+" = "+pq.QuoteLiteral(v.v)); err != nil {
			return nil, errors.Join(err, s.release())
		}
	}
	return s, nil
}

var _ dialect.Driver = (*Driver)(nil)

type (
	// Rows holds the scanner of a query result.
	Rows struct{ ColumnScanner }
	// Result is an alias to sql.Result.
	Result = sql.Result
	// TxOptions holds the transaction options to be used in DB.BeginTx.
	TxOptions = sql.TxOptions
)

// ColumnScanner is the interface that wraps the standard
// sql.Rows methods used for scanning database rows.
type ColumnScanner interface {
	Close() error
	ColumnTypes() ([]*sql.ColumnType, error)
	Columns() ([]string, error)
	Err() error
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
}

// rowsWithCloser releases a pinned session when the rows are closed.
type rowsWithCloser struct {
	ColumnScanner
	closer func() error
}

func (r rowsWithCloser) Close() error {
	err := r.ColumnScanner.Close()
	return errors.Join(err, r.closer())
}
