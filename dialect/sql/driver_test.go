package sql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect/dialect"
	"github.com/syssam/sqldialect/dialect/cockroach"
)

func TestWithVars(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	drv := OpenDB("pgx", db)
	mock.ExpectExec("SET application_name = 'svc'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("RESET application_name").WillReturnResult(sqlmock.NewResult(0, 0))
	rows := &Rows{}
	err = drv.Query(WithVar(context.Background(), "application_name", "svc"), "SELECT 1", []any{}, rows)
	require.NoError(t, err)
	require.NoError(t, rows.Close(), "rows should be closed to release the connection")
	require.NoError(t, mock.ExpectationsWereMet())

	// Quotes are escaped and each variable is reset once.
	mock.ExpectExec("SET application_name = 'a'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SET application_name = 'it''s'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO users DEFAULT VALUES").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("RESET application_name").WillReturnResult(sqlmock.NewResult(0, 0))
	ctx := WithVar(WithVar(context.Background(), "application_name", "a"), "application_name", "it's")
	err = drv.Exec(ctx, "INSERT INTO users DEFAULT VALUES", []any{}, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	v, ok := VarFromContext(ctx, "application_name")
	assert.True(t, ok)
	assert.Equal(t, "it's", v)

	// Transactions are pinned to one connection, no reset.
	mock.ExpectBegin()
	mock.ExpectExec("SET statement_timeout = '5'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectCommit()
	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	err = tx.Query(WithIntVar(context.Background(), "statement_timeout", 5), "SELECT 1", []any{}, rows)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithVarsInvalidName(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)
	err = drv.Exec(WithVar(context.Background(), "x; DROP TABLE t", "1"), "SELECT 1", []any{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session variable name")
}

func TestDriverDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	drv := OpenDB("postgres", db)
	assert.Equal(t, "postgres", drv.Dialect())
	assert.Equal(t, "postgres", drv.DriverName())
	assert.Equal(t, dialect.DriverPQ, drv.Kind())
	assert.Nil(t, drv.Profile())

	p := cockroach.New()
	withProfile := drv.WithProfile(p)
	assert.Equal(t, dialect.CockroachDB, withProfile.Dialect())
	assert.Same(t, p, withProfile.Profile())
	assert.Nil(t, drv.Profile(), "WithProfile must not modify the receiver")
	assert.Same(t, db, withProfile.DB())
}

func TestDriverExecQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE t SET a = \\$1").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 3))
	var res sql.Result
	require.NoError(t, drv.Exec(ctx, "UPDATE t SET a = $1", []any{1}, &res))
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	mock.ExpectQuery("SELECT a FROM t").WillReturnRows(sqlmock.NewRows([]string{"a"}).AddRow("x"))
	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "SELECT a FROM t", []any{}, rows))
	require.True(t, rows.Next())
	var a string
	require.NoError(t, rows.Scan(&a))
	assert.Equal(t, "x", a)
	require.NoError(t, rows.Close())

	mock.ExpectExec("DELETE FROM t").WillReturnError(errors.New("boom"))
	err = drv.Exec(ctx, "DELETE FROM t", []any{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialect/sql: exec: boom")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverInvalidArgs(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)
	ctx := context.Background()

	err = drv.Exec(ctx, "SELECT 1", "not a slice", nil)
	assert.ErrorContains(t, err, "expect []any for args")
	err = drv.Exec(ctx, "SELECT 1", []any{}, new(int))
	assert.ErrorContains(t, err, "expect *sql.Result")
	err = drv.Query(ctx, "SELECT 1", []any{}, new(int))
	assert.ErrorContains(t, err, "expect *sql.Rows")
}
