package sql

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/dialect"
)

const crdbBanner = "CockroachDB CCL v23.1.11 (x86_64-pc-linux-gnu, built 2023/09/27 01:53:43, go1.19.13)"

func TestBackendOf(t *testing.T) {
	tests := map[string]string{
		crdbBanner: dialect.CockroachDB,
		"PostgreSQL 15.2 on x86_64-pc-linux-gnu, compiled by gcc":          dialect.Postgres,
		"IRIS for UNIX (Ubuntu Server LTS for x86-64) 2023.1 (Build 229U)": dialect.IRIS,
		"SQLite 3.42": "",
	}
	for banner, want := range tests {
		assert.Equal(t, want, BackendOf(banner), banner)
	}
}

func TestDetect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)

	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(crdbBanner))
	d, err := Detect(context.Background(), drv)
	require.NoError(t, err)
	assert.Equal(t, dialect.CockroachDB, d.Backend)
	assert.Equal(t, dialect.MakeVersion(23, 1, 11), d.Version)
	assert.Equal(t, crdbBanner, d.Banner)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDetectErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"version"}))
	_, err = Detect(ctx, drv)
	assert.ErrorContains(t, err, "no rows returned")

	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("unknown"))
	_, err = Detect(ctx, drv)
	assert.True(t, sqldialect.IsInvalidArgument(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	drv := OpenDB("postgres", db)
	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("CockroachDB CCL v19.2.4 (x86_64)"))
	p, err := Resolve(context.Background(), drv, WithProbeLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, dialect.CockroachDB, p.Name())
	assert.Equal(t, dialect.MakeVersion(19, 2, 4), p.Version())
	assert.Equal(t, dialect.DriverPQ, p.DriverKind())
	assert.Empty(t, p.ForUpdateString(dialect.LockOptions{Mode: dialect.LockPessimisticWrite}))
	assert.Contains(t, buf.String(), "dialect profile selected")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveIRIS(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("iris", db)

	mock.ExpectQuery(`SELECT \$ZVERSION`).WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("IRIS for UNIX 2023.1 (Build 229U)"))
	p, err := Resolve(context.Background(), drv, WithVersionQuery(IRISVersionQuery))
	require.NoError(t, err)
	assert.Equal(t, dialect.IRIS, p.Name())
	assert.False(t, p.Capabilities().SupportsTableCheck)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveBackendOverride(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)

	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("v20.2.1"))
	p, err := Resolve(context.Background(), drv, WithBackend(dialect.CockroachDB))
	require.NoError(t, err)
	assert.Equal(t, " for update", p.ForUpdateString(dialect.LockOptions{Mode: dialect.LockPessimisticWrite}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveUnsupported(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB("pgx", db)

	mock.ExpectQuery(`SELECT version\(\)`).WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("PostgreSQL 15.2"))
	_, err = Resolve(context.Background(), drv)
	require.Error(t, err)
	assert.True(t, sqldialect.IsInvalidArgument(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
