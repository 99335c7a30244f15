package sql

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	drv := NewStatsDriver(OpenDB("postgres", db),
		WithSlowThreshold(-1),
		WithStatsLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	ctx := context.Background()

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())

	mock.ExpectExec("INSERT INTO t").WillReturnError(&pq.Error{Code: "23505"})
	require.Error(t, drv.Exec(ctx, "INSERT INTO t VALUES (1)", []any{}, nil))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE t").WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()
	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.Error(t, tx.Exec(ctx, "UPDATE t SET a = 1", []any{}, nil))
	require.NoError(t, tx.Rollback())

	s := drv.QueryStats().Snapshot()
	assert.EqualValues(t, 1, s.Queries)
	assert.EqualValues(t, 2, s.Execs)
	assert.EqualValues(t, 2, s.Errors)
	assert.EqualValues(t, 1, s.Constraint)
	assert.EqualValues(t, 1, s.Retryable)
	assert.EqualValues(t, 3, s.SlowQueries)
	assert.Contains(t, s.String(), "queries=1 execs=2")
	assert.Contains(t, buf.String(), "slow statement")
	require.NoError(t, mock.ExpectationsWereMet())
}
