package dialect

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
)

func TestStandardProfile(t *testing.T) {
	p := NewProfile(Config{Capabilities: StandardCapabilities()})
	assert.Equal(t, Standard, p.Name())
	assert.Equal(t, "varchar(255)", p.ColumnType(VarChar, Size{}))
	assert.Equal(t, "varchar(40)", p.ColumnType(VarChar, Size{Length: 40}))
	assert.Equal(t, "numeric(10,3)", p.ColumnType(Numeric, Size{Precision: 10, Scale: 3}))
	assert.Equal(t, "timestamp(6) with time zone", p.ColumnType(TimestampWithTimezone, Size{}))
	assert.Equal(t, "varchar", p.CastType(NVarChar))
	assert.Equal(t, "1", p.BooleanLiteral(true))
	assert.Equal(t, "0", p.BooleanLiteral(false))
	assert.Equal(t, "?", p.Placeholder(3))
	assert.Equal(t, UUID, p.ResolveSQLType("uuid", UUID))
	assert.Equal(t, "yyyy-MM-dd", p.DatetimeFormat("yyyy-MM-dd"))
}

func TestProfileHooksFallBack(t *testing.T) {
	p := NewProfile(Config{
		Capabilities: StandardCapabilities(),
		Hooks: Hooks{
			ColumnType: func(_ *Profile, code SQLType) (string, bool) {
				if code == TinyInt {
					return "smallint", true
				}
				return "", false
			},
		},
		DDLTypes: map[SQLType]string{JSON: "jsonb"},
	})
	// Override.
	assert.Equal(t, "smallint", p.ColumnType(TinyInt, Size{}))
	// Generic default, unchanged.
	assert.Equal(t, StandardColumnType(BigInt), p.ColumnType(BigInt, Size{}))
	// Registered DDL type beats the column type.
	assert.Equal(t, "jsonb", p.DDLType(JSON, Size{}))
	assert.Equal(t, "smallint", p.DDLType(TinyInt, Size{}))
}

func TestProfileConfigIsCopied(t *testing.T) {
	ddl := map[SQLType]string{UUID: "uuid"}
	p := NewProfile(Config{DDLTypes: ddl})
	ddl[UUID] = "changed"
	assert.Equal(t, "uuid", p.DDLType(UUID, Size{}))
}

func TestStandardDateTimeLiteral(t *testing.T) {
	p := NewProfile(Config{Capabilities: StandardCapabilities()})
	ts := time.Date(2023, 4, 5, 6, 7, 8, 123456789, time.UTC)

	s, err := p.DateTimeLiteral(ts, TemporalDate, nil)
	require.NoError(t, err)
	assert.Equal(t, "date '2023-04-05'", s)

	s, err = p.DateTimeLiteral(ts, TemporalTime, nil)
	require.NoError(t, err)
	assert.Equal(t, "time '06:07:08'", s)

	s, err = p.DateTimeLiteral(ts, TemporalTimestamp, nil)
	require.NoError(t, err)
	assert.Equal(t, "timestamp '2023-04-05 06:07:08.123456789'", s)

	_, err = p.DateTimeLiteral(ts, TemporalNone, nil)
	assert.True(t, sqldialect.IsInvalidArgument(err))
	_, err = p.DateTimeLiteral(ts, TemporalType(42), nil)
	assert.True(t, sqldialect.IsInvalidArgument(err))
}

func TestLiteralHelpers(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	ts := time.Date(2023, 4, 5, 22, 30, 0, 987654321, time.UTC)

	var b strings.Builder
	AppendAsTimestampWithMicros(&b, ts, true, loc)
	assert.Equal(t, "2023-04-06 00:30:00.987654+02:00", b.String())

	b.Reset()
	AppendAsTime(&b, ts, false, loc)
	assert.Equal(t, "00:30:00", b.String())

	b.Reset()
	AppendAsDate(&b, ts)
	assert.Equal(t, "2023-04-05", b.String())
}

func TestStandardLocking(t *testing.T) {
	p := NewProfile(Config{Capabilities: StandardCapabilities()})
	assert.Equal(t, " for update", p.ForUpdate())
	assert.Equal(t, " for update", p.ForUpdateOf("t"))
	assert.Equal(t, " for update", p.ForUpdateString(LockOptions{Mode: LockPessimisticWrite}))
	assert.Equal(t, " for update", p.ForUpdateString(LockOptions{Mode: LockUpgradeSkipLocked}))
	assert.Equal(t, "", p.ForUpdateString(LockOptions{Mode: LockRead}))
	assert.Equal(t, "", p.ForUpdateString(LockOptions{Mode: LockNone}))
}

func TestStandardTemporalPatterns(t *testing.T) {
	p := NewProfile(Config{Capabilities: StandardCapabilities()})
	assert.Equal(t, "extract(day from d)", p.ExtractPattern(DayOfMonth).Render(p.ExtractField(DayOfMonth), "d"))
	assert.Equal(t, Template("timestampadd(?1,?2,?3)"), p.TimestampAddPattern(Day, TemporalTimestamp, IntervalNone))
	tpl, err := p.TimestampDiffPattern(Day, TemporalDate, TemporalDate)
	require.NoError(t, err)
	assert.Equal(t, Template("timestampdiff(?1,?2,?3)"), tpl)
	assert.Equal(t, "hour", p.DurationField(Hour))
}

func TestProfileApplyLimit(t *testing.T) {
	p := NewProfile(Config{
		Capabilities: StandardCapabilities(),
		Limit:        OffsetFetchHandler{},
		Hooks: Hooks{
			Placeholder: func(_ *Profile, i int) string { return "$" + string(rune('0'+i)) },
		},
	})
	sql, args := p.ApplyLimit("select * from t", Limit{FirstRow: 10, MaxRows: 5}, 1)
	assert.Equal(t, "select * from t offset $1 rows fetch next $2 rows only", sql)
	assert.Equal(t, []any{10, 5}, args)

	sql, args = p.ApplyLimit("select * from t", Limit{MaxRows: 5}, 3)
	assert.Equal(t, "select * from t fetch first $3 rows only", sql)
	assert.Equal(t, []any{5}, args)

	sql, args = p.ApplyLimit("select * from t", Limit{}, 1)
	assert.Equal(t, "select * from t", sql)
	assert.Nil(t, args)
}

func TestLimitOffsetHandler(t *testing.T) {
	p := NewProfile(Config{})
	sql, args := p.ApplyLimit("select 1", Limit{FirstRow: 20, MaxRows: 10}, 1)
	assert.Equal(t, "select 1 limit ? offset ?", sql)
	assert.Equal(t, []any{10, 20}, args)
}
