package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
)

func TestConversionFactor(t *testing.T) {
	tests := []struct {
		from, to TemporalUnit
		want     string
	}{
		{Day, Day, ""},
		{Day, Week, "/7"},
		{Day, Hour, "*24"},
		{Day, Minute, "*1440"},
		{Day, Second, "*86400"},
		{Day, Nanosecond, "*86400000000000"},
		{Day, Native, "*86400000000"},
		{Second, Minute, "/60"},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"_"+tt.to.String(), func(t *testing.T) {
			got, err := ConversionFactor(tt.from, tt.to, 1000)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ConversionFactor(Day, Month, 1000)
	assert.True(t, sqldialect.IsInvalidArgument(err))
	_, err = ConversionFactor(DayOfWeek, Day, 1000)
	assert.True(t, sqldialect.IsInvalidArgument(err))
}

func TestTemplateRender(t *testing.T) {
	tpl := Template("(?3+(?2)*interval '1 ?1')")
	assert.Equal(t, "(ts+(5)*interval '1 day')", tpl.Render("day", "5", "ts"))
	assert.Equal(t, 3, tpl.Arity())

	// Missing arguments are left in place.
	assert.Equal(t, "f(a,?2)", Template("f(?1,?2)").Render("a"))
	// Integer division operator is not a placeholder.
	assert.Equal(t, "extract(month from b)//3", Template("extract(month from ?1)//3").Render("b"))
	// Multi-digit placeholders.
	args := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
	assert.Equal(t, "11-1", Template("?11-?1").Render(args...))
	assert.Equal(t, "no params", Template("no params").Render("x"))
	assert.Equal(t, 0, Template("pi()").Arity())
}

func TestUnitNames(t *testing.T) {
	assert.Equal(t, "day_of_week", DayOfWeek.String())
	assert.Equal(t, "timestamp", TemporalTimestamp.String())
	assert.Equal(t, "temporal(9)", TemporalType(9).String())
	assert.Equal(t, "unit(99)", TemporalUnit(99).String())
	assert.Equal(t, "varchar", VarChar.String())
	assert.Equal(t, "sqltype(-1)", SQLType(-1).String())
}
