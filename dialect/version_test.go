package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"20.1", MakeVersion(20, 1)},
		{"v23.1.11", MakeVersion(23, 1, 11)},
		{"CockroachDB CCL v23.1.11 (x86_64-pc-linux-gnu, built 2023/09/27 01:53:43, go1.19.10)", MakeVersion(23, 1, 11)},
		{"PostgreSQL 13.4 on x86_64-pc-linux-gnu", MakeVersion(13, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	for _, in := range []string{"unknown", "99999999999999999999.1", "v20.99999999999999999999", "1.2.99999999999999999999"} {
		_, err := ParseVersion(in)
		assert.True(t, sqldialect.IsInvalidArgument(err), in)
	}
}

func TestVersionCompare(t *testing.T) {
	v := MakeVersion(20, 1)
	assert.True(t, v.IsSameOrAfter(20, 1))
	assert.True(t, v.IsSameOrAfter(20))
	assert.True(t, v.IsSameOrAfter(19, 2))
	assert.False(t, v.IsSameOrAfter(20, 2))
	assert.True(t, MakeVersion(19, 2).IsBefore(20, 1))
	assert.False(t, MakeVersion(21, 1).IsBefore(20, 1))
	assert.Equal(t, 0, MakeVersion(20, 1, 0).Compare(MakeVersion(20, 1)))
	assert.Equal(t, 1, MakeVersion(20, 10).Compare(MakeVersion(20, 9)))
	assert.Equal(t, "20.1.0", v.String())
}
