package dialect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/sqldialect"
)

func TestIdentifierHelper(t *testing.T) {
	caps := StandardCapabilities()
	caps.UnquotedCase = CaseLower
	caps.QuotedCase = CaseMixed
	caps.NameQualifier = QualifySchema
	caps.MaxIdentifierLength = 8
	h := NewProfile(Config{Capabilities: caps}).Identifiers()

	assert.Equal(t, "users", h.Normalize("USERS"))
	assert.Equal(t, "straße", h.Normalize("STRAßE"))
	assert.Equal(t, "MixedCase", h.Normalize(`"MixedCase"`))
	assert.Equal(t, `a"b`, h.Normalize(`"a""b"`))

	assert.Equal(t, `"order"`, h.Quote("order"))
	assert.Equal(t, `"a""b"`, h.Quote(`a"b`))
	assert.Equal(t, `"done"`, h.Quote(`"done"`))

	assert.Equal(t, "public.users", h.Qualify("db", "public", "users"))
	assert.Equal(t, "users", h.Qualify("db", "", "users"))

	assert.NoError(t, h.Validate("users"))
	assert.True(t, sqldialect.IsInvalidArgument(h.Validate(strings.Repeat("x", 9))))
	assert.True(t, sqldialect.IsInvalidArgument(h.Validate("")))
}

func TestIdentifierHelperStandard(t *testing.T) {
	h := NewProfile(Config{Capabilities: StandardCapabilities()}).Identifiers()
	assert.Equal(t, "USERS", h.Normalize("users"))
	assert.Equal(t, "db.public.users", h.Qualify("db", "public", "users"))
	assert.NoError(t, h.Validate(strings.Repeat("x", 500)))
}
