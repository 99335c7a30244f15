// Package iris provides the InterSystems IRIS profile.
package iris

import (
	"log/slog"
	"strings"

	"github.com/syssam/sqldialect/dialect"
)

// Option configures the profile.
type Option func(*options)

type options struct {
	version dialect.Version
	logger  *slog.Logger
}

// WithVersion sets the backend version.
func WithVersion(v dialect.Version) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithLogger sets the logger used while building the profile.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns the IRIS profile. It follows the standard behavior except that
// check constraints are not emitted and pagination uses select top.
func New(opts ...Option) *dialect.Profile {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return dialect.NewProfile(dialect.Config{
		Name:         dialect.IRIS,
		Version:      o.version,
		DriverKind:   dialect.DriverOther,
		Capabilities: capabilities(),
		Limit:        TopLimitHandler{},
		Logger:       o.logger,
	})
}

func capabilities() dialect.Capabilities {
	c := dialect.StandardCapabilities()
	c.SupportsTableCheck = false
	c.SupportsColumnCheck = false
	c.SupportsSequences = false
	c.NameQualifier = dialect.QualifySchema
	return c
}

// TopLimitHandler renders "select top n". Statements that do not start with
// select are wrapped in a derived table. Rows before the first row are not
// skipped by the server: the bound count includes them and the caller
// discards them while reading.
type TopLimitHandler struct{}

// ProcessSQL implements dialect.LimitHandler.
func (TopLimitHandler) ProcessSQL(p *dialect.Profile, sql string, l dialect.Limit, next int) string {
	if !l.HasMaxRows() {
		return sql
	}
	i := selectEnd(sql)
	if i < 0 {
		return "select top " + p.Placeholder(next) + " * from (" + sql + ")"
	}
	return sql[:i] + " top " + p.Placeholder(next) + sql[i:]
}

// BindValues implements dialect.LimitHandler.
func (TopLimitHandler) BindValues(l dialect.Limit) []any {
	if !l.HasMaxRows() {
		return nil
	}
	return []any{l.FirstRow + l.MaxRows}
}

// selectEnd returns the index after the leading "select" or
// "select distinct" keywords, or -1.
func selectEnd(sql string) int {
	lower := strings.ToLower(sql)
	end, ok := keywordAt(lower, skipSpace(lower, 0), "select")
	if !ok {
		return -1
	}
	if e, ok := keywordAt(lower, skipSpace(lower, end), "distinct"); ok {
		return e
	}
	return end
}

// keywordAt reports whether kw starts at i as a whole word and returns the
// index after it.
func keywordAt(s string, i int, kw string) (int, bool) {
	if !strings.HasPrefix(s[i:], kw) {
		return 0, false
	}
	e := i + len(kw)
	if e < len(s) && isIdentChar(s[e]) {
		return 0, false
	}
	return e, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' || c == '%' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c >= 0x80
}
