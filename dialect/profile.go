package dialect

import (
	"log/slog"
	"maps"
	"strings"
	"time"
)

// Hooks holds the backend renderers of a profile. Every hook receives the
// profile it belongs to, so a hook may call back into other operations. A
// nil hook, or a hook reporting false, falls back to the standard behavior.
type Hooks struct {
	ColumnType            func(p *Profile, code SQLType) (string, bool)
	CastType              func(p *Profile, code SQLType) (string, bool)
	ResolveSQLType        func(p *Profile, columnTypeName string, code SQLType) SQLType
	AppendDateTimeLiteral func(p *Profile, b *strings.Builder, t time.Time, precision TemporalType, loc *time.Location) error
	AppendBoolean         func(p *Profile, b *strings.Builder, v bool)
	ExtractPattern        func(p *Profile, u TemporalUnit) (string, bool)
	ExtractField          func(p *Profile, u TemporalUnit) (string, bool)
	DurationField         func(p *Profile, u TemporalUnit) (string, bool)
	TimestampAddPattern   func(p *Profile, u TemporalUnit, t TemporalType, it IntervalType) (string, bool)
	TimestampDiffPattern  func(p *Profile, u TemporalUnit, from, to TemporalType) (string, error)
	DatetimeFormat        func(p *Profile, format string) string
	QuoteIdentifier       func(p *Profile, name string) string
	Placeholder           func(p *Profile, index int) string
}

// LockHooks holds the backend renderers for row-locking clauses. An empty
// aliases argument means the clause names no tables.
type LockHooks struct {
	ForUpdate        func(p *Profile) string
	ForUpdateOf      func(p *Profile, aliases string) string
	ForUpdateMode    func(p *Profile, opts LockOptions) string
	ForUpdateOptions func(p *Profile, aliases string, opts LockOptions) string
	WriteLock        func(p *Profile, aliases string, timeout int) string
	ReadLock         func(p *Profile, aliases string, timeout int) string
	ForUpdateNowait  func(p *Profile, aliases string) string
	ForUpdateSkip    func(p *Profile, aliases string) string
}

// Config is the input of NewProfile.
type Config struct {
	Name         string
	Version      Version
	DriverKind   DriverKind
	Capabilities Capabilities
	Hooks        Hooks
	Locks        LockHooks
	// DDLTypes are registered column types that take precedence over the
	// ColumnType hook when rendering DDL.
	DDLTypes  map[SQLType]string
	Functions []Function
	Limit     LimitHandler
	Logger    *slog.Logger
}

// Profile is a backend strategy object. It is immutable after NewProfile and
// safe for concurrent use.
type Profile struct {
	name       string
	version    Version
	driverKind DriverKind
	caps       Capabilities
	hooks      Hooks
	locks      LockHooks
	ddlTypes   map[SQLType]string
	functions  *FunctionRegistry
	limit      LimitHandler
	idents     *IdentifierHelper
}

// NewProfile builds a profile from the config.
func NewProfile(cfg Config) *Profile {
	if cfg.Name == "" {
		cfg.Name = Standard
	}
	p := &Profile{
		name:       cfg.Name,
		version:    cfg.Version,
		driverKind: cfg.DriverKind,
		caps:       cfg.Capabilities,
		hooks:      cfg.Hooks,
		locks:      cfg.Locks,
		ddlTypes:   maps.Clone(cfg.DDLTypes),
		functions:  NewFunctionRegistry(cfg.Functions...),
		limit:      cfg.Limit,
	}
	if p.limit == nil {
		p.limit = LimitOffsetHandler{}
	}
	p.idents = newIdentifierHelper(p)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("dialect profile resolved",
		"dialect", p.name,
		"version", p.version.String(),
		"driver", p.driverKind.String(),
		"functions", p.functions.Len(),
	)
	return p
}

// Name returns the backend name.
func (p *Profile) Name() string { return p.name }

// Version returns the backend version the profile was built for.
func (p *Profile) Version() Version { return p.version }

// DriverKind returns the client library kind.
func (p *Profile) DriverKind() DriverKind { return p.driverKind }

// Capabilities returns a copy of the capability table.
func (p *Profile) Capabilities() Capabilities { return p.caps }

// Functions returns the function registry.
func (p *Profile) Functions() *FunctionRegistry { return p.functions }

// Identifiers returns the identifier helper.
func (p *Profile) Identifiers() *IdentifierHelper { return p.idents }

// LimitHandler returns the pagination handler.
func (p *Profile) LimitHandler() LimitHandler { return p.limit }

// ColumnType returns the column type for the code with the size
// placeholders substituted.
func (p *Profile) ColumnType(code SQLType, size Size) string {
	return ReplaceSize(p.columnTypePattern(code), code, size)
}

func (p *Profile) columnTypePattern(code SQLType) string {
	if h := p.hooks.ColumnType; h != nil {
		if s, ok := h(p, code); ok {
			return s
		}
	}
	return StandardColumnType(code)
}

// DDLType returns the type used in schema definition statements. Registered
// DDL types take precedence over ColumnType.
func (p *Profile) DDLType(code SQLType, size Size) string {
	if s, ok := p.ddlTypes[code]; ok {
		return ReplaceSize(s, code, size)
	}
	return p.ColumnType(code, size)
}

// CastType returns the type name used in cast expressions.
func (p *Profile) CastType(code SQLType) string {
	if h := p.hooks.CastType; h != nil {
		if s, ok := h(p, code); ok {
			return s
		}
	}
	return StandardCastType(code)
}

// ResolveSQLType maps a column type reported by the database to a logical
// code. Codes other than Other are returned unchanged by default.
func (p *Profile) ResolveSQLType(columnTypeName string, code SQLType) SQLType {
	if h := p.hooks.ResolveSQLType; h != nil {
		return h(p, columnTypeName, code)
	}
	return code
}

// AppendDateTimeLiteral writes a literal for t with the given precision.
// loc is the connection time zone; nil keeps t's location.
func (p *Profile) AppendDateTimeLiteral(b *strings.Builder, t time.Time, precision TemporalType, loc *time.Location) error {
	if h := p.hooks.AppendDateTimeLiteral; h != nil {
		return h(p, b, t, precision, loc)
	}
	return appendStandardDateTimeLiteral(p, b, t, precision, loc)
}

// DateTimeLiteral returns the literal written by AppendDateTimeLiteral.
func (p *Profile) DateTimeLiteral(t time.Time, precision TemporalType, loc *time.Location) (string, error) {
	var b strings.Builder
	if err := p.AppendDateTimeLiteral(&b, t, precision, loc); err != nil {
		return "", err
	}
	return b.String(), nil
}

// AppendBoolean writes a boolean literal.
func (p *Profile) AppendBoolean(b *strings.Builder, v bool) {
	if h := p.hooks.AppendBoolean; h != nil {
		h(p, b, v)
		return
	}
	if v {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}

// BooleanLiteral returns the literal written by AppendBoolean.
func (p *Profile) BooleanLiteral(v bool) string {
	var b strings.Builder
	p.AppendBoolean(&b, v)
	return b.String()
}

// ExtractPattern returns the template extracting the unit: ?1 is the
// extract field and ?2 the temporal argument.
func (p *Profile) ExtractPattern(u TemporalUnit) Template {
	if h := p.hooks.ExtractPattern; h != nil {
		if s, ok := h(p, u); ok {
			return Template(s)
		}
	}
	return Template(StandardExtractPattern(u))
}

// ExtractField returns the field name passed to extract for the unit.
func (p *Profile) ExtractField(u TemporalUnit) string {
	if h := p.hooks.ExtractField; h != nil {
		if s, ok := h(p, u); ok {
			return s
		}
	}
	return StandardExtractField(u)
}

// DurationField returns the field name used when extracting a duration.
func (p *Profile) DurationField(u TemporalUnit) string {
	if h := p.hooks.DurationField; h != nil {
		if s, ok := h(p, u); ok {
			return s
		}
	}
	return u.String()
}

// TimestampAddPattern returns the template adding ?2 units of ?1 to ?3.
func (p *Profile) TimestampAddPattern(u TemporalUnit, t TemporalType, it IntervalType) Template {
	if h := p.hooks.TimestampAddPattern; h != nil {
		if s, ok := h(p, u, t, it); ok {
			return Template(s)
		}
	}
	return "timestampadd(?1,?2,?3)"
}

// TimestampDiffPattern returns the template computing the difference
// ?3 - ?2 measured in ?1.
func (p *Profile) TimestampDiffPattern(u TemporalUnit, from, to TemporalType) (Template, error) {
	if h := p.hooks.TimestampDiffPattern; h != nil {
		s, err := h(p, u, from, to)
		return Template(s), err
	}
	return "timestampdiff(?1,?2,?3)", nil
}

// ConversionFactor returns the suffix converting a quantity in from units
// into to units, using the profile's Native unit length.
func (p *Profile) ConversionFactor(from, to TemporalUnit) (string, error) {
	return ConversionFactor(from, to, p.caps.FractionalSecondPrecisionNanos)
}

// DatetimeFormat translates a pattern such as "yyyy-MM-dd" into the
// backend's formatting syntax. Backends without a translator get the
// pattern back unchanged.
func (p *Profile) DatetimeFormat(format string) string {
	if h := p.hooks.DatetimeFormat; h != nil {
		return h(p, format)
	}
	return format
}

// Placeholder returns the bind parameter marker for the 1-based index.
func (p *Profile) Placeholder(index int) string {
	if h := p.hooks.Placeholder; h != nil {
		return h(p, index)
	}
	return "?"
}

// RenderFunction renders a registered function with the given arguments.
func (p *Profile) RenderFunction(name string, args ...string) (string, error) {
	return p.functions.Render(name, args...)
}

// ApplyLimit appends the pagination clause to sql. next is the index of the
// first bind parameter the clause may use. It returns the rewritten
// statement and the values to bind, in order.
func (p *Profile) ApplyLimit(sql string, l Limit, next int) (string, []any) {
	if !l.IsSet() {
		return sql, nil
	}
	return p.limit.ProcessSQL(p, sql, l, next), p.limit.BindValues(l)
}
