// Package cockroach provides the CockroachDB profile.
//
// Known limitation: character large objects are mapped to plain strings, so
// there is no streaming clob support.
package cockroach

import (
	"log/slog"

	"github.com/lib/pq"

	"github.com/syssam/sqldialect/dialect"
)

// DefaultVersion is the oldest release the profile targets.
var DefaultVersion = dialect.MakeVersion(19, 2)

// Release milestones that gate features.
var (
	// jsonbSince is the release preferring jsonb and inet column types.
	jsonbSince = dialect.MakeVersion(20, 0)
	// lockingSince is the release adding select ... for update.
	lockingSince = dialect.MakeVersion(20, 1)
)

// Option configures the profile.
type Option func(*options)

type options struct {
	version dialect.Version
	kind    dialect.DriverKind
	logger  *slog.Logger
}

// WithVersion sets the backend version. Default is DefaultVersion.
func WithVersion(v dialect.Version) Option {
	return func(o *options) {
		o.version = v
	}
}

// WithDriverKind sets the client library kind. Default is dialect.DriverPGX.
func WithDriverKind(k dialect.DriverKind) Option {
	return func(o *options) {
		o.kind = k
	}
}

// WithLogger sets the logger used while building the profile.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns the CockroachDB profile.
func New(opts ...Option) *dialect.Profile {
	o := &options{version: DefaultVersion, kind: dialect.DriverPGX}
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	if o.version.Compare(lockingSince) < 0 {
		logger.Info("row locking unavailable before 20.1, locking clauses render empty",
			"dialect", dialect.CockroachDB, "version", o.version.String())
	}
	return dialect.NewProfile(dialect.Config{
		Name:         dialect.CockroachDB,
		Version:      o.version,
		DriverKind:   o.kind,
		Capabilities: capabilities(o.version),
		Hooks: dialect.Hooks{
			ColumnType:            columnType,
			CastType:              castType,
			ResolveSQLType:        resolveSQLType,
			AppendDateTimeLiteral: appendDateTimeLiteral,
			AppendBoolean:         appendBoolean,
			ExtractPattern:        extractPattern,
			ExtractField:          extractField,
			DurationField:         durationField,
			TimestampAddPattern:   timestampAddPattern,
			TimestampDiffPattern:  timestampDiffPattern,
			DatetimeFormat:        func(_ *dialect.Profile, f string) string { return DatetimeFormat(f) },
			QuoteIdentifier:       func(_ *dialect.Profile, name string) string { return pq.QuoteIdentifier(name) },
			Placeholder:           placeholder,
		},
		Locks:     lockHooks,
		DDLTypes:  ddlTypes(o.version),
		Functions: functions(),
		Limit:     dialect.OffsetFetchHandler{},
		Logger:    logger,
	})
}

// capabilities returns the capability table for the version.
func capabilities(v dialect.Version) dialect.Capabilities {
	locking := v.Compare(lockingSince) >= 0
	c := dialect.StandardCapabilities()
	c.SupportsIfExistsBeforeTableName = true
	c.SupportsIfExistsBeforeConstraintName = true
	c.SupportsIfExistsAfterAlterTable = true
	c.QualifyIndexName = false
	c.SupportsValuesList = true
	c.SupportsPartitionBy = true
	c.SupportsNonQueryWithCTE = true
	c.SupportsCaseInsensitiveLike = true
	// Not implemented by the server: nulls always sort first ascending.
	c.SupportsNullPrecedence = false
	c.NullOrdering = dialect.NullsSmallest
	c.SupportsTupleCounts = true
	c.RequiresParensForTupleDistinctCounts = true
	c.SupportsOuterJoinForUpdate = false
	c.SupportsOffsetInSubquery = true
	c.SupportsWindowFunctions = true
	c.SupportsLateral = locking
	c.SupportsNoWait = locking
	c.SupportsSkipLocked = locking
	c.SupportsWait = false
	c.SupportsSequences = true
	c.TimeZoneSupport = dialect.TimeZoneNormalize
	c.Nationalization = dialect.NationalizationImplicit
	c.NameQualifier = dialect.QualifySchema
	c.UnquotedCase = dialect.CaseLower
	c.QuotedCase = dialect.CaseMixed
	if locking {
		c.WriteRowLockStrategy = dialect.RowLockTable
	} else {
		c.WriteRowLockStrategy = dialect.RowLockNone
	}
	c.CascadeConstraints = " cascade"
	c.NoColumnsInsert = "default values"
	c.CaseInsensitiveLike = "ilike"
	c.NativeIdentifierGenerator = "sequence"
	c.QuerySequences = "select sequence_name,sequence_schema,sequence_catalog,start_value,minimum_value,maximum_value,increment from information_schema.sequences"
	c.MaxIdentifierLength = 63
	// Microsecond is the smallest interval unit and the highest timestamp
	// precision.
	c.FractionalSecondPrecisionNanos = 1_000
	return c
}

func placeholder(_ *dialect.Profile, i int) string {
	return "$" + itoa(i)
}
