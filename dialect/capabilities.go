package dialect

// NullOrdering describes where nulls sort when no precedence is given.
type NullOrdering int

// Null orderings.
const (
	NullsGreatest NullOrdering = iota
	NullsSmallest
	NullsFirst
	NullsLast
)

// String returns the ordering name.
func (o NullOrdering) String() string {
	switch o {
	case NullsSmallest:
		return "smallest"
	case NullsFirst:
		return "first"
	case NullsLast:
		return "last"
	}
	return "greatest"
}

// TimeZoneSupport describes how a backend stores timestamps with a time zone.
type TimeZoneSupport int

// Time zone support levels.
const (
	TimeZoneNone TimeZoneSupport = iota
	TimeZoneNative
	TimeZoneNormalize
)

// String returns the support level name.
func (s TimeZoneSupport) String() string {
	switch s {
	case TimeZoneNative:
		return "native"
	case TimeZoneNormalize:
		return "normalize"
	}
	return "none"
}

// NationalizationSupport describes how national character data is declared.
type NationalizationSupport int

// Nationalization support levels.
const (
	NationalizationExplicit NationalizationSupport = iota
	NationalizationImplicit
	NationalizationUnsupported
)

// String returns the support level name.
func (s NationalizationSupport) String() string {
	switch s {
	case NationalizationImplicit:
		return "implicit"
	case NationalizationUnsupported:
		return "unsupported"
	}
	return "explicit"
}

// NameQualifierSupport describes which qualifiers an object name accepts.
type NameQualifierSupport int

// Name qualifier support levels.
const (
	QualifyBoth NameQualifierSupport = iota
	QualifyCatalog
	QualifySchema
	QualifyNone
)

// String returns the support level name.
func (s NameQualifierSupport) String() string {
	switch s {
	case QualifyCatalog:
		return "catalog"
	case QualifySchema:
		return "schema"
	case QualifyNone:
		return "none"
	}
	return "both"
}

// CaseStrategy describes how a backend folds identifier case.
type CaseStrategy int

// Case strategies.
const (
	CaseUpper CaseStrategy = iota
	CaseLower
	CaseMixed
)

// String returns the strategy name.
func (s CaseStrategy) String() string {
	switch s {
	case CaseLower:
		return "lower"
	case CaseMixed:
		return "mixed"
	}
	return "upper"
}

// Capabilities holds the fixed answers a profile gives about its backend.
// Version-conditional answers are resolved once, when the profile is built.
type Capabilities struct {
	SupportsIfExistsBeforeTableName      bool `yaml:"if_exists_before_table_name"`
	SupportsIfExistsAfterTableName       bool `yaml:"if_exists_after_table_name"`
	SupportsIfExistsBeforeConstraintName bool `yaml:"if_exists_before_constraint_name"`
	SupportsIfExistsAfterAlterTable      bool `yaml:"if_exists_after_alter_table"`
	QualifyIndexName                     bool `yaml:"qualify_index_name"`
	SupportsValuesList                   bool `yaml:"values_list"`
	SupportsPartitionBy                  bool `yaml:"partition_by"`
	SupportsNonQueryWithCTE              bool `yaml:"non_query_with_cte"`
	SupportsCaseInsensitiveLike          bool `yaml:"case_insensitive_like"`
	SupportsNullPrecedence               bool `yaml:"null_precedence"`
	SupportsTupleCounts                  bool `yaml:"tuple_counts"`
	RequiresParensForTupleDistinctCounts bool `yaml:"parens_for_tuple_distinct_counts"`
	SupportsOuterJoinForUpdate           bool `yaml:"outer_join_for_update"`
	SupportsOffsetInSubquery             bool `yaml:"offset_in_subquery"`
	SupportsWindowFunctions              bool `yaml:"window_functions"`
	SupportsLateral                      bool `yaml:"lateral"`
	SupportsNoWait                       bool `yaml:"nowait"`
	SupportsWait                         bool `yaml:"wait"`
	SupportsSkipLocked                   bool `yaml:"skip_locked"`
	SupportsLockTimeouts                 bool `yaml:"lock_timeouts"`
	SupportsTableCheck                   bool `yaml:"table_check"`
	SupportsColumnCheck                  bool `yaml:"column_check"`
	SupportsTemporalLiteralOffset        bool `yaml:"temporal_literal_offset"`
	SupportsSequences                    bool `yaml:"sequences"`

	NullOrdering         NullOrdering           `yaml:"-"`
	TimeZoneSupport      TimeZoneSupport        `yaml:"-"`
	Nationalization      NationalizationSupport `yaml:"-"`
	WriteRowLockStrategy RowLockStrategy        `yaml:"-"`
	NameQualifier        NameQualifierSupport   `yaml:"-"`
	UnquotedCase         CaseStrategy           `yaml:"-"`
	QuotedCase           CaseStrategy           `yaml:"-"`

	// CascadeConstraints is appended to drop statements, e.g. " cascade".
	CascadeConstraints string `yaml:"cascade_constraints"`
	// NoColumnsInsert is the insert body for a row with no explicit columns.
	NoColumnsInsert string `yaml:"no_columns_insert"`
	// CaseInsensitiveLike is the operator used for case-insensitive matching.
	CaseInsensitiveLike string `yaml:"case_insensitive_like_operator"`
	// NativeIdentifierGenerator names the native id generation strategy.
	NativeIdentifierGenerator string `yaml:"native_identifier_generator"`
	// QuerySequences lists sequences, or is empty if unsupported.
	QuerySequences string `yaml:"query_sequences,omitempty"`
	// MaxIdentifierLength is 0 when unlimited.
	MaxIdentifierLength int `yaml:"max_identifier_length"`
	// FractionalSecondPrecisionNanos is the length of the Native unit.
	FractionalSecondPrecisionNanos int64 `yaml:"fractional_second_precision_nanos"`
}

// StandardCapabilities returns the capabilities of a generic SQL backend.
func StandardCapabilities() Capabilities {
	return Capabilities{
		SupportsOuterJoinForUpdate:     true,
		SupportsNullPrecedence:         true,
		SupportsWait:                   true,
		SupportsTableCheck:             true,
		SupportsColumnCheck:            true,
		SupportsSequences:              true,
		NullOrdering:                   NullsGreatest,
		TimeZoneSupport:                TimeZoneNone,
		Nationalization:                NationalizationExplicit,
		WriteRowLockStrategy:           RowLockColumn,
		NameQualifier:                  QualifyBoth,
		UnquotedCase:                   CaseUpper,
		QuotedCase:                     CaseMixed,
		NoColumnsInsert:                "values ( )",
		CaseInsensitiveLike:            "like",
		NativeIdentifierGenerator:      "identity",
		FractionalSecondPrecisionNanos: 1,
	}
}
