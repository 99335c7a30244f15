package dialect

import "fmt"

// SQLType is a logical column type code, independent of any backend.
type SQLType int

// Logical type codes.
const (
	Other SQLType = iota
	Boolean
	Bit
	TinyInt
	SmallInt
	Integer
	BigInt
	Real
	Float
	Double
	Numeric
	Decimal
	Char
	NChar
	VarChar
	NVarChar
	LongVarChar
	LongNVarChar
	Long32VarChar
	Long32NVarChar
	Clob
	NClob
	Binary
	VarBinary
	LongVarBinary
	Long32VarBinary
	Blob
	Date
	Time
	TimeWithTimezone
	Timestamp
	TimestampWithTimezone
	TimestampUTC
	IntervalSecond
	UUID
	JSON
	INET
	Geometry
	Geography
	Array
	XML
)

var sqlTypeNames = [...]string{
	Other:                 "other",
	Boolean:               "boolean",
	Bit:                   "bit",
	TinyInt:               "tinyint",
	SmallInt:              "smallint",
	Integer:               "integer",
	BigInt:                "bigint",
	Real:                  "real",
	Float:                 "float",
	Double:                "double",
	Numeric:               "numeric",
	Decimal:               "decimal",
	Char:                  "char",
	NChar:                 "nchar",
	VarChar:               "varchar",
	NVarChar:              "nvarchar",
	LongVarChar:           "longvarchar",
	LongNVarChar:          "longnvarchar",
	Long32VarChar:         "long32varchar",
	Long32NVarChar:        "long32nvarchar",
	Clob:                  "clob",
	NClob:                 "nclob",
	Binary:                "binary",
	VarBinary:             "varbinary",
	LongVarBinary:         "longvarbinary",
	Long32VarBinary:       "long32varbinary",
	Blob:                  "blob",
	Date:                  "date",
	Time:                  "time",
	TimeWithTimezone:      "time_with_timezone",
	Timestamp:             "timestamp",
	TimestampWithTimezone: "timestamp_with_timezone",
	TimestampUTC:          "timestamp_utc",
	IntervalSecond:        "interval_second",
	UUID:                  "uuid",
	JSON:                  "json",
	INET:                  "inet",
	Geometry:              "geometry",
	Geography:             "geography",
	Array:                 "array",
	XML:                   "xml",
}

// String returns the lowercase name of the type code.
func (t SQLType) String() string {
	if t >= 0 && int(t) < len(sqlTypeNames) {
		return sqlTypeNames[t]
	}
	return fmt.Sprintf("sqltype(%d)", int(t))
}

// IsCharacter reports whether t holds character data.
func (t SQLType) IsCharacter() bool {
	switch t {
	case Char, NChar, VarChar, NVarChar, LongVarChar, LongNVarChar, Long32VarChar, Long32NVarChar, Clob, NClob:
		return true
	}
	return false
}

// IsBinary reports whether t holds binary data.
func (t SQLType) IsBinary() bool {
	switch t {
	case Binary, VarBinary, LongVarBinary, Long32VarBinary, Blob:
		return true
	}
	return false
}

// IsTemporal reports whether t holds a date, time or timestamp.
func (t SQLType) IsTemporal() bool {
	switch t {
	case Date, Time, TimeWithTimezone, Timestamp, TimestampWithTimezone, TimestampUTC:
		return true
	}
	return false
}

// standardColumnTypes are the generic DDL types used when a backend has no
// override.
var standardColumnTypes = map[SQLType]string{
	Boolean:               "boolean",
	Bit:                   "bit",
	TinyInt:               "tinyint",
	SmallInt:              "smallint",
	Integer:               "integer",
	BigInt:                "bigint",
	Real:                  "real",
	Float:                 "float($p)",
	Double:                "double precision",
	Numeric:               "numeric($p,$s)",
	Decimal:               "decimal($p,$s)",
	Char:                  "char($l)",
	NChar:                 "nchar($l)",
	VarChar:               "varchar($l)",
	NVarChar:              "nvarchar($l)",
	LongVarChar:           "varchar($l)",
	LongNVarChar:          "nvarchar($l)",
	Long32VarChar:         "varchar($l)",
	Long32NVarChar:        "nvarchar($l)",
	Clob:                  "clob",
	NClob:                 "nclob",
	Binary:                "binary($l)",
	VarBinary:             "varbinary($l)",
	LongVarBinary:         "varbinary($l)",
	Long32VarBinary:       "varbinary($l)",
	Blob:                  "blob",
	Date:                  "date",
	Time:                  "time",
	TimeWithTimezone:      "time with time zone",
	Timestamp:             "timestamp($p)",
	TimestampWithTimezone: "timestamp($p) with time zone",
	TimestampUTC:          "timestamp($p) with time zone",
	IntervalSecond:        "numeric(21,$s)",
	UUID:                  "char(36)",
	JSON:                  "varchar($l)",
	INET:                  "varchar(39)",
	XML:                   "varchar($l)",
	Array:                 "varchar($l)",
}

// StandardColumnType returns the generic DDL type for the code. Codes without
// a generic type fall back to "varchar($l)".
func StandardColumnType(code SQLType) string {
	if s, ok := standardColumnTypes[code]; ok {
		return s
	}
	return "varchar($l)"
}

// StandardCastType returns the generic type name used in cast(... as ...).
func StandardCastType(code SQLType) string {
	switch code {
	case Char, NChar, VarChar, NVarChar, LongVarChar, LongNVarChar, Long32VarChar, Long32NVarChar:
		return "varchar"
	case Binary, VarBinary, LongVarBinary, Long32VarBinary:
		return "varbinary"
	case Numeric:
		return "numeric"
	case Decimal:
		return "decimal"
	case Float:
		return "float"
	case Timestamp:
		return "timestamp"
	case TimestampWithTimezone, TimestampUTC:
		return "timestamp with time zone"
	}
	return StandardColumnType(code)
}
