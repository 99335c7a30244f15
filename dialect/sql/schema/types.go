package schema

import (
	"fmt"
	"strings"

	"ariga.io/atlas/sql/schema"

	"github.com/syssam/sqldialect/dialect"
)

// SQLTypeOf maps an atlas column type to a logical type code and size.
// Types without a logical code map to dialect.Other.
func SQLTypeOf(t schema.Type) (dialect.SQLType, dialect.Size) {
	switch t := t.(type) {
	case *schema.BoolType:
		return dialect.Boolean, dialect.Size{}
	case *schema.IntegerType:
		switch strings.ToLower(t.T) {
		case "tinyint", "int1":
			return dialect.TinyInt, dialect.Size{}
		case "smallint", "int2":
			return dialect.SmallInt, dialect.Size{}
		case "bigint", "int8":
			return dialect.BigInt, dialect.Size{}
		}
		return dialect.Integer, dialect.Size{}
	case *schema.StringType:
		size := dialect.Size{Length: int64(t.Size)}
		switch strings.ToLower(t.T) {
		case "char", "character":
			return dialect.Char, size
		case "nchar":
			return dialect.NChar, size
		case "nvarchar":
			return dialect.NVarChar, size
		case "text", "clob", "string":
			return dialect.Clob, size
		}
		return dialect.VarChar, size
	case *schema.BinaryType:
		if t.Size == nil {
			return dialect.Blob, dialect.Size{}
		}
		if strings.EqualFold(t.T, "binary") {
			return dialect.Binary, dialect.Size{Length: int64(*t.Size)}
		}
		return dialect.VarBinary, dialect.Size{Length: int64(*t.Size)}
	case *schema.DecimalType:
		return dialect.Decimal, dialect.Size{Precision: t.Precision, Scale: t.Scale}
	case *schema.FloatType:
		switch strings.ToLower(t.T) {
		case "real", "float4":
			return dialect.Real, dialect.Size{}
		case "double", "double precision", "float8":
			return dialect.Double, dialect.Size{}
		}
		return dialect.Float, dialect.Size{Precision: t.Precision}
	case *schema.TimeType:
		var size dialect.Size
		if t.Precision != nil {
			size.Precision = *t.Precision
		}
		switch strings.ToLower(t.T) {
		case "date":
			return dialect.Date, size
		case "time":
			return dialect.Time, size
		case "timetz", "time with time zone":
			return dialect.TimeWithTimezone, size
		case "timestamptz", "timestamp with time zone":
			return dialect.TimestampWithTimezone, size
		}
		return dialect.Timestamp, size
	case *schema.UUIDType:
		return dialect.UUID, dialect.Size{}
	case *schema.JSONType:
		return dialect.JSON, dialect.Size{}
	case *schema.SpatialType:
		if strings.EqualFold(t.T, "geography") {
			return dialect.Geography, dialect.Size{}
		}
		return dialect.Geometry, dialect.Size{}
	case *schema.UnsupportedType:
		switch strings.ToLower(t.T) {
		case "inet":
			return dialect.INET, dialect.Size{}
		case "interval":
			return dialect.IntervalSecond, dialect.Size{}
		}
	}
	return dialect.Other, dialect.Size{}
}

// ColumnType returns the DDL type of the column in the profile.
func ColumnType(p *dialect.Profile, c *schema.Column) (string, error) {
	if c.Type == nil || c.Type.Type == nil {
		return "", fmt.Errorf("dialect/sql/schema: column %q has no type", c.Name)
	}
	code, size := SQLTypeOf(c.Type.Type)
	if code == dialect.Other {
		return "", fmt.Errorf("dialect/sql/schema: column %q: unsupported type %T", c.Name, c.Type.Type)
	}
	return p.DDLType(code, size), nil
}
