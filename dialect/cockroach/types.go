package cockroach

import (
	"strconv"

	"github.com/syssam/sqldialect/dialect"
)

func itoa(i int) string { return strconv.Itoa(i) }

func columnType(_ *dialect.Profile, code dialect.SQLType) (string, bool) {
	switch code {
	case dialect.TinyInt:
		// No tinyint.
		return "smallint", true
	case dialect.Char, dialect.NChar, dialect.VarChar, dialect.NVarChar:
		return "string($l)", true
	case dialect.Clob, dialect.NClob:
		return "string", true
	case dialect.Binary, dialect.VarBinary:
		return "bytes($l)", true
	case dialect.Blob:
		return "bytes", true
	}
	return "", false
}

func castType(_ *dialect.Profile, code dialect.SQLType) (string, bool) {
	switch code {
	case dialect.Char, dialect.NChar, dialect.VarChar, dialect.NVarChar, dialect.Long32VarChar, dialect.Long32NVarChar:
		return "string", true
	case dialect.Binary, dialect.VarBinary, dialect.Long32VarBinary:
		return "bytes", true
	}
	return "", false
}

// ddlTypes returns the registered DDL types for the version.
func ddlTypes(v dialect.Version) map[dialect.SQLType]string {
	m := map[dialect.SQLType]string{
		dialect.UUID:           "uuid",
		dialect.Geometry:       "geometry",
		dialect.Geography:      "geography",
		dialect.IntervalSecond: "interval second($s)",
	}
	if v.Compare(jsonbSince) >= 0 {
		m[dialect.INET] = "inet"
		m[dialect.JSON] = "jsonb"
	} else {
		m[dialect.JSON] = "json"
	}
	return m
}

func resolveSQLType(_ *dialect.Profile, columnTypeName string, code dialect.SQLType) dialect.SQLType {
	if code != dialect.Other {
		return code
	}
	switch columnTypeName {
	case "uuid":
		return dialect.UUID
	case "json", "jsonb":
		return dialect.JSON
	case "inet":
		return dialect.INET
	case "geometry", "geography":
		return dialect.Geometry
	}
	return code
}
