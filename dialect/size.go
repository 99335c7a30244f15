package dialect

import (
	"strconv"
	"strings"
)

// Default column sizes used when a Size component is zero.
const (
	DefaultLength             = 255
	DefaultDecimalPrecision   = 38
	DefaultScale              = 2
	DefaultTimestampPrecision = 6
	DefaultFloatPrecision     = 53
	DefaultIntervalScale      = 9
)

// Size holds the optional length, precision and scale of a column. Zero
// components are replaced with defaults for the column's type.
type Size struct {
	Length    int64
	Precision int
	Scale     int
}

// withDefaults fills zero components for the given type code.
func (s Size) withDefaults(code SQLType) Size {
	if s.Length == 0 {
		s.Length = DefaultLength
	}
	if s.Precision == 0 {
		switch code {
		case Timestamp, TimestampWithTimezone, TimestampUTC, Time, TimeWithTimezone:
			s.Precision = DefaultTimestampPrecision
		case Float:
			s.Precision = DefaultFloatPrecision
		default:
			s.Precision = DefaultDecimalPrecision
		}
	}
	if s.Scale == 0 {
		switch code {
		case IntervalSecond:
			s.Scale = DefaultIntervalScale
		case Numeric, Decimal:
			s.Scale = DefaultScale
		}
	}
	return s
}

// ReplaceSize substitutes the $l, $p and $s placeholders of a DDL pattern.
func ReplaceSize(pattern string, code SQLType, size Size) string {
	if !strings.Contains(pattern, "$") {
		return pattern
	}
	size = size.withDefaults(code)
	return strings.NewReplacer(
		"$l", strconv.FormatInt(size.Length, 10),
		"$p", strconv.Itoa(size.Precision),
		"$s", strconv.Itoa(size.Scale),
	).Replace(pattern)
}
