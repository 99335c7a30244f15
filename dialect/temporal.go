package dialect

import (
	"strconv"

	"github.com/syssam/sqldialect"
)

// TemporalType is the precision of a date/time literal.
type TemporalType int

// Temporal precisions.
const (
	TemporalNone TemporalType = iota
	TemporalDate
	TemporalTime
	TemporalTimestamp
)

// String returns the precision name.
func (t TemporalType) String() string {
	switch t {
	case TemporalDate:
		return "date"
	case TemporalTime:
		return "time"
	case TemporalTimestamp:
		return "timestamp"
	case TemporalNone:
		return "none"
	}
	return "temporal(" + strconv.Itoa(int(t)) + ")"
}

// IntervalType is the type of the interval argument of a timestamp addition.
type IntervalType int

// Interval types.
const (
	IntervalNone IntervalType = iota
	IntervalSecondType
)

// TemporalUnit is a unit accepted by extract and the timestamp arithmetic
// functions.
type TemporalUnit int

// Temporal units.
const (
	Year TemporalUnit = iota + 1
	Quarter
	Month
	Week
	Day
	Hour
	Minute
	Second
	Nanosecond
	// Native is the backend's smallest interval unit.
	Native
	DayOfWeek
	DayOfMonth
	DayOfYear
	WeekOfMonth
	WeekOfYear
	Epoch
	Offset
	TimezoneHour
	TimezoneMinute
	DateUnit
	TimeUnit
)

var unitNames = map[TemporalUnit]string{
	Year:           "year",
	Quarter:        "quarter",
	Month:          "month",
	Week:           "week",
	Day:            "day",
	Hour:           "hour",
	Minute:         "minute",
	Second:         "second",
	Nanosecond:     "nanosecond",
	Native:         "native",
	DayOfWeek:      "day_of_week",
	DayOfMonth:     "day_of_month",
	DayOfYear:      "day_of_year",
	WeekOfMonth:    "week_of_month",
	WeekOfYear:     "week_of_year",
	Epoch:          "epoch",
	Offset:         "offset",
	TimezoneHour:   "timezone_hour",
	TimezoneMinute: "timezone_minute",
	DateUnit:       "date",
	TimeUnit:       "time",
}

// String returns the lowercase unit name.
func (u TemporalUnit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "unit(" + strconv.Itoa(int(u)) + ")"
}

// nanos returns the length of the unit in nanoseconds for the units that
// have a fixed length. nativeNanos is the length of the Native unit.
func (u TemporalUnit) nanos(nativeNanos int64) (int64, bool) {
	switch u {
	case Week:
		return 7 * 24 * 3600 * 1e9, true
	case Day:
		return 24 * 3600 * 1e9, true
	case Hour:
		return 3600 * 1e9, true
	case Minute:
		return 60 * 1e9, true
	case Second:
		return 1e9, true
	case Nanosecond:
		return 1, true
	case Native:
		return nativeNanos, true
	}
	return 0, false
}

// ConversionFactor returns the arithmetic suffix converting a quantity
// measured in from into one measured in to, e.g. "/7" for days to weeks or
// "*24" for days to hours. The empty string means no conversion is needed.
func ConversionFactor(from, to TemporalUnit, nativeNanos int64) (string, error) {
	if from == to {
		return "", nil
	}
	f, ok := from.nanos(nativeNanos)
	if !ok {
		return "", sqldialect.NewInvalidArgumentError("unit conversion", "from unit", from)
	}
	t, ok := to.nanos(nativeNanos)
	if !ok {
		return "", sqldialect.NewInvalidArgumentError("unit conversion", "to unit", to)
	}
	switch {
	case f == t:
		return "", nil
	case f < t:
		return "/" + strconv.FormatInt(t/f, 10), nil
	default:
		return "*" + strconv.FormatInt(f/t, 10), nil
	}
}

// StandardExtractField returns the generic extract field name for a unit.
func StandardExtractField(u TemporalUnit) string {
	switch u {
	case DayOfMonth:
		return "day"
	case Native:
		return "second"
	}
	return u.String()
}

// StandardExtractPattern is the generic extract template: ?1 is the field
// and ?2 the temporal argument.
func StandardExtractPattern(TemporalUnit) string {
	return "extract(?1 from ?2)"
}
