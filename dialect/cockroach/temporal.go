package cockroach

import "github.com/syssam/sqldialect/dialect"

// extractPattern shifts day_of_week, which the server numbers 0 to 6, to the
// 1 to 7 range used elsewhere, and keeps fractional seconds.
func extractPattern(_ *dialect.Profile, u dialect.TemporalUnit) (string, bool) {
	switch u {
	case dialect.DayOfWeek:
		return "(" + dialect.StandardExtractPattern(u) + "+1)", true
	case dialect.Second:
		return "(extract(second from ?2)+extract(microsecond from ?2)/1e6)", true
	}
	return "", false
}

func extractField(_ *dialect.Profile, u dialect.TemporalUnit) (string, bool) {
	switch u {
	case dialect.DayOfMonth:
		return "day", true
	case dialect.DayOfYear:
		return "dayofyear", true
	case dialect.DayOfWeek:
		return "dayofweek", true
	}
	return "", false
}

func durationField(_ *dialect.Profile, u dialect.TemporalUnit) (string, bool) {
	if u == dialect.Native {
		return "microsecond", true
	}
	return "", false
}

// timestampAddPattern adds ?2 units of ?1 to ?3. Interval literals accept
// neither week nor quarter, so those are rewritten in days and months.
func timestampAddPattern(_ *dialect.Profile, u dialect.TemporalUnit, _ dialect.TemporalType, it dialect.IntervalType) (string, bool) {
	if it != dialect.IntervalNone {
		return "(?2+?3)", true
	}
	switch u {
	case dialect.Nanosecond:
		return "(?3+(?2)/1e3*interval '1 microsecond')", true
	case dialect.Native:
		return "(?3+(?2)*interval '1 microsecond')", true
	case dialect.Quarter:
		return "(?3+(?2)*interval '3 month')", true
	case dialect.Week:
		return "(?3+(?2)*interval '7 day')", true
	default:
		return "(?3+(?2)*interval '1 ?1')", true
	}
}

// timestampDiffPattern computes ?3 - ?2 in units of ?1.
func timestampDiffPattern(p *dialect.Profile, u dialect.TemporalUnit, from, to dialect.TemporalType) (string, error) {
	switch u {
	case dialect.Year:
		return "(extract(year from ?3)-extract(year from ?2))", nil
	case dialect.Quarter:
		return "(extract(year from ?3)*4-extract(year from ?2)*4+extract(month from ?3)//3-extract(month from ?2)//3)", nil
	case dialect.Month:
		return "(extract(year from ?3)*12-extract(year from ?2)*12+extract(month from ?3)-extract(month from ?2))", nil
	}
	if to != dialect.TemporalTimestamp && from != dialect.TemporalTimestamp {
		// Subtracting two dates yields an integer number of days rather
		// than an interval.
		factor, err := p.ConversionFactor(dialect.Day, u)
		if err != nil {
			return "", err
		}
		return "(?3-?2)" + factor, nil
	}
	switch u {
	case dialect.Week:
		return "extract_duration(hour from ?3-?2)/168", nil
	case dialect.Day:
		return "extract_duration(hour from ?3-?2)/24", nil
	case dialect.Nanosecond:
		return "extract_duration(microsecond from ?3-?2)*1e3", nil
	default:
		return "extract_duration(?1 from ?3-?2)", nil
	}
}
