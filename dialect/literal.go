package dialect

import (
	"strings"
	"time"

	"github.com/syssam/sqldialect"
)

// Layouts used by the literal helpers.
const (
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
	micros          = ".000000"
	nanos           = ".000000000"
	offsetLayout    = "-07:00"
	timestampLayout = dateLayout + " " + timeLayout
	timestampMicros = timestampLayout + micros
	timestampNanos  = timestampLayout + nanos
)

// inZone converts t to loc when loc is set.
func inZone(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		return t.In(loc)
	}
	return t
}

// AppendAsDate writes t as yyyy-mm-dd.
func AppendAsDate(b *strings.Builder, t time.Time) {
	b.WriteString(t.Format(dateLayout))
}

// AppendAsTime writes the time of day of t, converted to loc. The UTC
// offset is appended when withOffset is set.
func AppendAsTime(b *strings.Builder, t time.Time, withOffset bool, loc *time.Location) {
	t = inZone(t, loc)
	b.WriteString(t.Format(timeLayout))
	if withOffset {
		b.WriteString(t.Format(offsetLayout))
	}
}

// AppendAsTimestampWithMicros writes t with microsecond precision,
// converted to loc.
func AppendAsTimestampWithMicros(b *strings.Builder, t time.Time, withOffset bool, loc *time.Location) {
	t = inZone(t, loc)
	b.WriteString(t.Truncate(time.Microsecond).Format(timestampMicros))
	if withOffset {
		b.WriteString(t.Format(offsetLayout))
	}
}

// AppendAsTimestampWithNanos writes t with nanosecond precision, converted
// to loc.
func AppendAsTimestampWithNanos(b *strings.Builder, t time.Time, withOffset bool, loc *time.Location) {
	t = inZone(t, loc)
	b.WriteString(t.Format(timestampNanos))
	if withOffset {
		b.WriteString(t.Format(offsetLayout))
	}
}

// InvalidPrecision returns the error for an unrenderable literal precision.
func InvalidPrecision(precision TemporalType) error {
	return sqldialect.NewInvalidArgumentError("date-time literal", "precision", precision)
}

func appendStandardDateTimeLiteral(p *Profile, b *strings.Builder, t time.Time, precision TemporalType, loc *time.Location) error {
	offset := p.caps.SupportsTemporalLiteralOffset
	switch precision {
	case TemporalDate:
		b.WriteString("date '")
		AppendAsDate(b, inZone(t, loc))
	case TemporalTime:
		b.WriteString("time '")
		AppendAsTime(b, t, offset, loc)
	case TemporalTimestamp:
		b.WriteString("timestamp '")
		AppendAsTimestampWithNanos(b, t, offset, loc)
	default:
		return InvalidPrecision(precision)
	}
	b.WriteByte('\'')
	return nil
}
