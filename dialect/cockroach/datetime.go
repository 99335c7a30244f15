package cockroach

import (
	"strings"
	"time"

	"github.com/syssam/sqldialect/dialect"
)

func appendDateTimeLiteral(p *dialect.Profile, b *strings.Builder, t time.Time, precision dialect.TemporalType, loc *time.Location) error {
	offset := p.Capabilities().SupportsTemporalLiteralOffset
	switch precision {
	case dialect.TemporalDate:
		b.WriteString("date '")
		dialect.AppendAsDate(b, t)
	case dialect.TemporalTime:
		b.WriteString("time '")
		dialect.AppendAsTime(b, t, offset, loc)
	case dialect.TemporalTimestamp:
		b.WriteString("timestamp with time zone '")
		dialect.AppendAsTimestampWithMicros(b, t, offset, loc)
	default:
		return dialect.InvalidPrecision(precision)
	}
	b.WriteByte('\'')
	return nil
}

func appendBoolean(_ *dialect.Profile, b *strings.Builder, v bool) {
	if v {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
}
