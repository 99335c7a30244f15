package cockroach

import (
	"encoding/json"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/dialect"
)

// Binder converts Go values into driver arguments for the column types the
// profile registers beyond the standard set.
type Binder struct {
	kind dialect.DriverKind
}

// NewBinder returns a binder for the driver kind.
func NewBinder(kind dialect.DriverKind) Binder {
	return Binder{kind: kind}
}

// BinderFor returns the binder matching the profile's driver kind.
func BinderFor(p *dialect.Profile) Binder {
	return NewBinder(p.DriverKind())
}

// Bind converts v for a column of the given logical type. Values of types the
// binder does not handle are returned unchanged.
func (b Binder) Bind(code dialect.SQLType, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch code {
	case dialect.UUID:
		return b.bindUUID(v)
	case dialect.JSON:
		return b.bindJSON(v)
	case dialect.INET:
		return b.bindINET(v)
	case dialect.IntervalSecond:
		return b.bindInterval(v)
	default:
		return v, nil
	}
}

func (b Binder) bindUUID(v any) (any, error) {
	var u uuid.UUID
	switch v := v.(type) {
	case uuid.UUID:
		u = v
	case [16]byte:
		u = v
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return nil, sqldialect.NewInvalidArgumentError("bind uuid", "value", v)
		}
		u = parsed
	default:
		return nil, sqldialect.NewInvalidArgumentError("bind uuid", "type", fmt.Sprintf("%T", v))
	}
	if b.kind == dialect.DriverPGX {
		return pgtype.UUID{Bytes: u, Valid: true}, nil
	}
	return u.String(), nil
}

func (b Binder) bindJSON(v any) (any, error) {
	var raw []byte
	switch v := v.(type) {
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		buf, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cockroach: bind json: %w", err)
		}
		raw = buf
	}
	if !json.Valid(raw) {
		return nil, sqldialect.NewInvalidArgumentError("bind json", "document", string(raw))
	}
	if b.kind == dialect.DriverPGX {
		return raw, nil
	}
	return string(raw), nil
}

func (b Binder) bindINET(v any) (any, error) {
	var prefix netip.Prefix
	switch v := v.(type) {
	case netip.Prefix:
		prefix = v
	case netip.Addr:
		prefix = netip.PrefixFrom(v, v.BitLen())
	case net.IP:
		addr, ok := netip.AddrFromSlice(v)
		if !ok {
			return nil, sqldialect.NewInvalidArgumentError("bind inet", "address", v)
		}
		addr = addr.Unmap()
		prefix = netip.PrefixFrom(addr, addr.BitLen())
	case string:
		p, err := parsePrefix(v)
		if err != nil {
			return nil, sqldialect.NewInvalidArgumentError("bind inet", "address", v)
		}
		prefix = p
	default:
		return nil, sqldialect.NewInvalidArgumentError("bind inet", "type", fmt.Sprintf("%T", v))
	}
	if b.kind == dialect.DriverPGX {
		return prefix, nil
	}
	if prefix.IsSingleIP() {
		return prefix.Addr().String(), nil
	}
	return prefix.String(), nil
}

func parsePrefix(s string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p, nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (b Binder) bindInterval(v any) (any, error) {
	d, ok := v.(time.Duration)
	if !ok {
		return nil, sqldialect.NewInvalidArgumentError("bind interval", "type", fmt.Sprintf("%T", v))
	}
	if b.kind == dialect.DriverPGX {
		return pgtype.Interval{Microseconds: d.Microseconds(), Valid: true}, nil
	}
	return fmt.Sprintf("%d microseconds", d.Microseconds()), nil
}
