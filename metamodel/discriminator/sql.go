package discriminator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/dialect"
)

// Literal renders a discriminator value as a SQL literal for the profile.
// The value's kind decides the form, not its methods: string kinds are
// single-quoted, integer and float kinds use their numeric form and bools use
// the profile's boolean literal. Other kinds fail with
// sqldialect.ErrInvalidArgument.
func Literal(p *dialect.Profile, v any) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return quote(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		if p == nil {
			return "", sqldialect.NewInvalidArgumentError("discriminator literal", "profile", nil)
		}
		return p.BooleanLiteral(rv.Bool()), nil
	default:
		return "", sqldialect.NewInvalidArgumentError("discriminator literal", "value", v)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// CaseExpression renders a CASE expression mapping the stored values in
// column to subtype names, for queries spanning every subtype. Unregistered
// values yield null.
func (c *Converter[R]) CaseExpression(p *dialect.Profile, column string) (string, error) {
	var b strings.Builder
	b.WriteString("case ")
	b.WriteString(column)
	for _, d := range c.details {
		lit, err := Literal(p, d.Value)
		if err != nil {
			return "", err
		}
		b.WriteString(" when ")
		b.WriteString(lit)
		b.WriteString(" then ")
		b.WriteString(quote(d.Name))
	}
	b.WriteString(" end")
	return b.String(), nil
}

// InList renders the registered values as a parenthesized list, e.g. for
// "column in (...)" restrictions to the known subtypes.
func (c *Converter[R]) InList(p *dialect.Profile) (string, error) {
	vals := make([]string, len(c.details))
	for i, d := range c.details {
		lit, err := Literal(p, d.Value)
		if err != nil {
			return "", err
		}
		vals[i] = lit
	}
	return "(" + strings.Join(vals, ",") + ")", nil
}
