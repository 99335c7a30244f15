package dialect

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/sqldialect"
)

// IdentifierHelper normalizes, quotes and qualifies object names the way a
// profile's backend does.
type IdentifierHelper struct {
	p *Profile
}

func newIdentifierHelper(p *Profile) *IdentifierHelper {
	return &IdentifierHelper{p: p}
}

// IsQuoted reports whether name is wrapped in double quotes.
func IsQuoted(name string) bool {
	return len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"'
}

func (h *IdentifierHelper) fold(s string, strategy CaseStrategy) string {
	// A cases.Caser is stateful, so each call gets its own.
	switch strategy {
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	}
	return s
}

// Normalize folds the identifier the way the backend stores it. Quoted names
// follow the quoted case strategy and lose their quotes.
func (h *IdentifierHelper) Normalize(name string) string {
	caps := h.p.caps
	if IsQuoted(name) {
		inner := strings.ReplaceAll(name[1:len(name)-1], `""`, `"`)
		return h.fold(inner, caps.QuotedCase)
	}
	return h.fold(name, caps.UnquotedCase)
}

// Quote quotes the identifier. Already quoted names are returned unchanged.
func (h *IdentifierHelper) Quote(name string) string {
	if IsQuoted(name) {
		return name
	}
	if q := h.p.hooks.QuoteIdentifier; q != nil {
		return q(h.p, name)
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Qualify joins the catalog, schema and name, dropping qualifiers the
// backend does not accept and empty parts.
func (h *IdentifierHelper) Qualify(catalog, schema, name string) string {
	parts := make([]string, 0, 3)
	switch h.p.caps.NameQualifier {
	case QualifyBoth:
		parts = appendNonEmpty(parts, catalog, schema)
	case QualifyCatalog:
		parts = appendNonEmpty(parts, catalog)
	case QualifySchema:
		parts = appendNonEmpty(parts, schema)
	}
	return strings.Join(append(parts, name), ".")
}

func appendNonEmpty(dst []string, ss ...string) []string {
	for _, s := range ss {
		if s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}

// Validate reports an error if the identifier is empty or exceeds the
// backend's maximum identifier length.
func (h *IdentifierHelper) Validate(name string) error {
	n := h.Normalize(name)
	if n == "" {
		return sqldialect.NewInvalidArgumentError("identifier", "name", name)
	}
	if limit := h.p.caps.MaxIdentifierLength; limit > 0 && len(n) > limit {
		return sqldialect.NewInvalidArgumentError("identifier", "length", len(n))
	}
	return nil
}
