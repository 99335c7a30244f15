package dialect

import "strings"

// Limit is the pagination requested for a query. Zero values mean absent.
type Limit struct {
	FirstRow int
	MaxRows  int
}

// HasFirstRow reports whether rows are skipped.
func (l Limit) HasFirstRow() bool { return l.FirstRow > 0 }

// HasMaxRows reports whether the row count is bounded.
func (l Limit) HasMaxRows() bool { return l.MaxRows > 0 }

// IsSet reports whether any pagination was requested.
func (l Limit) IsSet() bool { return l.HasFirstRow() || l.HasMaxRows() }

// LimitHandler renders pagination clauses.
type LimitHandler interface {
	// ProcessSQL appends the clause to sql. next is the 1-based index of the
	// first bind parameter the clause may use.
	ProcessSQL(p *Profile, sql string, l Limit, next int) string
	// BindValues returns the values bound by the clause, in order.
	BindValues(l Limit) []any
}

// OffsetFetchHandler renders "offset ? rows fetch first ? rows only".
type OffsetFetchHandler struct{}

// ProcessSQL implements LimitHandler.
func (OffsetFetchHandler) ProcessSQL(p *Profile, sql string, l Limit, next int) string {
	var b strings.Builder
	b.WriteString(sql)
	if l.HasFirstRow() {
		b.WriteString(" offset ")
		b.WriteString(p.Placeholder(next))
		b.WriteString(" rows")
		next++
	}
	if l.HasMaxRows() {
		if l.HasFirstRow() {
			b.WriteString(" fetch next ")
		} else {
			b.WriteString(" fetch first ")
		}
		b.WriteString(p.Placeholder(next))
		b.WriteString(" rows only")
	}
	return b.String()
}

// BindValues implements LimitHandler.
func (OffsetFetchHandler) BindValues(l Limit) []any {
	var v []any
	if l.HasFirstRow() {
		v = append(v, l.FirstRow)
	}
	if l.HasMaxRows() {
		v = append(v, l.MaxRows)
	}
	return v
}

// LimitOffsetHandler renders "limit ? offset ?".
type LimitOffsetHandler struct{}

// ProcessSQL implements LimitHandler.
func (LimitOffsetHandler) ProcessSQL(p *Profile, sql string, l Limit, next int) string {
	var b strings.Builder
	b.WriteString(sql)
	if l.HasMaxRows() {
		b.WriteString(" limit ")
		b.WriteString(p.Placeholder(next))
		next++
	}
	if l.HasFirstRow() {
		b.WriteString(" offset ")
		b.WriteString(p.Placeholder(next))
	}
	return b.String()
}

// BindValues implements LimitHandler.
func (LimitOffsetHandler) BindValues(l Limit) []any {
	var v []any
	if l.HasMaxRows() {
		v = append(v, l.MaxRows)
	}
	if l.HasFirstRow() {
		v = append(v, l.FirstRow)
	}
	return v
}
