// Package schema renders and validates DDL for atlas schema tables through a
// dialect profile.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"ariga.io/atlas/sql/schema"

	"github.com/syssam/sqldialect/dialect"
)

// DDLOption configures statement rendering.
type DDLOption func(*ddlConfig)

type ddlConfig struct {
	ifNotExists bool
	ifExists    bool
	cascade     bool
	schema      string
}

// IfNotExists renders "create table if not exists".
func IfNotExists() DDLOption {
	return func(c *ddlConfig) {
		c.ifNotExists = true
	}
}

// IfExists renders "drop table if exists" when the backend supports it.
func IfExists() DDLOption {
	return func(c *ddlConfig) {
		c.ifExists = true
	}
}

// Cascade appends the backend's cascade clause to drop statements.
func Cascade() DDLOption {
	return func(c *ddlConfig) {
		c.cascade = true
	}
}

// WithSchema qualifies tables without an atlas schema.
func WithSchema(name string) DDLOption {
	return func(c *ddlConfig) {
		c.schema = name
	}
}

// Renderer renders DDL statements in the dialect of a profile.
type Renderer struct {
	p *dialect.Profile
}

// NewRenderer returns a Renderer for the profile.
func NewRenderer(p *dialect.Profile) *Renderer {
	return &Renderer{p: p}
}

func newConfig(opts []DDLOption) *ddlConfig {
	c := &ddlConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tableName returns the qualified and quoted table name.
func (r *Renderer) tableName(t *schema.Table, c *ddlConfig) string {
	ids := r.p.Identifiers()
	var schemaName string
	if t.Schema != nil && t.Schema.Name != "" {
		schemaName = ids.Quote(t.Schema.Name)
	} else if c.schema != "" {
		schemaName = ids.Quote(c.schema)
	}
	return ids.Qualify("", schemaName, ids.Quote(t.Name))
}

// CreateTable renders the create table statement. Check constraints are
// omitted when the backend does not support them.
func (r *Renderer) CreateTable(t *schema.Table, opts ...DDLOption) (string, error) {
	c := newConfig(opts)
	caps := r.p.Capabilities()
	var (
		b    strings.Builder
		defs []string
		errs []error
	)
	b.WriteString("create table ")
	if c.ifNotExists {
		b.WriteString("if not exists ")
	}
	b.WriteString(r.tableName(t, c))
	for _, col := range t.Columns {
		def, err := r.column(col)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, def)
	}
	if pk := t.PrimaryKey; pk != nil && len(pk.Parts) > 0 {
		defs = append(defs, "primary key ("+r.parts(pk.Parts)+")")
	}
	if caps.SupportsTableCheck {
		for _, chk := range checks(t.Attrs) {
			defs = append(defs, r.check(chk))
		}
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, r.foreignKey(fk, c))
	}
	if err := errors.Join(errs...); err != nil {
		return "", err
	}
	b.WriteString(" (")
	b.WriteString(strings.Join(defs, ", "))
	b.WriteString(")")
	return b.String(), nil
}

func (r *Renderer) column(col *schema.Column) (string, error) {
	typ, err := ColumnType(r.p, col)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(r.p.Identifiers().Quote(col.Name))
	b.WriteByte(' ')
	b.WriteString(typ)
	if !col.Type.Null {
		b.WriteString(" not null")
	}
	switch d := col.Default.(type) {
	case *schema.Literal:
		b.WriteString(" default " + d.V)
	case *schema.RawExpr:
		b.WriteString(" default (" + d.X + ")")
	}
	if r.p.Capabilities().SupportsColumnCheck {
		for _, chk := range checks(col.Attrs) {
			b.WriteString(" check (" + chk.Expr + ")")
		}
	}
	return b.String(), nil
}

func (r *Renderer) check(chk *schema.Check) string {
	if chk.Name == "" {
		return "check (" + chk.Expr + ")"
	}
	return "constraint " + r.p.Identifiers().Quote(chk.Name) + " check (" + chk.Expr + ")"
}

func (r *Renderer) parts(parts []*schema.IndexPart) string {
	ids := r.p.Identifiers()
	cols := make([]string, 0, len(parts))
	for _, part := range parts {
		var s string
		switch {
		case part.C != nil:
			s = ids.Quote(part.C.Name)
		case part.X != nil:
			if raw, ok := part.X.(*schema.RawExpr); ok {
				s = "(" + raw.X + ")"
			}
		}
		if part.Desc {
			s += " desc"
		}
		cols = append(cols, s)
	}
	return strings.Join(cols, ", ")
}

func (r *Renderer) columnList(cols []*schema.Column) string {
	ids := r.p.Identifiers()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = ids.Quote(c.Name)
	}
	return strings.Join(names, ", ")
}

func (r *Renderer) foreignKey(fk *schema.ForeignKey, c *ddlConfig) string {
	var b strings.Builder
	if fk.Symbol != "" {
		b.WriteString("constraint " + r.p.Identifiers().Quote(fk.Symbol) + " ")
	}
	b.WriteString("foreign key (" + r.columnList(fk.Columns) + ") references ")
	b.WriteString(r.tableName(fk.RefTable, c))
	b.WriteString(" (" + r.columnList(fk.RefColumns) + ")")
	if fk.OnDelete != "" && fk.OnDelete != schema.NoAction {
		b.WriteString(" on delete " + strings.ToLower(string(fk.OnDelete)))
	}
	if fk.OnUpdate != "" && fk.OnUpdate != schema.NoAction {
		b.WriteString(" on update " + strings.ToLower(string(fk.OnUpdate)))
	}
	return b.String()
}

// CreateIndexes renders the create index statements of the table.
func (r *Renderer) CreateIndexes(t *schema.Table, opts ...DDLOption) []string {
	c := newConfig(opts)
	stmts := make([]string, 0, len(t.Indexes))
	for _, idx := range t.Indexes {
		var b strings.Builder
		b.WriteString("create ")
		if idx.Unique {
			b.WriteString("unique ")
		}
		b.WriteString("index ")
		if c.ifNotExists {
			b.WriteString("if not exists ")
		}
		b.WriteString(r.p.Identifiers().Quote(idx.Name))
		b.WriteString(" on ")
		b.WriteString(r.tableName(t, c))
		b.WriteString(" (" + r.parts(idx.Parts) + ")")
		stmts = append(stmts, b.String())
	}
	return stmts
}

// DropTable renders the drop table statement.
func (r *Renderer) DropTable(t *schema.Table, opts ...DDLOption) string {
	c := newConfig(opts)
	caps := r.p.Capabilities()
	var b strings.Builder
	b.WriteString("drop table ")
	if c.ifExists && caps.SupportsIfExistsBeforeTableName {
		b.WriteString("if exists ")
	}
	b.WriteString(r.tableName(t, c))
	if c.ifExists && !caps.SupportsIfExistsBeforeTableName && caps.SupportsIfExistsAfterTableName {
		b.WriteString(" if exists")
	}
	if c.cascade {
		b.WriteString(caps.CascadeConstraints)
	}
	return b.String()
}

// Create renders the statements creating every table followed by their
// indexes.
func (r *Renderer) Create(tables []*schema.Table, opts ...DDLOption) ([]string, error) {
	var (
		stmts []string
		errs  []error
	)
	for _, t := range tables {
		s, err := r.CreateTable(t, opts...)
		if err != nil {
			errs = append(errs, fmt.Errorf("table %q: %w", t.Name, err))
			continue
		}
		stmts = append(stmts, s)
		stmts = append(stmts, r.CreateIndexes(t, opts...)...)
	}
	return stmts, errors.Join(errs...)
}

func checks(attrs []schema.Attr) []*schema.Check {
	var cs []*schema.Check
	for _, a := range attrs {
		if c, ok := a.(*schema.Check); ok {
			cs = append(cs, c)
		}
	}
	return cs
}
