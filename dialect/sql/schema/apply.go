package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ariga.io/atlas/sql/schema"

	"github.com/syssam/sqldialect/dialect"
)

// Apply validates the tables against the profile, then creates them and
// their indexes on ex in order. Validation warnings are logged.
func Apply(ctx context.Context, ex dialect.ExecQuerier, p *dialect.Profile, tables []*schema.Table, opts ...DDLOption) error {
	result := Validate(p, tables...)
	if result.HasErrors() {
		errs := make([]error, len(result.Errors))
		for i, e := range result.Errors {
			errs[i] = e
		}
		return fmt.Errorf("dialect/sql/schema: validate: %w", errors.Join(errs...))
	}
	for _, w := range result.Warnings {
		slog.WarnContext(ctx, "schema validation", "dialect", p.Name(), "warning", w.Error())
	}
	stmts, err := NewRenderer(p).Create(tables, opts...)
	if err != nil {
		return fmt.Errorf("dialect/sql/schema: render: %w", err)
	}
	for _, stmt := range stmts {
		if err := ex.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("dialect/sql/schema: apply %q: %w", stmt, err)
		}
	}
	return nil
}
