package schema

import (
	"fmt"
	"strings"

	"ariga.io/atlas/sql/schema"

	"github.com/syssam/sqldialect/dialect"
)

// ValidationError describes a table element the profile cannot express.
type ValidationError struct {
	Table   string
	Column  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// ValidationResult holds the results of schema validation. Errors prevent
// the DDL from being rendered. Warnings describe elements that are rendered
// differently or dropped.
type ValidationResult struct {
	Errors   []*ValidationError
	Warnings []*ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of the validation result.
func (r *ValidationResult) String() string {
	var sb strings.Builder
	write := func(title string, errs []*ValidationError) {
		if len(errs) == 0 {
			return
		}
		sb.WriteString(title)
		sb.WriteString(":\n")
		for _, e := range errs {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	write("Errors", r.Errors)
	write("Warnings", r.Warnings)
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *ValidationResult) errorf(table, column, format string, args ...any) {
	r.Errors = append(r.Errors, &ValidationError{Table: table, Column: column, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(table, column, format string, args ...any) {
	r.Warnings = append(r.Warnings, &ValidationError{Table: table, Column: column, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the tables against the capabilities of the profile:
// identifier lengths, column types without a mapping, and check
// constraints the backend does not enforce.
//
// Example:
//
//	result := schema.Validate(cockroach.New(), tables...)
//	if result.HasErrors() {
//	    log.Fatal(result)
//	}
func Validate(p *dialect.Profile, tables ...*schema.Table) *ValidationResult {
	result := &ValidationResult{}
	ids := p.Identifiers()
	caps := p.Capabilities()
	for _, t := range tables {
		if err := ids.Validate(t.Name); err != nil {
			result.errorf(t.Name, "", "table name: %v", err)
		}
		for _, c := range t.Columns {
			if err := ids.Validate(c.Name); err != nil {
				result.errorf(t.Name, c.Name, "column name: %v", err)
			}
			if _, err := ColumnType(p, c); err != nil {
				result.errorf(t.Name, c.Name, "%v", err)
			}
			if !caps.SupportsColumnCheck && len(checks(c.Attrs)) > 0 {
				result.warnf(t.Name, c.Name, "column check constraints are not supported by %s and will be omitted", p.Name())
			}
		}
		for _, idx := range t.Indexes {
			if err := ids.Validate(idx.Name); err != nil {
				result.errorf(t.Name, "", "index name: %v", err)
			}
		}
		for _, fk := range t.ForeignKeys {
			if fk.Symbol == "" {
				continue
			}
			if err := ids.Validate(fk.Symbol); err != nil {
				result.errorf(t.Name, "", "foreign key name: %v", err)
			}
		}
		if !caps.SupportsTableCheck {
			for _, chk := range checks(t.Attrs) {
				result.warnf(t.Name, "", "check constraint %q is not supported by %s and will be omitted", chk.Name, p.Name())
			}
		}
	}
	return result
}
