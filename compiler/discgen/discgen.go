// Package discgen generates discriminator converters from a YAML mapping
// config. Each mapping becomes one Go file declaring typed value constants
// and a package-level *discriminator.Converter built with MustNew.
package discgen

import (
	"bytes"
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/metamodel/discriminator"
)

const (
	discPkg    = "github.com/syssam/sqldialect/metamodel/discriminator"
	header     = "Code generated by sqldialect. DO NOT EDIT."
	fileSuffix = "_discriminator.go"
)

// Generator writes converter files for a Config.
type Generator struct {
	cfg     *discriminator.Config
	outDir  string
	pkg     string
	workers int
	header  string
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers sets the number of files written in parallel.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithHeader replaces the generated-code header comment.
func WithHeader(h string) Option {
	return func(g *Generator) {
		if h != "" {
			g.header = h
		}
	}
}

// WithLogger sets the logger used to report written files.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a generator for cfg writing into outDir. The package name
// defaults to the base name of outDir.
func New(cfg *discriminator.Config, outDir string, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, sqldialect.NewInvalidArgumentError("discgen", "config", nil)
	}
	g := &Generator{
		cfg:     cfg,
		outDir:  outDir,
		pkg:     cfg.Package,
		workers: runtime.GOMAXPROCS(0),
		header:  header,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.pkg == "" {
		g.pkg = filepath.Base(outDir)
	}
	if !token.IsIdentifier(g.pkg) {
		return nil, sqldialect.NewInvalidArgumentError("discgen", "package", g.pkg)
	}
	return g, nil
}

// FileName returns the output file name of a mapping.
func FileName(m discriminator.Mapping) string {
	return inflect.Underscore(m.Name) + fileSuffix
}

// VarName returns the identifier of the converter variable of a mapping.
func VarName(m discriminator.Mapping) string {
	return inflect.Camelize(m.Name)
}

// ConstName returns the identifier of the constant holding the stored value
// of a subtype.
func ConstName(m discriminator.Mapping, subtype string) string {
	return VarName(m) + inflect.Camelize(subtype)
}

// File builds the jennifer file for one mapping.
func (g *Generator) File(m discriminator.Mapping) (*jen.File, error) {
	if err := check(m); err != nil {
		return nil, err
	}
	vt := m.ValueType()
	f := jen.NewFile(g.pkg)
	f.HeaderComment(g.header)

	consts := make([]jen.Code, 0, len(m.Values))
	details := make([]jen.Code, 0, len(m.Values))
	for _, v := range m.Values {
		lit, err := literal(vt, v.Value)
		if err != nil {
			return nil, err
		}
		name := ConstName(m, v.Subtype)
		consts = append(consts, jen.Id(name).Op("=").Add(lit))
		details = append(details, jen.Values(jen.Dict{
			jen.Id("Value"): jen.Id(name),
			jen.Id("Name"):  jen.Lit(v.Subtype),
			jen.Id("Type"):  jen.Qual("reflect", "TypeFor").Types(jen.Id(v.Subtype)).Call(),
		}))
	}
	f.Commentf("Stored values of %s.", m.Name)
	f.Const().Defs(consts...)
	f.Line()
	f.Commentf("%s converts %s values to subtypes and back.", VarName(m), m.Name)
	f.Var().Id(VarName(m)).Op("=").Qual(discPkg, "MustNew").Call(
		jen.Lit(m.Name),
		jen.Index().Qual(discPkg, "ValueDetails").Types(jen.Id(vt)).ValuesFunc(func(grp *jen.Group) {
			for _, d := range details {
				grp.Line().Add(d)
			}
			grp.Line()
		}),
	)
	return f, nil
}

// Source renders and formats the file of one mapping.
func (g *Generator) Source(m discriminator.Mapping) ([]byte, error) {
	f, err := g.File(m)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", m.Name, err)
	}
	out, err := imports.Process(filepath.Join(g.outDir, FileName(m)), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", m.Name, err)
	}
	return out, nil
}

// Generate writes one file per mapping in parallel.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for _, m := range g.cfg.Discriminators {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.write(m)
		})
	}
	return eg.Wait()
}

func (g *Generator) write(m discriminator.Mapping) error {
	src, err := g.Source(m)
	if err != nil {
		return err
	}
	path := filepath.Join(g.outDir, FileName(m))
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	g.logger.Debug("discriminator generated", "name", m.Name, "path", path, "values", len(m.Values))
	return nil
}

// check reports every subtype that is not a Go identifier and every subtype
// or value that appears twice.
func check(m discriminator.Mapping) error {
	op := "discriminator " + m.Name
	var errs []error
	if !token.IsIdentifier(VarName(m)) {
		errs = append(errs, sqldialect.NewInvalidArgumentError(op, "name", m.Name))
	}
	if len(m.Values) == 0 {
		errs = append(errs, sqldialect.NewInvalidArgumentError(op, "values", "<empty>"))
	}
	subtypes := make(map[string]bool, len(m.Values))
	values := make(map[string]bool, len(m.Values))
	for _, v := range m.Values {
		if !token.IsIdentifier(v.Subtype) {
			errs = append(errs, sqldialect.NewInvalidArgumentError(op, "subtype", v.Subtype))
		}
		if subtypes[v.Subtype] {
			errs = append(errs, sqldialect.NewInvalidArgumentError(op, "subtype", v.Subtype+" listed twice"))
		}
		key := valueKey(m.ValueType(), v.Value)
		if values[key] {
			errs = append(errs, sqldialect.NewInvalidArgumentError(op, "value", v.Value+" listed twice"))
		}
		subtypes[v.Subtype] = true
		values[key] = true
	}
	return sqldialect.NewAggregateError(errs...)
}

// valueKey returns the canonical form of a stored value, so that "1" and
// "01" collide for integer types. Unparsable values are left as written and
// reported by literal.
func valueKey(vt, v string) string {
	if vt == "int" || vt == "int64" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return strconv.FormatInt(n, 10)
		}
	}
	return v
}

func literal(vt, v string) (jen.Code, error) {
	switch vt {
	case "int":
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, sqldialect.NewInvalidArgumentError("discgen", "int value", v)
		}
		return jen.Lit(n), nil
	case "int64":
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, sqldialect.NewInvalidArgumentError("discgen", "int64 value", v)
		}
		return jen.Lit(n), nil
	default:
		return jen.Lit(v), nil
	}
}
