// sqldialect inspects dialect profiles and generates discriminator
// converters.
//
//	sqldialect caps -dialect cockroach -version 20.1
//	sqldialect gen -config shapes.yaml -out ./shapes
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sqldialect/compiler/discgen"
	"github.com/syssam/sqldialect/dialect"
	"github.com/syssam/sqldialect/dialect/cockroach"
	"github.com/syssam/sqldialect/dialect/iris"
	"github.com/syssam/sqldialect/metamodel/discriminator"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

const usage = `usage: sqldialect <command> [flags]

commands:
  caps  print the capabilities of a dialect profile as YAML
  gen   generate discriminator converters from a YAML config
`

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "caps":
		err = caps(args[1:], stdout, stderr)
	case "gen":
		err = gen(ctx, args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s", args[0], usage)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "sqldialect %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

// report is the YAML form of a profile.
type report struct {
	Dialect         string               `yaml:"dialect"`
	Version         string               `yaml:"version"`
	DriverKind      string               `yaml:"driver_kind"`
	NullOrdering    string               `yaml:"null_ordering"`
	TimeZoneSupport string               `yaml:"time_zone_support"`
	NameQualifier   string               `yaml:"name_qualifier"`
	UnquotedCase    string               `yaml:"unquoted_case"`
	Capabilities    dialect.Capabilities `yaml:"capabilities"`
	Functions       []string             `yaml:"functions"`
}

func caps(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("caps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("dialect", "cockroach", "dialect name: cockroach or iris")
	version := fs.String("version", "", "backend version, e.g. 20.1")
	driver := fs.String("driver", "pgx", "database/sql driver name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, err := profile(*name, *version, *driver, slog.New(slog.NewTextHandler(stderr, nil)))
	if err != nil {
		return err
	}
	c := p.Capabilities()
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	err = enc.Encode(report{
		Dialect:         p.Name(),
		Version:         p.Version().String(),
		DriverKind:      p.DriverKind().String(),
		NullOrdering:    c.NullOrdering.String(),
		TimeZoneSupport: c.TimeZoneSupport.String(),
		NameQualifier:   c.NameQualifier.String(),
		UnquotedCase:    c.UnquotedCase.String(),
		Capabilities:    c,
		Functions:       p.Functions().Names(),
	})
	return errors.Join(err, enc.Close())
}

func profile(name, version, driver string, logger *slog.Logger) (*dialect.Profile, error) {
	var v dialect.Version
	if version != "" {
		var err error
		if v, err = dialect.ParseVersion(version); err != nil {
			return nil, err
		}
	}
	switch name {
	case "cockroach", "cockroachdb":
		opts := []cockroach.Option{cockroach.WithLogger(logger), cockroach.WithDriverKind(dialect.DriverKindOf(driver))}
		if version != "" {
			opts = append(opts, cockroach.WithVersion(v))
		}
		return cockroach.New(opts...), nil
	case "iris":
		opts := []iris.Option{iris.WithLogger(logger)}
		if version != "" {
			opts = append(opts, iris.WithVersion(v))
		}
		return iris.New(opts...), nil
	default:
		return nil, fmt.Errorf("unknown dialect %q", name)
	}
}

func gen(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	config := fs.String("config", "", "path of the discriminator YAML config")
	out := fs.String("out", ".", "output directory")
	pkg := fs.String("package", "", "package name, overrides the config")
	workers := fs.Int("workers", 0, "files written in parallel")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *config == "" {
		return fmt.Errorf("missing -config")
	}
	cfg, err := discriminator.LoadConfigFile(*config)
	if err != nil {
		return err
	}
	if *pkg != "" {
		cfg.Package = *pkg
	}
	g, err := discgen.New(cfg, *out, discgen.WithWorkers(*workers))
	if err != nil {
		return err
	}
	if err := g.Generate(ctx); err != nil {
		return err
	}
	for _, m := range cfg.Discriminators {
		fmt.Fprintln(stdout, discgen.FileName(m))
	}
	return nil
}
