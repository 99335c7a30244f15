package sql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/dialect"
	"github.com/syssam/sqldialect/dialect/cockroach"
	"github.com/syssam/sqldialect/dialect/iris"
)

// Version queries.
const (
	VersionQuery     = "SELECT version()"
	IRISVersionQuery = "SELECT $ZVERSION"
)

// Detection is the result of probing a server.
type Detection struct {
	// Backend is one of the dialect backend names.
	Backend string
	// Version is the server release.
	Version dialect.Version
	// Banner is the raw version string reported by the server.
	Banner string
}

// ProbeOption configures server detection and profile resolution.
type ProbeOption func(*probe)

type probe struct {
	query   string
	backend string
	logger  *slog.Logger
}

// WithVersionQuery sets the statement returning the version banner.
// Default is VersionQuery.
func WithVersionQuery(q string) ProbeOption {
	return func(p *probe) {
		p.query = q
	}
}

// WithBackend skips banner inspection and uses the given backend name.
func WithBackend(name string) ProbeOption {
	return func(p *probe) {
		p.backend = name
	}
}

// WithProbeLogger sets the logger used for detection results.
func WithProbeLogger(l *slog.Logger) ProbeOption {
	return func(p *probe) {
		p.logger = l
	}
}

func newProbe(opts []ProbeOption) *probe {
	p := &probe{query: VersionQuery}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// BackendOf returns the backend named by a version banner, or "".
func BackendOf(banner string) string {
	switch {
	case strings.Contains(banner, "CockroachDB"):
		return dialect.CockroachDB
	case strings.Contains(banner, "IRIS"):
		return dialect.IRIS
	case strings.Contains(banner, "PostgreSQL"):
		return dialect.Postgres
	}
	return ""
}

// Detect queries the server version banner and parses it.
func Detect(ctx context.Context, ex dialect.ExecQuerier, opts ...ProbeOption) (Detection, error) {
	return newProbe(opts).detect(ctx, ex)
}

func (p *probe) detect(ctx context.Context, ex dialect.ExecQuerier) (Detection, error) {
	banner, err := queryString(ctx, ex, p.query)
	if err != nil {
		return Detection{}, fmt.Errorf("dialect/sql: detect version: %w", err)
	}
	v, err := dialect.ParseVersion(banner)
	if err != nil {
		return Detection{}, fmt.Errorf("dialect/sql: detect version: %w", err)
	}
	d := Detection{Backend: p.backend, Version: v, Banner: banner}
	if d.Backend == "" {
		d.Backend = BackendOf(banner)
	}
	p.logger.Debug("server detected", "backend", d.Backend, "version", v.String(), "banner", banner)
	return d, nil
}

func queryString(ctx context.Context, ex dialect.ExecQuerier, query string) (_ string, rerr error) {
	rows := &Rows{}
	if err := ex.Query(ctx, query, []any{}, rows); err != nil {
		return "", err
	}
	defer func() {
		if err := rows.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no rows returned by %q", query)
	}
	var s string
	if err := rows.Scan(&s); err != nil {
		return "", err
	}
	return s, rows.Err()
}

// ProfileFor builds the profile matching a detection.
func ProfileFor(d Detection, kind dialect.DriverKind, logger *slog.Logger) (*dialect.Profile, error) {
	switch d.Backend {
	case dialect.CockroachDB:
		return cockroach.New(
			cockroach.WithVersion(d.Version),
			cockroach.WithDriverKind(kind),
			cockroach.WithLogger(logger),
		), nil
	case dialect.IRIS:
		return iris.New(iris.WithVersion(d.Version), iris.WithLogger(logger)), nil
	default:
		return nil, sqldialect.NewInvalidArgumentError("resolve profile", "backend", d.Banner)
	}
}

// Resolve detects the server behind the driver and returns its profile.
func Resolve(ctx context.Context, drv *Driver, opts ...ProbeOption) (*dialect.Profile, error) {
	p := newProbe(opts)
	d, err := p.detect(ctx, drv)
	if err != nil {
		return nil, err
	}
	prof, err := ProfileFor(d, drv.Kind(), p.logger)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: %w", err)
	}
	p.logger.Info("dialect profile selected",
		"dialect", prof.Name(),
		"version", prof.Version().String(),
		"driver", drv.Kind().String(),
	)
	return prof, nil
}

// OpenProfile opens a connection, resolves the server profile and returns a
// driver carrying it.
func OpenProfile(ctx context.Context, driverName, source string, opts ...ProbeOption) (*Driver, error) {
	drv, err := Open(driverName, source)
	if err != nil {
		return nil, err
	}
	prof, err := Resolve(ctx, drv, opts...)
	if err != nil {
		_ = drv.Close()
		return nil, err
	}
	return drv.WithProfile(prof), nil
}
