package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCaps(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"caps", "-dialect", "cockroach", "-version", "20.1"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "20.1.0", got["version"])
	assert.Equal(t, "pgx", got["driver_kind"])
	caps, ok := got["capabilities"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, caps["skip_locked"])
	assert.Contains(t, got["functions"], "string_agg")
}

func TestCapsErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"caps", "-dialect", "oracle"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown dialect "oracle"`)

	stderr.Reset()
	assert.Equal(t, 1, run(context.Background(), []string{"caps", "-version", "x"}, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"lint"}, &stdout, &stderr))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCapsWriteError(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"caps", "-dialect", "iris"}, failingWriter{}, &stderr))
	assert.Contains(t, stderr.String(), "disk full")
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
discriminators:
  - name: shape_kind
    values:
      - value: c
        subtype: Circle
`), 0o644))

	out := filepath.Join(dir, "shapes")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"gen", "-config", config, "-out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "shape_kind_discriminator.go\n", stdout.String())
	b, err := os.ReadFile(filepath.Join(out, "shape_kind_discriminator.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "package shapes")

	assert.Equal(t, 1, run(context.Background(), []string{"gen"}, &stdout, &stderr))
}
