package discgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqldialect"
	"github.com/syssam/sqldialect/metamodel/discriminator"
)

const config = `
package: shapes
discriminators:
  - name: shape_kind
    values:
      - value: c
        subtype: Circle
      - value: s
        subtype: Square
  - name: tier
    type: int64
    values:
      - value: "1"
        subtype: Basic
      - value: "2"
        subtype: Premium
`

func loadConfig(t *testing.T) *discriminator.Config {
	t.Helper()
	cfg, err := discriminator.LoadConfig(strings.NewReader(config))
	require.NoError(t, err)
	return cfg
}

func TestNames(t *testing.T) {
	m := discriminator.Mapping{Name: "shape_kind"}
	assert.Equal(t, "ShapeKind", VarName(m))
	assert.Equal(t, "ShapeKindCircle", ConstName(m, "Circle"))
	assert.Equal(t, "shape_kind_discriminator.go", FileName(m))
}

func TestSource(t *testing.T) {
	cfg := loadConfig(t)
	g, err := New(cfg, t.TempDir())
	require.NoError(t, err)

	src, err := g.Source(cfg.Discriminators[0])
	require.NoError(t, err)
	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by sqldialect. DO NOT EDIT.\n"))
	assert.Contains(t, out, "package shapes")
	assert.Contains(t, out, `"github.com/syssam/sqldialect/metamodel/discriminator"`)
	assert.Contains(t, out, `ShapeKindCircle = "c"`)
	assert.Contains(t, out, `var ShapeKind = discriminator.MustNew("shape_kind", []discriminator.ValueDetails[string]{`)
	assert.Contains(t, out, `reflect.TypeFor[Square]()`)
	assert.Less(t, strings.Index(out, "Circle\""), strings.Index(out, "Square\""), "values keep config order")

	src, err = g.Source(cfg.Discriminators[1])
	require.NoError(t, err)
	out = string(src)
	assert.Contains(t, out, "TierPremium = int64(2)")
	assert.Contains(t, out, "[]discriminator.ValueDetails[int64]{")
}

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shapes")
	cfg := loadConfig(t)
	cfg.Package = ""
	g, err := New(cfg, dir, WithWorkers(1), WithHeader("Code generated by shapesgen. DO NOT EDIT."))
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	for _, name := range []string{"shape_kind_discriminator.go", "tier_discriminator.go"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(b), "package shapes")
		assert.Contains(t, string(b), "// Code generated by shapesgen. DO NOT EDIT.")
	}
}

func TestGenerateCanceled(t *testing.T) {
	g, err := New(loadConfig(t), t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, g.Generate(ctx), context.Canceled)
}

func TestInvalidMappings(t *testing.T) {
	g, err := New(&discriminator.Config{Package: "shapes"}, t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name    string
		mapping discriminator.Mapping
		want    string
	}{
		{
			name:    "empty",
			mapping: discriminator.Mapping{Name: "kind"},
			want:    "invalid values",
		},
		{
			name: "subtype",
			mapping: discriminator.Mapping{Name: "kind", Values: []discriminator.ValueMapping{
				{Value: "a", Subtype: "not-a-type"},
			}},
			want: "invalid subtype: not-a-type",
		},
		{
			name: "duplicates",
			mapping: discriminator.Mapping{Name: "kind", Values: []discriminator.ValueMapping{
				{Value: "a", Subtype: "A"},
				{Value: "a", Subtype: "A"},
			}},
			want: "listed twice",
		},
		{
			name: "equal int values",
			mapping: discriminator.Mapping{Name: "kind", Type: "int", Values: []discriminator.ValueMapping{
				{Value: "1", Subtype: "A"},
				{Value: "01", Subtype: "B"},
			}},
			want: "invalid value: 01 listed twice",
		},
		{
			name: "int value",
			mapping: discriminator.Mapping{Name: "kind", Type: "int", Values: []discriminator.ValueMapping{
				{Value: "one", Subtype: "A"},
			}},
			want: "invalid int value: one",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Source(tt.mapping)
			require.Error(t, err)
			assert.True(t, sqldialect.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(nil, "out")
	assert.True(t, sqldialect.IsInvalidArgument(err))
	_, err = New(&discriminator.Config{}, "my-pkg")
	assert.True(t, sqldialect.IsInvalidArgument(err))
}
