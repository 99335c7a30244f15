package discriminator

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/syssam/sqldialect"
)

// Config is a set of discriminator mappings read from YAML:
//
//	package: shapes
//	discriminators:
//	  - name: shape_kind
//	    type: string
//	    values:
//	      - value: c
//	        subtype: Circle
//	      - value: s
//	        subtype: Square
type Config struct {
	Package        string    `yaml:"package"`
	Discriminators []Mapping `yaml:"discriminators"`
}

// Mapping describes one discriminated type.
type Mapping struct {
	// Name is the discriminator name, usually the column name.
	Name string `yaml:"name"`
	// Type is the Go type of stored values: "string" (default), "int" or
	// "int64".
	Type string `yaml:"type"`
	// Values lists the subtypes in registration order.
	Values []ValueMapping `yaml:"values"`
}

// ValueMapping pairs a stored value with a subtype name.
type ValueMapping struct {
	Value   string `yaml:"value"`
	Subtype string `yaml:"subtype"`
}

// ValueType returns the Go type of stored values.
func (m Mapping) ValueType() string {
	if m.Type == "" {
		return "string"
	}
	return m.Type
}

// LoadConfig decodes a YAML config and checks each mapping's value type.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("discriminator: decode config: %w", err)
	}
	var errs []error
	for _, m := range cfg.Discriminators {
		if m.Name == "" {
			errs = append(errs, sqldialect.NewInvalidArgumentError("load config", "discriminator name", "<empty>"))
		}
		switch m.ValueType() {
		case "string", "int", "int64":
		default:
			errs = append(errs, sqldialect.NewInvalidArgumentError("load config", "value type", m.Type))
		}
	}
	if err := sqldialect.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("discriminator: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// FromMapping builds a converter from a config mapping. parse converts the
// textual stored values.
func FromMapping[R comparable](m Mapping, parse func(string) (R, error), r TypeResolver) (*Converter[R], error) {
	details := make([]ValueDetails[R], 0, len(m.Values))
	var errs []error
	for _, vm := range m.Values {
		v, err := parse(vm.Value)
		if err != nil {
			errs = append(errs, sqldialect.NewInvalidArgumentError("discriminator "+m.Name, "value", vm.Value))
			continue
		}
		t, err := r.Resolve(vm.Subtype)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		details = append(details, ValueDetails[R]{Value: v, Name: vm.Subtype, Type: t})
	}
	if err := sqldialect.NewAggregateError(errs...); err != nil {
		return nil, err
	}
	return New(m.Name, details)
}

// ParseString returns s unchanged.
func ParseString(s string) (string, error) { return s, nil }

// ParseInt parses a decimal int.
func ParseInt(s string) (int, error) { return strconv.Atoi(s) }

// ParseInt64 parses a decimal int64.
func ParseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }
