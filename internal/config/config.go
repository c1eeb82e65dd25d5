// Package config loads the calculation snapshot and tool settings from a
// YAML file. The file overlays the built-in defaults: any field or section
// it omits keeps its default, so a minimal file stays valid and an absent
// file means "run the example snapshot".
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carbontally/carbontally/internal/engine"
	"github.com/carbontally/carbontally/internal/scope2"
)

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	// Level is a zerolog level name. Defaults to "info".
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	// Format is "console" or "json". Defaults to "console".
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Scope2Section is the YAML shape of the Scope-2 inputs. It mirrors
// scope2.Inputs except that the locked method is a string token.
type Scope2Section struct {
	Country      string           `yaml:"country,omitempty"`
	Region       string           `yaml:"region,omitempty"`
	Employees    float64          `yaml:"employees,omitempty"`
	Revenue      float64          `yaml:"revenue,omitempty"`
	FloorspaceM2 float64          `yaml:"floorspace_m2,omitempty"`
	BuildingType string           `yaml:"building_type,omitempty"`
	AnnualKWh    float64          `yaml:"annual_kwh,omitempty"`
	Overrides    scope2.Overrides `yaml:"overrides,omitempty"`
	Auto         *bool            `yaml:"auto,omitempty"`
	// LockedMethod is one of "provided", "revenue", "employee", "area".
	LockedMethod string `yaml:"locked_method,omitempty"`
}

// Config is the full loaded configuration.
type Config struct {
	Snapshot engine.Snapshot `yaml:",inline"`
	Scope2   Scope2Section   `yaml:"scope2,omitempty"`
	Logging  LoggingConfig   `yaml:"logging,omitempty"`
}

// Default returns the built-in configuration: the example snapshot, Scope-2
// inputs matching it, and console info logging.
func Default() Config {
	return Config{
		Snapshot: engine.DefaultSnapshot(),
		Scope2: Scope2Section{
			Country:      "Germany",
			Employees:    18,
			FloorspaceM2: 420,
			BuildingType: "office",
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the pure defaults. A missing or unreadable file is an error; the numeric
// never-fail policy applies inside the calculation, not at the I/O boundary.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Unmarshal over the populated defaults: YAML only touches the fields
	// it names, which gives field-level overlay semantics.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Scope2Inputs converts the YAML section to estimator inputs. Auto defaults
// to true when unset; an unknown locked-method token is an error so a typo
// cannot silently change the method selection.
func (s Scope2Section) Scope2Inputs() (scope2.Inputs, error) {
	in := scope2.Inputs{
		Country:      s.Country,
		Region:       s.Region,
		Employees:    s.Employees,
		Revenue:      s.Revenue,
		FloorspaceM2: s.FloorspaceM2,
		BuildingType: s.BuildingType,
		AnnualKWh:    s.AnnualKWh,
		Overrides:    s.Overrides,
		Auto:         true,
	}

	if s.Auto != nil {
		in.Auto = *s.Auto
	}

	if s.LockedMethod != "" {
		method, ok := scope2.ParseMethod(s.LockedMethod)
		if !ok {
			return scope2.Inputs{}, fmt.Errorf("unknown locked method %q", s.LockedMethod)
		}
		in.LockedMethod = method
	}

	return in, nil
}
