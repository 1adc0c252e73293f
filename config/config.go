// SPDX-License-Identifier: MIT

// Package config loads the solver and CLI settings from a TOML or YAML file.
//
// Unset keys keep their defaults, so a config file only needs the values it
// changes:
//
//	[solver]
//	pivoting = "partial"
//
//	[output]
//	precision = 8
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/gauss"
)

// EnvConfig names the environment variable consulted by LoadFromEnv.
const EnvConfig = "LINSOLVE_CONFIG"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the complete application configuration.
type Config struct {
	Solver SolverConfig `toml:"solver" yaml:"solver"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// SolverConfig mirrors the gauss options.
type SolverConfig struct {
	Pivoting  string  `toml:"pivoting" yaml:"pivoting"`   // "none" | "partial"
	Singular  string  `toml:"singular" yaml:"singular"`   // "error" | "propagate"
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"` // |pivot| <= tolerance counts as zero; -1 = scale-relative
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Precision int  `toml:"precision" yaml:"precision"` // significant digits, -1 = shortest
	Verify    bool `toml:"verify" yaml:"verify"`       // print the residual max|Ax-b|
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug | info | warn | error
	Format string `toml:"format" yaml:"format"` // text | json
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Pivoting:  gauss.DefaultPivoting.String(),
			Singular:  gauss.DefaultSingularPolicy.String(),
			Tolerance: gauss.DefaultTolerance,
		},
		Output: OutputConfig{
			Precision: gauss.DefaultPrecision,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of Default(). The format is chosen by extension:
// .yaml/.yml use YAML, everything else TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("config: parse YAML %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("config: parse TOML %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by $LINSOLVE_CONFIG, or returns the
// defaults when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := gauss.ParsePivoting(c.Solver.Pivoting); err != nil {
		return fmt.Errorf("solver.pivoting: %w: %w", ErrInvalid, err)
	}
	if _, err := gauss.ParseSingularPolicy(c.Solver.Singular); err != nil {
		return fmt.Errorf("solver.singular: %w: %w", ErrInvalid, err)
	}
	if t := c.Solver.Tolerance; t != gauss.ToleranceAuto && (math.IsNaN(t) || math.IsInf(t, 0) || t < 0) {
		return fmt.Errorf("solver.tolerance %v: %w", t, ErrInvalid)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// SolverOptions converts the solver and output sections into gauss options.
// Validate must have succeeded.
func (c *Config) SolverOptions() ([]gauss.Option, error) {
	piv, err := gauss.ParsePivoting(c.Solver.Pivoting)
	if err != nil {
		return nil, err
	}
	pol, err := gauss.ParseSingularPolicy(c.Solver.Singular)
	if err != nil {
		return nil, err
	}

	return []gauss.Option{
		gauss.WithPivoting(piv),
		gauss.WithSingularPolicy(pol),
		gauss.WithTolerance(c.Solver.Tolerance),
		gauss.WithPrecision(c.Output.Precision),
	}, nil
}

// SlogLevel maps Level onto slog levels.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	name := l.Level
	if name == "" {
		name = "info"
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", l.Level, ErrInvalid)
	}

	return lvl, nil
}
