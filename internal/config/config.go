// Package config loads the tsp2opt YAML configuration.
//
// Values come from three layers, later ones winning: Default(), the YAML
// file, and command-line flags applied by the caller. The zero value of every
// solver knob means "unbounded", so an empty file reproduces the reference
// run-to-fixed-point behavior.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsp2opt/tsp"
)

// DefaultPath is the file looked up when no --config flag is given.
const DefaultPath = "tsp2opt.yaml"

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the top-level configuration document.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Batch  BatchConfig  `yaml:"batch"`
}

// SolverConfig mirrors tsp.Options.
type SolverConfig struct {
	MaxPasses int           `yaml:"max_passes"`
	TimeLimit time.Duration `yaml:"time_limit"`
	Eps       float64       `yaml:"eps"`
}

// OutputConfig controls console rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Precision is the number of decimals printed for distances.
	Precision int `yaml:"precision"`

	// ShowMatrix prints the distance matrix before solving (text only).
	ShowMatrix bool `yaml:"show_matrix"`
}

// StoreConfig locates the SQLite run archive.
type StoreConfig struct {
	Path string `yaml:"path"`
	Save bool   `yaml:"save"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BatchConfig tunes the batch command.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Precision: 2, ShowMatrix: true},
		Store:  StoreConfig{Path: "tsp2opt.db"},
		Log:    LogConfig{Level: "info", Format: "text"},
		Batch:  BatchConfig{Workers: 4},
	}
}

// Load reads path on top of Default(). A missing file is tolerated only when
// path is DefaultPath; an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Solver.MaxPasses < 0 {
		return fmt.Errorf("solver.max_passes %d: %w", c.Solver.MaxPasses, ErrInvalidConfig)
	}
	if c.Solver.TimeLimit < 0 {
		return fmt.Errorf("solver.time_limit %s: %w", c.Solver.TimeLimit, ErrInvalidConfig)
	}
	if c.Solver.Eps < 0 {
		return fmt.Errorf("solver.eps %g: %w", c.Solver.Eps, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalidConfig)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers %d: %w", c.Batch.Workers, ErrInvalidConfig)
	}

	return nil
}

// SolverOptions converts the solver section into tsp.Options.
func (c Config) SolverOptions() tsp.Options {
	return tsp.Options{
		MaxPasses: c.Solver.MaxPasses,
		TimeLimit: c.Solver.TimeLimit,
		Eps:       c.Solver.Eps,
	}
}
