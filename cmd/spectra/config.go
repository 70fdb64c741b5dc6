package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spectra/eigen"
)

// ErrInvalidConfig is returned for solver settings no run could use.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the solver defaults a YAML file may override.
type Config struct {
	Tolerance      float64 `yaml:"tolerance"`
	MaxIterations  int     `yaml:"max_iterations"`
	Deduplicate    bool    `yaml:"deduplicate"`
	SignCorrection bool    `yaml:"sign_correction"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance:     eigen.DefaultTolerance,
		MaxIterations: eigen.DefaultMaxIterations,
	}
}

// LoadConfig reads path over DefaultConfig. Keys absent from the file keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings the solver options would panic on.
func (c Config) Validate() error {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %g must be finite and >= 0", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: max_iterations %d must be > 0", ErrInvalidConfig, c.MaxIterations)
	}

	return nil
}

// Options translates c into solver options.
func (c Config) Options() []eigen.Option {
	opts := []eigen.Option{
		eigen.WithTolerance(c.Tolerance),
		eigen.WithMaxIterations(c.MaxIterations),
	}
	if c.Deduplicate {
		opts = append(opts, eigen.WithDeduplicate())
	}
	if c.SignCorrection {
		opts = append(opts, eigen.WithSignCorrection())
	}

	return opts
}
