// Package config loads the evalfit CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Regression RegressionConfig `yaml:"regression"`
}

// MetricsConfig configures the metrics report.
type MetricsConfig struct {
	Path string `yaml:"path"`
}

// SweepConfig configures the threshold sweep.
type SweepConfig struct {
	Min             float64 `yaml:"min"`
	Max             float64 `yaml:"max"`
	Step            float64 `yaml:"step"`
	PrecisionWeight float64 `yaml:"precision_weight"`
	RecallWeight    float64 `yaml:"recall_weight"`
	Limit           int     `yaml:"limit"`
	Top             int     `yaml:"top"`
}

// RegressionConfig configures the synthetic sample and plot.
type RegressionConfig struct {
	Seed       uint64  `yaml:"seed"`
	Samples    int     `yaml:"samples"`
	Slope      float64 `yaml:"slope"`
	Intercept  float64 `yaml:"intercept"`
	Noise      float64 `yaml:"noise"`
	XMax       float64 `yaml:"x_max"`
	PlotWidth  int     `yaml:"plot_width"`
	PlotHeight int     `yaml:"plot_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Metrics: MetricsConfig{
			Path: "metrics.csv",
		},
		Sweep: SweepConfig{
			Min:             0.05,
			Max:             1.0,
			Step:            0.05,
			PrecisionWeight: 1.0,
			RecallWeight:    1.0,
			Limit:           4,
			Top:             10,
		},
		Regression: RegressionConfig{
			Seed:       0,
			Samples:    100,
			Slope:      2.5,
			Intercept:  0,
			Noise:      2,
			XMax:       10,
			PlotWidth:  60,
			PlotHeight: 20,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside a command.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	switch {
	case c.Regression.Samples < 1:
		return fmt.Errorf("%w: regression.samples must be positive, got %d", ErrInvalidConfig, c.Regression.Samples)
	case c.Regression.Noise < 0:
		return fmt.Errorf("%w: regression.noise must be non-negative, got %v", ErrInvalidConfig, c.Regression.Noise)
	case c.Regression.XMax <= 0:
		return fmt.Errorf("%w: regression.x_max must be positive, got %v", ErrInvalidConfig, c.Regression.XMax)
	}
	return nil
}

// Validate checks the sweep range and weights. The CLI calls it again after
// flags are applied, since overrides bypass Load.
func (s SweepConfig) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"sweep.min", s.Min},
		{"sweep.max", s.Max},
		{"sweep.step", s.Step},
		{"sweep.precision_weight", s.PrecisionWeight},
		{"sweep.recall_weight", s.RecallWeight},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.key, f.v)
		}
	}

	switch {
	case s.Step <= 0:
		return fmt.Errorf("%w: sweep.step must be positive, got %v", ErrInvalidConfig, s.Step)
	case s.Max <= s.Min:
		return fmt.Errorf("%w: sweep.max (%v) must exceed sweep.min (%v)", ErrInvalidConfig, s.Max, s.Min)
	case s.PrecisionWeight < 0 || s.RecallWeight < 0:
		return fmt.Errorf("%w: sweep weights must be non-negative", ErrInvalidConfig)
	case s.Limit < 0:
		return fmt.Errorf("%w: sweep.limit must be non-negative, got %d", ErrInvalidConfig, s.Limit)
	case s.Top < 0:
		return fmt.Errorf("%w: sweep.top must be non-negative, got %d", ErrInvalidConfig, s.Top)
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}
