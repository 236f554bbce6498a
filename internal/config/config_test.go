package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evalfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
regression:
  seed: 42
  noise: 0.5
sweep:
  recall_weight: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Regression.Seed)
	assert.Equal(t, 0.5, cfg.Regression.Noise)
	assert.Equal(t, 100, cfg.Regression.Samples)
	assert.Equal(t, 2.5, cfg.Regression.Slope)
	assert.Equal(t, 2.0, cfg.Sweep.RecallWeight)
	assert.Equal(t, 1.0, cfg.Sweep.PrecisionWeight)
	assert.Equal(t, "metrics.csv", cfg.Metrics.Path)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "regression: [1, 2"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "regression:\n  samples: 0\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "sweep:\n  min: 0.5\n  max: 0.5\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSweepConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SweepConfig)
	}{
		{name: "NaN min", mutate: func(s *SweepConfig) { s.Min = math.NaN() }},
		{name: "infinite max", mutate: func(s *SweepConfig) { s.Max = math.Inf(1) }},
		{name: "infinite step", mutate: func(s *SweepConfig) { s.Step = math.Inf(1) }},
		{name: "NaN weight", mutate: func(s *SweepConfig) { s.RecallWeight = math.NaN() }},
		{name: "zero step", mutate: func(s *SweepConfig) { s.Step = 0 }},
		{name: "negative weight", mutate: func(s *SweepConfig) { s.PrecisionWeight = -1 }},
		{name: "negative limit", mutate: func(s *SweepConfig) { s.Limit = -1 }},
		{name: "negative top", mutate: func(s *SweepConfig) { s.Top = -3 }},
	}

	require.NoError(t, Default().Sweep.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := Default().Sweep
			tt.mutate(&sc)
			require.ErrorIs(t, sc.Validate(), ErrInvalidConfig)
		})
	}

	_, err := Load(writeConfig(t, "sweep:\n  max: .inf\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
