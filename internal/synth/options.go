package synth

import (
	"log/slog"
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	samples   int
	xMax      float64
	slope     float64
	intercept float64
	noise     float64
	seed      uint64
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		samples:   100,
		xMax:      10,
		slope:     2.5,
		intercept: 0,
		noise:     2,
		seed:      0,
		logger:    slog.Default(),
	}
}

// WithSamples sets the number of observations (default: 100).
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithXMax sets the upper bound of the uniform x range [0, xMax) (default: 10).
func WithXMax(x float64) Option {
	return func(c *config) {
		c.xMax = x
	}
}

// WithLine sets the true slope and intercept (default: 2.5, 0).
func WithLine(slope, intercept float64) Option {
	return func(c *config) {
		c.slope = slope
		c.intercept = intercept
	}
}

// WithNoise sets the standard deviation of the Gaussian noise (default: 2).
func WithNoise(sigma float64) Option {
	return func(c *config) {
		c.noise = sigma
	}
}

// WithSeed sets the random seed (default: 0).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
