// Package synth generates seeded, noisy linear samples for the regression demo.
package synth

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	evalfit "github.com/jamesainslie/go-evalfit"
)

// ErrInvalidOption indicates a generator option outside its valid range.
var ErrInvalidOption = errors.New("synth: invalid option")

// Generate draws x uniformly from [0, xMax) and returns
// y = slope*x + intercept + N(0, noise²). The same options always produce the
// same set.
func Generate(opts ...Option) (evalfit.ObservationSet, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch {
	case cfg.samples < 1:
		return evalfit.ObservationSet{}, fmt.Errorf("%w: samples = %d", ErrInvalidOption, cfg.samples)
	case !(cfg.xMax > 0):
		return evalfit.ObservationSet{}, fmt.Errorf("%w: xmax = %v", ErrInvalidOption, cfg.xMax)
	case !(cfg.noise >= 0):
		return evalfit.ObservationSet{}, fmt.Errorf("%w: noise = %v", ErrInvalidOption, cfg.noise)
	}

	src := rand.NewPCG(cfg.seed, cfg.seed)
	xDist := distuv.Uniform{Min: 0, Max: cfg.xMax, Src: src}
	noise := distuv.Normal{Mu: 0, Sigma: cfg.noise, Src: src}

	xs := make([]float64, cfg.samples)
	ys := make([]float64, cfg.samples)
	for i := range xs {
		xs[i] = xDist.Rand()
	}
	for i, x := range xs {
		ys[i] = cfg.slope*x + cfg.intercept + noise.Rand()
	}

	cfg.logger.Debug("generated sample",
		"samples", cfg.samples,
		"slope", cfg.slope,
		"intercept", cfg.intercept,
		"noise", cfg.noise,
		"seed", cfg.seed,
	)

	return evalfit.ObservationsFromXY(xs, ys)
}

// Stats summarizes one coordinate of a sample.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary holds descriptive statistics for both coordinates.
type Summary struct {
	N int
	X Stats
	Y Stats
}

// Summarize computes descriptive statistics for set.
func Summarize(set evalfit.ObservationSet) Summary {
	return Summary{
		N: set.Len(),
		X: describe(set.X()),
		Y: describe(set.Y()),
	}
}

func describe(v []float64) Stats {
	switch len(v) {
	case 0:
		return Stats{}
	case 1:
		return Stats{Mean: v[0], Min: v[0], Max: v[0]}
	}
	var s Stats
	s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
	s.Min, s.Max = v[0], v[0]
	for _, x := range v[1:] {
		s.Min = min(s.Min, x)
		s.Max = max(s.Max, x)
	}
	return s
}
