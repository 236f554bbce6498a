// Package bench evaluates scored binary predictions across decision thresholds.
package bench

import (
	evalfit "github.com/jamesainslie/go-evalfit"
)

// Config holds evaluation parameters.
type Config struct {
	PrecisionWeight float64
	RecallWeight    float64
	Limit           int // max concurrent evaluations; <= 0 means unbounded
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
		Limit:           4,
	}
}

// Sample is one scored prediction with its ground-truth label.
type Sample struct {
	Score  float64
	Actual bool
}

// Result holds evaluation output for one threshold.
type Result struct {
	Threshold     float64
	Counts        evalfit.ConfusionCounts
	Metrics       evalfit.DerivedMetrics
	WeightedScore evalfit.Score
}

// Evaluate predicts positive for every sample scoring at or above threshold
// and compares the predictions against the labels.
func Evaluate(samples []Sample, threshold float64, cfg Config) (Result, error) {
	predicted := make([]bool, len(samples))
	actual := make([]bool, len(samples))
	for i, s := range samples {
		predicted[i] = s.Score >= threshold
		actual[i] = s.Actual
	}

	counts, err := evalfit.Tally(predicted, actual)
	if err != nil {
		return Result{}, err
	}
	m, err := evalfit.ComputeMetrics(counts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Threshold:     threshold,
		Counts:        counts,
		Metrics:       m,
		WeightedScore: m.Weighted(cfg.PrecisionWeight, cfg.RecallWeight),
	}, nil
}
