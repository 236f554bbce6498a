package bench

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// MaxThresholds bounds the number of values SweepThresholds will produce.
const MaxThresholds = 10000

// SweepThresholds generates threshold values in [min, max) with the given step.
// Values are computed by index so float drift does not accumulate. It returns
// nil when any argument is NaN or infinite, step is not positive, or the range
// would need more than MaxThresholds values.
func SweepThresholds(min, max, step float64) []float64 {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
	}
	if step <= 0 || max <= min {
		return nil
	}
	n := math.Ceil((max - min) / step)
	if n > MaxThresholds {
		return nil
	}

	thresholds := make([]float64, 0, int(n))
	for i := 0; i < int(n); i++ {
		t := min + float64(i)*step
		if t >= max {
			break
		}
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep evaluates every threshold and returns results sorted by weighted score
// descending. Results with an undefined weighted score sort last; ties keep
// ascending threshold order.
func Sweep(ctx context.Context, samples []Sample, cfg Config, thresholds []float64) ([]Result, error) {
	results := make([]Result, len(thresholds))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Limit > 0 {
		g.SetLimit(cfg.Limit)
	}
	for i, threshold := range thresholds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Evaluate(samples, threshold, cfg)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		wi, iok := results[i].WeightedScore.Value()
		wj, jok := results[j].WeightedScore.Value()
		switch {
		case iok != jok:
			return iok
		case iok && wi != wj:
			return wi > wj
		}
		return results[i].Threshold < results[j].Threshold
	})

	return results, nil
}
