package bench

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepThresholds(t *testing.T) {
	thresholds := SweepThresholds(0.01, 0.1, 0.02)

	want := []float64{0.01, 0.03, 0.05, 0.07, 0.09}
	require.Len(t, thresholds, len(want))
	for i := range want {
		assert.InDelta(t, want[i], thresholds[i], 1e-9, "threshold[%d]", i)
	}

	assert.Nil(t, SweepThresholds(0, 1, 0))
	assert.Empty(t, SweepThresholds(1, 0.5, 0.1))
	assert.Len(t, SweepThresholds(0, MaxThresholds, 1), MaxThresholds)
}

func TestSweepThresholds_Unbounded(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name           string
		min, max, step float64
	}{
		{name: "NaN min", min: nan, max: 1, step: 0.1},
		{name: "NaN max", min: 0, max: nan, step: 0.1},
		{name: "NaN step", min: 0, max: 1, step: nan},
		{name: "infinite max", min: 0, max: inf, step: 0.1},
		{name: "negative infinite min", min: -inf, max: 1, step: 0.1},
		{name: "infinite step", min: 0, max: 1, step: inf},
		{name: "too many values", min: 0, max: 1, step: 1e-9},
		{name: "step below float spacing", min: 1e17, max: 1e17 + 64, step: 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, SweepThresholds(tt.min, tt.max, tt.step))
		})
	}
}

func TestSweep_SortedByWeightedScore(t *testing.T) {
	thresholds := []float64{1, 0.5, 0, 0.8}

	results, err := Sweep(context.Background(), testSamples(), DefaultConfig(), thresholds)
	require.NoError(t, err)
	require.Len(t, results, len(thresholds))

	// 0 -> (4/7+1)/2; 0.5 and 0.8 tie at 0.75; 1 -> undefined
	assert.Equal(t, 0.0, results[0].Threshold)
	assert.Equal(t, 0.5, results[1].Threshold)
	assert.Equal(t, 0.8, results[2].Threshold)
	assert.Equal(t, 1.0, results[3].Threshold)
	assert.False(t, results[3].WeightedScore.IsDefined())
}

func TestSweep_TiesKeepThresholdOrder(t *testing.T) {
	samples := []Sample{{Score: 0.9, Actual: true}, {Score: 0.1, Actual: false}}

	results, err := Sweep(context.Background(), samples, Config{PrecisionWeight: 1, RecallWeight: 1}, []float64{0.7, 0.3, 0.5})
	require.NoError(t, err)

	got := []float64{results[0].Threshold, results[1].Threshold, results[2].Threshold}
	assert.Equal(t, []float64{0.3, 0.5, 0.7}, got)
}

func TestSweep_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, testSamples(), DefaultConfig(), SweepThresholds(0, 1, 0.1))
	require.ErrorIs(t, err, context.Canceled)
}
