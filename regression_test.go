package evalfit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFit_RecoversExactLine(t *testing.T) {
	tests := []struct {
		name      string
		xs        []float64
		slope     float64
		intercept float64
	}{
		{name: "two points", xs: []float64{0, 1}, slope: 2.5, intercept: -1},
		{name: "integers", xs: []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, slope: 2.5, intercept: 4},
		{name: "negative slope", xs: []float64{-3, -1, 0.5, 2, 7}, slope: -0.75, intercept: 12},
		{name: "flat line", xs: []float64{1, 2, 3}, slope: 0, intercept: 3.3},
		{name: "unordered x", xs: []float64{9, 1, 4, 2, 8}, slope: 1.1, intercept: 0},
		{name: "x offset 1e6", xs: []float64{1e6, 1e6 + 1, 1e6 + 2, 1e6 + 3}, slope: 2, intercept: 1},
		{name: "x offset 1e8", xs: []float64{1e8, 1e8 + 1, 1e8 + 2, 1e8 + 3}, slope: 2, intercept: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ys := make([]float64, len(tt.xs))
			for i, x := range tt.xs {
				ys[i] = tt.slope*x + tt.intercept
			}
			set, err := ObservationsFromXY(tt.xs, ys)
			require.NoError(t, err)

			m, err := Fit(set)
			require.NoError(t, err)

			assert.InDelta(t, tt.intercept, m.Intercept(), 1e-9)
			assert.InDelta(t, tt.slope, m.Slope(), 1e-9)

			preds := m.Predictions()
			require.Len(t, preds, len(tt.xs))
			for i := range ys {
				assert.InDelta(t, ys[i], preds[i], 1e-9, "prediction %d", i)
			}
		})
	}
}

func TestFit_DegenerateInput(t *testing.T) {
	set := NewObservationSet(
		Observation{X: 5, Y: 1},
		Observation{X: 5, Y: 2},
		Observation{X: 5, Y: 3},
	)

	m, err := Fit(set)
	require.ErrorIs(t, err, ErrDegenerateInput)
	assert.Nil(t, m)
}

func TestFit_InsufficientData(t *testing.T) {
	_, err := Fit(NewObservationSet(Observation{X: 1, Y: 2}))
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = Fit(NewObservationSet())
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestFit_NonFinite(t *testing.T) {
	set := NewObservationSet(
		Observation{X: 1, Y: 2},
		Observation{X: math.NaN(), Y: 3},
	)
	_, err := Fit(set)
	require.ErrorIs(t, err, ErrNonFinite)

	set = NewObservationSet(
		Observation{X: 1, Y: math.Inf(1)},
		Observation{X: 2, Y: 3},
	)
	_, err = Fit(set)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestFit_IllConditioned(t *testing.T) {
	xs := []float64{1e9, 1e9 + 1e-6}
	ys := []float64{0, 1}
	set, err := ObservationsFromXY(xs, ys)
	require.NoError(t, err)

	m, err := Fit(set)
	if err != nil {
		require.ErrorIs(t, err, ErrDegenerateInput)
		return
	}

	preds := m.Predictions()
	require.Len(t, preds, 2)
	assert.InDelta(t, 0, preds[0], 1e-6)
	assert.InDelta(t, 1, preds[1], 1e-6)

	_, beta := stat.LinearRegression(xs, ys, nil, false)
	assert.InEpsilon(t, beta, m.Slope(), 1e-6)
}

func TestFit_PreservesOrder(t *testing.T) {
	set := NewObservationSet(
		Observation{X: 3, Y: 7},
		Observation{X: -1, Y: 0},
		Observation{X: 10, Y: 19},
		Observation{X: 0, Y: 2},
	)

	m, err := Fit(set)
	require.NoError(t, err)

	preds := m.Predictions()
	require.Len(t, preds, set.Len())
	for i, o := range set.All() {
		assert.InDelta(t, m.Predict(o.X), preds[i], 1e-12)
	}
	assert.Less(t, preds[1], preds[3])
	assert.Less(t, preds[3], preds[0])
	assert.Less(t, preds[0], preds[2])
}

func TestFit_Deterministic(t *testing.T) {
	set := NewObservationSet(
		Observation{X: 0.3, Y: 1.7},
		Observation{X: 1.9, Y: 5.2},
		Observation{X: 4.4, Y: 10.1},
		Observation{X: 2.2, Y: 6.3},
	)

	a, err := Fit(set)
	require.NoError(t, err)
	b, err := Fit(set)
	require.NoError(t, err)

	assert.Equal(t, a.Intercept(), b.Intercept())
	assert.Equal(t, a.Slope(), b.Slope())
	assert.Equal(t, a.Predictions(), b.Predictions())
}

func TestFit_MatchesGonum(t *testing.T) {
	xs := []float64{0.55, 7.15, 6.03, 5.45, 4.24, 6.46, 4.38, 8.92, 9.64, 3.83}
	ys := []float64{2.1, 16.9, 17.2, 12.0, 13.5, 14.9, 9.7, 21.3, 25.0, 8.4}
	set, err := ObservationsFromXY(xs, ys)
	require.NoError(t, err)

	m, err := Fit(set)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	assert.InDelta(t, alpha, m.Intercept(), 1e-9)
	assert.InDelta(t, beta, m.Slope(), 1e-9)

	r2, ok := m.RSquared(set).Value()
	require.True(t, ok)
	assert.InDelta(t, stat.RSquared(xs, ys, nil, alpha, beta), r2, 1e-9)
}

func TestModel_Diagnostics(t *testing.T) {
	set := NewObservationSet(
		Observation{X: 0, Y: 1},
		Observation{X: 1, Y: 1},
		Observation{X: 2, Y: 3},
		Observation{X: 3, Y: 3},
	)
	m, err := Fit(set)
	require.NoError(t, err)

	// Least squares on this set gives y = 0.8 + 0.8x.
	assert.InDelta(t, 0.8, m.Intercept(), 1e-12)
	assert.InDelta(t, 0.8, m.Slope(), 1e-12)

	res := m.Residuals(set)
	require.Len(t, res, 4)
	var sum float64
	for _, r := range res {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-12)

	mse, err := m.MSE(set)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, mse, 1e-12)

	_, err = m.MSE(NewObservationSet())
	require.ErrorIs(t, err, ErrInsufficientData)

	flat := NewObservationSet(Observation{X: 0, Y: 2}, Observation{X: 1, Y: 2})
	assert.False(t, m.RSquared(flat).IsDefined())
}

func TestObservationSet_Immutable(t *testing.T) {
	obs := []Observation{{X: 1, Y: 2}, {X: 3, Y: 4}}
	set := NewObservationSet(obs...)
	obs[0].X = 99

	assert.Equal(t, 1.0, set.At(0).X)

	xs := set.X()
	xs[1] = -1
	assert.Equal(t, 3.0, set.At(1).X)
	assert.Equal(t, []float64{2, 4}, set.Y())
}

func TestObservationsFromXY_LengthMismatch(t *testing.T) {
	_, err := ObservationsFromXY([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
}
