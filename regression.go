package evalfit

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Observation is a single (x, y) sample.
type Observation struct {
	X float64
	Y float64
}

// ObservationSet is an ordered, immutable sequence of observations.
type ObservationSet struct {
	obs []Observation
}

// NewObservationSet copies obs into a new set.
func NewObservationSet(obs ...Observation) ObservationSet {
	return ObservationSet{obs: slices.Clone(obs)}
}

// ObservationsFromXY pairs xs and ys index by index.
func ObservationsFromXY(xs, ys []float64) (ObservationSet, error) {
	if len(xs) != len(ys) {
		return ObservationSet{}, fmt.Errorf("%w: %d x values, %d y values",
			ErrLengthMismatch, len(xs), len(ys))
	}

	obs := make([]Observation, len(xs))
	for i := range xs {
		obs[i] = Observation{X: xs[i], Y: ys[i]}
	}
	return ObservationSet{obs: obs}, nil
}

// Len returns the number of observations.
func (s ObservationSet) Len() int {
	return len(s.obs)
}

// At returns the i-th observation.
func (s ObservationSet) At(i int) Observation {
	return s.obs[i]
}

// All iterates over the observations in order.
func (s ObservationSet) All() iter.Seq2[int, Observation] {
	return func(yield func(int, Observation) bool) {
		for i, o := range s.obs {
			if !yield(i, o) {
				return
			}
		}
	}
}

// X returns a copy of the x values.
func (s ObservationSet) X() []float64 {
	xs := make([]float64, len(s.obs))
	for i, o := range s.obs {
		xs[i] = o.X
	}
	return xs
}

// Y returns a copy of the y values.
func (s ObservationSet) Y() []float64 {
	ys := make([]float64, len(s.obs))
	for i, o := range s.obs {
		ys[i] = o.Y
	}
	return ys
}

// Model is a fitted line y = intercept + slope*x.
type Model struct {
	intercept   float64
	slope       float64
	xMean       float64
	yMean       float64
	predictions []float64
}

// Fit estimates intercept and slope by ordinary least squares, solving the
// normal equation (XᵀX)θ = Xᵀy for the design matrix X = [1 x].
func Fit(set ObservationSet) (*Model, error) {
	n := set.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInsufficientData, n)
	}

	distinct := false
	x0 := set.obs[0].X
	for i, o := range set.obs {
		if math.IsNaN(o.X) || math.IsInf(o.X, 0) || math.IsNaN(o.Y) || math.IsInf(o.Y, 0) {
			return nil, fmt.Errorf("%w: observation %d = (%v, %v)", ErrNonFinite, i, o.X, o.Y)
		}
		if o.X != x0 {
			distinct = true
		}
	}
	if !distinct {
		return nil, fmt.Errorf("%w: all %d x values equal %v", ErrDegenerateInput, n, x0)
	}

	// With x centred on its mean, XᵀX = diag(n, Sxx) and the 2x2 solve
	// reduces to slope = Sxy/Sxx without the cancellation of raw sums.
	var xm, ym float64
	for _, o := range set.obs {
		xm += o.X
		ym += o.Y
	}
	xm /= float64(n)
	ym /= float64(n)

	var sxx, sxy float64
	for _, o := range set.obs {
		dx := o.X - xm
		sxx += dx * dx
		sxy += dx * (o.Y - ym)
	}

	det := float64(n) * sxx
	if !(det > 0) || math.IsInf(det, 0) || math.IsInf(sxy, 0) {
		return nil, fmt.Errorf("%w: singular normal matrix (det = %g)", ErrDegenerateInput, det)
	}

	slope := sxy / sxx
	intercept := ym - slope*xm
	if math.IsInf(slope, 0) || math.IsNaN(slope) || math.IsInf(intercept, 0) || math.IsNaN(intercept) {
		return nil, fmt.Errorf("%w: slope %g, intercept %g", ErrDegenerateInput, slope, intercept)
	}

	m := &Model{
		intercept: intercept,
		slope:     slope,
		xMean:     xm,
		yMean:     ym,
	}
	m.predictions = make([]float64, n)
	for i, o := range set.obs {
		m.predictions[i] = m.Predict(o.X)
	}
	return m, nil
}

// Intercept returns θ[0].
func (m *Model) Intercept() float64 {
	return m.intercept
}

// Slope returns θ[1].
func (m *Model) Slope() float64 {
	return m.slope
}

// Predictions returns a copy of the fitted values, aligned with the input
// observations.
func (m *Model) Predictions() []float64 {
	return slices.Clone(m.predictions)
}

// Predict evaluates the fitted line at x. It is computed around the sample
// means, which the line passes through, so large x offsets keep precision.
func (m *Model) Predict(x float64) float64 {
	return m.yMean + m.slope*(x-m.xMean)
}

// Residuals returns y - ŷ for each observation in set.
func (m *Model) Residuals(set ObservationSet) []float64 {
	res := make([]float64, set.Len())
	for i, o := range set.obs {
		res[i] = o.Y - m.Predict(o.X)
	}
	return res
}

// MSE returns the mean squared residual over set, or ErrInsufficientData for
// an empty set.
func (m *Model) MSE(set ObservationSet) (float64, error) {
	if set.Len() == 0 {
		return 0, ErrInsufficientData
	}
	var sum float64
	for _, r := range m.Residuals(set) {
		sum += r * r
	}
	return sum / float64(set.Len()), nil
}

// RSquared returns the coefficient of determination over set.
// It is undefined when set is empty or every y is equal.
func (m *Model) RSquared(set ObservationSet) Score {
	if set.Len() == 0 {
		return Undefined()
	}

	var mean float64
	for _, o := range set.obs {
		mean += o.Y
	}
	mean /= float64(set.Len())

	var ssRes, ssTot float64
	for _, o := range set.obs {
		r := o.Y - m.Predict(o.X)
		ssRes += r * r
		dy := o.Y - mean
		ssTot += dy * dy
	}
	if ssTot == 0 {
		return Undefined()
	}
	return Defined(1 - ssRes/ssTot)
}

// String renders the fitted line.
func (m *Model) String() string {
	return fmt.Sprintf("y = %.4f + %.4f*x", m.intercept, m.slope)
}
