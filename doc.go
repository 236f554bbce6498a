// Package evalfit provides the numeric core for two small analysis tools:
// binary classifier evaluation and simple linear regression.
//
// # Classifier Metrics
//
//	counts, err := evalfit.NewConfusionCounts(40, 50, 5, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := evalfit.ComputeMetrics(counts)
//	if p, ok := m.Precision.Value(); ok {
//	    fmt.Printf("precision: %.3f\n", p)
//	}
//
// A metric whose denominator is zero is reported as an undefined Score rather
// than NaN or zero, so "no positive predictions" stays distinguishable from
// "zero precision".
//
// # Linear Regression
//
//	set := evalfit.NewObservationSet(
//	    evalfit.Observation{X: 1, Y: 3},
//	    evalfit.Observation{X: 2, Y: 5},
//	)
//	model, err := evalfit.Fit(set)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(model.Intercept(), model.Slope())
//
// Fit solves the normal equation in closed form. It returns ErrInsufficientData
// for fewer than two observations and ErrDegenerateInput when every x is equal.
//
// # Thread Safety
//
// All functions are pure and every value type is immutable once built, so
// everything in this package is safe for concurrent use.
package evalfit
