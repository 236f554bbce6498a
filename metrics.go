package evalfit

import (
	"fmt"
	"strconv"
)

// Score is a metric value that may be undefined.
// The zero Score is undefined.
type Score struct {
	value   float64
	defined bool
}

// Defined returns a Score holding v.
func Defined(v float64) Score {
	return Score{value: v, defined: true}
}

// Undefined returns a Score with no value.
func Undefined() Score {
	return Score{}
}

// Value returns the score and whether it is defined.
func (s Score) Value() (float64, bool) {
	return s.value, s.defined
}

// Float returns the score, or ErrUndefinedMetric if it has no value.
func (s Score) Float() (float64, error) {
	if !s.defined {
		return 0, ErrUndefinedMetric
	}
	return s.value, nil
}

// IsDefined reports whether the score holds a value.
func (s Score) IsDefined() bool {
	return s.defined
}

// String formats a defined score with six decimals, matching the metrics table.
func (s Score) String() string {
	if !s.defined {
		return "undefined"
	}
	return strconv.FormatFloat(s.value, 'f', 6, 64)
}

// ratio returns num/den, undefined when den is zero.
func ratio(num, den int) Score {
	if den == 0 {
		return Undefined()
	}
	return Defined(float64(num) / float64(den))
}

// ConfusionCounts is the 2x2 tally of a binary classifier's predictions.
type ConfusionCounts struct {
	TP int
	TN int
	FP int
	FN int
}

// NewConfusionCounts builds counts, rejecting negative values.
func NewConfusionCounts(tp, tn, fp, fn int) (ConfusionCounts, error) {
	c := ConfusionCounts{TP: tp, TN: tn, FP: fp, FN: fn}
	if err := c.Validate(); err != nil {
		return ConfusionCounts{}, err
	}
	return c, nil
}

// Validate returns ErrNegativeCount if any count is below zero.
func (c ConfusionCounts) Validate() error {
	switch {
	case c.TP < 0:
		return fmt.Errorf("%w: true positive = %d", ErrNegativeCount, c.TP)
	case c.TN < 0:
		return fmt.Errorf("%w: true negative = %d", ErrNegativeCount, c.TN)
	case c.FP < 0:
		return fmt.Errorf("%w: false positive = %d", ErrNegativeCount, c.FP)
	case c.FN < 0:
		return fmt.Errorf("%w: false negative = %d", ErrNegativeCount, c.FN)
	}
	return nil
}

// Total returns the number of classified instances.
func (c ConfusionCounts) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

// Accuracy returns (TP+TN)/Total, undefined for an empty tally.
func (c ConfusionCounts) Accuracy() Score {
	return ratio(c.TP+c.TN, c.Total())
}

// ErrorRate returns (FP+FN)/Total, undefined for an empty tally.
func (c ConfusionCounts) ErrorRate() Score {
	return ratio(c.FP+c.FN, c.Total())
}

// Tally counts predictions against actual labels, true meaning positive.
func Tally(predicted, actual []bool) (ConfusionCounts, error) {
	if len(predicted) != len(actual) {
		return ConfusionCounts{}, fmt.Errorf("%w: %d predictions, %d labels",
			ErrLengthMismatch, len(predicted), len(actual))
	}

	var c ConfusionCounts
	for i, p := range predicted {
		switch {
		case actual[i] && p:
			c.TP++
		case actual[i]:
			c.FN++
		case p:
			c.FP++
		default:
			c.TN++
		}
	}
	return c, nil
}

// DerivedMetrics holds the quality metrics derived from ConfusionCounts.
type DerivedMetrics struct {
	Precision Score
	Recall    Score
	F1        Score
}

// ComputeMetrics derives precision, recall and F1 from counts.
// A metric with a zero denominator is Undefined; the only error is
// ErrNegativeCount.
func ComputeMetrics(c ConfusionCounts) (DerivedMetrics, error) {
	if err := c.Validate(); err != nil {
		return DerivedMetrics{}, err
	}

	m := DerivedMetrics{
		Precision: ratio(c.TP, c.TP+c.FP),
		Recall:    ratio(c.TP, c.TP+c.FN),
	}

	p, pok := m.Precision.Value()
	r, rok := m.Recall.Value()
	if pok && rok && p+r > 0 {
		m.F1 = Defined(2 * p * r / (p + r))
	}

	return m, nil
}

// Weighted returns (wp*precision + wr*recall) / (wp + wr).
// It is undefined when either input is undefined or wp+wr is not positive.
func (m DerivedMetrics) Weighted(wp, wr float64) Score {
	p, pok := m.Precision.Value()
	r, rok := m.Recall.Value()
	if !pok || !rok || wp+wr <= 0 {
		return Undefined()
	}
	return Defined((wp*p + wr*r) / (wp + wr))
}
