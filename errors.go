package evalfit

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUndefinedMetric indicates a metric whose denominator is zero.
	ErrUndefinedMetric = errors.New("evalfit: undefined metric")

	// ErrDegenerateInput indicates observations whose x values have zero variance.
	ErrDegenerateInput = errors.New("evalfit: degenerate input")

	// ErrInsufficientData indicates fewer than two observations.
	ErrInsufficientData = errors.New("evalfit: insufficient data")

	// ErrNegativeCount indicates a confusion count below zero.
	ErrNegativeCount = errors.New("evalfit: negative count")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("evalfit: length mismatch")

	// ErrNonFinite indicates a NaN or infinite observation.
	ErrNonFinite = errors.New("evalfit: non-finite value")
)
