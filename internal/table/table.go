// Package table reads and writes the two-column metrics table
// ("Metric,Value") and score files consumed by the sweep.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	evalfit "github.com/jamesainslie/go-evalfit"
)

// Row names used in the metrics table.
const (
	RowTruePositive  = "True Positive"
	RowTrueNegative  = "True Negative"
	RowFalsePositive = "False Positive"
	RowFalseNegative = "False Negative"
	RowPrecision     = "Precision"
	RowRecall        = "Recall"
	RowF1            = "F1-Score"
)

var header = []string{"Metric", "Value"}

var (
	// ErrMissingRow indicates a required count row is absent.
	ErrMissingRow = errors.New("table: missing row")

	// ErrDuplicateRow indicates a count row appears more than once.
	ErrDuplicateRow = errors.New("table: duplicate row")

	// ErrInvalidValue indicates a value that cannot be parsed.
	ErrInvalidValue = errors.New("table: invalid value")
)

// ReadCounts parses the four confusion counts from a metrics table.
// Rows other than the counts are ignored.
func ReadCounts(r io.Reader) (evalfit.ConfusionCounts, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return evalfit.ConfusionCounts{}, fmt.Errorf("reading metrics table: %w", err)
	}

	var c evalfit.ConfusionCounts
	targets := map[string]*int{
		RowTruePositive:  &c.TP,
		RowTrueNegative:  &c.TN,
		RowFalsePositive: &c.FP,
		RowFalseNegative: &c.FN,
	}
	seen := make(map[string]bool, len(targets))

	for i, rec := range records {
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		dst, ok := targets[name]
		if !ok {
			continue
		}
		if seen[name] {
			return evalfit.ConfusionCounts{}, fmt.Errorf("%w: %q on line %d", ErrDuplicateRow, name, i+1)
		}
		seen[name] = true

		n, err := parseCount(rec[1])
		if err != nil {
			return evalfit.ConfusionCounts{}, fmt.Errorf("%q on line %d: %w", name, i+1, err)
		}
		*dst = n
	}

	for _, name := range []string{RowTruePositive, RowTrueNegative, RowFalsePositive, RowFalseNegative} {
		if !seen[name] {
			return evalfit.ConfusionCounts{}, fmt.Errorf("%w: %q", ErrMissingRow, name)
		}
	}

	if err := c.Validate(); err != nil {
		return evalfit.ConfusionCounts{}, err
	}
	return c, nil
}

// parseCount accepts integers and integral floats such as "12.0".
// Values outside the int range are rejected rather than converted.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a count", ErrInvalidValue, s)
	}
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, fmt.Errorf("%w: %q overflows a count", ErrInvalidValue, s)
	}
	return int(f), nil
}

// WriteMetrics writes counts and derived metrics as a metrics table.
// Undefined metrics are written as "undefined".
func WriteMetrics(w io.Writer, c evalfit.ConfusionCounts, m evalfit.DerivedMetrics) error {
	cw := csv.NewWriter(w)
	rows := [][]string{
		header,
		{RowTruePositive, strconv.Itoa(c.TP)},
		{RowTrueNegative, strconv.Itoa(c.TN)},
		{RowFalsePositive, strconv.Itoa(c.FP)},
		{RowFalseNegative, strconv.Itoa(c.FN)},
		{RowPrecision, m.Precision.String()},
		{RowRecall, m.Recall.String()},
		{RowF1, m.F1.String()},
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing metrics table: %w", err)
	}
	return nil
}
