package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jamesainslie/go-evalfit/internal/bench"
)

// ReadScores parses "score,label" rows. A first row whose score does not parse
// is treated as a header. Labels may be 0/1 or true/false.
func ReadScores(r io.Reader) ([]bench.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var samples []bench.Sample
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading scores: %w", err)
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("%w: score %q on line %d", ErrInvalidValue, rec[0], line)
		}
		label, err := strconv.ParseBool(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: label %q on line %d", ErrInvalidValue, rec[1], line)
		}

		samples = append(samples, bench.Sample{Score: score, Actual: label})
	}
	return samples, nil
}
