package report

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	evalfit "github.com/jamesainslie/go-evalfit"
)

var marshalOpts = protojson.MarshalOptions{Multiline: true, Indent: "  "}

// scoreValue maps an undefined score to JSON null.
func scoreValue(s evalfit.Score) any {
	if v, ok := s.Value(); ok {
		return v
	}
	return nil
}

// MetricsStruct builds the metrics report as a protobuf Struct.
func MetricsStruct(c evalfit.ConfusionCounts, m evalfit.DerivedMetrics) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(map[string]any{
		"counts": map[string]any{
			"true_positive":  c.TP,
			"true_negative":  c.TN,
			"false_positive": c.FP,
			"false_negative": c.FN,
		},
		"precision":  scoreValue(m.Precision),
		"recall":     scoreValue(m.Recall),
		"f1_score":   scoreValue(m.F1),
		"accuracy":   scoreValue(c.Accuracy()),
		"error_rate": scoreValue(c.ErrorRate()),
	})
	if err != nil {
		return nil, fmt.Errorf("building metrics report: %w", err)
	}
	return s, nil
}

// MetricsJSON encodes the metrics report. Undefined metrics are null.
func MetricsJSON(c evalfit.ConfusionCounts, m evalfit.DerivedMetrics) ([]byte, error) {
	s, err := MetricsStruct(c, m)
	if err != nil {
		return nil, err
	}
	return marshalOpts.Marshal(s)
}

// FitStruct builds the regression report as a protobuf Struct.
func FitStruct(set evalfit.ObservationSet, m *evalfit.Model) (*structpb.Struct, error) {
	preds := m.Predictions()
	list := make([]any, len(preds))
	for i, p := range preds {
		list[i] = p
	}

	var mse any
	if v, err := m.MSE(set); err == nil {
		mse = v
	}

	s, err := structpb.NewStruct(map[string]any{
		"intercept":   m.Intercept(),
		"slope":       m.Slope(),
		"samples":     set.Len(),
		"mse":         mse,
		"r_squared":   scoreValue(m.RSquared(set)),
		"predictions": list,
	})
	if err != nil {
		return nil, fmt.Errorf("building fit report: %w", err)
	}
	return s, nil
}

// FitJSON encodes the regression report.
func FitJSON(set evalfit.ObservationSet, m *evalfit.Model) ([]byte, error) {
	s, err := FitStruct(set, m)
	if err != nil {
		return nil, err
	}
	return marshalOpts.Marshal(s)
}
