// Package report renders evaluation and regression results for terminals and
// encodes them as JSON.
package report

import (
	evalfit "github.com/jamesainslie/go-evalfit"
)

// Heatmap lays out counts with rows for the actual class and columns for the
// predicted class, positive first:
//
//	               Predicted +   Predicted -
//	  Actual +         TP            FN
//	  Actual -         FP            TN
func Heatmap(c evalfit.ConfusionCounts) [2][2]int {
	return [2][2]int{
		{c.TP, c.FN},
		{c.FP, c.TN},
	}
}

var (
	heatmapRows = [2]string{"Actual +", "Actual -"}
	heatmapCols = [2]string{"Predicted +", "Predicted -"}
)

// shades runs from light to dark blue (ANSI 256).
var shades = []string{"195", "153", "111", "69", "27"}

// shade picks a palette index proportional to v/peak.
func shade(v, peak int) int {
	if peak <= 0 {
		return 0
	}
	i := v * (len(shades) - 1) / peak
	return min(max(i, 0), len(shades)-1)
}
