package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	evalfit "github.com/jamesainslie/go-evalfit"
	"github.com/jamesainslie/go-evalfit/internal/bench"
)

const barWidth = 30

// RenderMetrics writes the confusion heatmap followed by a bar chart of the
// derived metrics. Undefined metrics are flagged instead of drawn.
func RenderMetrics(w io.Writer, c evalfit.ConfusionCounts, m evalfit.DerivedMetrics) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(title.Render("Confusion Matrix"))
	b.WriteString("\n")
	b.WriteString(renderHeatmap(r, c))
	b.WriteString("\n\n")
	b.WriteString(title.Render("Derived Metrics"))
	b.WriteString("\n")
	b.WriteString(renderBars(r, []namedScore{
		{"Precision", m.Precision},
		{"Recall", m.Recall},
		{"F1-Score", m.F1},
		{"Accuracy", c.Accuracy()},
		{"Error Rate", c.ErrorRate()},
	}))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderHeatmap(r *lipgloss.Renderer, c evalfit.ConfusionCounts) string {
	grid := Heatmap(c)
	peak := max(grid[0][0], grid[0][1], grid[1][0], grid[1][1])

	label := r.NewStyle().Width(10)
	head := r.NewStyle().Width(13).Align(lipgloss.Center).Bold(true)

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, label.Render(""), head.Render(heatmapCols[0]), head.Render(heatmapCols[1])),
	}
	for i, row := range grid {
		cells := []string{label.Render(heatmapRows[i])}
		for _, v := range row {
			idx := shade(v, peak)
			fg := "0"
			if idx >= 3 {
				fg = "15"
			}
			cell := r.NewStyle().
				Width(13).
				Align(lipgloss.Center).
				Background(lipgloss.Color(shades[idx])).
				Foreground(lipgloss.Color(fg)).
				Render(strconv.Itoa(v))
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

type namedScore struct {
	name  string
	score evalfit.Score
}

func renderBars(r *lipgloss.Renderer, scores []namedScore) string {
	label := r.NewStyle().Width(12)
	bar := r.NewStyle().Foreground(lipgloss.Color("33"))
	flag := r.NewStyle().Foreground(lipgloss.Color("208")).Italic(true)

	lines := make([]string, 0, len(scores))
	for _, s := range scores {
		v, ok := s.score.Value()
		if !ok {
			lines = append(lines, label.Render(s.name)+flag.Render("undefined"))
			continue
		}
		n := int(math.Round(v * barWidth))
		lines = append(lines, fmt.Sprintf("%s%s%s %.4f",
			label.Render(s.name),
			bar.Render(strings.Repeat("█", n)),
			strings.Repeat(" ", barWidth-n),
			v,
		))
	}
	return strings.Join(lines, "\n")
}

// RenderSweep writes the top results of a threshold sweep as a table.
// A non-positive top writes every result.
func RenderSweep(w io.Writer, results []bench.Result, cfg bench.Config, top int) error {
	r := lipgloss.NewRenderer(w)
	head := r.NewStyle().Bold(true)

	if top <= 0 || top > len(results) {
		top = len(results)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", head.Render(fmt.Sprintf("Threshold Sweep (wp=%.1f, wr=%.1f)", cfg.PrecisionWeight, cfg.RecallWeight)))
	b.WriteString(strings.Repeat("-", 58) + "\n")
	fmt.Fprintf(&b, "%-10s %-10s %-10s %-10s %-10s\n", "Thresh", "Prec", "Rec", "F1", "Weighted")
	for _, res := range results[:top] {
		fmt.Fprintf(&b, "%-10.3f %-10s %-10s %-10s %-10s\n",
			res.Threshold,
			short(res.Metrics.Precision),
			short(res.Metrics.Recall),
			short(res.Metrics.F1),
			short(res.WeightedScore),
		)
	}
	b.WriteString(strings.Repeat("-", 58) + "\n")
	if len(results) > 0 && results[0].WeightedScore.IsDefined() {
		v, _ := results[0].WeightedScore.Value()
		fmt.Fprintf(&b, "Optimal: %.3f (Weighted: %.4f)\n", results[0].Threshold, v)
	} else {
		b.WriteString("Optimal: none (no threshold has a defined score)\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func short(s evalfit.Score) string {
	if v, ok := s.Value(); ok {
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "-"
}
