package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	evalfit "github.com/jamesainslie/go-evalfit"
)

// Plot glyphs.
const (
	PointGlyph = 'o'
	LineGlyph  = '.'
)

// Plot draws the observations and the fitted line on a width x height
// character grid, top row first. It returns nil for an empty set or a grid
// smaller than 2x2.
func Plot(set evalfit.ObservationSet, m *evalfit.Model, width, height int) []string {
	if set.Len() == 0 || width < 2 || height < 2 {
		return nil
	}

	xs, ys := set.X(), set.Y()
	preds := m.Predictions()

	xMin, xMax := floats.Min(xs), floats.Max(xs)
	yMin := math.Min(floats.Min(ys), floats.Min(preds))
	yMax := math.Max(floats.Max(ys), floats.Max(preds))
	if xMax == xMin {
		xMin, xMax = xMin-1, xMax+1
	}
	if yMax == yMin {
		yMin, yMax = yMin-1, yMax+1
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	row := func(y float64) int {
		return height - 1 - int(math.Round((y-yMin)/(yMax-yMin)*float64(height-1)))
	}
	col := func(x float64) int {
		return int(math.Round((x - xMin) / (xMax - xMin) * float64(width-1)))
	}

	for c := 0; c < width; c++ {
		x := xMin + float64(c)/float64(width-1)*(xMax-xMin)
		if r := row(m.Predict(x)); r >= 0 && r < height {
			grid[r][c] = LineGlyph
		}
	}
	for i := range xs {
		grid[row(ys[i])][col(xs[i])] = PointGlyph
	}

	lines := make([]string, height)
	for i, g := range grid {
		lines[i] = string(g)
	}
	return lines
}

// RenderFit writes the fitted parameters, fit diagnostics and, when width and
// height are positive, a scatter plot with the regression line.
func RenderFit(w io.Writer, set evalfit.ObservationSet, m *evalfit.Model, width, height int) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	point := r.NewStyle().Foreground(lipgloss.Color("27"))
	line := r.NewStyle().Foreground(lipgloss.Color("160"))

	var b strings.Builder
	b.WriteString(title.Render("Linear Regression"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Intercept (bias term): %.6f\n", m.Intercept())
	fmt.Fprintf(&b, "Slope: %.6f\n", m.Slope())
	if mse, err := m.MSE(set); err == nil {
		fmt.Fprintf(&b, "MSE: %.6f\n", mse)
	}
	fmt.Fprintf(&b, "R²: %s\n", m.RSquared(set))

	if width > 0 && height > 0 {
		b.WriteString("\n")
		for _, l := range Plot(set, m, width, height) {
			b.WriteString("|")
			for _, ch := range l {
				switch ch {
				case PointGlyph:
					b.WriteString(point.Render(string(ch)))
				case LineGlyph:
					b.WriteString(line.Render(string(ch)))
				default:
					b.WriteRune(ch)
				}
			}
			b.WriteString("\n")
		}
		b.WriteString("+" + strings.Repeat("-", width) + "\n")
		fmt.Fprintf(&b, " %s data points   %s regression line\n",
			point.Render(string(PointGlyph)), line.Render(string(LineGlyph)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
