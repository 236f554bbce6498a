package main

import (
	"fmt"

	"github.com/spf13/cobra"

	evalfit "github.com/jamesainslie/go-evalfit"
	"github.com/jamesainslie/go-evalfit/internal/report"
	"github.com/jamesainslie/go-evalfit/internal/synth"
)

func newRegressCmd(a *app) *cobra.Command {
	var (
		seed             uint64
		samples          int
		slope, intercept float64
		noise, xMax      float64
		asJSON, plot     bool
		width, height    int
	)

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a line to a synthetic noisy sample with the normal equation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := a.cfg.Regression
			flags := cmd.Flags()
			if flags.Changed("seed") {
				rc.Seed = seed
			}
			if flags.Changed("samples") {
				rc.Samples = samples
			}
			if flags.Changed("slope") {
				rc.Slope = slope
			}
			if flags.Changed("intercept") {
				rc.Intercept = intercept
			}
			if flags.Changed("noise") {
				rc.Noise = noise
			}
			if flags.Changed("xmax") {
				rc.XMax = xMax
			}
			if flags.Changed("width") {
				rc.PlotWidth = width
			}
			if flags.Changed("height") {
				rc.PlotHeight = height
			}

			set, err := synth.Generate(
				synth.WithSeed(rc.Seed),
				synth.WithSamples(rc.Samples),
				synth.WithLine(rc.Slope, rc.Intercept),
				synth.WithNoise(rc.Noise),
				synth.WithXMax(rc.XMax),
				synth.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			s := synth.Summarize(set)
			a.logger.Debug("sample summary",
				"n", s.N,
				"x_mean", s.X.Mean, "x_stddev", s.X.StdDev,
				"y_mean", s.Y.Mean, "y_stddev", s.Y.StdDev,
			)

			m, err := evalfit.Fit(set)
			if err != nil {
				return fmt.Errorf("fitting sample: %w", err)
			}
			a.logger.Debug("fitted line", "model", m.String())

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := report.FitJSON(set, m)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			if !plot {
				return report.RenderFit(out, set, m, 0, 0)
			}
			return report.RenderFit(out, set, m, rc.PlotWidth, rc.PlotHeight)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed")
	cmd.Flags().IntVarP(&samples, "samples", "n", 100, "Number of observations")
	cmd.Flags().Float64Var(&slope, "slope", 2.5, "True slope")
	cmd.Flags().Float64Var(&intercept, "intercept", 0, "True intercept")
	cmd.Flags().Float64Var(&noise, "noise", 2, "Noise standard deviation")
	cmd.Flags().Float64Var(&xMax, "xmax", 10, "Upper bound of x")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	cmd.Flags().BoolVar(&plot, "plot", true, "Draw a scatter plot with the fitted line")
	cmd.Flags().IntVar(&width, "width", 60, "Plot width in characters")
	cmd.Flags().IntVar(&height, "height", 20, "Plot height in characters")
	return cmd
}
