package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-evalfit/internal/bench"
	"github.com/jamesainslie/go-evalfit/internal/report"
	"github.com/jamesainslie/go-evalfit/internal/table"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		file         string
		lo, hi, step float64
		wp, wr       float64
		limit, top   int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep decision thresholds over scored predictions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := a.cfg.Sweep
			flags := cmd.Flags()
			if flags.Changed("min") {
				sc.Min = lo
			}
			if flags.Changed("max") {
				sc.Max = hi
			}
			if flags.Changed("step") {
				sc.Step = step
			}
			if flags.Changed("wp") {
				sc.PrecisionWeight = wp
			}
			if flags.Changed("wr") {
				sc.RecallWeight = wr
			}
			if flags.Changed("limit") {
				sc.Limit = limit
			}
			if flags.Changed("top") {
				sc.Top = top
			}
			if err := sc.Validate(); err != nil {
				return err
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening scores: %w", err)
			}
			defer func() { _ = f.Close() }() // Read-only; close error carries nothing

			samples, err := table.ReadScores(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if len(samples) == 0 {
				return errors.New("no scored samples in " + file)
			}

			thresholds := bench.SweepThresholds(sc.Min, sc.Max, sc.Step)
			if len(thresholds) == 0 {
				return fmt.Errorf("threshold range [%v, %v) step %v yields no thresholds or more than %d",
					sc.Min, sc.Max, sc.Step, bench.MaxThresholds)
			}

			cfg := bench.Config{
				PrecisionWeight: sc.PrecisionWeight,
				RecallWeight:    sc.RecallWeight,
				Limit:           sc.Limit,
			}
			a.logger.Debug("starting sweep", "samples", len(samples), "thresholds", len(thresholds), "limit", cfg.Limit)

			results, err := bench.Sweep(cmd.Context(), samples, cfg, thresholds)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			return report.RenderSweep(cmd.OutOrStdout(), results, cfg, sc.Top)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Scores file (score,label CSV)")
	cmd.Flags().Float64Var(&lo, "min", 0.05, "Sweep minimum threshold")
	cmd.Flags().Float64Var(&hi, "max", 1.0, "Sweep maximum threshold (exclusive)")
	cmd.Flags().Float64Var(&step, "step", 0.05, "Sweep step size")
	cmd.Flags().Float64Var(&wp, "wp", 1.0, "Precision weight")
	cmd.Flags().Float64Var(&wr, "wr", 1.0, "Recall weight")
	cmd.Flags().IntVar(&limit, "limit", 4, "Maximum concurrent evaluations")
	cmd.Flags().IntVar(&top, "top", 10, "Rows to print (0 for all)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
