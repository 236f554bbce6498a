package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	evalfit "github.com/jamesainslie/go-evalfit"
	"github.com/jamesainslie/go-evalfit/internal/report"
	"github.com/jamesainslie/go-evalfit/internal/table"
)

func newMetricsCmd(a *app) *cobra.Command {
	var (
		file      string
		asJSON    bool
		writePath string
	)

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Report precision, recall and F1 from a metrics table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("file") {
				file = a.cfg.Metrics.Path
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening metrics table: %w", err)
			}
			defer func() { _ = f.Close() }() // Read-only; close error carries nothing

			counts, err := table.ReadCounts(f)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			m, err := evalfit.ComputeMetrics(counts)
			if err != nil {
				return err
			}

			a.logger.Debug("computed metrics", "file", file, "total", counts.Total())
			for _, s := range []struct {
				name  string
				score evalfit.Score
			}{
				{"precision", m.Precision},
				{"recall", m.Recall},
				{"f1", m.F1},
			} {
				if !s.score.IsDefined() {
					a.logger.Warn("metric undefined", "metric", s.name, "tp", counts.TP, "fp", counts.FP, "fn", counts.FN)
				}
			}

			if writePath != "" {
				if err := writeTable(writePath, counts, m); err != nil {
					return err
				}
				a.logger.Info("metrics saved", "path", writePath)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := report.MetricsJSON(counts, m)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			return report.RenderMetrics(out, counts, m)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "metrics.csv", "Metrics table (Metric,Value CSV)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of charts")
	cmd.Flags().StringVar(&writePath, "write", "", "Also write the completed metrics table to this path")
	return cmd
}

func writeTable(path string, c evalfit.ConfusionCounts, m evalfit.DerivedMetrics) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics table: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing metrics table: %w", cerr)
		}
	}()
	return table.WriteMetrics(f, c, m)
}
