package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqhypo/app"
	"seqhypo/domain/hypothesis"
	"seqhypo/internal/errors"
)

func (a *cliApp) newBatteryCmd() *cobra.Command {
	var (
		casesFile string
		xlsxOut   string
		seed      int64
		radius    int64
	)

	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Run the formula against a battery of generated sequences",
		Long: `Generate source sequences, derive their midpoints and verify each one.

Without --cases the built-in four-case convex battery runs. A case file is
YAML:

  seed: 42
  radius: 2000
  cases:
    - name: baseline
      n: 5
      start: 0
      step: {policy: convex, base: 4, max_increment: 2}

Example: seqhypo battery --cases cases.yaml --xlsx battery.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if !flags.Changed("seed") {
				seed = a.cfg.Battery.Seed
			}
			if flags.Changed("radius") {
				if radius < 0 {
					return errors.InvalidInput("radius must be non-negative")
				}
				a.deps.WithBatteryRadius(radius)
			}

			cases := app.DefaultCases(seed)
			if source := a.deps.CaseSource(casesFile); source != nil {
				loaded, err := source.LoadCases(ctx)
				if err != nil {
					return errors.Wrap(err, "failed to load battery cases")
				}
				cases = loaded
			}

			result, err := a.deps.Battery.Run(ctx, cases)
			if err != nil {
				return err
			}

			if sink := a.deps.ReportSink(xlsxOut); sink != nil {
				if err := sink.WriteBattery(ctx, result); err != nil {
					return errors.WithCode(errors.CodeIOError, err)
				}
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, result)
			}
			printBattery(out, result)
			a.logger.Debug("battery printed", zap.String("run_id", result.RunID.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&casesFile, "cases", "", "YAML case file (default SEQHYPO_CASES_FILE, else built-in cases)")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "Write the battery report to this .xlsx file")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Base seed for the built-in cases (default SEQHYPO_SEED)")
	cmd.Flags().Int64Var(&radius, "radius", 2000, "Probe radius around S[0] for cases without their own (default SEQHYPO_WINDOW_RADIUS)")
	return cmd
}

func printBattery(out io.Writer, result *hypothesis.BatteryResult) {
	fmt.Fprintf(out, "run %s\n\n", result.RunID)
	fmt.Fprintf(out, "%-18s %4s %24s %6s %9s %6s  %-12s %s\n", "case", "n", "window", "k", "predicted", "actual", "verdict", "warnings")
	for _, o := range result.Outcomes {
		if o.Report == nil {
			fmt.Fprintf(out, "%-18s %4d %24s %6s %9s %6s  %-12s %s\n", o.Case.Name, o.Case.N, "-", "-", "-", "-", "failed", o.Error)
			continue
		}
		r := o.Report
		k, predicted := "-", "-"
		if r.K != nil {
			k = fmt.Sprint(*r.K)
			predicted = fmt.Sprint(*r.Predicted)
		}
		fmt.Fprintf(out, "%-18s %4d %24s %6s %9s %6d  %-12s %s\n",
			o.Case.Name, o.Case.N, r.Window, k, predicted, r.Actual, r.Verdict.Status, joinStrings(r.Warnings))
	}

	s := result.Summary
	fmt.Fprintf(out, "\ntotal %d: %d match, %d mismatch, %d inconclusive, %d undefined, %d failed\n",
		s.Total, s.Matched, s.Mismatched, s.Inconclusive, s.Undefined, s.Failed)
	fmt.Fprintf(out, "match rate %.2f, mean k %.2f, median k %.2f, mean actual %.2f\n", s.MatchRate, s.MeanK, s.MedianK, s.MeanActual)
	if s.Correlation != nil {
		fmt.Fprintf(out, "correlation(predicted, actual) %.3f\n", *s.Correlation)
	}
}
