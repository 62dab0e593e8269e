package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seqhypo/domain/core"
	"seqhypo/domain/hypothesis"
	"seqhypo/internal/errors"
)

type namedReport struct {
	Name   string             `json:"name"`
	Report *hypothesis.Report `json:"report"`
}

func (a *cliApp) newVerifyCmd() *cobra.Command {
	var (
		wf    windowFlags
		input string
		sheet string
	)

	cmd := &cobra.Command{
		Use:   "verify [midpoints]",
		Short: "Check the k+1 count formula against exhaustive enumeration",
		Long: `Enumerate every valid sequence for the window, compute k as the smallest
adjacent gap of M and compare k+1 with the number of solutions found.

Arrays come from the positional argument or, with --input, from every row of
a .csv/.xlsx file (name in the first column, values after it).

Example:
  seqhypo verify 1,2,3,4,5 --min -10 --max 10
  seqhypo verify --input midpoints.xlsx --auto --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			arrays, err := a.loadMidpoints(ctx, args, input, sheet)
			if err != nil {
				return err
			}

			v := a.deps.Verifier
			reports := make([]namedReport, 0, len(arrays))
			for _, arr := range arrays {
				w, err := wf.resolve(cmd, arr.Values, a.cfg.Battery.WindowRadius)
				if err != nil {
					return err
				}
				report, err := v.Verify(ctx, arr.Values, w)
				if err != nil && !core.IsUndefinedHypothesis(err) {
					return errors.Wrapf(err, "verify %s", arr.Name)
				}
				reports = append(reports, namedReport{Name: arr.Name, Report: report})
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				if input == "" {
					return writeJSON(out, reports[0].Report)
				}
				return writeJSON(out, reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printReport(out, r.Name, r.Report)
			}
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().StringVar(&input, "input", "", "Read midpoint arrays from a .csv or .xlsx file")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from an .xlsx input (default: first)")
	return cmd
}

func printReport(out io.Writer, name string, r *hypothesis.Report) {
	fmt.Fprintf(out, "=== %s (%s) ===\n", name, r.Fingerprint.Short())
	fmt.Fprintf(out, "M:         %s\n", r.Midpoints)
	fmt.Fprintf(out, "window:    %s\n", r.Window)
	if r.IsUndefined() {
		fmt.Fprintln(out, "k:         undefined (fewer than two midpoints)")
	} else {
		fmt.Fprintf(out, "k:         %d\n", *r.K)
		fmt.Fprintf(out, "predicted: %d\n", *r.Predicted)
	}
	fmt.Fprintf(out, "actual:    %d\n", r.Actual)
	if r.FirstS1 != nil {
		fmt.Fprintf(out, "s1 range:  [%d, %d]\n", *r.FirstS1, *r.LastS1)
		fmt.Fprintf(out, "first:     %s\n", r.FirstSolution)
		fmt.Fprintf(out, "last:      %s\n", r.LastSolution)
	}
	if iv := r.AnalyticInterval; iv != nil {
		fmt.Fprintf(out, "interval:  %s\n", *iv)
		if !r.Window.Covers(*iv) {
			fmt.Fprintln(out, "note:      window does not cover the interval; try --auto")
		}
	} else {
		fmt.Fprintln(out, "interval:  empty")
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(out, "warnings:  %s\n", joinStrings(r.Warnings))
	}
	fmt.Fprintf(out, "verdict:   %s (%s)\n", r.Verdict.Status, r.Verdict.Reason)
}
