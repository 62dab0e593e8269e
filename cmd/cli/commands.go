package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqhypo/domain/sequence"
	"seqhypo/internal/errors"
	"seqhypo/internal/generator"
	"seqhypo/internal/verification"
)

func (a *cliApp) newGenerateCmd() *cobra.Command {
	var (
		length int
		start  int32
		policy string
		seed   int64
		step   sequence.StepConfig
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random non-decreasing source sequence and its midpoints",
		Long: `Generate a random non-decreasing sequence S and derive its midpoints M.

Policies:
  uniform  steps drawn from [min-step, max-step]
  even     only even steps, so every average is exact
  convex   steps grow by even increments; M satisfies the k+1 formula

Example: seqhypo generate --length 6 --start -50 --policy convex --base 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := sequence.ParseStepPolicy(policy)
			if err != nil {
				return err
			}
			cfg := sequence.DefaultStepConfig(p)
			flags := cmd.Flags()
			if flags.Changed("min-step") {
				cfg.MinStep = step.MinStep
			}
			if flags.Changed("max-step") {
				cfg.MaxStep = step.MaxStep
			}
			if flags.Changed("base") {
				cfg.Base = step.Base
			}
			if flags.Changed("max-increment") {
				cfg.MaxIncrement = step.MaxIncrement
			}

			stream, err := a.deps.RNG.SeededStream(cmd.Context(), "generate", seed)
			if err != nil {
				return err
			}
			s, err := generator.New(stream).Generate(length, start, cfg)
			if err != nil {
				return err
			}
			m, err := sequence.Derive(s)
			if err != nil && len(s) > 1 {
				return err
			}
			a.logger.Debug("sequence generated", zap.String("policy", string(p)), zap.Int64("seed", seed), zap.Int("length", len(s)))

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string]interface{}{
					"sequence":  s,
					"midpoints": m,
					"exact":     sequence.IsExact(s),
					"step":      cfg,
					"seed":      seed,
				})
			}
			fmt.Fprintf(out, "S: %s\n", s)
			fmt.Fprintf(out, "M: %s\n", m)
			fmt.Fprintf(out, "exact: %t\n", sequence.IsExact(s))
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 6, "Length of S")
	cmd.Flags().Int32Var(&start, "start", 0, "First element of S")
	cmd.Flags().StringVar(&policy, "policy", string(sequence.StepConvex), "Step policy: uniform|even|convex")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().Int32Var(&step.MinStep, "min-step", 0, "Smallest step (uniform, even)")
	cmd.Flags().Int32Var(&step.MaxStep, "max-step", 10, "Largest step (uniform, even)")
	cmd.Flags().Int32Var(&step.Base, "base", 4, "First step, must be even (convex)")
	cmd.Flags().Int32Var(&step.MaxIncrement, "max-increment", 2, "Increments are 2*[0, max-increment] (convex)")
	return cmd
}

func (a *cliApp) newDeriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive [values]",
		Short: "Compute the midpoints of a sequence",
		Long: `Compute M[i] = trunc((S[i] + S[i+1]) / 2) for a sequence S.

Example: seqhypo derive 0,2,4,6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sequence.ParseValues(args[0])
			if err != nil {
				return err
			}
			s := sequence.Sequence(values)
			m, err := sequence.Derive(s)
			if err != nil {
				return err
			}
			if !s.IsNonDecreasing() {
				a.logger.Warn("sequence is not non-decreasing", zap.Stringer("sequence", s))
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string]interface{}{"midpoints": m, "exact": sequence.IsExact(s)})
			}
			fmt.Fprintln(out, m)
			return nil
		},
	}
}

func (a *cliApp) newReconstructCmd() *cobra.Command {
	var s1 int32

	cmd := &cobra.Command{
		Use:   "reconstruct [midpoints]",
		Short: "Rebuild the sequence fixed by midpoints and a first element",
		Long: `Apply S[i+1] = 2*M[i] - S[i] from S[0] = s1 and check the result is
non-decreasing and within the 32-bit range.

Example: seqhypo reconstruct 1,2,3,4,5 --s1 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sequence.ParseValues(args[0])
			if err != nil {
				return err
			}
			s, err := sequence.Reconstruct(sequence.Midpoints(values), s1)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string]interface{}{"sequence": s})
			}
			fmt.Fprintln(out, s)
			return nil
		},
	}

	cmd.Flags().Int32Var(&s1, "s1", 0, "First element of the sequence")
	return cmd
}

func (a *cliApp) newEnumerateCmd() *cobra.Command {
	var (
		wf    windowFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "enumerate [midpoints]",
		Short: "List every valid sequence whose first element lies in a window",
		Long: `Probe every s1 in the window and list the sequences that reconstruct
successfully, in ascending order of s1.

Example: seqhypo enumerate 1,2,3,4,5 --min -10 --max 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sequence.ParseValues(args[0])
			if err != nil {
				return err
			}
			m := sequence.Midpoints(values)
			w, err := wf.resolve(cmd, m, a.cfg.Battery.WindowRadius)
			if err != nil {
				return err
			}

			res, err := a.deps.Enumerator.EnumerateParallel(cmd.Context(), m, w)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, map[string]interface{}{
					"window":    w,
					"count":     len(res.Solutions),
					"solutions": res.Solutions,
					"probes":    res.Probes,
				})
			}
			fmt.Fprintf(out, "window %s: %d solution(s)\n", w, len(res.Solutions))
			for i, s := range res.Solutions {
				if limit > 0 && i >= limit {
					fmt.Fprintf(out, "... and %d more\n", len(res.Solutions)-limit)
					break
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	wf.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum solutions to print (0 = all)")
	return cmd
}

func (a *cliApp) newIntervalCmd() *cobra.Command {
	var margin int64

	cmd := &cobra.Command{
		Use:   "interval [midpoints]",
		Short: "Compute the exact range of valid first elements without enumerating",
		Long: `Solve the reconstruction constraints for s1 directly. The result is the
closed interval of first elements that produce a valid sequence, or empty.

Example: seqhypo interval 2,4,7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := sequence.ParseValues(args[0])
			if err != nil {
				return err
			}
			m := sequence.Midpoints(values)
			iv, ok := verification.SolutionInterval(m)
			k, kOK := verification.ComputeK(m)

			out := cmd.OutOrStdout()
			if a.jsonOut {
				result := map[string]interface{}{"empty": !ok}
				if ok {
					result["interval"] = iv
					result["count"] = iv.Size()
					suggested, _ := verification.SuggestWindow(m, margin)
					result["suggested_window"] = suggested
				}
				if kOK {
					result["k"] = k
					result["predicted"] = k + 1
				}
				return writeJSON(out, result)
			}
			if !ok {
				fmt.Fprintln(out, "interval: empty")
			} else {
				fmt.Fprintf(out, "interval: %s (%d value(s))\n", iv, iv.Size())
			}
			if kOK {
				fmt.Fprintf(out, "k: %d, predicted: %d\n", k, k+1)
			} else {
				fmt.Fprintln(out, "k: undefined")
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&margin, "margin", 1, "Margin for the suggested probe window (JSON output)")
	return cmd
}

// windowFlags selects the probe window: explicit --min/--max, the analytic
// interval padded by --radius with --auto, or M[0] ± radius otherwise.
type windowFlags struct {
	min, max int32
	radius   int64
	auto     bool
}

func (wf *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int32Var(&wf.min, "min", 0, "Smallest first element to probe")
	cmd.Flags().Int32Var(&wf.max, "max", 0, "Largest first element to probe")
	cmd.Flags().Int64Var(&wf.radius, "radius", 0, "Probe M[0] ± radius (default SEQHYPO_WINDOW_RADIUS)")
	cmd.Flags().BoolVar(&wf.auto, "auto", false, "Probe the analytic solution interval padded by radius")
	cmd.MarkFlagsRequiredTogether("min", "max")
	cmd.MarkFlagsMutuallyExclusive("min", "auto")
}

func (wf *windowFlags) resolve(cmd *cobra.Command, m sequence.Midpoints, defaultRadius int64) (sequence.Window, error) {
	if cmd.Flags().Changed("min") {
		return sequence.NewWindow(wf.min, wf.max)
	}
	radius := defaultRadius
	if cmd.Flags().Changed("radius") {
		if wf.radius < 0 {
			return sequence.Window{}, errors.InvalidInput("radius must be non-negative")
		}
		radius = wf.radius
	}
	if wf.auto {
		if w, ok := verification.SuggestWindow(m, radius); ok {
			return w, nil
		}
	}
	var center int32
	if len(m) > 0 {
		center = m[0]
	}
	return sequence.WindowAround(center, radius), nil
}

// loadMidpoints reads the positional array or, with --input, every array in
// a .csv/.xlsx file
func (a *cliApp) loadMidpoints(ctx context.Context, args []string, input, sheet string) ([]sequence.NamedMidpoints, error) {
	if input != "" {
		arrays, err := a.deps.MidpointSource(input, sheet).ReadMidpoints(ctx)
		if err != nil {
			return nil, errors.IOError(input, err)
		}
		return arrays, nil
	}
	if len(args) != 1 {
		return nil, errors.InvalidInput("pass a midpoint array or --input")
	}
	values, err := sequence.ParseValues(args[0])
	if err != nil {
		return nil, err
	}
	return []sequence.NamedMidpoints{{Name: "input", Values: values}}, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func joinStrings[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
