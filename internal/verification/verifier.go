// Package verification checks the closed-form predictor k against brute
// force. k is the smallest adjacent difference of M; the hypothesis is that
// exactly k+1 first elements reconstruct a non-decreasing sequence.
package verification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seqhypo/domain/core"
	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
	"seqhypo/domain/verdict"
	"seqhypo/internal/enumeration"
	"seqhypo/ports"
)

var _ ports.VerifierPort = (*Verifier)(nil)

const (
	DefaultSampleSize        = 3
	DefaultParallelThreshold = 100000
)

// Verifier runs verifications. It holds no per-call state and is safe for
// concurrent use.
type Verifier struct {
	enumerator        *enumeration.Enumerator
	logger            *zap.Logger
	sampleSize        int
	parallelThreshold int64
}

// Option configures a Verifier
type Option func(*Verifier)

// WithEnumerator replaces the default enumerator
func WithEnumerator(e *enumeration.Enumerator) Option {
	return func(v *Verifier) {
		if e != nil {
			v.enumerator = e
		}
	}
}

// WithLogger sets the logger that receives every attached warning
func WithLogger(logger *zap.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithSampleSize bounds how many leading solutions are copied into the report
func WithSampleSize(n int) Option {
	return func(v *Verifier) {
		if n >= 0 {
			v.sampleSize = n
		}
	}
}

// WithParallelThreshold sets the window size from which the partitioned
// scan is used; n <= 0 disables it.
func WithParallelThreshold(n int64) Option {
	return func(v *Verifier) {
		v.parallelThreshold = n
	}
}

// NewVerifier creates a verifier
func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{
		logger:            zap.NewNop(),
		sampleSize:        DefaultSampleSize,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.enumerator == nil {
		v.enumerator = enumeration.New(enumeration.WithLogger(v.logger))
	}
	return v
}

// Verify checks M over [s1Min, s1Max] with default settings.
func Verify(m sequence.Midpoints, s1Min, s1Max int32) (*hypothesis.Report, error) {
	w, err := sequence.NewWindow(s1Min, s1Max)
	if err != nil {
		return nil, err
	}
	return NewVerifier().Verify(context.Background(), m, w)
}

// ComputeK returns min over i >= 1 of M[i] - M[i-1]. ok is false when M has
// fewer than two elements and k is undefined.
func ComputeK(m sequence.Midpoints) (k int64, ok bool) {
	if len(m) < 2 {
		return 0, false
	}
	k = int64(m[1]) - int64(m[0])
	for i := 2; i < len(m); i++ {
		if d := int64(m[i]) - int64(m[i-1]); d < k {
			k = d
		}
	}
	return k, true
}

// Verify enumerates w, computes k and compares k+1 with the solution count.
//
// For |M| < 2 the returned report has verdict undefined, nil K, Predicted
// and Match, and the error wraps core.ErrUndefinedHypothesis; the report is
// still returned so callers can inspect the enumeration. A count mismatch is
// not an error. The window is never widened.
func (v *Verifier) Verify(ctx context.Context, m sequence.Midpoints, w sequence.Window) (*hypothesis.Report, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	res, err := v.enumerate(ctx, m, w)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", w, err)
	}

	report := &hypothesis.Report{
		ID:          core.NewReportID(),
		Fingerprint: m.Hash(),
		Midpoints:   m.Clone(),
		Window:      w,
		Actual:      len(res.Solutions),
		Probes:      res.Probes,
		CreatedAt:   core.Now(),
	}
	v.fillSolutions(report, res.Solutions)
	if iv, ok := SolutionInterval(m); ok {
		report.AnalyticInterval = &iv
	}

	insufficient := windowInsufficient(report)
	if insufficient {
		report.Warnings = append(report.Warnings, hypothesis.WarningInsufficientWindow)
	}

	k, ok := ComputeK(m)
	if !ok {
		report.Verdict = verdict.Undefined()
		v.logWarnings(report)
		v.logger.Warn("hypothesis undefined",
			zap.String("fingerprint", report.Fingerprint.Short()),
			zap.Int("midpoints", len(m)),
			zap.Int("actual", report.Actual),
		)
		return report, fmt.Errorf("verify %d midpoints: %w", len(m), core.ErrUndefinedHypothesis)
	}

	if k < 0 {
		report.Warnings = append(report.Warnings, hypothesis.WarningNonMonotoneMidpoints)
	}
	predicted := k + 1
	match := predicted == int64(report.Actual)
	report.K = &k
	report.Predicted = &predicted
	report.Match = &match
	report.Verdict = verdict.Decide(match, insufficient)

	v.logWarnings(report)
	v.logger.Debug("verification complete",
		zap.String("fingerprint", report.Fingerprint.Short()),
		zap.Int64("k", k),
		zap.Int64("predicted", predicted),
		zap.Int("actual", report.Actual),
		zap.Stringer("verdict", report.Verdict),
	)
	return report, nil
}

func (v *Verifier) enumerate(ctx context.Context, m sequence.Midpoints, w sequence.Window) (*enumeration.Result, error) {
	if v.parallelThreshold > 0 && w.Size() >= v.parallelThreshold {
		return v.enumerator.EnumerateParallel(ctx, m, w)
	}
	return v.enumerator.Enumerate(m, w)
}

func (v *Verifier) fillSolutions(report *hypothesis.Report, solutions []sequence.Sequence) {
	if len(solutions) == 0 {
		return
	}
	first, last := solutions[0], solutions[len(solutions)-1]
	firstS1, lastS1 := first[0], last[0]
	report.FirstS1 = &firstS1
	report.LastS1 = &lastS1
	report.Width = int64(lastS1) - int64(firstS1) + 1
	report.FirstSolution = first
	report.LastSolution = last

	n := min(v.sampleSize, len(solutions))
	report.Samples = make([]sequence.Sequence, n)
	copy(report.Samples, solutions[:n])
}

// windowInsufficient: the solutions reach a window edge, so the true
// interval may continue outside it, or nothing was found although the
// analytic interval is non-empty.
func windowInsufficient(report *hypothesis.Report) bool {
	if report.FirstS1 != nil {
		return report.Window.TouchesBoundary(*report.FirstS1, *report.LastS1)
	}
	if report.AnalyticInterval == nil {
		return false
	}
	_, overlap := report.Window.Intersect(*report.AnalyticInterval)
	return !overlap
}

func (v *Verifier) logWarnings(report *hypothesis.Report) {
	for _, w := range report.Warnings {
		v.logger.Warn("verification warning",
			zap.String("warning", string(w)),
			zap.String("fingerprint", report.Fingerprint.Short()),
			zap.Stringer("window", report.Window),
		)
	}
}
