// Package hypothesis defines the values the verifier and battery runner
// hand back to callers: verification reports, probe statistics, battery
// cases and their aggregated summary.
package hypothesis

import (
	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
	"seqhypo/domain/verdict"
)

// Warning is a diagnostic attached to a report. Warnings never change the
// counts; they qualify how far the counts can be trusted.
type Warning string

const (
	// WarningInsufficientWindow: the solutions reach an edge of the probed
	// window, or the window misses a non-empty solution interval entirely.
	WarningInsufficientWindow Warning = "insufficient_window"
	// WarningNonMonotoneMidpoints: some M[i] < M[i-1], so k is negative and
	// the k+1 formula's precondition does not hold.
	WarningNonMonotoneMidpoints Warning = "non_monotone_midpoints"
)

// ProbeStats tallies one enumeration scan.
type ProbeStats struct {
	Probed       int64 `json:"probed"`
	Succeeded    int64 `json:"succeeded"`
	Monotonicity int64 `json:"monotonicity_violations"`
	Overflow     int64 `json:"range_overflows"`
}

// Add merges another partition's tallies.
func (p *ProbeStats) Add(other ProbeStats) {
	p.Probed += other.Probed
	p.Succeeded += other.Succeeded
	p.Monotonicity += other.Monotonicity
	p.Overflow += other.Overflow
}

// Report is the outcome of one verification call. Pointer fields are nil
// when the value is undefined: K, Predicted and Match for |M| < 2, and
// FirstS1/LastS1 when no solution was found.
type Report struct {
	ID          core.ReportID      `json:"id"`
	Fingerprint core.Hash          `json:"fingerprint"`
	Midpoints   sequence.Midpoints `json:"midpoints"`
	Window      sequence.Window    `json:"window"`

	K         *int64 `json:"k"`
	Predicted *int64 `json:"predicted"`
	Actual    int    `json:"actual"`
	Match     *bool  `json:"match"`

	FirstS1       *int32              `json:"first_s1"`
	LastS1        *int32              `json:"last_s1"`
	Width         int64               `json:"width"`
	FirstSolution sequence.Sequence   `json:"first_solution,omitempty"`
	LastSolution  sequence.Sequence   `json:"last_solution,omitempty"`
	Samples       []sequence.Sequence `json:"samples,omitempty"`

	// AnalyticInterval is the exact solution interval derived from the
	// recurrence constraints; nil when that interval is empty.
	AnalyticInterval *sequence.Window `json:"analytic_interval,omitempty"`

	Probes    ProbeStats      `json:"probes"`
	Warnings  []Warning       `json:"warnings,omitempty"`
	Verdict   verdict.Verdict `json:"verdict"`
	CreatedAt core.Timestamp  `json:"created_at"`
}

// HasWarning reports whether w was attached.
func (r *Report) HasWarning(w Warning) bool {
	for _, have := range r.Warnings {
		if have == w {
			return true
		}
	}
	return false
}

// IsUndefined reports whether k could not be computed.
func (r *Report) IsUndefined() bool {
	return r.K == nil
}

// Case describes one generated input for a battery run. N is |M|, so the
// generated source sequence has N+1 elements. A nil Window means the runner
// probes S[0] ± Radius (or its default radius when Radius is zero).
type Case struct {
	Name   string              `json:"name" yaml:"name"`
	N      int                 `json:"n" yaml:"n"`
	Start  int32               `json:"start" yaml:"start"`
	Step   sequence.StepConfig `json:"step" yaml:"step"`
	Seed   int64               `json:"seed" yaml:"seed"`
	Radius int64               `json:"radius,omitempty" yaml:"radius,omitempty"`
	Window *sequence.Window    `json:"window,omitempty" yaml:"window,omitempty"`
}

// CaseOutcome is one row of a battery run.
type CaseOutcome struct {
	CaseID core.CaseID       `json:"case_id"`
	Case   Case              `json:"case"`
	Source sequence.Sequence `json:"source,omitempty"`
	Report *Report           `json:"report,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// BatterySummary aggregates the outcomes of a run. Statistics over k only
// include cases where k was defined.
type BatterySummary struct {
	Total        int     `json:"total"`
	Matched      int     `json:"matched"`
	Mismatched   int     `json:"mismatched"`
	Inconclusive int     `json:"inconclusive"`
	Undefined    int     `json:"undefined"`
	Failed       int     `json:"failed"`
	MatchRate    float64 `json:"match_rate"`
	MeanK        float64 `json:"mean_k"`
	MedianK      float64 `json:"median_k"`
	MeanActual   float64 `json:"mean_actual"`
	MaxActual    float64 `json:"max_actual"`
	// Correlation is Pearson's r between predicted and actual counts; nil
	// when either side has no variance.
	Correlation *float64 `json:"correlation,omitempty"`
}

// BatteryResult is the full output of a battery run.
type BatteryResult struct {
	RunID      core.RunID     `json:"run_id"`
	Outcomes   []CaseOutcome  `json:"outcomes"`
	Summary    BatterySummary `json:"summary"`
	StartedAt  core.Timestamp `json:"started_at"`
	FinishedAt core.Timestamp `json:"finished_at"`
}
