package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seqhypo/domain/core"
	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
	"seqhypo/internal/generator"
	"seqhypo/ports"
)

var _ ports.BatteryPort = (*BatteryService)(nil)

// DefaultWindowRadius is the probe radius around S[0] used when neither the
// case nor the service sets one.
const DefaultWindowRadius int64 = 2000

// BatteryService generates source sequences, derives their midpoints and
// verifies the k+1 hypothesis on each, one case at a time
type BatteryService struct {
	rngPort       ports.RNGPort
	verifier      ports.VerifierPort
	logger        *zap.Logger
	defaultRadius int64
	stopOnFailure bool
}

// BatteryOption configures a BatteryService
type BatteryOption func(*BatteryService)

// WithDefaultRadius sets the probe radius for cases without their own
func WithDefaultRadius(radius int64) BatteryOption {
	return func(s *BatteryService) {
		if radius >= 0 {
			s.defaultRadius = radius
		}
	}
}

// WithStopOnFailure aborts the run at the first case that cannot be built
// or verified, instead of recording the error and moving on
func WithStopOnFailure(stop bool) BatteryOption {
	return func(s *BatteryService) {
		s.stopOnFailure = stop
	}
}

// WithBatteryLogger sets the logger
func WithBatteryLogger(logger *zap.Logger) BatteryOption {
	return func(s *BatteryService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewBatteryService creates a battery service
func NewBatteryService(rngPort ports.RNGPort, verifier ports.VerifierPort, opts ...BatteryOption) *BatteryService {
	s := &BatteryService{
		rngPort:       rngPort,
		verifier:      verifier,
		logger:        zap.NewNop(),
		defaultRadius: DefaultWindowRadius,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultCases reproduces the historical four-test series: convex sources
// with the listed midpoint counts, starts and step bases.
func DefaultCases(seed int64) []hypothesis.Case {
	specs := []struct {
		name  string
		n     int
		start int32
		base  int32
	}{
		{"baseline", 5, 0, 4},
		{"long-offset", 8, 100, 10},
		{"negative-start", 4, -50, 20},
		{"dense", 6, 10, 2},
	}
	cases := make([]hypothesis.Case, len(specs))
	for i, sp := range specs {
		cases[i] = hypothesis.Case{
			Name:  sp.name,
			N:     sp.n,
			Start: sp.start,
			Step:  sequence.StepConfig{Policy: sequence.StepConvex, Base: sp.base, MaxIncrement: 2},
			Seed:  seed + int64(i),
		}
	}
	return cases
}

// Run executes every case in order and aggregates the outcomes. Per-case
// failures (bad step config, overflow while generating) are recorded on the
// outcome unless stop-on-failure is set. An undefined hypothesis is a
// verdict, not a failure.
func (s *BatteryService) Run(ctx context.Context, cases []hypothesis.Case) (*hypothesis.BatteryResult, error) {
	result := &hypothesis.BatteryResult{
		RunID:     core.NewRunID(),
		Outcomes:  make([]hypothesis.CaseOutcome, 0, len(cases)),
		StartedAt: core.Now(),
	}
	s.logger.Info("battery started", zap.String("run_id", result.RunID.String()), zap.Int("cases", len(cases)))

	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}

		outcome, err := s.runCase(ctx, c)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("battery case failed", zap.String("case", c.Name), zap.Error(err))
			if s.stopOnFailure {
				return nil, fmt.Errorf("case %q: %w", c.Name, err)
			}
			outcome.Error = err.Error()
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.FinishedAt = core.Now()
	result.Summary = Summarize(result.Outcomes)
	s.logger.Info("battery finished",
		zap.String("run_id", result.RunID.String()),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("mismatched", result.Summary.Mismatched),
		zap.Int("inconclusive", result.Summary.Inconclusive),
		zap.Int("undefined", result.Summary.Undefined),
		zap.Int("failed", result.Summary.Failed),
		zap.Duration("elapsed", result.FinishedAt.Sub(result.StartedAt)),
	)
	return result, nil
}

func (s *BatteryService) runCase(ctx context.Context, c hypothesis.Case) (hypothesis.CaseOutcome, error) {
	outcome := hypothesis.CaseOutcome{CaseID: core.NewCaseID(), Case: c}

	rng, err := s.rngPort.Stream(ctx, c.Name, c.Seed)
	if err != nil {
		return outcome, fmt.Errorf("rng stream: %w", err)
	}
	src, err := generator.New(rng).Generate(c.N+1, c.Start, c.Step)
	if err != nil {
		return outcome, fmt.Errorf("generate source: %w", err)
	}
	outcome.Source = src

	// N = 0 gives a single-element source; the empty M is still verified
	// and comes back undefined.
	m, _ := sequence.Derive(src)

	report, err := s.verifier.Verify(ctx, m, s.windowFor(c, src[0]))
	if err != nil && !core.IsUndefinedHypothesis(err) {
		return outcome, fmt.Errorf("verify: %w", err)
	}
	outcome.Report = report
	return outcome, nil
}

func (s *BatteryService) windowFor(c hypothesis.Case, first int32) sequence.Window {
	if c.Window != nil {
		return *c.Window
	}
	radius := c.Radius
	if radius <= 0 {
		radius = s.defaultRadius
	}
	return sequence.WindowAround(first, radius)
}
