package ports

import (
	"context"

	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
)

// VerifierPort checks the k+1 hypothesis for one midpoint array over a
// probe window
type VerifierPort interface {
	Verify(ctx context.Context, m sequence.Midpoints, w sequence.Window) (*hypothesis.Report, error)
}

// BatteryPort runs a series of generated cases through a verifier
type BatteryPort interface {
	Run(ctx context.Context, cases []hypothesis.Case) (*hypothesis.BatteryResult, error)
}
