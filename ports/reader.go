package ports

import (
	"context"

	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
)

// MidpointSourcePort loads named midpoint arrays from an external file
type MidpointSourcePort interface {
	ReadMidpoints(ctx context.Context) ([]sequence.NamedMidpoints, error)
}

// CaseSourcePort loads battery case definitions
type CaseSourcePort interface {
	LoadCases(ctx context.Context) ([]hypothesis.Case, error)
}

// ReportSinkPort exports a finished battery run
type ReportSinkPort interface {
	WriteBattery(ctx context.Context, result *hypothesis.BatteryResult) error
}
