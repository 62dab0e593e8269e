package ports

import (
	"seqhypo/domain/sequence"
)

// SequenceGeneratorPort manufactures non-decreasing source sequences
type SequenceGeneratorPort interface {
	Generate(length int, start int32, cfg sequence.StepConfig) (sequence.Sequence, error)
}
