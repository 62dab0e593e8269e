package sequence

import (
	"fmt"

	"seqhypo/domain/core"
)

// FailReason classifies a failed reconstruction probe.
type FailReason string

const (
	ReasonMonotonicityViolation FailReason = "monotonicity_violation"
	ReasonRangeOverflow         FailReason = "range_overflow"
)

// ReconstructionError describes why a candidate first element failed.
// Index is the position of the offending element S[Index]; Value is its
// int64 value before narrowing.
type ReconstructionError struct {
	Reason FailReason
	S1     int32
	Index  int
	Value  int64
	Prev   int64
}

func (e *ReconstructionError) Error() string {
	switch e.Reason {
	case ReasonRangeOverflow:
		return fmt.Sprintf("s1=%d: S[%d]=%d outside int32 range", e.S1, e.Index, e.Value)
	default:
		return fmt.Sprintf("s1=%d: S[%d]=%d < S[%d]=%d", e.S1, e.Index, e.Value, e.Index-1, e.Prev)
	}
}

func (e *ReconstructionError) Unwrap() error {
	if e.Reason == ReasonRangeOverflow {
		return core.ErrRangeOverflow
	}
	return core.ErrMonotonicityViolation
}

// Reconstruct expands S[0] = s1, S[i+1] = 2*M[i] - S[i].
//
// Each step is computed in int64, then range-checked, then compared with its
// predecessor. The first failure aborts the expansion; no partial sequence is
// returned. Since every M[i] is an integer the recurrence always yields an
// integer, so overflow and a decreasing pair are the only ways to fail.
func Reconstruct(m Midpoints, s1 int32) (Sequence, error) {
	s := make(Sequence, len(m)+1)
	if err := reconstructInto(s, m, s1); err != nil {
		return nil, err
	}
	return s, nil
}

// reconstructInto fills dst (len(m)+1) in place. Enumerators reuse one
// scratch buffer across probes and copy only the successes.
func reconstructInto(dst Sequence, m Midpoints, s1 int32) error {
	dst[0] = s1
	prev := int64(s1)
	for i, mi := range m {
		next := 2*int64(mi) - prev
		if !InRange(next) {
			return &ReconstructionError{Reason: ReasonRangeOverflow, S1: s1, Index: i + 1, Value: next, Prev: prev}
		}
		if next < prev {
			return &ReconstructionError{Reason: ReasonMonotonicityViolation, S1: s1, Index: i + 1, Value: next, Prev: prev}
		}
		dst[i+1] = int32(next)
		prev = next
	}
	return nil
}

// Probe is Reconstruct for scanners: buf must have length len(m)+1 and is
// overwritten. On success buf holds the sequence; callers must copy it before
// the next probe.
func Probe(buf Sequence, m Midpoints, s1 int32) error {
	if len(buf) != len(m)+1 {
		return fmt.Errorf("%w: probe buffer length %d, want %d", core.ErrInvalidInput, len(buf), len(m)+1)
	}
	return reconstructInto(buf, m, s1)
}
