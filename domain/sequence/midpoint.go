package sequence

import (
	"seqhypo/domain/core"
)

// Derive computes M[i] = trunc((S[i] + S[i+1]) / 2).
//
// The sum is taken in int64 and divided with Go's "/", which truncates
// toward zero. For a negative odd sum this differs from floor division
// (-3/2 is -1, not -2), and that difference decides which midpoint arrays
// are exactly reachable, so it must not be replaced by a shift.
//
// A sequence shorter than two elements yields an empty, non-nil M together
// with core.ErrSequenceTooShort. The empty M is still a valid verifier input.
func Derive(s Sequence) (Midpoints, error) {
	if len(s) < 2 {
		return Midpoints{}, core.ErrSequenceTooShort
	}
	m := make(Midpoints, len(s)-1)
	for i := range m {
		m[i] = int32((int64(s[i]) + int64(s[i+1])) / 2)
	}
	return m, nil
}

// IsExact reports whether every pairwise sum of s is even, i.e. Derive
// loses no information and the round-trip law applies.
func IsExact(s Sequence) bool {
	for i := 0; i+1 < len(s); i++ {
		if (int64(s[i])+int64(s[i+1]))%2 != 0 {
			return false
		}
	}
	return true
}
