package verification

import (
	"seqhypo/domain/sequence"
)

// SolutionInterval computes the exact set of first elements that
// reconstruct successfully, without probing.
//
// Unrolling the recurrence gives S[i] = a_i*s1 + c_i with a_i = ±1
// alternating and c_{i+1} = 2*M[i] - c_i. Every check the reconstructor makes
// is linear in s1:
//
//	S[i+1] >= S[i]      upper bound on s1 when a_i = +1, lower bound otherwise
//	S[i] within int32   one lower and one upper bound
//
// so the solutions form one interval. ok is false when it is empty. The scan
// stops at the first empty intersection, which keeps c_i within a few times
// the int32 range and the arithmetic inside int64.
func SolutionInterval(m sequence.Midpoints) (sequence.Window, bool) {
	lo, hi := sequence.MinValue, sequence.MaxValue
	a, c := int64(1), int64(0)

	for _, mi := range m {
		na, nc := -a, 2*int64(mi)-c

		if na == 1 {
			lo = max(lo, sequence.MinValue-nc)
			hi = min(hi, sequence.MaxValue-nc)
		} else {
			lo = max(lo, nc-sequence.MaxValue)
			hi = min(hi, nc-sequence.MinValue)
		}

		if a == 1 {
			// -s1 + nc >= s1 + c
			hi = min(hi, floorDiv(nc-c, 2))
		} else {
			// s1 + nc >= -s1 + c
			lo = max(lo, ceilDiv(c-nc, 2))
		}

		if lo > hi {
			return sequence.Window{}, false
		}
		a, c = na, nc
	}
	return sequence.Window{Min: int32(lo), Max: int32(hi)}, true
}

// SuggestWindow returns a probe window that strictly contains the solution
// interval, padded by margin on each side (at least 1), so a verification
// over it cannot raise the insufficient-window warning unless the interval
// reaches the int32 limits. ok is false when there are no solutions.
func SuggestWindow(m sequence.Midpoints, margin int64) (sequence.Window, bool) {
	iv, ok := SolutionInterval(m)
	if !ok {
		return sequence.Window{}, false
	}
	if margin < 1 {
		margin = 1
	}
	lo := max(int64(iv.Min)-margin, sequence.MinValue)
	hi := min(int64(iv.Max)+margin, sequence.MaxValue)
	return sequence.Window{Min: int32(lo), Max: int32(hi)}, true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}
