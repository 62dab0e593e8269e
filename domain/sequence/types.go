// Package sequence holds the integer sequences the verifier works on and the
// two pure transforms between them: midpoint derivation and reconstruction.
//
// Values live in the signed 32-bit domain. Every intermediate sum, doubling or
// difference is carried out in int64 and range-checked before it is narrowed,
// so no operation in this package wraps silently.
package sequence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"seqhypo/domain/core"
)

// Bounds of the nominal integer domain.
const (
	MinValue int64 = math.MinInt32
	MaxValue int64 = math.MaxInt32
)

// Sequence is a candidate or source sequence S.
type Sequence []int32

// Midpoints is the array M derived from a sequence, one element shorter.
type Midpoints []int32

// NamedMidpoints pairs a midpoint array with a label from its source.
type NamedMidpoints struct {
	Name   string    `json:"name" yaml:"name"`
	Values Midpoints `json:"values" yaml:"values"`
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IsNonDecreasing reports whether S[i] <= S[i+1] for every i.
func (s Sequence) IsNonDecreasing() bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

// Equal compares element-wise.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Sequence) String() string { return formatValues(s) }

// Clone returns an independent copy.
func (m Midpoints) Clone() Midpoints {
	if m == nil {
		return nil
	}
	out := make(Midpoints, len(m))
	copy(out, m)
	return out
}

// Hash fingerprints the array for reports and logs.
func (m Midpoints) Hash() core.Hash {
	return core.ComputeValuesHash(m)
}

// IsNonDecreasing reports whether every adjacent difference is >= 0.
func (m Midpoints) IsNonDecreasing() bool {
	return Sequence(m).IsNonDecreasing()
}

func (m Midpoints) String() string { return formatValues(m) }

// ParseValues parses "1,2,3", "1 2 3" or "[1, 2, 3]" into int32 values.
func ParseValues(raw string) ([]int32, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';' || r == '\n'
	})
	values := make([]int32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a 32-bit integer", core.ErrInvalidInput, f)
		}
		values = append(values, int32(v))
	}
	return values, nil
}

func formatValues(values []int32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteByte(']')
	return b.String()
}

// InRange reports whether v fits the nominal integer domain.
func InRange(v int64) bool {
	return v >= MinValue && v <= MaxValue
}
