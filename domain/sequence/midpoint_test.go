package sequence

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqhypo/domain/core"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name string
		s    Sequence
		want Midpoints
	}{
		{"exact", Sequence{0, 2, 2, 4, 4, 6}, Midpoints{1, 2, 3, 4, 5}},
		{"truncates positive", Sequence{1, 2, 4}, Midpoints{1, 3}},
		{"truncates toward zero for negatives", Sequence{-3, 0, 1}, Midpoints{-1, 0}},
		{"negative odd sum", Sequence{-5, -4}, Midpoints{-4}},
		{"no int32 overflow in the sum", Sequence{math.MaxInt32, math.MaxInt32}, Midpoints{math.MaxInt32}},
		{"extreme span", Sequence{math.MinInt32, math.MaxInt32}, Midpoints{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.s)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Derive mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDerive_TooShort(t *testing.T) {
	for _, s := range []Sequence{nil, {}, {7}} {
		m, err := Derive(s)
		assert.ErrorIs(t, err, core.ErrSequenceTooShort)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	}
}

func TestIsExact(t *testing.T) {
	assert.True(t, IsExact(Sequence{0, 2, 2, 4}))
	assert.True(t, IsExact(Sequence{-3, -1, 5}))
	assert.False(t, IsExact(Sequence{0, 1}))
	assert.True(t, IsExact(Sequence{9}))
}
