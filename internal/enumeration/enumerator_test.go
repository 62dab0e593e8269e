package enumeration

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEnumerate_Scenario(t *testing.T) {
	got, err := Enumerate(sequence.Midpoints{1, 2, 3, 4, 5}, -5, 5)
	require.NoError(t, err)

	want := []sequence.Sequence{
		{0, 2, 2, 4, 4, 6},
		{1, 1, 3, 3, 5, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("solutions mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate_ProbeStats(t *testing.T) {
	res, err := New().Enumerate(sequence.Midpoints{2, 4, 7}, sequence.Window{Min: -10, Max: 10})
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 1, 2}, res.FirstElements())
	assert.Equal(t, int64(21), res.Probes.Probed)
	assert.Equal(t, int64(3), res.Probes.Succeeded)
	assert.Equal(t, int64(18), res.Probes.Monotonicity)
	assert.Zero(t, res.Probes.Overflow)
}

func TestEnumerate_OverflowCounted(t *testing.T) {
	// S = [s, 2*MaxInt32 - s]: every s below MaxInt32 overflows at S[1]
	w := sequence.Window{Min: math.MaxInt32 - 3, Max: math.MaxInt32}
	res, err := New().Enumerate(sequence.Midpoints{math.MaxInt32}, w)
	require.NoError(t, err)

	assert.Equal(t, []int32{math.MaxInt32}, res.FirstElements())
	assert.Equal(t, int64(3), res.Probes.Overflow)
	assert.Equal(t, int64(4), res.Probes.Probed, "loop must stop at MaxInt32")
}

func TestEnumerate_EmptyMidpoints(t *testing.T) {
	got, err := Enumerate(sequence.Midpoints{}, -2, 2)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	for i, s := range got {
		assert.Equal(t, sequence.Sequence{int32(i - 2)}, s)
	}
}

func TestEnumerate_InvalidWindow(t *testing.T) {
	_, err := Enumerate(sequence.Midpoints{1, 2}, 5, 4)
	assert.ErrorIs(t, err, core.ErrInvalidWindow)

	_, err = New().EnumerateParallel(context.Background(), sequence.Midpoints{1, 2}, sequence.Window{Min: 1, Max: 0})
	assert.ErrorIs(t, err, core.ErrInvalidWindow)
}

func TestEnumerate_SolutionsAreIndependentCopies(t *testing.T) {
	got, err := Enumerate(sequence.Midpoints{1, 2, 3, 4, 5}, 0, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	got[0][1] = 99
	assert.Equal(t, int32(1), got[1][1])
}

func TestEnumerate_Contiguous(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		m := make(sequence.Midpoints, 1+r.Intn(6))
		for i := range m {
			m[i] = int32(r.Intn(41) - 20)
		}
		got, err := Enumerate(m, -60, 60)
		require.NoError(t, err)
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1][0]+1, got[i][0], "gap in solution interval for M=%v", m)
		}
	}
}

func TestEnumerateParallel_MatchesSequential(t *testing.T) {
	ms := []sequence.Midpoints{
		{1, 2, 3, 4, 5},
		{2, 4, 7},
		{0, 10},
		{-3, -1, 4, 4, 9},
		{},
	}
	w := sequence.Window{Min: -500, Max: 500}

	for _, workers := range []int{1, 2, 3, 7, 16} {
		e := New(WithWorkers(workers))
		for _, m := range ms {
			seq, err := e.Enumerate(m, w)
			require.NoError(t, err)
			par, err := e.EnumerateParallel(context.Background(), m, w)
			require.NoError(t, err)

			if diff := cmp.Diff(seq.Solutions, par.Solutions); diff != "" {
				t.Errorf("workers=%d M=%v (-seq +par):\n%s", workers, m, diff)
			}
			assert.Equal(t, seq.Probes, par.Probes)
		}
	}
}

func TestEnumerateParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithWorkers(4)).EnumerateParallel(ctx, sequence.Midpoints{1, 2}, sequence.Window{Min: 0, Max: 100000})
	assert.ErrorIs(t, err, context.Canceled)
}
