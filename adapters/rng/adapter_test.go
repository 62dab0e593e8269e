package rng

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_StreamDeterministic(t *testing.T) {
	ctx := context.Background()
	a := NewAdapter()

	r1, err := a.Stream(ctx, "case-a", 42)
	require.NoError(t, err)
	r2, err := a.Stream(ctx, "case-a", 42)
	require.NoError(t, err)
	for i := 0; i < 16; i++ {
		assert.Equal(t, r1.Int63(), r2.Int63())
	}

	r3, err := a.Stream(ctx, "case-b", 42)
	require.NoError(t, err)
	r4, err := a.Stream(ctx, "case-a", 42)
	require.NoError(t, err)
	assert.NotEqual(t, r3.Int63(), r4.Int63(), "case name must perturb the seed")

	plain, err := a.Stream(ctx, "", 42)
	require.NoError(t, err)
	seeded, err := a.SeededStream(ctx, "", 42)
	require.NoError(t, err)
	assert.Equal(t, seeded.Int63(), plain.Int63())
}

func TestAdapter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter().SeededStream(ctx, "x", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
