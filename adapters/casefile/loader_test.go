package casefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
)

const sampleCases = `
seed: 100
radius: 500
cases:
  - name: baseline
    n: 5
    start: 0
    step: {policy: convex, base: 4, max_increment: 2}
  - n: 3
    start: -50
    seed: 7
    window: {min: -100, max: 0}
  - name: even-steps
    n: 4
    start: 10
    step: {policy: even, min_step: 2, max_step: 8}
`

func TestParse_AppliesDefaults(t *testing.T) {
	cases, err := Parse([]byte(sampleCases))
	require.NoError(t, err)
	require.Len(t, cases, 3)

	assert.Equal(t, "baseline", cases[0].Name)
	assert.Equal(t, int64(100), cases[0].Seed)
	assert.Equal(t, int64(500), cases[0].Radius)
	assert.Equal(t, sequence.StepConfig{Policy: sequence.StepConvex, Base: 4, MaxIncrement: 2}, cases[0].Step)

	assert.Equal(t, "case-2", cases[1].Name)
	assert.Equal(t, int64(7), cases[1].Seed)
	assert.Zero(t, cases[1].Radius)
	require.NotNil(t, cases[1].Window)
	assert.Equal(t, sequence.Window{Min: -100, Max: 0}, *cases[1].Window)
	assert.Equal(t, sequence.DefaultStepConfig(sequence.StepConvex), cases[1].Step)

	assert.Equal(t, int64(102), cases[2].Seed)
	assert.Equal(t, sequence.StepEven, cases[2].Step.Policy)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"no cases", "seed: 1\n"},
		{"unknown field", "cases:\n  - n: 3\n    colour: red\n"},
		{"zero length", "cases:\n  - n: 0\n"},
		{"inverted window", "cases:\n  - n: 3\n    window: {min: 5, max: 1}\n"},
		{"odd convex base", "cases:\n  - n: 3\n    step: {policy: convex, base: 3}\n"},
		{"negative radius", "cases:\n  - n: 3\n    radius: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, core.IsInputError(err), "expected input error, got %v", err)
		})
	}
}

func TestLoader_LoadCases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCases), 0o644))

	cases, err := NewLoader(path).LoadCases(context.Background())
	require.NoError(t, err)
	assert.Len(t, cases, 3)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).LoadCases(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
