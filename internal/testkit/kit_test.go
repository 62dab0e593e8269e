package testkit

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
	"seqhypo/domain/verdict"
)

func TestScenarios_Verify(t *testing.T) {
	kit := NewTestKit(t)
	v := kit.Verifier()

	for _, sc := range Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			report, err := v.Verify(context.Background(), sc.Midpoints, sc.Window)
			if sc.Status == verdict.StatusUndefined {
				assert.ErrorIs(t, err, core.ErrUndefinedHypothesis)
			} else {
				require.NoError(t, err)
				require.NotNil(t, report.K)
				assert.Equal(t, sc.K, *report.K)
				assert.Equal(t, sc.Predicted, *report.Predicted)
			}
			require.NotNil(t, report)
			assert.Equal(t, sc.Actual, report.Actual)
			assert.Equal(t, sc.Status, report.Verdict.Status)
			if sc.Actual > 0 {
				assert.Equal(t, sc.FirstS1, *report.FirstS1)
				assert.Equal(t, sc.LastS1, *report.LastS1)
			}
		})
	}
}

func TestScenarios_FreshCopies(t *testing.T) {
	a := Scenarios()
	a[0].Midpoints[0] = 99

	b, ok := ScenarioByName(a[0].Name)
	require.True(t, ok)
	assert.Equal(t, int32(1), b.Midpoints[0])

	_, ok = ScenarioByName("missing")
	assert.False(t, ok)
}

func TestTestKit_ConvexSourceRoundTrips(t *testing.T) {
	kit := NewTestKit(t)
	s := kit.ConvexSource(7, 6, -20)

	require.Len(t, s, 6)
	assert.Equal(t, int32(-20), s[0])

	m, err := sequence.Derive(s)
	require.NoError(t, err)
	back, err := sequence.Reconstruct(m, s[0])
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestTestKit_GeneratorIsSeeded(t *testing.T) {
	kit := NewTestKit(t)
	cfg := sequence.DefaultStepConfig(sequence.StepUniform)

	a, err := kit.Generator(3).Generate(10, 0, cfg)
	require.NoError(t, err)
	b, err := kit.Generator(3).Generate(10, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTestKit_BatteryService(t *testing.T) {
	kit := NewTestKit(t)
	svc := kit.BatteryService()

	result, err := svc.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, result.Summary.Total)
}

func TestRandomMidpoints(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	m := RandomMidpoints(r, 8, 3)

	require.Len(t, m, 8)
	assert.Equal(t, int32(0), m[0])
	assert.True(t, m.IsNonDecreasing())
}
