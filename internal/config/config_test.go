package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqhypo/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SEQHYPO_WORKERS", "SEQHYPO_PARALLEL_THRESHOLD", "SEQHYPO_SAMPLE_SIZE",
		"SEQHYPO_SEED", "SEQHYPO_WINDOW_RADIUS", "SEQHYPO_CASES_FILE",
		"SEQHYPO_REPORT_XLSX", "SEQHYPO_STOP_ON_FAILURE", "SEQHYPO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Engine.Workers)
	assert.Equal(t, int64(100000), cfg.Engine.ParallelThreshold)
	assert.Equal(t, 3, cfg.Engine.SampleSize)
	assert.Equal(t, int64(42), cfg.Battery.Seed)
	assert.Equal(t, int64(2000), cfg.Battery.WindowRadius)
	assert.False(t, cfg.Battery.StopOnFailure)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SEQHYPO_WORKERS", "4")
	t.Setenv("SEQHYPO_SEED", "-7")
	t.Setenv("SEQHYPO_WINDOW_RADIUS", "50")
	t.Setenv("SEQHYPO_STOP_ON_FAILURE", "true")
	t.Setenv("SEQHYPO_LOG_LEVEL", "debug")
	t.Setenv("SEQHYPO_SAMPLE_SIZE", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, int64(-7), cfg.Battery.Seed)
	assert.Equal(t, int64(50), cfg.Battery.WindowRadius)
	assert.True(t, cfg.Battery.StopOnFailure)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Engine.SampleSize, "unparsable values fall back to the default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"SEQHYPO_WORKERS":       "-1",
		"SEQHYPO_WINDOW_RADIUS": "-5",
		"SEQHYPO_LOG_LEVEL":     "chatty",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}
