package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name         string
		match        bool
		insufficient bool
		want         VerdictStatus
	}{
		{"match", true, false, StatusMatch},
		{"match through narrow window", true, true, StatusMatch},
		{"mismatch", false, false, StatusMismatch},
		{"mismatch through narrow window", false, true, StatusInconclusive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.match, tt.insufficient).Status)
		})
	}
}

func TestIsConclusive(t *testing.T) {
	assert.True(t, Decide(true, false).IsConclusive())
	assert.True(t, Decide(false, false).IsConclusive())
	assert.False(t, Decide(false, true).IsConclusive())
	assert.False(t, Undefined().IsConclusive())
	assert.Equal(t, "undefined", Undefined().String())
}
