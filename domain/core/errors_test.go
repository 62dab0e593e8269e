package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		reconstruction bool
		input          bool
		undefined      bool
	}{
		{"monotonicity", ErrMonotonicityViolation, true, false, false},
		{"overflow", fmt.Errorf("probe 3: %w", ErrRangeOverflow), true, false, false},
		{"window", NewWindowError(5, -5), false, true, false},
		{"step config", NewStepConfigError("odd base"), false, true, false},
		{"length", NewLengthError(0), false, true, false},
		{"undefined", fmt.Errorf("verify: %w", ErrUndefinedHypothesis), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReconstructionError(tt.err); got != tt.reconstruction {
				t.Errorf("IsReconstructionError = %v, want %v", got, tt.reconstruction)
			}
			if got := IsInputError(tt.err); got != tt.input {
				t.Errorf("IsInputError = %v, want %v", got, tt.input)
			}
			if got := IsUndefinedHypothesis(tt.err); got != tt.undefined {
				t.Errorf("IsUndefinedHypothesis = %v, want %v", got, tt.undefined)
			}
		})
	}

	if errors.Is(ErrMonotonicityViolation, ErrRangeOverflow) {
		t.Error("Failure reasons must stay distinguishable")
	}
}
