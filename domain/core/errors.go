package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Reconstruction errors (per probe, never fatal to an enumeration)
	ErrReconstructionFailed  = errors.New("reconstruction failed")
	ErrMonotonicityViolation = fmt.Errorf("%w: monotonicity violation", ErrReconstructionFailed)
	ErrRangeOverflow         = fmt.Errorf("%w: range overflow", ErrReconstructionFailed)

	// Hypothesis errors
	ErrUndefinedHypothesis = errors.New("hypothesis undefined: at least two midpoints required")

	// Input errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrSequenceTooShort   = fmt.Errorf("%w: sequence needs at least two elements", ErrInvalidInput)
	ErrInvalidWindow      = fmt.Errorf("%w: window", ErrInvalidInput)
	ErrInvalidLength      = fmt.Errorf("%w: length", ErrInvalidInput)
	ErrInvalidStepConfig  = fmt.Errorf("%w: step config", ErrInvalidInput)
	ErrEmptyMidpointInput = fmt.Errorf("%w: no midpoint arrays found", ErrInvalidInput)
)

// Error constructors with context
func NewWindowError(min, max int64) error {
	return fmt.Errorf("%w: min %d > max %d", ErrInvalidWindow, min, max)
}

func NewStepConfigError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidStepConfig, reason)
}

func NewLengthError(length int) error {
	return fmt.Errorf("%w: %d < 1", ErrInvalidLength, length)
}

// Error checking helpers
func IsReconstructionError(err error) bool {
	return errors.Is(err, ErrReconstructionFailed)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsUndefinedHypothesis(err error) bool {
	return errors.Is(err, ErrUndefinedHypothesis)
}
