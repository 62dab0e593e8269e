package sequence

import (
	"fmt"

	"seqhypo/domain/core"
)

// StepPolicy selects how the generator picks the gap between neighbours.
type StepPolicy string

const (
	// StepUniform draws each step independently from [MinStep, MaxStep].
	StepUniform StepPolicy = "uniform"
	// StepConvex grows the step by an even increment at every position, so
	// steps never shrink and the derived midpoints are non-decreasing.
	StepConvex StepPolicy = "convex"
	// StepEven draws only even steps, so every pairwise average is exact.
	StepEven StepPolicy = "even"
)

// StepConfig parameterises a step policy. Uniform and even read MinStep and
// MaxStep; convex reads Base and MaxIncrement (increments are drawn from
// {0, 2, ..., 2*MaxIncrement}).
type StepConfig struct {
	Policy       StepPolicy `json:"policy" yaml:"policy"`
	MinStep      int32      `json:"min_step,omitempty" yaml:"min_step,omitempty"`
	MaxStep      int32      `json:"max_step,omitempty" yaml:"max_step,omitempty"`
	Base         int32      `json:"base,omitempty" yaml:"base,omitempty"`
	MaxIncrement int32      `json:"max_increment,omitempty" yaml:"max_increment,omitempty"`
}

// DefaultStepConfig returns the settings used when a caller only names a
// policy. Convex mirrors the historical generator: base 4, increments {0,2,4}.
func DefaultStepConfig(policy StepPolicy) StepConfig {
	switch policy {
	case StepConvex:
		return StepConfig{Policy: StepConvex, Base: 4, MaxIncrement: 2}
	case StepEven:
		return StepConfig{Policy: StepEven, MinStep: 0, MaxStep: 10}
	default:
		return StepConfig{Policy: StepUniform, MinStep: 0, MaxStep: 10}
	}
}

// ParseStepPolicy maps a user-facing name to a policy.
func ParseStepPolicy(s string) (StepPolicy, error) {
	switch StepPolicy(s) {
	case StepUniform, StepConvex, StepEven:
		return StepPolicy(s), nil
	}
	return "", core.NewStepConfigError(fmt.Sprintf("unknown policy %q", s))
}

// Validate rejects configurations that cannot keep the sequence
// non-decreasing or, for convex, cannot keep the averages exact.
func (c StepConfig) Validate() error {
	switch c.Policy {
	case StepUniform:
		return c.validateRange()
	case StepEven:
		if err := c.validateRange(); err != nil {
			return err
		}
		if _, _, ok := c.EvenBounds(); !ok {
			return core.NewStepConfigError(fmt.Sprintf("no even step in [%d, %d]", c.MinStep, c.MaxStep))
		}
		return nil
	case StepConvex:
		if c.Base < 0 {
			return core.NewStepConfigError("convex base must be non-negative")
		}
		if c.Base%2 != 0 {
			return core.NewStepConfigError("convex base must be even")
		}
		if c.MaxIncrement < 0 {
			return core.NewStepConfigError("convex max increment must be non-negative")
		}
		return nil
	}
	return core.NewStepConfigError(fmt.Sprintf("unknown policy %q", c.Policy))
}

func (c StepConfig) validateRange() error {
	if c.MinStep < 0 {
		return core.NewStepConfigError("min step must be non-negative")
	}
	if c.MinStep > c.MaxStep {
		return core.NewStepConfigError(fmt.Sprintf("min step %d > max step %d", c.MinStep, c.MaxStep))
	}
	return nil
}

// EvenBounds returns the smallest and largest even steps inside
// [MinStep, MaxStep].
func (c StepConfig) EvenBounds() (lo, hi int64, ok bool) {
	lo = int64(c.MinStep)
	if lo%2 != 0 {
		lo++
	}
	hi = int64(c.MaxStep)
	if hi%2 != 0 {
		hi--
	}
	return lo, hi, lo <= hi
}
