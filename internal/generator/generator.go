// Package generator manufactures synthetic non-decreasing sequences for
// exercising the verifier. It is a test-input source only; nothing in the
// verification path depends on it.
package generator

import (
	"math/rand"

	"seqhypo/domain/core"
	"seqhypo/domain/sequence"
	"seqhypo/ports"
)

var _ ports.SequenceGeneratorPort = (*Generator)(nil)

// Generator draws steps from a caller-owned random source. A Generator is
// not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator over rng
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns S with S[0] = start and S[i] = S[i-1] + step(i), every
// step non-negative. An element leaving the int32 domain fails with
// core.ErrRangeOverflow rather than wrapping.
func (g *Generator) Generate(length int, start int32, cfg sequence.StepConfig) (sequence.Sequence, error) {
	if length < 1 {
		return nil, core.NewLengthError(length)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	next := g.stepper(cfg)
	s := make(sequence.Sequence, length)
	s[0] = start
	prev := int64(start)
	for i := 1; i < length; i++ {
		v := prev + next()
		if !sequence.InRange(v) {
			return nil, &sequence.ReconstructionError{
				Reason: sequence.ReasonRangeOverflow,
				S1:     start,
				Index:  i,
				Value:  v,
				Prev:   prev,
			}
		}
		s[i] = int32(v)
		prev = v
	}
	return s, nil
}

// stepper returns a closure yielding successive steps for cfg.
func (g *Generator) stepper(cfg sequence.StepConfig) func() int64 {
	switch cfg.Policy {
	case sequence.StepEven:
		lo, hi, _ := cfg.EvenBounds()
		span := (hi-lo)/2 + 1
		return func() int64 {
			return lo + 2*g.rng.Int63n(span)
		}
	case sequence.StepConvex:
		step := int64(cfg.Base)
		span := int64(cfg.MaxIncrement) + 1
		return func() int64 {
			step += 2 * g.rng.Int63n(span)
			return step
		}
	default:
		lo := int64(cfg.MinStep)
		span := int64(cfg.MaxStep) - lo + 1
		return func() int64 {
			return lo + g.rng.Int63n(span)
		}
	}
}
