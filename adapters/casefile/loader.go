// Package casefile loads battery cases from YAML documents.
package casefile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seqhypo/domain/core"
	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
	"seqhypo/ports"
)

var _ ports.CaseSourcePort = (*Loader)(nil)

// document is the on-disk layout:
//
//	seed: 42
//	radius: 2000
//	cases:
//	  - name: baseline
//	    n: 5
//	    start: 0
//	    step: {policy: convex, base: 4, max_increment: 2}
type document struct {
	Seed   int64             `yaml:"seed"`
	Radius int64             `yaml:"radius"`
	Cases  []hypothesis.Case `yaml:"cases"`
}

// Loader reads a case file from disk.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadCases implements ports.CaseSourcePort.
func (l *Loader) LoadCases(ctx context.Context) ([]hypothesis.Case, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read case file %s: %w", l.path, err)
	}
	cases, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}
	return cases, nil
}

// Parse decodes a case document. File-level seed and radius fill in cases
// that leave them unset; seeds are offset by the case index so each case
// draws its own stream. Step policies default to convex.
func Parse(data []byte) ([]hypothesis.Case, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty case file", core.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}
	if len(doc.Cases) == 0 {
		return nil, fmt.Errorf("%w: case file lists no cases", core.ErrInvalidInput)
	}

	for i := range doc.Cases {
		c := &doc.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if c.Seed == 0 {
			c.Seed = doc.Seed + int64(i)
		}
		if c.Radius == 0 && c.Window == nil {
			c.Radius = doc.Radius
		}
		if c.Step.Policy == "" {
			c.Step = sequence.DefaultStepConfig(sequence.StepConvex)
		}
		if err := validateCase(c); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	return doc.Cases, nil
}

func validateCase(c *hypothesis.Case) error {
	if c.N < 1 {
		return core.NewLengthError(c.N)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius must be non-negative", core.ErrInvalidInput)
	}
	if c.Window != nil {
		if err := c.Window.Validate(); err != nil {
			return err
		}
	}
	return c.Step.Validate()
}
