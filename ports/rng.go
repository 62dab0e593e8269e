package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic operations
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream derives a case's generator from its name and base seed; the same
	// pair always regenerates the same source sequence
	Stream(ctx context.Context, caseName string, baseSeed int64) (*rand.Rand, error)
}
