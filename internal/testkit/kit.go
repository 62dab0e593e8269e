package testkit

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"seqhypo/adapters/rng"
	"seqhypo/app"
	"seqhypo/domain/sequence"
	"seqhypo/internal/enumeration"
	"seqhypo/internal/generator"
	"seqhypo/internal/verification"
	"seqhypo/ports"
)

// TestKit provides testing utilities and fixtures
type TestKit struct {
	t      testing.TB
	logger *zap.Logger
	rng    *rng.Adapter
}

// NewTestKit creates a kit whose components log through the test's output
func NewTestKit(t testing.TB) *TestKit {
	return &TestKit{
		t:      t,
		logger: zaptest.NewLogger(t),
		rng:    rng.NewAdapter(),
	}
}

// Logger returns the shared test logger
func (k *TestKit) Logger() *zap.Logger {
	return k.logger
}

// RNGAdapter returns the seeded stream adapter
func (k *TestKit) RNGAdapter() ports.RNGPort {
	return k.rng
}

// Generator returns a generator drawing from a stream fixed by seed
func (k *TestKit) Generator(seed int64) *generator.Generator {
	k.t.Helper()
	stream, err := k.rng.SeededStream(context.Background(), "testkit", seed)
	if err != nil {
		k.t.Fatalf("seeded stream: %v", err)
	}
	return generator.New(stream)
}

// Enumerator returns an enumerator with the given worker count
func (k *TestKit) Enumerator(workers int) *enumeration.Enumerator {
	return enumeration.New(
		enumeration.WithLogger(k.logger),
		enumeration.WithWorkers(workers),
	)
}

// Verifier returns a verifier; extra options override the defaults
func (k *TestKit) Verifier(opts ...verification.Option) *verification.Verifier {
	base := []verification.Option{
		verification.WithLogger(k.logger),
		verification.WithEnumerator(k.Enumerator(2)),
	}
	return verification.NewVerifier(append(base, opts...)...)
}

// BatteryService returns a battery runner wired to the kit's components
func (k *TestKit) BatteryService(opts ...app.BatteryOption) *app.BatteryService {
	base := []app.BatteryOption{app.WithBatteryLogger(k.logger)}
	return app.NewBatteryService(k.rng, k.Verifier(), append(base, opts...)...)
}

// ConvexSource generates a convex source of length n starting at start,
// whose midpoints satisfy the k+1 formula
func (k *TestKit) ConvexSource(seed int64, n int, start int32) sequence.Sequence {
	k.t.Helper()
	s, err := k.Generator(seed).Generate(n, start, sequence.DefaultStepConfig(sequence.StepConvex))
	if err != nil {
		k.t.Fatalf("generate convex source: %v", err)
	}
	return s
}

// RandomMidpoints draws a non-decreasing array of length n with steps in
// [0, maxStep]. Such arrays need not come from any integer source.
func RandomMidpoints(r *rand.Rand, n int, maxStep int32) sequence.Midpoints {
	m := make(sequence.Midpoints, n)
	var cur int32
	for i := range m {
		if i > 0 {
			cur += r.Int31n(maxStep + 1)
		}
		m[i] = cur
	}
	return m
}
