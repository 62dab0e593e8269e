// Package enumeration scans a window of candidate first elements and keeps
// every one that reconstructs a non-decreasing sequence.
//
// The successful first elements always form one contiguous interval: each
// S[i] is s1 + c or c - s1 for a constant c, so every monotonicity and range
// constraint bounds s1 from one side. The scan does not rely on that; it is
// the brute-force side of the cross-check and must stay exhaustive.
package enumeration

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seqhypo/domain/core"
	"seqhypo/domain/hypothesis"
	"seqhypo/domain/sequence"
)

// cancelCheckEvery bounds how many probes a worker runs between context checks.
const cancelCheckEvery = 4096

// Result is the ordered solution set of one scan.
type Result struct {
	Solutions []sequence.Sequence
	Probes    hypothesis.ProbeStats
}

// FirstElements returns S[0] of every solution, ascending.
func (r *Result) FirstElements() []int32 {
	out := make([]int32, len(r.Solutions))
	for i, s := range r.Solutions {
		out[i] = s[0]
	}
	return out
}

// Enumerator runs scans. The zero value is not usable; call New.
type Enumerator struct {
	logger  *zap.Logger
	workers int
}

// Option configures an Enumerator
type Option func(*Enumerator)

// WithLogger sets the logger used for scan summaries
func WithLogger(logger *zap.Logger) Option {
	return func(e *Enumerator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWorkers sets the partition count for EnumerateParallel; n <= 0 means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Enumerator) {
		e.workers = n
	}
}

// New creates an enumerator
func New(opts ...Option) *Enumerator {
	e := &Enumerator{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// Enumerate returns the sequences reconstructed from every s1 in
// [s1Min, s1Max], ascending by s1.
func Enumerate(m sequence.Midpoints, s1Min, s1Max int32) ([]sequence.Sequence, error) {
	w, err := sequence.NewWindow(s1Min, s1Max)
	if err != nil {
		return nil, err
	}
	res, err := New().Enumerate(m, w)
	if err != nil {
		return nil, err
	}
	return res.Solutions, nil
}

// Enumerate scans w sequentially, ascending.
func (e *Enumerator) Enumerate(m sequence.Midpoints, w sequence.Window) (*Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	res, err := scan(context.Background(), m, w)
	if err != nil {
		return nil, err
	}
	e.logScan(m, w, res, 1)
	return res, nil
}

// EnumerateParallel splits w into contiguous partitions, scans them
// concurrently and concatenates the partial results in partition order, so
// the output is identical to Enumerate. A cancelled ctx aborts the scan.
func (e *Enumerator) EnumerateParallel(ctx context.Context, m sequence.Midpoints, w sequence.Window) (*Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	parts := w.Split(e.workers)
	partials := make([]*Result, len(parts))

	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			res, err := scan(gctx, m, part)
			if err != nil {
				return err
			}
			partials[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{}
	for _, p := range partials {
		out.Solutions = append(out.Solutions, p.Solutions...)
		out.Probes.Add(p.Probes)
	}
	e.logScan(m, w, out, len(parts))
	return out, nil
}

// scan probes every s1 in w in ascending order. The loop counter is int64 so
// a window ending at MaxInt32 terminates.
func scan(ctx context.Context, m sequence.Midpoints, w sequence.Window) (*Result, error) {
	res := &Result{}
	buf := make(sequence.Sequence, len(m)+1)

	for s1 := int64(w.Min); s1 <= int64(w.Max); s1++ {
		if res.Probes.Probed%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		res.Probes.Probed++

		err := sequence.Probe(buf, m, int32(s1))
		if err == nil {
			res.Probes.Succeeded++
			res.Solutions = append(res.Solutions, buf.Clone())
			continue
		}
		switch {
		case errors.Is(err, core.ErrMonotonicityViolation):
			res.Probes.Monotonicity++
		case errors.Is(err, core.ErrRangeOverflow):
			res.Probes.Overflow++
		default:
			return nil, err
		}
	}
	return res, nil
}

func (e *Enumerator) logScan(m sequence.Midpoints, w sequence.Window, res *Result, partitions int) {
	if ce := e.logger.Check(zap.DebugLevel, "enumeration complete"); ce != nil {
		ce.Write(
			zap.String("fingerprint", m.Hash().Short()),
			zap.Int("midpoints", len(m)),
			zap.Stringer("window", w),
			zap.Int("partitions", partitions),
			zap.Int64("probed", res.Probes.Probed),
			zap.Int64("succeeded", res.Probes.Succeeded),
			zap.Int64("monotonicity_violations", res.Probes.Monotonicity),
			zap.Int64("range_overflows", res.Probes.Overflow),
		)
	}
}
