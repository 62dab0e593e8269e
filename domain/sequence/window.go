package sequence

import (
	"fmt"

	"seqhypo/domain/core"
)

// Window is an inclusive range of candidate first elements.
type Window struct {
	Min int32 `json:"min" yaml:"min"`
	Max int32 `json:"max" yaml:"max"`
}

// NewWindow validates and builds a window.
func NewWindow(min, max int32) (Window, error) {
	w := Window{Min: min, Max: max}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// WindowAround centres a window of the given radius on center, clamped to
// the integer domain. A negative radius is treated as zero.
func WindowAround(center int32, radius int64) Window {
	if radius < 0 {
		radius = 0
	}
	lo := int64(center) - radius
	hi := int64(center) + radius
	if lo < MinValue {
		lo = MinValue
	}
	if hi > MaxValue {
		hi = MaxValue
	}
	return Window{Min: int32(lo), Max: int32(hi)}
}

// Validate checks Min <= Max.
func (w Window) Validate() error {
	if w.Min > w.Max {
		return core.NewWindowError(int64(w.Min), int64(w.Max))
	}
	return nil
}

// Size is the number of integers in the window.
func (w Window) Size() int64 {
	if w.Min > w.Max {
		return 0
	}
	return int64(w.Max) - int64(w.Min) + 1
}

// Contains reports whether v lies inside the window.
func (w Window) Contains(v int32) bool {
	return v >= w.Min && v <= w.Max
}

// Covers reports whether other lies entirely inside w.
func (w Window) Covers(other Window) bool {
	return other.Min >= w.Min && other.Max <= w.Max
}

// TouchesBoundary reports whether [lo, hi] reaches either edge of w.
func (w Window) TouchesBoundary(lo, hi int32) bool {
	return lo == w.Min || hi == w.Max
}

// Intersect returns the overlap; ok is false when they are disjoint.
func (w Window) Intersect(other Window) (Window, bool) {
	lo, hi := w.Min, w.Max
	if other.Min > lo {
		lo = other.Min
	}
	if other.Max < hi {
		hi = other.Max
	}
	if lo > hi {
		return Window{}, false
	}
	return Window{Min: lo, Max: hi}, true
}

// Split partitions the window into at most parts contiguous, ascending,
// non-empty sub-windows.
func (w Window) Split(parts int) []Window {
	size := w.Size()
	if size == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if int64(parts) > size {
		parts = int(size)
	}
	chunk := size / int64(parts)
	rem := size % int64(parts)

	out := make([]Window, 0, parts)
	lo := int64(w.Min)
	for i := 0; i < parts; i++ {
		n := chunk
		if int64(i) < rem {
			n++
		}
		hi := lo + n - 1
		out = append(out, Window{Min: int32(lo), Max: int32(hi)})
		lo = hi + 1
	}
	return out
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Min, w.Max)
}
