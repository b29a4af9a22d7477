// Package circidx maps logical row ranges onto physical positions in
// fixed-capacity circular storage.
//
// Cursors into circular storage are unbounded monotonic counters; the
// physical position of logical row p is p mod capacity. Range resolves a
// whole run of rows at once and reports whether it occupies a single
// contiguous region or wraps past the end of storage, so callers can copy
// with one memmove in the common case and two at a wrap point.
package circidx

import "errors"

var (
	// ErrNegativeLength reports a mapping request for a negative number
	// of rows.
	ErrNegativeLength = errors.New("circidx: negative length")

	// ErrZeroCapacity reports a mapping request against storage that has
	// no rows.
	ErrZeroCapacity = errors.New("circidx: non-positive capacity")
)

// Span locates a run of logical rows in circular storage. The zero value
// is an empty span over empty storage; Range constructs meaningful ones.
type Span struct {
	off int // physical position of the first row
	n   int // number of rows
	cap int // storage capacity in rows
}

// Range maps the logical rows [start, start+length) onto storage holding
// capacity rows. start is an unbounded cursor; its physical position is
// start mod capacity, so it may exceed capacity freely. length may exceed
// capacity too, in which case the span revisits positions (see Indices).
func Range(start int64, length, capacity int) (Span, error) {
	if length < 0 {
		return Span{}, ErrNegativeLength
	}
	if capacity <= 0 {
		return Span{}, ErrZeroCapacity
	}
	off := int(start % int64(capacity))
	if off < 0 {
		off += capacity
	}
	return Span{off: off, n: length, cap: capacity}, nil
}

// Len returns the number of rows the span covers.
func (s Span) Len() int { return s.n }

// Cap returns the capacity of the storage the span indexes.
func (s Span) Cap() int { return s.cap }

// Start returns the physical position of the span's first row.
func (s Span) Start() int { return s.off }

// Contiguous reports whether the span occupies one unbroken run of
// storage. Zero-length spans are contiguous.
func (s Span) Contiguous() bool { return s.off+s.n <= s.cap }

// Split returns the sizes of the span's two runs: lead rows at
// [Start, Start+lead) and wrap rows at [0, wrap), with lead+wrap == Len.
// The runs are directly copyable when the span is no longer than the
// capacity; longer spans revisit positions and need Indices.
func (s Span) Split() (lead, wrap int) {
	lead = s.cap - s.off
	if s.n <= lead {
		return s.n, 0
	}
	return lead, s.n - lead
}

// Indices returns the physical position of every row in the span: row i
// lives at (start+i) mod capacity. The result has exactly Len elements
// even when the span is longer than the capacity.
func (s Span) Indices() []int {
	idx := make([]int, s.n)
	p := s.off
	for i := range idx {
		idx[i] = p
		p++
		if p == s.cap {
			p = 0
		}
	}
	return idx
}
