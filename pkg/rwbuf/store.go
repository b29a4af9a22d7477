package rwbuf

import (
	"fmt"

	"github.com/justengel/np-rw-buffer/pkg/circidx"
)

// store is the storage core shared by RingBuffer and FramingBuffer: a
// flat row-major array addressed through circidx by unbounded logical
// row cursors. cols is at least one on any live buffer.
type store[T Sample] struct {
	buf  []T
	cols int
}

func makeStore[T Sample](rows, cols int) store[T] {
	if cols < 1 {
		cols = 1
	}
	if rows < 0 {
		rows = 0
	}
	return store[T]{buf: make([]T, rows*cols), cols: cols}
}

// capRows returns the storage capacity in rows.
func (s *store[T]) capRows() int { return len(s.buf) / s.cols }

func (s *store[T]) checkShape(data Block[T]) error {
	if data.Rows() > 0 && data.cols != s.cols {
		return fmt.Errorf("rwbuf: cannot write %d-column block to %d-column buffer: %w",
			data.cols, s.cols, ErrShapeMismatch)
	}
	return nil
}

// copyIn copies whole rows into storage starting at logical position at.
// Callers guarantee the row count is positive and at most the capacity.
func (s *store[T]) copyIn(at int64, rows []T) {
	n := len(rows) / s.cols
	if n == 0 {
		return
	}
	span, err := circidx.Range(at, n, s.capRows())
	if err != nil {
		panic("rwbuf: " + err.Error())
	}
	lead, wrap := span.Split()
	off := span.Start() * s.cols
	copy(s.buf[off:], rows[:lead*s.cols])
	if wrap > 0 {
		copy(s.buf, rows[lead*s.cols:])
	}
}

// copyOut copies n rows out of storage starting at logical position at.
// dst must hold at least n rows.
func (s *store[T]) copyOut(at int64, n int, dst []T) {
	if n == 0 {
		return
	}
	span, err := circidx.Range(at, n, s.capRows())
	if err != nil {
		panic("rwbuf: " + err.Error())
	}
	lead, wrap := span.Split()
	off := span.Start() * s.cols
	copy(dst, s.buf[off:off+lead*s.cols])
	if wrap > 0 {
		copy(dst[lead*s.cols:], s.buf[:wrap*s.cols])
	}
}
