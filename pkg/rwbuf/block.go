package rwbuf

import (
	"fmt"
	"slices"
)

// Block is a rows-by-columns batch of samples in flat row-major storage,
// the unit of data moving in and out of buffers.
//
// Wrapping a slice with Mono or BlockOf does not copy it, and Slice, Row
// and Data share storage with their receiver. Use Clone for an
// independent copy. The zero value is an empty block.
type Block[T Sample] struct {
	data []T
	cols int
}

// MakeBlock returns a zeroed block of the given shape. Column counts
// below one are treated as one, negative row counts as zero.
func MakeBlock[T Sample](rows, cols int) Block[T] {
	if cols < 1 {
		cols = 1
	}
	if rows < 0 {
		rows = 0
	}
	return Block[T]{data: make([]T, rows*cols), cols: cols}
}

// BlockOf wraps data as a block of cols columns without copying. The
// length of data must be a whole number of rows.
func BlockOf[T Sample](data []T, cols int) (Block[T], error) {
	if cols < 1 {
		return Block[T]{}, fmt.Errorf("rwbuf: %d columns: %w", cols, ErrInvalidArgument)
	}
	if len(data)%cols != 0 {
		return Block[T]{}, fmt.Errorf("rwbuf: %d samples do not divide into %d-column rows: %w",
			len(data), cols, ErrShapeMismatch)
	}
	return Block[T]{data: data, cols: cols}, nil
}

// Mono wraps data as a single-column block without copying.
func Mono[T Sample](data []T) Block[T] {
	return Block[T]{data: data, cols: 1}
}

// Rows returns the number of rows in the block.
func (b Block[T]) Rows() int {
	if b.cols == 0 {
		return 0
	}
	return len(b.data) / b.cols
}

// Cols returns the number of columns per row. The zero value reports
// zero columns.
func (b Block[T]) Cols() int { return b.cols }

// At returns the sample at row i, column j.
func (b Block[T]) At(i, j int) T {
	if uint(j) >= uint(b.cols) {
		panic("rwbuf: column index out of range")
	}
	return b.data[i*b.cols+j]
}

// Set stores v at row i, column j.
func (b Block[T]) Set(i, j int, v T) {
	if uint(j) >= uint(b.cols) {
		panic("rwbuf: column index out of range")
	}
	b.data[i*b.cols+j] = v
}

// Row returns row i as a slice sharing the block's storage.
func (b Block[T]) Row(i int) []T {
	return b.data[i*b.cols : (i+1)*b.cols]
}

// Slice returns the row range [i, j) sharing the block's storage.
func (b Block[T]) Slice(i, j int) Block[T] {
	return Block[T]{data: b.data[i*b.cols : j*b.cols], cols: b.cols}
}

// Data returns the block's flat row-major samples. The slice is shared,
// not copied.
func (b Block[T]) Data() []T { return b.data }

// Clone returns a copy sharing no storage with the block.
func (b Block[T]) Clone() Block[T] {
	return Block[T]{data: slices.Clone(b.data), cols: b.cols}
}

// Zero overwrites every sample in the block with zero.
func (b Block[T]) Zero() {
	clear(b.data)
}

// Equal reports whether two blocks hold the same rows. Empty blocks are
// equal regardless of their column counts.
func (b Block[T]) Equal(other Block[T]) bool {
	if b.Rows() != other.Rows() {
		return false
	}
	if b.Rows() > 0 && b.cols != other.cols {
		return false
	}
	return slices.Equal(b.data, other.data)
}

// Concat stacks blocks top to bottom into a new block. Empty blocks are
// skipped; the rest must agree on columns or Concat panics.
func Concat[T Sample](blocks ...Block[T]) Block[T] {
	cols := 0
	parts := make([][]T, 0, len(blocks))
	for _, b := range blocks {
		if b.Rows() == 0 {
			continue
		}
		if cols == 0 {
			cols = b.cols
		} else if b.cols != cols {
			panic("rwbuf: concat column mismatch")
		}
		parts = append(parts, b.data)
	}
	if cols == 0 {
		return Block[T]{}
	}
	return Block[T]{data: slices.Concat(parts...), cols: cols}
}
