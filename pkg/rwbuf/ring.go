package rwbuf

import (
	"fmt"
	"log/slog"
	"slices"
)

// RingBuffer is a bounded circular buffer of sample rows. The write
// cursor never passes the read cursor by more than the capacity: strict
// writes fail with ErrOverflow when a batch does not fit, Overwrite
// drops the oldest rows instead, and the growing writes resize. Reads
// are failure-soft: asking for more than is buffered returns an empty
// block rather than an error.
//
// Cursors are unbounded logical row positions mapped to storage modulo
// the capacity. The buffered length is tail minus head and stays within
// [0, capacity] across every operation.
type RingBuffer[T Sample] struct {
	store[T]
	head, tail int64
}

// NewRing returns an empty buffer holding up to size rows of cols
// columns each. Column counts below one are treated as one, negative
// sizes as zero; a zero-size buffer is a legal degenerate that overflows
// on any strict write and reads empty.
func NewRing[T Sample](size, cols int) *RingBuffer[T] {
	return &RingBuffer[T]{store: makeStore[T](size, cols)}
}

// RingFrom returns a buffer shaped by data with the entire input
// immediately readable. This is the construction mode for wrapping data
// that already exists rather than streaming into preallocated space.
func RingFrom[T Sample](data Block[T]) *RingBuffer[T] {
	rb := &RingBuffer[T]{store: store[T]{cols: 1}}
	rb.SetData(data)
	return rb
}

// Len returns the number of buffered rows.
func (rb *RingBuffer[T]) Len() int { return int(rb.tail - rb.head) }

// Cap returns the buffer capacity in rows.
func (rb *RingBuffer[T]) Cap() int { return rb.capRows() }

// Cols returns the number of columns per row.
func (rb *RingBuffer[T]) Cols() int { return rb.cols }

// Shape returns the storage shape as (capacity, columns).
func (rb *RingBuffer[T]) Shape() (rows, cols int) { return rb.capRows(), rb.cols }

// Available returns how many rows fit before the buffer is full.
func (rb *RingBuffer[T]) Available() int { return rb.capRows() - rb.Len() }

// Clear resets both cursors. Storage contents are left in place; they
// are unreachable once the cursors agree.
func (rb *RingBuffer[T]) Clear() { rb.head, rb.tail = 0, 0 }

// Write appends data in strict mode: if the batch exceeds the available
// space it fails with ErrOverflow before anything is copied, leaving the
// buffer unchanged. Use Overwrite to drop old rows instead, or
// ExpandingWrite/GrowingWrite to resize.
func (rb *RingBuffer[T]) Write(data Block[T]) error {
	if err := rb.checkShape(data); err != nil {
		return err
	}
	n := data.Rows()
	if n == 0 {
		return nil
	}
	if avail := rb.Available(); n > avail {
		return fmt.Errorf("rwbuf: %d rows into %d available: %w", n, avail, ErrOverflow)
	}
	rb.copyIn(rb.tail, data.data)
	rb.tail += int64(n)
	return nil
}

// Overwrite appends data, dropping rows when space runs short: a batch
// longer than the whole buffer keeps only its last Cap rows, and the
// oldest buffered rows are consumed to make room for the rest. Drops are
// logged at debug level.
func (rb *RingBuffer[T]) Overwrite(data Block[T]) error {
	if err := rb.checkShape(data); err != nil {
		return err
	}
	n := data.Rows()
	if c := rb.capRows(); n > c {
		slog.Debug("rwbuf: overwrite truncates batch", "rows", n-c)
		data = data.Slice(n-c, n)
		n = c
	}
	if n == 0 {
		return nil
	}
	if avail := rb.Available(); n > avail {
		slog.Debug("rwbuf: overwrite drops buffered rows", "rows", n-avail)
		rb.head += int64(n - avail)
	}
	rb.copyIn(rb.tail, data.data)
	rb.tail += int64(n)
	return nil
}

// Read consumes and returns exactly n rows. If fewer than n rows are
// buffered it returns an empty block and consumes nothing; the caller is
// expected to retry once enough data accumulates. Negative n panics.
func (rb *RingBuffer[T]) Read(n int) Block[T] {
	if n < 0 {
		panic("rwbuf: negative read amount")
	}
	if n == 0 || n > rb.Len() {
		return MakeBlock[T](0, rb.cols)
	}
	return rb.take(n, n)
}

// ReadAll consumes and returns the entire valid region.
func (rb *RingBuffer[T]) ReadAll() Block[T] {
	n := rb.Len()
	return rb.take(n, n)
}

// ReadRemaining consumes and returns up to n rows, clamping to the
// buffered length instead of failing soft like Read.
func (rb *RingBuffer[T]) ReadRemaining(n int) Block[T] {
	if n < 0 {
		panic("rwbuf: negative read amount")
	}
	if l := rb.Len(); n > l {
		n = l
	}
	return rb.take(n, n)
}

// ReadOverlap returns up to amount rows (clamped like ReadRemaining) but
// advances the read cursor by increment instead: increment < amount
// yields overlapping windows for frame-overlapped analysis, increment >
// amount skips rows. The advance clamps to the buffered length.
func (rb *RingBuffer[T]) ReadOverlap(amount, increment int) Block[T] {
	if amount < 0 || increment < 0 {
		panic("rwbuf: negative read amount")
	}
	l := rb.Len()
	if amount > l {
		amount = l
	}
	if increment > l {
		increment = l
	}
	return rb.take(amount, increment)
}

// ReadLast returns the freshest amount rows aligned to updateRate
// strides, discarding any older whole strides first, then advances the
// cursor one stride. The count reports how many windows the call moved
// past, the returned one included. Fewer than amount buffered rows yield
// an empty block and a zero count.
func (rb *RingBuffer[T]) ReadLast(amount, updateRate int) (Block[T], int) {
	if amount < 0 {
		panic("rwbuf: negative read amount")
	}
	if updateRate < 1 {
		panic("rwbuf: non-positive update rate")
	}
	if amount == 0 || amount > rb.Len() {
		return MakeBlock[T](0, rb.cols), 0
	}
	skips := (rb.Len() - amount) / updateRate
	if skips > 0 {
		rb.head += int64(skips * updateRate)
	}
	return rb.ReadOverlap(amount, updateRate), skips + 1
}

// take copies n rows from the head and advances it by adv rows.
func (rb *RingBuffer[T]) take(n, adv int) Block[T] {
	out := MakeBlock[T](n, rb.cols)
	rb.copyOut(rb.head, n, out.data)
	rb.head += int64(adv)
	return out
}

// Data returns a copy of the valid region in logical order without
// moving the cursors.
func (rb *RingBuffer[T]) Data() Block[T] {
	out := MakeBlock[T](rb.Len(), rb.cols)
	rb.copyOut(rb.head, rb.Len(), out.data)
	return out
}

// SetData replaces storage wholesale: the buffer takes data's shape and
// the entire input becomes immediately readable. The input is copied,
// never aliased.
func (rb *RingBuffer[T]) SetData(data Block[T]) {
	cols := data.cols
	if cols < 1 {
		cols = 1
	}
	rb.store = store[T]{buf: slices.Clone(data.data), cols: cols}
	rb.head, rb.tail = 0, int64(data.Rows())
}

// SetMaxSize resizes the buffer to hold size rows, preserving the valid
// region rebased to the start of new storage. Shrinking below Len drops
// the oldest rows.
func (rb *RingBuffer[T]) SetMaxSize(size int) error {
	if size < 0 {
		return fmt.Errorf("rwbuf: max size %d: %w", size, ErrInvalidArgument)
	}
	rb.rebase(size)
	return nil
}

// SetShape reallocates storage as (rows, cols). Keeping the column count
// preserves the valid region like SetMaxSize; changing it resets the
// buffer, since rows cannot be reinterpreted across widths.
func (rb *RingBuffer[T]) SetShape(rows, cols int) error {
	if rows < 0 || cols < 1 {
		return fmt.Errorf("rwbuf: shape %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	if cols == rb.cols {
		rb.rebase(rows)
		return nil
	}
	rb.store = makeStore[T](rows, cols)
	rb.head, rb.tail = 0, 0
	return nil
}

// SetColumns reshapes to cols columns at the current capacity.
func (rb *RingBuffer[T]) SetColumns(cols int) error {
	return rb.SetShape(rb.capRows(), cols)
}

// ExpandingWrite writes data, growing the buffer when the batch would
// not fit. Growth is amortized: the capacity at least doubles, so a long
// run of expanding writes reallocates rarely. Nothing buffered is lost
// and overflow cannot occur.
func (rb *RingBuffer[T]) ExpandingWrite(data Block[T]) error {
	if err := rb.checkShape(data); err != nil {
		return err
	}
	if n := data.Rows(); n > rb.Available() {
		size := rb.Len() + n
		if d := 2 * rb.capRows(); d > size {
			size = d
		}
		rb.rebase(size)
	}
	return rb.Write(data)
}

// GrowingWrite writes data, growing the buffer to the minimum sufficient
// capacity when the batch would not fit. Nothing buffered is lost and
// overflow cannot occur.
func (rb *RingBuffer[T]) GrowingWrite(data Block[T]) error {
	if err := rb.checkShape(data); err != nil {
		return err
	}
	if n := data.Rows(); n > rb.Available() {
		rb.rebase(rb.Len() + n)
	}
	return rb.Write(data)
}

// rebase moves the newest rows that fit into fresh storage of size rows,
// starting at position zero.
func (rb *RingBuffer[T]) rebase(size int) {
	keep := rb.Len()
	if keep > size {
		keep = size
	}
	next := makeStore[T](size, rb.cols)
	if keep > 0 {
		rb.copyOut(rb.tail-int64(keep), keep, next.buf)
	}
	rb.store = next
	rb.head, rb.tail = 0, int64(keep)
}
