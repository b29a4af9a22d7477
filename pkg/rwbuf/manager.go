package rwbuf

import "fmt"

// Manager controls the storage lifecycle of a RingBuffer that is only
// needed intermittently, such as one feeding an inactive visualization.
// Deactivating releases storage by reshaping to zero rows; reactivating
// reallocates the recorded shape, with the buffer coming back empty.
// Writes through the manager are dropped silently while it is inactive.
type Manager[T Sample] struct {
	// FreeMemory releases storage while inactive. When false,
	// deactivation only gates writes and the storage stays allocated.
	// Enabled by default.
	FreeMemory bool

	buf        *RingBuffer[T]
	rows, cols int
	active     bool
}

// NewManager wraps rb, recording its current shape as the one to restore
// on reactivation. The manager starts active.
func NewManager[T Sample](rb *RingBuffer[T]) *Manager[T] {
	rows, cols := rb.Shape()
	return &Manager[T]{FreeMemory: true, buf: rb, rows: rows, cols: cols, active: true}
}

// Buffer returns the managed buffer for operations the manager does not
// gate.
func (m *Manager[T]) Buffer() *RingBuffer[T] { return m.buf }

// Active reports whether the managed buffer is in use.
func (m *Manager[T]) Active() bool { return m.active }

// SetActive activates or deactivates the managed buffer. With FreeMemory
// set, deactivation reshapes storage to zero rows and activation
// restores the recorded shape.
func (m *Manager[T]) SetActive(active bool) {
	m.active = active
	if !m.FreeMemory {
		return
	}
	if active {
		m.buf.SetShape(m.rows, m.cols)
	} else {
		m.buf.SetShape(0, m.cols)
	}
}

// Shape returns the recorded shape, which the managed buffer matches
// whenever it is active.
func (m *Manager[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// SetShape records a new shape. It applies to the buffer immediately
// unless the manager is inactive with FreeMemory set, in which case it
// applies on reactivation.
func (m *Manager[T]) SetShape(rows, cols int) error {
	if rows < 0 || cols < 1 {
		return fmt.Errorf("rwbuf: shape %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	m.rows, m.cols = rows, cols
	if m.active || !m.FreeMemory {
		return m.buf.SetShape(rows, cols)
	}
	return nil
}

// Write delegates to the buffer's strict write, dropping the batch
// silently while the manager is inactive with FreeMemory set.
func (m *Manager[T]) Write(data Block[T]) error {
	if !m.active && m.FreeMemory {
		return nil
	}
	return m.buf.Write(data)
}

// Overwrite delegates to the buffer's non-strict write under the same
// gate as Write.
func (m *Manager[T]) Overwrite(data Block[T]) error {
	if !m.active && m.FreeMemory {
		return nil
	}
	return m.buf.Overwrite(data)
}

// Read delegates to the buffer; while storage is freed it returns empty
// blocks.
func (m *Manager[T]) Read(n int) Block[T] { return m.buf.Read(n) }

// Len returns the buffered length.
func (m *Manager[T]) Len() int { return m.buf.Len() }
