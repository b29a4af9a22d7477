package rwbuf

import (
	"fmt"
	"log/slog"
	"time"
)

// FramingBuffer is a free-running buffer for real-time framing. Its
// write and read cursors advance independently: writes land
// unconditionally, overwriting stale rows when the writer laps the
// reader (overrun), and reads always return the requested number of
// rows, synthesizing zeros for positions with no buffered data
// (underrun). The capacity is derived from a sample rate and a time
// window and is always at least one row.
//
// Only positions inside the live horizon read back as data: those the
// write cursor has reached and not yet lapped, [max(0, end-Cap), end).
// Everything before construction, ahead of the writer, or aged past one
// capacity behind it reads as silence.
//
// A priming delay offsets the read cursor behind the first write, so a
// consumer that starts immediately drains one delay of silence while the
// producer builds up its lead.
type FramingBuffer[T Sample] struct {
	store[T]
	start, end int64

	rate   int
	window time.Duration
	delay  time.Duration
}

// FramingOption configures a FramingBuffer.
type FramingOption interface {
	apply(*framingConfig)
}

type framingConfig struct {
	channels int
	window   time.Duration
	delay    time.Duration
}

type channelsOption int

func (o channelsOption) apply(c *framingConfig) {
	c.channels = int(o)
}

// WithChannels sets the number of columns per row. Defaults to 1.
func WithChannels(n int) FramingOption {
	return channelsOption(n)
}

type windowOption time.Duration

func (o windowOption) apply(c *framingConfig) {
	c.window = time.Duration(o)
}

// WithWindow sets the buffered time span; the capacity is the sample
// rate times this window, rounded up. Defaults to 2s.
func WithWindow(d time.Duration) FramingOption {
	return windowOption(d)
}

type delayOption time.Duration

func (o delayOption) apply(c *framingConfig) {
	c.delay = time.Duration(o)
}

// WithDelay starts the read cursor the given interval behind the write
// cursor, so playback begins after a priming interval of silence.
// Defaults to 0.
func WithDelay(d time.Duration) FramingOption {
	return delayOption(d)
}

// NewFraming returns a buffer spanning one window of samples at
// sampleRate. It panics on a non-positive rate or window and on a delay
// outside [0, window]; setters past construction report such arguments
// as errors instead.
func NewFraming[T Sample](sampleRate int, opts ...FramingOption) *FramingBuffer[T] {
	cfg := framingConfig{channels: 1, window: 2 * time.Second}
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if sampleRate <= 0 {
		panic("rwbuf: non-positive sample rate")
	}
	if cfg.window <= 0 {
		panic("rwbuf: non-positive window")
	}
	if cfg.delay < 0 || cfg.delay > cfg.window {
		panic("rwbuf: delay outside window")
	}
	fb := &FramingBuffer[T]{
		store:  makeStore[T](samplesIn(sampleRate, cfg.window), cfg.channels),
		rate:   sampleRate,
		window: cfg.window,
		delay:  cfg.delay,
	}
	fb.Clear()
	return fb
}

// samplesIn converts a duration at rate to a whole number of sample
// rows, rounding up so a span is never undersized.
func samplesIn(rate int, d time.Duration) int {
	n := int64(rate) * int64(d)
	q := n / int64(time.Second)
	if n%int64(time.Second) != 0 {
		q++
	}
	return int(q)
}

// Len reports how far the read cursor trails the write cursor, clamped
// to [0, Cap]. The priming delay counts toward the lag; it drains as
// leading silence.
func (fb *FramingBuffer[T]) Len() int {
	lag := fb.end - fb.start
	if lag < 0 {
		return 0
	}
	if c := int64(fb.capRows()); lag > c {
		return int(c)
	}
	return int(lag)
}

// Cap returns the buffer capacity in rows.
func (fb *FramingBuffer[T]) Cap() int { return fb.capRows() }

// Cols returns the number of columns per row.
func (fb *FramingBuffer[T]) Cols() int { return fb.cols }

// Channels returns the column count under its audio name.
func (fb *FramingBuffer[T]) Channels() int { return fb.cols }

// Available returns Cap minus Len.
func (fb *FramingBuffer[T]) Available() int { return fb.capRows() - fb.Len() }

// SampleRate returns the rate the capacity and delay are derived from.
func (fb *FramingBuffer[T]) SampleRate() int { return fb.rate }

// Window returns the buffered time span.
func (fb *FramingBuffer[T]) Window() time.Duration { return fb.window }

// Delay returns the priming interval applied by Clear.
func (fb *FramingBuffer[T]) Delay() time.Duration { return fb.delay }

// Clear resets the cursors to their construction state: the read cursor
// sits one priming delay behind the write cursor and the live horizon is
// empty, so every read returns silence until new writes land.
func (fb *FramingBuffer[T]) Clear() {
	fb.start = -int64(samplesIn(fb.rate, fb.delay))
	fb.end = 0
}

// Write copies data at the write cursor unconditionally and advances it
// by the batch length. A batch longer than the whole buffer keeps only
// its last Cap rows. Rows the read cursor has not consumed are lost when
// the writer laps it; the overrun distance is logged at debug level.
func (fb *FramingBuffer[T]) Write(data Block[T]) error {
	if err := fb.checkShape(data); err != nil {
		return err
	}
	n := data.Rows()
	if n == 0 {
		return nil
	}
	c := fb.capRows()
	if n > c {
		data = data.Slice(n-c, n)
	}
	fb.copyIn(fb.end+int64(n-data.Rows()), data.data)
	fb.end += int64(n)
	if lag := fb.end - fb.start; lag > int64(c) {
		slog.Debug("rwbuf: write overruns reader", "rows", lag-int64(c))
	}
	return nil
}

// Read returns exactly n rows and advances the read cursor by n
// unconditionally, unlike RingBuffer's clamp-or-reject reads. Rows
// inside the live horizon carry buffered samples; everything else reads
// as zero. The cursor may run ahead of the writer indefinitely,
// returning trailing silence while production stalls. Negative n panics.
func (fb *FramingBuffer[T]) Read(n int) Block[T] {
	if n < 0 {
		panic("rwbuf: negative read amount")
	}
	out := MakeBlock[T](n, fb.cols)
	if n == 0 {
		return out
	}
	lo := max(fb.end-int64(fb.capRows()), 0)
	a := max(fb.start, lo)
	b := min(fb.start+int64(n), fb.end)
	if a < b {
		fb.copyOut(a, int(b-a), out.data[(a-fb.start)*int64(fb.cols):])
	}
	fb.start += int64(n)
	return out
}

// SetSampleRate re-times the buffer: the capacity is re-derived from the
// new rate and the current window. The newest live rows and the reader's
// lag carry over.
func (fb *FramingBuffer[T]) SetSampleRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("rwbuf: sample rate %d: %w", rate, ErrInvalidArgument)
	}
	fb.rate = rate
	fb.retime()
	return nil
}

// SetWindow resizes the buffered time span, preserving the newest live
// rows and the reader's lag. The window cannot shrink below the delay.
func (fb *FramingBuffer[T]) SetWindow(d time.Duration) error {
	if d <= 0 || d < fb.delay {
		return fmt.Errorf("rwbuf: window %v with delay %v: %w", d, fb.delay, ErrInvalidArgument)
	}
	fb.window = d
	fb.retime()
	return nil
}

// SetDelay adjusts the priming interval applied by the next Clear. The
// current cursor offset is left alone.
func (fb *FramingBuffer[T]) SetDelay(d time.Duration) error {
	if d < 0 || d > fb.window {
		return fmt.Errorf("rwbuf: delay %v outside window %v: %w", d, fb.window, ErrInvalidArgument)
	}
	fb.delay = d
	return nil
}

// SetChannels reshapes to n columns and resets the stream; rows cannot
// be reinterpreted across widths.
func (fb *FramingBuffer[T]) SetChannels(n int) error {
	if n < 1 {
		return fmt.Errorf("rwbuf: %d channels: %w", n, ErrInvalidArgument)
	}
	if n != fb.cols {
		c := fb.capRows()
		fb.store = makeStore[T](c, n)
		fb.Clear()
	}
	return nil
}

// retime rebuilds storage for the current rate and window, carrying over
// the newest live rows and the reader's lag behind the writer.
func (fb *FramingBuffer[T]) retime() {
	lag := fb.end - fb.start
	next := makeStore[T](samplesIn(fb.rate, fb.window), fb.cols)
	keep := min(fb.end, int64(fb.capRows()), int64(next.capRows()))
	if keep > 0 {
		fb.copyOut(fb.end-keep, int(keep), next.buf)
	}
	fb.store = next
	fb.end = keep
	fb.start = keep - lag
}
