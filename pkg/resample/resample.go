// Package resample feeds sample data into a FramingBuffer from a source
// running at a different rate, converting on the way in with a pure Go
// resampler (no CGO/FFI dependencies).
package resample

import (
	"fmt"

	resampling "github.com/tphakala/go-audio-resampling"

	"github.com/justengel/np-rw-buffer/pkg/rwbuf"
)

// Writer converts blocks from a source sample rate to its buffer's rate
// and writes them through. Blocks are interleaved float64 frames, the
// resampler's native element type; convert other sample types with
// rwbuf.ConvertBlock first.
//
// Writer keeps filter state between calls and is not safe for concurrent
// use.
type Writer struct {
	fb        *rwbuf.FramingBuffer[float64]
	resampler resampling.Resampler
	srcRate   int
}

// NewWriter returns a Writer feeding fb from a source at srcRate. Equal
// rates pass data through untouched.
func NewWriter(fb *rwbuf.FramingBuffer[float64], srcRate int) (*Writer, error) {
	if srcRate <= 0 {
		return nil, fmt.Errorf("resample: source rate %d: %w", srcRate, rwbuf.ErrInvalidArgument)
	}
	w := &Writer{fb: fb, srcRate: srcRate}
	if srcRate != fb.SampleRate() {
		config := &resampling.Config{
			InputRate:  float64(srcRate),
			OutputRate: float64(fb.SampleRate()),
			Channels:   fb.Channels(),
			Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
		}
		resampler, err := resampling.New(config)
		if err != nil {
			return nil, fmt.Errorf("resample: create resampler: %w", err)
		}
		w.resampler = resampler
	}
	return w, nil
}

// SourceRate returns the rate incoming blocks are taken to be at.
func (w *Writer) SourceRate() int { return w.srcRate }

// Write resamples b from the source rate and writes the result to the
// buffer. Filter latency means early calls can emit fewer rows than they
// consume, or none at all; that is not an error.
func (w *Writer) Write(b rwbuf.Block[float64]) error {
	if b.Rows() > 0 && b.Cols() != w.fb.Channels() {
		return fmt.Errorf("resample: %d-channel block for %d-channel buffer: %w",
			b.Cols(), w.fb.Channels(), rwbuf.ErrShapeMismatch)
	}
	if w.resampler == nil {
		return w.fb.Write(b)
	}
	if b.Rows() == 0 {
		return nil
	}
	out, err := w.resampler.Process(b.Data())
	if err != nil {
		return fmt.Errorf("resample: process: %w", err)
	}
	ch := w.fb.Channels()
	out = out[:len(out)/ch*ch]
	if len(out) == 0 {
		return nil
	}
	blk, err := rwbuf.BlockOf(out, ch)
	if err != nil {
		return err
	}
	return w.fb.Write(blk)
}
