package resample

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/justengel/np-rw-buffer/pkg/rwbuf"
)

func TestWriterPassthrough(t *testing.T) {
	fb := rwbuf.NewFraming[float64](100, rwbuf.WithWindow(time.Second))
	w, err := NewWriter(fb, 100)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if w.SourceRate() != 100 {
		t.Errorf("source rate=%d", w.SourceRate())
	}

	in := []float64{0.5, -0.5, 0.25}
	if err := w.Write(rwbuf.Mono(in)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if fb.Len() != 3 {
		t.Fatalf("len=%d", fb.Len())
	}
	if got := fb.Read(3); !slices.Equal(got.Data(), in) {
		t.Fatalf("got=%v", got.Data())
	}

	if err := w.Write(rwbuf.Mono[float64](nil)); err != nil {
		t.Errorf("empty write: %v", err)
	}
}

func TestWriterDownsample(t *testing.T) {
	fb := rwbuf.NewFraming[float64](16000)
	w, err := NewWriter(fb, 48000)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	// One second of a 440 Hz tone in 10 ms chunks.
	chunk := make([]float64, 480)
	for i := range 100 {
		for j := range chunk {
			n := i*len(chunk) + j
			chunk[j] = math.Sin(2 * math.Pi * 440 * float64(n) / 48000)
		}
		if err := w.Write(rwbuf.Mono(chunk)); err != nil {
			t.Fatalf("write chunk %d: %v", i, err)
		}
	}
	// 48k samples at a 3:1 ratio come out near 16k rows; the filter
	// holds some back as latency.
	if got := fb.Len(); got < 12000 || got > 16800 {
		t.Fatalf("len=%d", got)
	}
}

func TestWriterStereo(t *testing.T) {
	fb := rwbuf.NewFraming[float64](16000, rwbuf.WithChannels(2))
	w, err := NewWriter(fb, 48000)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}

	chunk := make([]float64, 960) // 480 frames
	for i := range 20 {
		for f := 0; f < len(chunk)/2; f++ {
			n := i*480 + f
			v := math.Sin(2 * math.Pi * 220 * float64(n) / 48000)
			chunk[2*f] = v
			chunk[2*f+1] = -v
		}
		if err := w.Write(must(rwbuf.BlockOf(chunk, 2))); err != nil {
			t.Fatalf("write chunk %d: %v", i, err)
		}
	}
	// 9600 frames in, nominally 3200 out.
	if got := fb.Len(); got < 1600 || got > 3400 {
		t.Fatalf("len=%d", got)
	}
}

func TestWriterBadRate(t *testing.T) {
	fb := rwbuf.NewFraming[float64](16000)
	if _, err := NewWriter(fb, 0); !errors.Is(err, rwbuf.ErrInvalidArgument) {
		t.Errorf("zero rate: %v", err)
	}
	if _, err := NewWriter(fb, -8000); !errors.Is(err, rwbuf.ErrInvalidArgument) {
		t.Errorf("negative rate: %v", err)
	}
}

func TestWriterChannelMismatch(t *testing.T) {
	fb := rwbuf.NewFraming[float64](16000)
	w, err := NewWriter(fb, 16000)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if err := w.Write(rwbuf.MakeBlock[float64](4, 2)); !errors.Is(err, rwbuf.ErrShapeMismatch) {
		t.Errorf("err = %v, want ErrShapeMismatch", err)
	}
}

func must(b rwbuf.Block[float64], err error) rwbuf.Block[float64] {
	if err != nil {
		panic(err)
	}
	return b
}
