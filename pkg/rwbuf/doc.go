// Package rwbuf provides fixed-capacity wraparound buffers for streaming
// sample data shaped as rows by columns.
//
// The package offers two buffer types over the same storage and index
// machinery, differing in their cursor discipline:
//
//   - RingBuffer: a bounded FIFO whose length never exceeds its capacity.
//     Strict writes fail on overflow before touching storage, non-strict
//     writes drop the oldest rows, and reads are failure-soft. Suited to
//     lossless pipelines with backpressure.
//
//   - FramingBuffer: a free-running buffer whose write and read cursors
//     advance independently. Writes never fail, reads always deliver the
//     requested number of rows and zero-fill whatever is not buffered.
//     Suited to real-time audio framing with a fixed latency budget.
//
// Data moves in and out as Block values: rows-by-columns batches in flat
// row-major storage. A row is one sample frame; columns are channels.
// Blocks returned by reads are owned copies and never alias live storage.
//
// Buffers are not synchronized. They are built for one writer and one
// reader coordinated externally; wrap access in a mutex when ownership is
// shared.
//
// Example usage:
//
//	// 2 seconds of mono float32 at 48kHz; reads start 250ms behind the
//	// first write, so playback begins after a priming interval of silence
//	fb := rwbuf.NewFraming[float32](48000, rwbuf.WithDelay(250*time.Millisecond))
//
//	// producer side
//	fb.Write(rwbuf.Mono(samples))
//
//	// consumer side: fixed frames, underruns come back zero-filled
//	frame := fb.Read(480)
package rwbuf
