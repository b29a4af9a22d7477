package rwbuf

// Element types are fixed at compile time, so changing one means
// reallocating and migrating: each Convert function builds a new buffer
// of the destination type with the same shape, cursors and logical
// contents. Conversions follow Go numeric conversion rules: float to
// integer truncates, narrowing wraps. No rescaling is applied.

// ConvertBlock returns a copy of b with every sample converted to Dst.
func ConvertBlock[Dst, Src Sample](b Block[Src]) Block[Dst] {
	out := Block[Dst]{data: make([]Dst, len(b.data)), cols: b.cols}
	for i, v := range b.data {
		out.data[i] = Dst(v)
	}
	return out
}

// ConvertRing returns a new RingBuffer of element type Dst holding the
// converted contents of rb. Cursors carry over exactly, so the logical
// state is unchanged. rb itself is untouched.
func ConvertRing[Dst, Src Sample](rb *RingBuffer[Src]) *RingBuffer[Dst] {
	return &RingBuffer[Dst]{
		store: convertStore[Dst](rb.store),
		head:  rb.head,
		tail:  rb.tail,
	}
}

// ConvertFraming returns a new FramingBuffer of element type Dst holding
// the converted contents of fb, with the cursors, rate, window and delay
// carried over. fb itself is untouched.
func ConvertFraming[Dst, Src Sample](fb *FramingBuffer[Src]) *FramingBuffer[Dst] {
	return &FramingBuffer[Dst]{
		store:  convertStore[Dst](fb.store),
		start:  fb.start,
		end:    fb.end,
		rate:   fb.rate,
		window: fb.window,
		delay:  fb.delay,
	}
}

func convertStore[Dst, Src Sample](s store[Src]) store[Dst] {
	out := store[Dst]{buf: make([]Dst, len(s.buf)), cols: s.cols}
	for i, v := range s.buf {
		out.buf[i] = Dst(v)
	}
	return out
}
