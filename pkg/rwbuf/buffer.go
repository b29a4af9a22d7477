package rwbuf

var (
	_ Buffer[int16]   = (*RingBuffer[int16])(nil)
	_ Buffer[float32] = (*FramingBuffer[float32])(nil)
)

// Sample is the set of element types a buffer can store: the integer and
// floating-point widths sample data travels in.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Buffer is the capability set shared by RingBuffer and FramingBuffer.
// It abstracts over the two cursor disciplines for callers that only move
// data and do not resize: what Write and Read do on overflow and underrun
// is up to the implementation.
type Buffer[T Sample] interface {
	Write(data Block[T]) error
	Read(n int) Block[T]
	Clear()
	Available() int
	Len() int
	Cap() int
	Cols() int
}
