package circidx

import (
	"errors"
	"slices"
	"testing"
)

func TestRange(t *testing.T) {
	t.Run("contiguous at front", func(t *testing.T) {
		s, err := Range(0, 5, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		if s.Start() != 0 {
			t.Errorf("Start() = %d, want 0", s.Start())
		}
		if !s.Contiguous() {
			t.Error("Contiguous() = false, want true")
		}
		lead, wrap := s.Split()
		if lead != 5 || wrap != 0 {
			t.Errorf("Split() = (%d, %d), want (5, 0)", lead, wrap)
		}
	})

	t.Run("contiguous ending at capacity", func(t *testing.T) {
		s, err := Range(3, 7, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		if !s.Contiguous() {
			t.Error("Contiguous() = false, want true")
		}
		if got := s.Indices(); !slices.Equal(got, []int{3, 4, 5, 6, 7, 8, 9}) {
			t.Errorf("Indices() = %v", got)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		s, err := Range(7, 5, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		if s.Contiguous() {
			t.Error("Contiguous() = true, want false")
		}
		lead, wrap := s.Split()
		if lead != 3 || wrap != 2 {
			t.Errorf("Split() = (%d, %d), want (3, 2)", lead, wrap)
		}
		if got := s.Indices(); !slices.Equal(got, []int{7, 8, 9, 0, 1}) {
			t.Errorf("Indices() = %v", got)
		}
	})

	t.Run("cursor beyond capacity", func(t *testing.T) {
		s, err := Range(23, 4, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		if s.Start() != 3 {
			t.Errorf("Start() = %d, want 3", s.Start())
		}
	})

	t.Run("large cursor", func(t *testing.T) {
		s, err := Range(1<<40+7, 5, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		want := int((1<<40 + 7) % 10)
		if s.Start() != want {
			t.Errorf("Start() = %d, want %d", s.Start(), want)
		}
	})

	t.Run("zero length", func(t *testing.T) {
		s, err := Range(123456, 0, 10)
		if err != nil {
			t.Fatalf("Range() error = %v", err)
		}
		if !s.Contiguous() {
			t.Error("Contiguous() = false, want true")
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d, want 0", s.Len())
		}
		if got := s.Indices(); len(got) != 0 {
			t.Errorf("Indices() = %v, want empty", got)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := Range(0, -1, 10)
		if !errors.Is(err, ErrNegativeLength) {
			t.Errorf("Range() error = %v, want ErrNegativeLength", err)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		_, err := Range(0, 1, 0)
		if !errors.Is(err, ErrZeroCapacity) {
			t.Errorf("Range() error = %v, want ErrZeroCapacity", err)
		}
	})
}

// Row i of a span must land at (start+i) mod capacity, for any start and
// any length, including lengths past the capacity.
func TestIndicesFormula(t *testing.T) {
	const capacity = 7
	for start := range 30 {
		for length := range 20 {
			s, err := Range(int64(start), length, capacity)
			if err != nil {
				t.Fatalf("Range(%d, %d, %d) error = %v", start, length, capacity, err)
			}
			idx := s.Indices()
			if len(idx) != length {
				t.Fatalf("len(Indices()) = %d, want %d", len(idx), length)
			}
			for i, p := range idx {
				if want := (start + i) % capacity; p != want {
					t.Fatalf("Range(%d, %d, %d).Indices()[%d] = %d, want %d",
						start, length, capacity, i, p, want)
				}
			}
		}
	}
}

// A span is contiguous exactly when (start mod cap) + length <= cap.
func TestContiguityRule(t *testing.T) {
	const capacity = 8
	for start := range 25 {
		for length := range capacity + 1 {
			s, err := Range(int64(start), length, capacity)
			if err != nil {
				t.Fatalf("Range(%d, %d, %d) error = %v", start, length, capacity, err)
			}
			want := start%capacity+length <= capacity
			if got := s.Contiguous(); got != want {
				t.Errorf("Range(%d, %d, %d).Contiguous() = %v, want %v",
					start, length, capacity, got, want)
			}
			lead, wrap := s.Split()
			if lead+wrap != length {
				t.Errorf("Split() = (%d, %d), sum %d, want %d", lead, wrap, lead+wrap, length)
			}
			if want && wrap != 0 {
				t.Errorf("contiguous span has wrap %d", wrap)
			}
		}
	}
}

func BenchmarkRange(b *testing.B) {
	var cursor int64
	for i := 0; i < b.N; i++ {
		s, _ := Range(cursor, 480, 48000)
		lead, wrap := s.Split()
		cursor += int64(lead + wrap)
	}
}
