package rwbuf

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Blocks share gonum's dense row-major layout, so float64 data moves
// between the two without reshaping. Both directions copy; a matrix and
// a block never alias.

// Dense returns b as a gonum matrix. Empty blocks yield an empty Dense.
func Dense(b Block[float64]) *mat.Dense {
	if b.Rows() == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(b.Rows(), b.cols, slices.Clone(b.data))
}

// BlockFromDense copies m into a block of the same dimensions.
func BlockFromDense(m mat.Matrix) Block[float64] {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return Block[float64]{}
	}
	out := MakeBlock[float64](r, c)
	for i := range r {
		for j := range c {
			out.data[i*c+j] = m.At(i, j)
		}
	}
	return out
}
