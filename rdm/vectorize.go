// SPDX-License-Identifier: MIT
// Package: rdm
//
// Purpose:
//   - Serialize the strict upper triangle of an RDM into a flat sequence.
//
// Ordering contract:
//   - Outer index i ascends 0..n-2, inner index j ascends i+1..n-1.
//   - Output length is exactly n(n-1)/2.
//   - Two RDMs compared against each other MUST share n, otherwise the
//     positions would not refer to the same condition pairs.

package rdm

import (
	"gonum.org/v1/gonum/mat"
)

// TriangleLen returns n(n-1)/2, the length of a vectorized n×n RDM.
func TriangleLen(n int) int {
	if n < minConditions {
		return 0
	}

	return n * (n - 1) / 2
}

// Vectorize returns the strict upper triangle of m in row-major order.
//
// Implementation:
//   - Stage 1: allocate exactly TriangleLen(n) slots.
//   - Stage 2: for each row i < n-1, append the run (i, i+1..n-1) straight
//     from the dense row view; no per-element bounds checks.
//
// Inputs:
//   - m: a non-nil RDM. Its lower triangle and diagonal are never read, so an
//     asymmetric matrix vectorizes without complaint (see Validate).
//
// Returns:
//   - []float64 of length n(n-1)/2, owned by the caller.
//
// Determinism:
//   - Position k always maps to the same (i,j) pair for a given n, which is
//     what makes two vectors from same-size RDMs comparable element-wise.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the output.
//
// AI-Hints:
//   - Use VectorizePair when the second RDM comes from another builder; it
//     checks the sizes before slicing.
func (m *RDM) Vectorize() []float64 {
	out := make([]float64, 0, TriangleLen(m.n))
	for i := 0; i < m.n-1; i++ {
		row, _ := m.d.RowView(i) // i < n
		out = append(out, row[i+1:]...)
	}

	return out
}

// Vectorize extracts the strict upper triangle of any gonum matrix.
//
// Inputs:
//   - a: a square mat.Matrix with at least two rows. Symmetry is not checked;
//     only entries (i,j) with i<j are read.
//
// Returns:
//   - []float64 of length n(n-1)/2 in the same order as (*RDM).Vectorize, so
//     a gonum matrix and an RDM over the same conditions line up.
//
// Errors:
//   - ErrNilRDM if a is nil, ErrNonSquare if rows != cols, ErrTooSmall if n < 2.
//
// Complexity:
//   - Time O(n²) through a.At; prefer (*RDM).Vectorize in hot loops.
func Vectorize(a mat.Matrix) ([]float64, error) {
	if a == nil {
		return nil, rdmErrorf("Vectorize", ErrNilRDM)
	}
	r, c := a.Dims()
	if r != c {
		return nil, rdmErrorf("Vectorize", ErrNonSquare)
	}
	if r < minConditions {
		return nil, rdmErrorf("Vectorize", ErrTooSmall)
	}

	out := make([]float64, 0, TriangleLen(r))
	for i := 0; i < r-1; i++ {
		for j := i + 1; j < r; j++ {
			out = append(out, a.At(i, j))
		}
	}

	return out, nil
}

// VectorizePair vectorizes a and b after checking they describe the same
// number of conditions.
// Errors: ErrNilRDM, ErrSizeMismatch.
func VectorizePair(a, b *RDM) ([]float64, []float64, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, nil, rdmErrorf("VectorizePair", err)
	}

	return a.Vectorize(), b.Vectorize(), nil
}
