// SPDX-License-Identifier: MIT

// Package rdm holds Representational Dissimilarity Matrices and the
// Vectorizer that serializes them for comparison.
//
// An RDM is a square, symmetric, zero-diagonal matrix of non-negative
// dissimilarities between n experimental conditions. Only its strict upper
// triangle carries information, so comparisons work on the vectorized form:
//
//	m, _ := rdm.FromRows([][]float64{
//		{0, 1, 2},
//		{1, 0, 3},
//		{2, 3, 0},
//	})
//	v := m.Vectorize() // [1 2 3]
//
// Features:
//   - Row-major flat storage with bounds-checked At/Set (Set mirrors (i,j)→(j,i)).
//   - gonum interop: FromSymmetric, Sym, and Vectorize over any mat.Matrix.
//   - Validate for the numeric invariants (finite, ≥0, zero diagonal, symmetric).
//   - Stack: the n-dimensional RDM arrays returned by RDM builders
//     (per subject, per channel, per time bin, per searchlight block).
//
// Errors are package sentinels; every shape violation satisfies
// errors.Is(err, ErrShape).
package rdm
