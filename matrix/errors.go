// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every function returns
// one of these (optionally wrapped with an operation tag) and tests check them
// via errors.Is. Nothing in this package panics on user input; option
// constructors panic only on programmer errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so log lines can be grepped.
// Callers in other packages may wrap these with their own sentinels using a
// second %w; errors.Is then matches both.
//
// ERROR PRIORITY (enforced by composite validators):
// nil -> shape -> tolerance -> finite -> sign -> diagonal -> symmetry.

var (
	// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two operands with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals |A[i,j]-A[j,i]| above the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a diagonal entry farther than eps from zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNegative signals a negative entry where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNaNInf signals a NaN or ±Inf value (entry or tolerance).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
