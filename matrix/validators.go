// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors tagged with the validator (and the offending
//     coordinates) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//   - Element scans run in fixed i→j order; the first violation in that
//     order is the one reported.
//
// AI-Hints:
//   - Call ValidateTolerance once up front when a composite check takes a tol.
//   - ValidateSymmetric scans the strict upper triangle only.
//
// Note:
//   - The shape validators guard nil; the element scans assume a non-nil
//     argument and are meant to follow ValidateNotNil or ValidateSquare.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for a tolerance; negative values are flipped.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d vs %d", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d vs %d", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateTolerance checks that tol is finite and returns |tol|.
// Errors: ErrNaNInf.
func ValidateTolerance(tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, validatorErrorf("ValidateTolerance", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol // a negative tolerance is read as its magnitude
	}

	return tol, nil
}

// ValidateFinite checks that every entry of m is finite.
// Errors: ErrNaNInf tagged with the first offending (i,j).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative checks that no entry of m is below zero.
// NaN entries pass; pair it with ValidateFinite.
// Errors: ErrNegative tagged with the first offending (i,j).
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegative)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i.
//
// Inputs: square Matrix m, tolerance tol (negative is read as |tol|).
// Errors: ErrNonSquare, ErrNaNInf on bad tol, ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return validatorErrorf("ValidateZeroDiagonal", err)
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d,%d)", i, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs:
//   - m: square Matrix.
//   - tol: finite tolerance; a negative value is read as |tol|.
//
// Returns:
//   - nil when every pair is within tol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare on structural issues.
//   - ErrNaNInf on a NaN/Inf tol.
//   - ErrAsymmetry tagged with the first (i,j) in i→j order that violates tol.
//
// Determinism:
//   - Fixed upper-triangle scan; the same input always reports the same pair.
//
// Complexity:
//   - Time O(n²), Space O(1).
//
// AI-Hints:
//   - A NaN on either side never exceeds tol; run ValidateFinite first.
func ValidateSymmetric(m Matrix, tol float64) error {
	// Guard nil first.
	if m == nil {
		return validatorErrorf("ValidateSymmetric", ErrNilMatrix)
	}
	// Shape before numbers.
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	// Normalize tolerance to a non-negative finite value.
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}

	// A 1×1 matrix is trivially symmetric.
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	var (
		i, j     int     // loop counters
		aij, aji float64 // mirrored pair
	)
	for i = 0; i < n; i++ { // fixed row loop
		for j = i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
