// SPDX-License-Identifier: MIT
// Package: rdm
//
// Purpose:
//   - One place for the numeric invariants of an RDM: finite, non-negative,
//     zero diagonal, symmetric within a tolerance.
//   - Each check is a matrix validator run on the backing Dense; this file
//     fixes their order and lifts matrix sentinels into rdm ones.
//   - Comparison itself only reads the upper triangle, so these checks are
//     opt-in for callers who receive RDMs from untrusted builders.
//
// Determinism:
//   - Fixed i→j traversal; the first violation found in that order is reported.

package rdm

import (
	"github.com/katalvlaran/rsacorr/matrix"
)

// DefaultTolerance is the symmetry / diagonal tolerance used by ValidateDefault.
const DefaultTolerance = matrix.DefaultEpsilon

// Validate checks the RDM invariants with tolerance tol.
//
// Implementation:
//   - Stage 1 (Guards): nil RDM, then tol must be finite (|tol| is used).
//   - Stage 2 (Values): every entry finite, then every entry ≥ 0.
//   - Stage 3 (Structure): |m[i,i]| ≤ tol, then |m[i,j]-m[j,i]| ≤ tol over
//     the strict upper triangle.
//
// Inputs:
//   - m: RDM to check; nil is an error, not a panic.
//   - tol: absolute tolerance for the diagonal and symmetry checks.
//
// Returns:
//   - nil when all invariants hold.
//
// Errors:
//   - ErrNilRDM; ErrNaNInf (entry or tol); ErrNegative; ErrNonZeroDiagonal;
//     ErrAsymmetry. Each also matches the corresponding matrix sentinel and
//     names the first offending (i,j).
//
// Determinism:
//   - The stage order above is fixed, so an RDM with several violations
//     always reports the same one.
//
// Complexity:
//   - Time O(n²), no allocations on success.
//
// AI-Hints:
//   - ValidateDefault uses the tolerance the RDM was created with.
//   - A NaN entry is reported as ErrNaNInf, never as ErrAsymmetry.
func Validate(m *RDM, tol float64) error {
	if m == nil {
		return rdmErrorf("Validate", ErrNilRDM)
	}
	if _, err := matrix.ValidateTolerance(tol); err != nil {
		return fromMatrix("Validate: tolerance", err)
	}
	if err := matrix.ValidateFinite(m.d); err != nil {
		return fromMatrix("Validate", err)
	}
	if err := matrix.ValidateNonNegative(m.d); err != nil {
		return fromMatrix("Validate", err)
	}
	if err := matrix.ValidateZeroDiagonal(m.d, tol); err != nil {
		return fromMatrix("Validate", err)
	}
	if err := matrix.ValidateSymmetric(m.d, tol); err != nil {
		return fromMatrix("Validate", err)
	}

	return nil
}

// ValidateDefault runs Validate with the tolerance the RDM was created with
// (DefaultTolerance for every constructor in this package).
func ValidateDefault(m *RDM) error {
	if m == nil {
		return rdmErrorf("ValidateDefault", ErrNilRDM)
	}

	return Validate(m, m.d.Epsilon())
}

// ValidateSameSize checks that a and b are non-nil and share n.
// Errors: ErrNilRDM, ErrSizeMismatch.
func ValidateSameSize(a, b *RDM) error {
	if a == nil || b == nil {
		return rdmErrorf("ValidateSameSize", ErrNilRDM)
	}

	return fromMatrix("ValidateSameSize", matrix.ValidateSameShape(a.d, b.d))
}
