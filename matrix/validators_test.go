// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rsacorr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense without the finite-only policy so NaN fixtures load.
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	for i := range rows {
		for j, v := range rows[i] {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// TestValidateShape covers nil, square and same-shape guards.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	sq := fromRows(t, [][]float64{{0, 1}, {1, 0}})
	wide := fromRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}})

	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(sq))

	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	assert.NoError(t, matrix.ValidateSquare(sq))

	assert.ErrorIs(t, matrix.ValidateSameShape(nil, sq), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSameShape(sq, sq.Clone()))
}

// TestValidateTolerance normalizes sign and rejects non-finite values.
func TestValidateTolerance(t *testing.T) {
	tol, err := matrix.ValidateTolerance(-1e-3)
	require.NoError(t, err)
	assert.Equal(t, 1e-3, tol)

	_, err = matrix.ValidateTolerance(math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestValidateElements covers the element scans and their tolerance handling.
func TestValidateElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		check   func(matrix.Matrix) error
		rows    [][]float64
		wantErr error
	}{
		{"finite ok", matrix.ValidateFinite, [][]float64{{0, 1}, {1, 0}}, nil},
		{"finite nan", matrix.ValidateFinite, [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrNaNInf},
		{"finite inf", matrix.ValidateFinite, [][]float64{{0, 1}, {math.Inf(1), 0}}, matrix.ErrNaNInf},
		{"non-negative ok", matrix.ValidateNonNegative, [][]float64{{0, 1}, {1, 0}}, nil},
		{"negative", matrix.ValidateNonNegative, [][]float64{{0, 1}, {-1, 0}}, matrix.ErrNegative},
		{"diagonal ok", func(m matrix.Matrix) error { return matrix.ValidateZeroDiagonal(m, 1e-9) }, [][]float64{{1e-12, 1}, {1, 0}}, nil},
		{"diagonal", func(m matrix.Matrix) error { return matrix.ValidateZeroDiagonal(m, 1e-9) }, [][]float64{{0, 1}, {1, 0.5}}, matrix.ErrNonZeroDiagonal},
		{"diagonal nan tol", func(m matrix.Matrix) error { return matrix.ValidateZeroDiagonal(m, math.NaN()) }, [][]float64{{0, 1}, {1, 0}}, matrix.ErrNaNInf},
		{"diagonal wide", func(m matrix.Matrix) error { return matrix.ValidateZeroDiagonal(m, 0) }, [][]float64{{0, 1, 2}}, matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(fromRows(t, tc.rows))
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSymmetric covers tolerance handling and the reported pair.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := fromRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	near := fromRows(t, [][]float64{{0, 1}, {1 + 1e-12, 0}})
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)

	// first violation in i→j order is (0,2), not (1,2)
	bad := fromRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {5, 4, 0}})
	err := matrix.ValidateSymmetric(bad, 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	assert.Contains(t, err.Error(), "(0,2)")

	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(fromRows(t, [][]float64{{0, 1}}), 0), matrix.ErrNonSquare)

	one := fromRows(t, [][]float64{{7}})
	require.NoError(t, matrix.ValidateSymmetric(one, 0))
}
