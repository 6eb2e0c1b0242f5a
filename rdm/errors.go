// SPDX-License-Identifier: MIT
// Package rdm: sentinel error set.
// All functions return these sentinels (optionally wrapped with an operation
// tag); callers match them with errors.Is. Nothing in this package panics on
// user input.

package rdm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rsacorr/matrix"
)

var (
	// ErrShape is the umbrella for every shape violation (ShapeError).
	// ErrNonSquare, ErrTooSmall and ErrSizeMismatch all satisfy errors.Is(err, ErrShape).
	ErrShape = errors.New("rdm: shape violation")

	// ErrNonSquare signals a matrix whose row and column counts differ,
	// or a ragged row in FromRows.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrShape)

	// ErrTooSmall signals fewer than two conditions; such an RDM has no upper triangle.
	ErrTooSmall = fmt.Errorf("%w: need at least 2 conditions", ErrShape)

	// ErrSizeMismatch signals two RDMs (or stack slots) with different condition counts.
	ErrSizeMismatch = fmt.Errorf("%w: condition counts differ", ErrShape)

	// ErrNilRDM indicates a nil *RDM receiver, argument or empty stack slot.
	ErrNilRDM = errors.New("rdm: nil RDM")

	// ErrOutOfRange indicates a condition index outside [0,n).
	ErrOutOfRange = errors.New("rdm: index out of range")

	// ErrAsymmetry signals |m[i,j]-m[j,i]| above the validation tolerance.
	ErrAsymmetry = errors.New("rdm: matrix is not symmetric within tolerance")

	// ErrNonZeroDiagonal signals a diagonal entry away from zero.
	ErrNonZeroDiagonal = errors.New("rdm: diagonal not zero within tolerance")

	// ErrNegative signals a negative dissimilarity.
	ErrNegative = errors.New("rdm: negative dissimilarity")

	// ErrNaNInf signals a NaN or ±Inf entry.
	ErrNaNInf = errors.New("rdm: NaN or Inf encountered")
)

// rdmErrorf tags err with the operation that produced it.
func rdmErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// fromMatrix lifts a matrix-layer error into the rdm sentinel set.
// Both sentinels stay matchable: errors.Is(err, ErrAsymmetry) and
// errors.Is(err, matrix.ErrAsymmetry) hold for the same err.
func fromMatrix(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, p := range matrixSentinels {
		if errors.Is(err, p.from) {
			return fmt.Errorf("%s: %w: %w", op, p.to, err)
		}
	}

	return rdmErrorf(op, err)
}

// matrixSentinels maps matrix sentinels to their rdm counterparts.
var matrixSentinels = []struct{ from, to error }{
	{matrix.ErrNilMatrix, ErrNilRDM},
	{matrix.ErrBadShape, ErrTooSmall},
	{matrix.ErrNonSquare, ErrNonSquare},
	{matrix.ErrDimensionMismatch, ErrSizeMismatch},
	{matrix.ErrOutOfRange, ErrOutOfRange},
	{matrix.ErrNaNInf, ErrNaNInf},
	{matrix.ErrNegative, ErrNegative},
	{matrix.ErrNonZeroDiagonal, ErrNonZeroDiagonal},
	{matrix.ErrAsymmetry, ErrAsymmetry},
}
