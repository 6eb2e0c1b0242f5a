// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rsacorr/rdm"
)

var (
	// ErrUnknownMethod is returned for a Method outside the closed set,
	// including the zero Method and unrecognized names in ParseMethod.
	ErrUnknownMethod = errors.New("compare: unknown method")

	// ErrLengthMismatch signals pre-vectorized inputs of different lengths.
	// It is a shape violation: errors.Is(err, rdm.ErrShape) holds.
	ErrLengthMismatch = fmt.Errorf("%w: vector lengths differ", rdm.ErrShape)
)

// compareErrorf tags err with the failing operation.
func compareErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
