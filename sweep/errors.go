// SPDX-License-Identifier: MIT
// Package sweep: sentinel error set.
// Every failure aborts the whole call: no partially filled Output is ever
// returned. Match with errors.Is; shape problems also satisfy
// errors.Is(err, rdm.ErrShape).

package sweep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rsacorr/rdm"
)

var (
	// ErrUnsupportedCombination marks an axis combination the builders cannot
	// satisfy, e.g. a per-subject sweep over behavioural data without trial
	// level responses. The call returns a nil Output and calls no builder.
	ErrUnsupportedCombination = errors.New("sweep: unsupported axis combination")

	// ErrNilBuilder indicates a nil RDM builder argument.
	ErrNilBuilder = errors.New("sweep: nil RDM builder")

	// ErrInvalidConfig indicates an out-of-range configuration value
	// (time window, ECoG mode).
	ErrInvalidConfig = errors.New("sweep: invalid configuration")

	// ErrStackShape signals a builder result whose axes disagree with the
	// requested layout or with the other modality.
	ErrStackShape = fmt.Errorf("%w: builder output does not match the sweep layout", rdm.ErrShape)

	// ErrBadGrid signals a searchlight kernel, stride or volume that yields no block.
	ErrBadGrid = fmt.Errorf("%w: invalid searchlight grid", rdm.ErrShape)
)

// sweepErrorf tags err with the entry point that produced it.
func sweepErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
