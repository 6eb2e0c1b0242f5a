// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rsacorr/rdm"
)

// Result is the two-slot outcome of one comparison.
//
// Correlation methods fill (coefficient, two-sided p-value). Similarity and
// Distance fill Value and leave P at 0, so every caller can index both slots.
type Result struct {
	Value float64
	P     float64
}

// Array returns the result as [Value, P].
func (r Result) Array() [2]float64 {
	return [2]float64{r.Value, r.P}
}

// Abs returns the result with both slots replaced by their magnitudes.
func (r Result) Abs() Result {
	return Result{Value: math.Abs(r.Value), P: math.Abs(r.P)}
}

// kernel compares two equal-length vectors.
type kernel func(x, y []float64) Result

// kernels holds exactly one kernel per Method.
var kernels = map[Method]kernel{
	Spearman:   spearman,
	Pearson:    pearson,
	Kendall:    kendall,
	Similarity: similarity,
	Distance:   distance,
}

// Compare vectorizes a and b and compares them with m.
//
// Implementation:
//   - Stage 1 (Validate): m is a known Method; a and b are non-nil with equal n.
//   - Stage 2 (Prepare): vectorize both strict upper triangles in the same
//     (i,j) order; min-max rescale each copy when WithRescale(true) is given.
//   - Stage 3 (Execute): run the method kernel and return its two slots.
//
// Inputs:
//   - a, b: RDMs over the same conditions. Only the upper triangles are read,
//     so a, b are not validated for symmetry here (see rdm.Validate).
//   - m: Spearman, Pearson, Kendall, Similarity or Distance.
//   - opts: WithRescale.
//
// Returns:
//   - Result{Value, P}: the coefficient and its two-sided p-value for the
//     correlation methods; the score and a fixed 0 for Similarity/Distance.
//   - Degenerate inputs (a constant vector, fewer than two pairs, a NaN entry)
//     produce NaN values, not errors.
//
// Errors:
//   - ErrUnknownMethod; rdm.ErrNilRDM; rdm.ErrSizeMismatch (also rdm.ErrShape).
//
// Determinism:
//   - Pure function of its inputs; a and b are never modified.
//   - Kendall's p-value is exact for untied vectors of at most 33 pairs and
//     the tie-corrected normal approximation otherwise.
//
// Complexity:
//   - With m = n(n-1)/2 pairs: O(m) for Pearson, Similarity and Distance;
//     O(m log m) for Spearman and Kendall (sorting).
//
// AI-Hints:
//   - Every kernel is symmetric in (a, b); argument order only matters for
//     readability of call sites.
//   - Use CompareVectors when vectors are already cached.
func Compare(a, b *rdm.RDM, m Method, opts ...Option) (Result, error) {
	k, err := lookup(m)
	if err != nil {
		return Result{}, compareErrorf("Compare", err)
	}
	x, y, err := rdm.VectorizePair(a, b)
	if err != nil {
		return Result{}, compareErrorf("Compare", err)
	}

	return run(k, x, y, gatherOptions(opts...)), nil
}

// CompareVectors compares two already vectorized RDMs. The inputs are not modified.
// Errors: ErrUnknownMethod, ErrLengthMismatch.
func CompareVectors(x, y []float64, m Method, opts ...Option) (Result, error) {
	k, err := lookup(m)
	if err != nil {
		return Result{}, compareErrorf("CompareVectors", err)
	}
	if len(x) != len(y) {
		return Result{}, compareErrorf(fmt.Sprintf("CompareVectors: %d vs %d", len(x), len(y)), ErrLengthMismatch)
	}
	o := gatherOptions(opts...)
	if o.Rescale {
		x = append([]float64(nil), x...)
		y = append([]float64(nil), y...)
	}

	return run(k, x, y, o), nil
}

// lookup resolves the kernel for m.
func lookup(m Method) (kernel, error) {
	k, ok := kernels[m]
	if !ok {
		return nil, fmt.Errorf("method %d: %w", int(m), ErrUnknownMethod)
	}

	return k, nil
}

// run applies options in place and executes k. x and y must be owned by the caller.
func run(k kernel, x, y []float64, o Options) Result {
	if o.Rescale {
		rescale(x)
		rescale(y)
	}

	return k(x, y)
}
