// SPDX-License-Identifier: MIT
package sweep_test

import (
	"testing"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/shape"
	"github.com/katalvlaran/rsacorr/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOutput_Shape appends the trailing result dimension.
func TestOutput_Shape(t *testing.T) {
	out, err := sweep.NewOutput(2, 3)
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{2, 3, 2}, out.Shape())
	assert.Equal(t, shape.Shape{2, 3}, out.Axes())
	assert.Equal(t, 6, out.Cells())
	assert.Len(t, out.Values(), 12)
	assert.Equal(t, "Output[2 3 2]", out.String())

	pooled, err := sweep.NewOutput()
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{2}, pooled.Shape())
	assert.Equal(t, 1, pooled.Cells())

	_, err = sweep.NewOutput(2, 0)
	assert.ErrorIs(t, err, shape.ErrBadShape)
}

// TestOutput_FillOrder checks row-major layout of (value, secondary) pairs.
func TestOutput_FillOrder(t *testing.T) {
	out, err := sweep.NewOutput(2, 2)
	require.NoError(t, err)
	require.NoError(t, out.Set([]int{0, 1}, compare.Result{Value: 1, P: 0.1}))
	require.NoError(t, out.Set([]int{1, 0}, compare.Result{Value: 2, P: 0.2}))

	assert.Equal(t, []float64{0, 0, 1, 0.1, 2, 0.2, 0, 0}, out.Values())

	r, err := out.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, compare.Result{Value: 2, P: 0.2}, r)

	var visited [][]int
	require.NoError(t, out.Each(func(coord []int, r compare.Result) error {
		visited = append(visited, append([]int(nil), coord...))
		return nil
	}))
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, visited)
}

// TestOutput_Bounds reports rank and range errors.
func TestOutput_Bounds(t *testing.T) {
	out, err := sweep.NewOutput(2, 2)
	require.NoError(t, err)

	_, err = out.At(2, 0)
	assert.ErrorIs(t, err, shape.ErrOutOfRange)
	_, err = out.At(0)
	assert.ErrorIs(t, err, shape.ErrRank)
	assert.ErrorIs(t, out.Set([]int{0, -1}, compare.Result{}), shape.ErrOutOfRange)
}

// TestOutput_ValuesIsCopy leaves the Output untouched.
func TestOutput_ValuesIsCopy(t *testing.T) {
	out, err := sweep.NewOutput(1)
	require.NoError(t, err)
	v := out.Values()
	v[0] = 42
	r, err := out.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Value)
}
