// SPDX-License-Identifier: MIT
package shape_test

import (
	"testing"

	"github.com/katalvlaran/rsacorr/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsNonPositive verifies that zero and negative axes are refused.
func TestNew_RejectsNonPositive(t *testing.T) {
	_, err := shape.New(3, 0)
	assert.ErrorIs(t, err, shape.ErrBadShape)

	_, err = shape.New(-1)
	assert.ErrorIs(t, err, shape.ErrBadShape)
}

// TestScalarShape covers the zero-rank layout used for pooled results.
func TestScalarShape(t *testing.T) {
	s, err := shape.New()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Volume())

	off, err := s.Offset(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	visits := 0
	require.NoError(t, shape.Each(s, func(c []int) error {
		visits++
		assert.Empty(t, c)
		return nil
	}))
	assert.Equal(t, 1, visits)
}

// TestOffsetCoordRoundTrip checks that every flat index maps back to itself.
func TestOffsetCoordRoundTrip(t *testing.T) {
	s, err := shape.New(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 4, 1}, s.Strides())

	for flat := 0; flat < s.Volume(); flat++ {
		c, err := s.Coord(flat)
		require.NoError(t, err)
		off, err := s.Offset(c)
		require.NoError(t, err)
		assert.Equal(t, flat, off)
	}
}

// TestOffset_Errors checks rank and range violations.
func TestOffset_Errors(t *testing.T) {
	s, _ := shape.New(2, 2)

	_, err := s.Offset([]int{1})
	assert.ErrorIs(t, err, shape.ErrRank)

	_, err = s.Offset([]int{0, 2})
	assert.ErrorIs(t, err, shape.ErrOutOfRange)

	_, err = s.Coord(4)
	assert.ErrorIs(t, err, shape.ErrOutOfRange)
}

// TestEach_RowMajorOrder verifies that the innermost axis varies fastest
// and every coordinate is visited exactly once.
func TestEach_RowMajorOrder(t *testing.T) {
	s, _ := shape.New(2, 3)

	var got [][]int
	require.NoError(t, shape.Each(s, func(c []int) error {
		got = append(got, append([]int(nil), c...))
		return nil
	}))
	assert.Equal(t, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, got)
}

// TestAppendAndEqual covers helpers used to derive output shapes.
func TestAppendAndEqual(t *testing.T) {
	s, _ := shape.New(8, 8, 8)
	out := s.Append(2)
	assert.Equal(t, "[8 8 8 2]", out.String())
	assert.True(t, out.Equal(shape.Shape{8, 8, 8, 2}))
	assert.False(t, out.Equal(s))
	assert.Equal(t, 3, s.Rank(), "Append must not alias the receiver")
}
