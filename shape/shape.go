// SPDX-License-Identifier: MIT

package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrBadShape is returned when an axis size is not positive.
	ErrBadShape = errors.New("shape: axis sizes must be > 0")

	// ErrRank is returned when a coordinate has the wrong number of entries.
	ErrRank = errors.New("shape: coordinate rank mismatch")

	// ErrOutOfRange is returned when a coordinate or flat index falls outside the shape.
	ErrOutOfRange = errors.New("shape: index out of range")
)

// Shape is the list of axis sizes of a row-major container, outermost first.
type Shape []int

// New validates dims and returns them as a Shape.
// Calling New with no dims yields the zero-rank (scalar) shape.
func New(dims ...int) (Shape, error) {
	for i, d := range dims {
		if d <= 0 {
			return nil, fmt.Errorf("New: axis %d = %d: %w", i, d, ErrBadShape)
		}
	}
	s := make(Shape, len(dims))
	copy(s, dims)

	return s, nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s) }

// Volume returns the number of cells; 1 for the zero-rank shape.
func (s Shape) Volume() int {
	v := 1
	for _, d := range s {
		v *= d
	}

	return v
}

// Strides returns the row-major stride of every axis.
func (s Shape) Strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// Offset maps coord to its flat row-major position.
// Complexity: O(rank).
func (s Shape) Offset(coord []int) (int, error) {
	if len(coord) != len(s) {
		return 0, fmt.Errorf("Offset: got %d indices for rank %d: %w", len(coord), len(s), ErrRank)
	}
	off := 0
	for i, c := range coord {
		if c < 0 || c >= s[i] {
			return 0, fmt.Errorf("Offset: axis %d index %d not in [0,%d): %w", i, c, s[i], ErrOutOfRange)
		}
		off = off*s[i] + c
	}

	return off, nil
}

// Coord maps a flat row-major position back to a coordinate.
func (s Shape) Coord(flat int) ([]int, error) {
	if flat < 0 || flat >= s.Volume() {
		return nil, fmt.Errorf("Coord: flat index %d not in [0,%d): %w", flat, s.Volume(), ErrOutOfRange)
	}
	coord := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		coord[i] = flat % s[i]
		flat /= s[i]
	}

	return coord, nil
}

// Equal reports whether s and o have identical axes.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Append returns a new Shape with dims appended after the axes of s.
func (s Shape) Append(dims ...int) Shape {
	out := make(Shape, 0, len(s)+len(dims))
	out = append(out, s...)

	return append(out, dims...)
}

// String renders the shape as "[d0 d1 ...]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Each visits every coordinate of s exactly once in row-major order.
// The coord slice passed to fn is reused between calls; copy it to retain it.
// Iteration stops at the first error returned by fn.
func Each(s Shape, fn func(coord []int) error) error {
	coord := make([]int, len(s))
	for n := s.Volume(); n > 0; n-- {
		if err := fn(coord); err != nil {
			return err
		}
		// odometer increment, innermost axis fastest
		for i := len(s) - 1; i >= 0; i-- {
			coord[i]++
			if coord[i] < s[i] {
				break
			}
			coord[i] = 0
		}
	}

	return nil
}
