// SPDX-License-Identifier: MIT

// Package shape provides row-major index arithmetic for small dense
// n-dimensional containers.
//
// A Shape lists the size of every axis, outermost first. Coordinates are
// tuples with one entry per axis; Offset maps a coordinate to its flat
// position and Coord maps it back. A zero-rank Shape describes a single
// scalar cell (Volume()==1), which is how pooled, axis-free results are laid out.
//
// Both rdm.Stack and sweep.Output are addressed through this package, so the
// layout of builder outputs and sweep results is the same everywhere:
//
//	s, _ := shape.New(2, 3)       // 2 subjects × 3 channels
//	off, _ := s.Offset([]int{1, 2}) // 5
//	c, _ := s.Coord(off)            // [1 2]
package shape
