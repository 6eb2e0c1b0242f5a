// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/rsacorr/shape"
)

// Defaults of the fMRI searchlight.
var (
	DefaultKernel  = [3]int{3, 3, 3}
	DefaultStrides = [3]int{1, 1, 1}
)

// Grid is the block lattice of a cuboid searchlight sliding over a volume.
//
// Along every axis n = floor((dim - k) / s) + 1, so a 10×10×10 volume with a
// 3×3×3 kernel and unit strides yields an 8×8×8 grid.
type Grid struct {
	X, Y, Z int    // block counts
	Kernel  [3]int // kx, ky, kz
	Strides [3]int // sx, sy, sz
}

// NewGrid derives the grid for a volume of the given voxel dimensions.
// Errors: ErrBadGrid when a dimension, kernel or stride is not positive,
// or the kernel is larger than the volume.
func NewGrid(volume, kernel, strides [3]int) (Grid, error) {
	var n [3]int
	for a := 0; a < 3; a++ {
		if volume[a] <= 0 || kernel[a] <= 0 || strides[a] <= 0 {
			return Grid{}, fmt.Errorf("NewGrid: axis %d volume=%d kernel=%d stride=%d: %w",
				a, volume[a], kernel[a], strides[a], ErrBadGrid)
		}
		if kernel[a] > volume[a] {
			return Grid{}, fmt.Errorf("NewGrid: axis %d kernel %d exceeds volume %d: %w",
				a, kernel[a], volume[a], ErrBadGrid)
		}
		n[a] = (volume[a]-kernel[a])/strides[a] + 1
	}

	return Grid{X: n[0], Y: n[1], Z: n[2], Kernel: kernel, Strides: strides}, nil
}

// Shape returns [X Y Z].
func (g Grid) Shape() shape.Shape {
	return shape.Shape{g.X, g.Y, g.Z}
}

// Blocks returns X·Y·Z.
func (g Grid) Blocks() int {
	return g.X * g.Y * g.Z
}

// Origin returns the voxel coordinate of the first corner of block (x,y,z).
func (g Grid) Origin(x, y, z int) [3]int {
	return [3]int{x * g.Strides[0], y * g.Strides[1], z * g.Strides[2]}
}

// Center returns the voxel coordinate of the centre of block (x,y,z),
// rounded down for even kernels.
func (g Grid) Center(x, y, z int) [3]int {
	o := g.Origin(x, y, z)

	return [3]int{o[0] + g.Kernel[0]/2, o[1] + g.Kernel[1]/2, o[2] + g.Kernel[2]/2}
}

// searchlight fills zero kernel/stride entries with the defaults.
func searchlight(kernel, strides [3]int) ([3]int, [3]int) {
	if kernel == ([3]int{}) {
		kernel = DefaultKernel
	}
	if strides == ([3]int{}) {
		strides = DefaultStrides
	}

	return kernel, strides
}
