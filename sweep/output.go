// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/shape"
)

// resultSlots is the trailing dimension of every Output: (value, secondary).
const resultSlots = 2

// Output is the result array of one sweep.
//
// Its shape is the active axis cardinalities followed by a trailing 2, e.g.
// [subjects, bins, 2] or [8, 8, 8, 2]; a pooled sweep has shape [2].
// Storage is row-major. An Output is allocated once per call, every cell is
// written exactly once, and it is returned whole.
type Output struct {
	axes shape.Shape
	data []float64
}

// NewOutput allocates a zero-filled Output over the given axes
// (the trailing 2 is implicit). No dims yields the pooled shape [2].
// Errors: wrapped shape.ErrBadShape.
func NewOutput(dims ...int) (*Output, error) {
	axes, err := shape.New(dims...)
	if err != nil {
		return nil, sweepErrorf("NewOutput", err)
	}

	return newOutput(axes), nil
}

func newOutput(axes shape.Shape) *Output {
	return &Output{axes: axes.Clone(), data: make([]float64, axes.Volume()*resultSlots)}
}

// Shape returns the full shape including the trailing 2.
func (o *Output) Shape() shape.Shape {
	return o.axes.Append(resultSlots)
}

// Axes returns the swept axes without the trailing 2.
func (o *Output) Axes() shape.Shape {
	return o.axes.Clone()
}

// Cells returns the number of coordinates (comparisons) in the Output.
func (o *Output) Cells() int {
	return o.axes.Volume()
}

// At returns the result stored at coord.
// Errors: wrapped shape.ErrRank / shape.ErrOutOfRange.
func (o *Output) At(coord ...int) (compare.Result, error) {
	off, err := o.axes.Offset(coord)
	if err != nil {
		return compare.Result{}, sweepErrorf("Output.At", err)
	}

	return compare.Result{Value: o.data[off*resultSlots], P: o.data[off*resultSlots+1]}, nil
}

// Set stores r at coord.
// Errors: wrapped shape.ErrRank / shape.ErrOutOfRange.
func (o *Output) Set(coord []int, r compare.Result) error {
	off, err := o.axes.Offset(coord)
	if err != nil {
		return sweepErrorf("Output.Set", err)
	}
	o.setFlat(off, r)

	return nil
}

// setFlat writes cell off; concurrent calls with distinct off never overlap.
func (o *Output) setFlat(off int, r compare.Result) {
	o.data[off*resultSlots] = r.Value
	o.data[off*resultSlots+1] = r.P
}

// Values returns a copy of the flat row-major data (length Cells()*2).
func (o *Output) Values() []float64 {
	out := make([]float64, len(o.data))
	copy(out, o.data)

	return out
}

// Each visits every cell in row-major order.
func (o *Output) Each(fn func(coord []int, r compare.Result) error) error {
	flat := 0

	return shape.Each(o.axes, func(coord []int) error {
		r := compare.Result{Value: o.data[flat*resultSlots], P: o.data[flat*resultSlots+1]}
		flat++

		return fn(coord, r)
	})
}

// String renders the shape, e.g. "Output[8 8 8 2]".
func (o *Output) String() string {
	return fmt.Sprintf("Output%v", o.Shape())
}
