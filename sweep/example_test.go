// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/rdm"
	"github.com/katalvlaran/rsacorr/shape"
	"github.com/katalvlaran/rsacorr/sweep"
)

// ExampleEngine_BehaviorFMRI sweeps a 4×4×4 volume with a 3×3×3 searchlight.
func ExampleEngine_BehaviorFMRI() {
	model, _ := rdm.FromRows([][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})

	bhv := sweep.BehaviorBuilderFunc(func(context.Context, sweep.BehaviorRequest) (*rdm.Stack, error) {
		return rdm.Single(model)
	})
	fmri := sweep.FMRIBuilderFunc(func(_ context.Context, req sweep.FMRIRequest) (*rdm.Stack, error) {
		g, err := sweep.NewGrid([3]int{4, 4, 4}, req.Kernel, req.Strides)
		if err != nil {
			return nil, err
		}
		s, _ := rdm.NewStack(g.X, g.Y, g.Z)
		err = shape.Each(s.Shape(), func(coord []int) error {
			return s.Set(coord, model.Clone())
		})
		return s, err
	})

	out, err := sweep.New().BehaviorFMRI(context.Background(), bhv, fmri, sweep.BehaviorFMRIConfig{
		Volume: [3]int{4, 4, 4},
		Method: compare.Spearman,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	r, _ := out.At(1, 0, 1)
	fmt.Println(out.Shape())
	fmt.Printf("rho=%.3f\n", r.Value)
	// Output:
	// [2 2 2 2]
	// rho=1.000
}
