// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/rdm"
)

// BehaviorFMRIConfig parameterizes Engine.BehaviorFMRI.
type BehaviorFMRIConfig struct {
	// Volume is the voxel extent (x, y, z) of the fMRI data.
	Volume [3]int
	// Kernel and Strides of the searchlight; zero values mean [3 3 3] and [1 1 1].
	Kernel  [3]int
	Strides [3]int
	// BehaviorTrialLevel is forwarded to the behavioural builder.
	BehaviorTrialLevel bool
	// Method defaults to the engine method when zero.
	Method compare.Method
	// Rescale overrides the engine's rescale policy when non-nil.
	Rescale *bool
}

// BehaviorFMRI compares the pooled behavioural RDM with the RDM of every
// searchlight block. The Output is [nx ny nz 2] for the grid derived from
// cfg.Volume, cfg.Kernel and cfg.Strides.
//
// Errors: ErrNilBuilder, compare.ErrUnknownMethod, ErrBadGrid, builder
// errors, rdm.ErrShape, context errors.
func (e *Engine) BehaviorFMRI(ctx context.Context, bhv BehaviorBuilder, fmri FMRIBuilder, cfg BehaviorFMRIConfig) (*Output, error) {
	method, _, opts := e.resolve(cfg.Method, 0, cfg.Rescale)
	const layout = "searchlight"

	// Stage 1 (Validate)
	if bhv == nil || fmri == nil {
		return e.reject(EntryBehaviorFMRI, layout, method, ErrNilBuilder)
	}
	if err := checkMethod(method); err != nil {
		return e.reject(EntryBehaviorFMRI, layout, method, err)
	}
	kernel, strides := searchlight(cfg.Kernel, cfg.Strides)
	grid, err := NewGrid(cfg.Volume, kernel, strides)
	if err != nil {
		return e.reject(EntryBehaviorFMRI, layout, method, err)
	}

	// Stage 2 (Build)
	start := time.Now()
	refStack, err := bhv.BuildBehavior(ctx, BehaviorRequest{TrialLevel: cfg.BehaviorTrialLevel})
	if err != nil {
		return e.buildFailed(EntryBehaviorFMRI, layout, method, start, fmt.Errorf("behaviour builder: %w", err))
	}
	if err = checkStack("behaviour", refStack, nil); err != nil {
		return e.buildFailed(EntryBehaviorFMRI, layout, method, start, err)
	}
	ref, _ := refStack.At()
	target, err := fmri.BuildFMRI(ctx, FMRIRequest{Kernel: kernel, Strides: strides})
	if err != nil {
		return e.buildFailed(EntryBehaviorFMRI, layout, method, start, fmt.Errorf("fMRI builder: %w", err))
	}
	if err = checkStack("fMRI", target, grid.Shape()); err != nil {
		return e.buildFailed(EntryBehaviorFMRI, layout, method, start, err)
	}
	if err = checkConditions(refStack, target); err != nil {
		return e.buildFailed(EntryBehaviorFMRI, layout, method, start, err)
	}

	// Stage 3 (Execute)
	return e.run(ctx, plan{
		entry:  EntryBehaviorFMRI,
		layout: layout,
		method: method,
		opts:   opts,
		axes:   grid.Shape(),
		pair: func(coord []int) (*rdm.RDM, *rdm.RDM, error) {
			b, err := target.At(coord...)

			return ref, b, err
		},
	})
}
