// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/rdm"
)

// EEGFMRIConfig parameterizes Engine.EEGFMRI.
type EEGFMRIConfig struct {
	// Channel sweeps EEG channels; the Output gains a leading channel axis.
	Channel bool
	// Volume is the voxel extent (x, y, z) of the fMRI data.
	Volume [3]int
	// Kernel and Strides of the searchlight; zero values mean [3 3 3] and [1 1 1].
	Kernel  [3]int
	Strides [3]int
	// TimeWindow is forwarded to the EEG builder; 0 uses the engine default.
	TimeWindow int
	// Method defaults to the engine method when zero.
	Method compare.Method
	// Rescale overrides the engine's rescale policy when non-nil.
	Rescale *bool
}

// EEGFMRI compares EEG RDMs with every searchlight block RDM.
//
// The EEG side is one pooled RDM, or one RDM per channel when cfg.Channel is
// set. Cell (x,y,z), or (c,x,y,z) in channel mode, compares EEG RDM c with
// block (x,y,z). Both slots of every cell hold magnitudes.
//
// Errors: ErrNilBuilder, compare.ErrUnknownMethod, ErrInvalidConfig,
// ErrBadGrid, builder errors, rdm.ErrShape, context errors.
func (e *Engine) EEGFMRI(ctx context.Context, eeg EEGBuilder, fmri FMRIBuilder, cfg EEGFMRIConfig) (*Output, error) {
	method, window, opts := e.resolve(cfg.Method, cfg.TimeWindow, cfg.Rescale)
	layout := "searchlight"
	eegRank := 0
	if cfg.Channel {
		layout = "channel_searchlight"
		eegRank = 1
	}

	// Stage 1 (Validate)
	if eeg == nil || fmri == nil {
		return e.reject(EntryEEGFMRI, layout, method, ErrNilBuilder)
	}
	if err := checkMethod(method); err != nil {
		return e.reject(EntryEEGFMRI, layout, method, err)
	}
	if window < 0 {
		return e.reject(EntryEEGFMRI, layout, method, fmt.Errorf("time window %d: %w", window, ErrInvalidConfig))
	}
	kernel, strides := searchlight(cfg.Kernel, cfg.Strides)
	grid, err := NewGrid(cfg.Volume, kernel, strides)
	if err != nil {
		return e.reject(EntryEEGFMRI, layout, method, err)
	}

	// Stage 2 (Build)
	start := time.Now()
	ref, err := eeg.BuildEEG(ctx, EEGRequest{PerChannel: cfg.Channel, TimeWindow: window})
	if err != nil {
		return e.buildFailed(EntryEEGFMRI, layout, method, start, fmt.Errorf("EEG builder: %w", err))
	}
	refAxes, err := stackAxes("EEG", ref, eegRank)
	if err != nil {
		return e.buildFailed(EntryEEGFMRI, layout, method, start, err)
	}
	target, err := fmri.BuildFMRI(ctx, FMRIRequest{Kernel: kernel, Strides: strides})
	if err != nil {
		return e.buildFailed(EntryEEGFMRI, layout, method, start, fmt.Errorf("fMRI builder: %w", err))
	}
	if err = checkStack("fMRI", target, grid.Shape()); err != nil {
		return e.buildFailed(EntryEEGFMRI, layout, method, start, err)
	}
	if err = checkConditions(ref, target); err != nil {
		return e.buildFailed(EntryEEGFMRI, layout, method, start, err)
	}

	// Stage 3 (Execute)
	axes := refAxes.Append(grid.Shape()...)

	return e.run(ctx, plan{
		entry:  EntryEEGFMRI,
		layout: layout,
		method: method,
		opts:   opts,
		axes:   axes,
		abs:    true,
		pair: func(coord []int) (*rdm.RDM, *rdm.RDM, error) {
			a, err := ref.At(coord[:eegRank]...)
			if err != nil {
				return nil, nil, err
			}
			b, err := target.At(coord[eegRank:]...)

			return a, b, err
		},
	})
}
