// SPDX-License-Identifier: MIT

package sweep

import (
	"context"

	"github.com/katalvlaran/rsacorr/rdm"
)

// BehaviorRequest selects the behavioural RDM layout.
type BehaviorRequest struct {
	// PerSubject asks for one RDM per subject ([subjects] stack) instead of
	// one pooled RDM (zero-rank stack).
	PerSubject bool
	// TrialLevel tells the builder the data holds one value per trial rather
	// than one value per subject and condition.
	TrialLevel bool
}

// BehaviorBuilder produces behavioural RDMs.
type BehaviorBuilder interface {
	BuildBehavior(ctx context.Context, req BehaviorRequest) (*rdm.Stack, error)
}

// BehaviorBuilderFunc adapts a function to BehaviorBuilder.
type BehaviorBuilderFunc func(ctx context.Context, req BehaviorRequest) (*rdm.Stack, error)

// BuildBehavior calls f.
func (f BehaviorBuilderFunc) BuildBehavior(ctx context.Context, req BehaviorRequest) (*rdm.Stack, error) {
	return f(ctx, req)
}

// EEGRequest selects the EEG/MEG/fNIRS RDM layout. The returned stack carries
// the active axes in the order subject, channel, time-bin; with no axis
// active it is zero-rank.
type EEGRequest struct {
	PerSubject bool
	PerChannel bool
	PerTime    bool
	// TimeWindow is the number of time points pooled into one bin.
	TimeWindow int
}

// EEGBuilder produces EEG/MEG/fNIRS RDMs.
type EEGBuilder interface {
	BuildEEG(ctx context.Context, req EEGRequest) (*rdm.Stack, error)
}

// EEGBuilderFunc adapts a function to EEGBuilder.
type EEGBuilderFunc func(ctx context.Context, req EEGRequest) (*rdm.Stack, error)

// BuildEEG calls f.
func (f EEGBuilderFunc) BuildEEG(ctx context.Context, req EEGRequest) (*rdm.Stack, error) {
	return f(ctx, req)
}

// ECoGRequest selects the ECoG RDM layout: [channels] for ECoGChannel,
// [time-bins] for ECoGTime, zero-rank for ECoGAllIn.
type ECoGRequest struct {
	Mode       ECoGMode
	TimeWindow int
}

// ECoGBuilder produces ECoG RDMs.
type ECoGBuilder interface {
	BuildECoG(ctx context.Context, req ECoGRequest) (*rdm.Stack, error)
}

// ECoGBuilderFunc adapts a function to ECoGBuilder.
type ECoGBuilderFunc func(ctx context.Context, req ECoGRequest) (*rdm.Stack, error)

// BuildECoG calls f.
func (f ECoGBuilderFunc) BuildECoG(ctx context.Context, req ECoGRequest) (*rdm.Stack, error) {
	return f(ctx, req)
}

// FMRIRequest carries the searchlight geometry. The returned stack must have
// shape [nx, ny, nz] as given by NewGrid for the same volume.
type FMRIRequest struct {
	Kernel  [3]int
	Strides [3]int
}

// FMRIBuilder produces one RDM per searchlight block.
type FMRIBuilder interface {
	BuildFMRI(ctx context.Context, req FMRIRequest) (*rdm.Stack, error)
}

// FMRIBuilderFunc adapts a function to FMRIBuilder.
type FMRIBuilderFunc func(ctx context.Context, req FMRIRequest) (*rdm.Stack, error)

// BuildFMRI calls f.
func (f FMRIBuilderFunc) BuildFMRI(ctx context.Context, req FMRIRequest) (*rdm.Stack, error) {
	return f(ctx, req)
}
