// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/rsacorr/rdm"
	"github.com/katalvlaran/rsacorr/shape"
	"github.com/katalvlaran/rsacorr/sweep"
	"github.com/stretchr/testify/require"
)

// conditions is the RDM size used by the fixtures.
const conditions = 5

// waveRDM returns an n×n RDM whose upper triangle is 2 + sin(seed·1.3 + k),
// so every seed yields a distinct, non-constant vector.
func waveRDM(t testing.TB, n int, seed float64) *rdm.RDM {
	t.Helper()
	m, err := rdm.New(n)
	require.NoError(t, err)
	k := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.Set(i, j, 2+math.Sin(seed*1.3+float64(k))))
			k++
		}
	}
	return m
}

// seedOf folds a coordinate into a unique seed.
func seedOf(base float64, coord []int) float64 {
	s := base
	for _, c := range coord {
		s = s*17 + float64(c) + 1
	}
	return s
}

// waveStack fills a stack of the given dims with waveRDM(seedOf(base, coord)).
func waveStack(t testing.TB, n int, base float64, dims ...int) *rdm.Stack {
	t.Helper()
	s, err := rdm.NewStack(dims...)
	require.NoError(t, err)
	require.NoError(t, shape.Each(s.Shape(), func(coord []int) error {
		return s.Set(coord, waveRDM(t, n, seedOf(base, coord)))
	}))
	return s
}

// eegDims lists the active EEG axes of req in subject, channel, time order.
func eegDims(req sweep.EEGRequest, subjects, channels, bins int) []int {
	var dims []int
	if req.PerSubject {
		dims = append(dims, subjects)
	}
	if req.PerChannel {
		dims = append(dims, channels)
	}
	if req.PerTime {
		dims = append(dims, bins)
	}
	return dims
}

// fakes records builder calls and serves wave stacks.
type fakes struct {
	t        testing.TB
	subjects int
	channels int
	bins     int
	volume   [3]int

	bhvCalls  atomic.Int32
	eegCalls  atomic.Int32
	ecogCalls atomic.Int32
	fmriCalls atomic.Int32

	lastEEG  sweep.EEGRequest
	lastECoG sweep.ECoGRequest
	lastFMRI sweep.FMRIRequest
}

func newFakes(t testing.TB) *fakes {
	return &fakes{t: t, subjects: 2, channels: 3, bins: 4, volume: [3]int{5, 5, 5}}
}

func (f *fakes) behavior() sweep.BehaviorBuilder {
	return sweep.BehaviorBuilderFunc(func(_ context.Context, req sweep.BehaviorRequest) (*rdm.Stack, error) {
		f.bhvCalls.Add(1)
		if req.PerSubject {
			return waveStack(f.t, conditions, 1, f.subjects), nil
		}
		return waveStack(f.t, conditions, 1), nil
	})
}

func (f *fakes) eeg() sweep.EEGBuilder {
	return sweep.EEGBuilderFunc(func(_ context.Context, req sweep.EEGRequest) (*rdm.Stack, error) {
		f.eegCalls.Add(1)
		f.lastEEG = req
		return waveStack(f.t, conditions, 2, eegDims(req, f.subjects, f.channels, f.bins)...), nil
	})
}

func (f *fakes) ecog() sweep.ECoGBuilder {
	return sweep.ECoGBuilderFunc(func(_ context.Context, req sweep.ECoGRequest) (*rdm.Stack, error) {
		f.ecogCalls.Add(1)
		f.lastECoG = req
		switch req.Mode {
		case sweep.ECoGChannel:
			return waveStack(f.t, conditions, 3, f.channels), nil
		case sweep.ECoGTime:
			return waveStack(f.t, conditions, 3, f.bins), nil
		default:
			return waveStack(f.t, conditions, 3), nil
		}
	})
}

func (f *fakes) fmri() sweep.FMRIBuilder {
	return sweep.FMRIBuilderFunc(func(_ context.Context, req sweep.FMRIRequest) (*rdm.Stack, error) {
		f.fmriCalls.Add(1)
		f.lastFMRI = req
		g, err := sweep.NewGrid(f.volume, req.Kernel, req.Strides)
		if err != nil {
			return nil, err
		}
		return waveStack(f.t, conditions, 4, g.X, g.Y, g.Z), nil
	})
}

// calls returns the total number of builder invocations.
func (f *fakes) calls() int32 {
	return f.bhvCalls.Load() + f.eegCalls.Load() + f.ecogCalls.Load() + f.fmriCalls.Load()
}
