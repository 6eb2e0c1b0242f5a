// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/metrics"
	"github.com/katalvlaran/rsacorr/rdm"
	"github.com/katalvlaran/rsacorr/shape"
	"github.com/katalvlaran/rsacorr/sweep"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBehaviorEEG_Layouts runs all eight axis combinations and checks every
// cell against a direct comparison of the expected RDM pair.
func TestBehaviorEEG_Layouts(t *testing.T) {
	tests := []struct {
		axes   sweep.EEGAxes
		layout sweep.EEGLayout
		want   shape.Shape
	}{
		{sweep.EEGAxes{}, sweep.LayoutPooled, shape.Shape{2}},
		{sweep.EEGAxes{Time: true}, sweep.LayoutTime, shape.Shape{4, 2}},
		{sweep.EEGAxes{Channel: true}, sweep.LayoutChannel, shape.Shape{3, 2}},
		{sweep.EEGAxes{Channel: true, Time: true}, sweep.LayoutChannelTime, shape.Shape{3, 4, 2}},
		{sweep.EEGAxes{Subject: true}, sweep.LayoutSubject, shape.Shape{2, 2}},
		{sweep.EEGAxes{Subject: true, Time: true}, sweep.LayoutSubjectTime, shape.Shape{2, 4, 2}},
		{sweep.EEGAxes{Subject: true, Channel: true}, sweep.LayoutSubjectChannel, shape.Shape{2, 3, 2}},
		{sweep.EEGAxes{Subject: true, Channel: true, Time: true}, sweep.LayoutSubjectChannelTime, shape.Shape{2, 3, 4, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.layout.String(), func(t *testing.T) {
			assert.Equal(t, tc.layout, tc.axes.Layout())
			assert.Equal(t, tc.axes, tc.layout.Axes())

			f := newFakes(t)
			out, err := sweep.New().BehaviorEEG(context.Background(), f.behavior(), f.eeg(), sweep.BehaviorEEGConfig{
				Axes:               tc.axes,
				BehaviorTrialLevel: true,
				Method:             compare.Pearson,
			})
			require.NoError(t, err)
			require.Equal(t, tc.want, out.Shape())

			require.NoError(t, out.Each(func(coord []int, got compare.Result) error {
				var refCoord []int
				if tc.axes.Subject {
					refCoord = coord[:1]
				}
				ref := waveRDM(t, conditions, seedOf(1, refCoord))
				target := waveRDM(t, conditions, seedOf(2, coord))
				want, err := compare.Compare(ref, target, compare.Pearson)
				require.NoError(t, err)
				assert.Equal(t, want, got, "cell %v", coord)
				return nil
			}))
		})
	}
}

// TestBehaviorEEG_Unsupported returns the sentinel before any builder runs.
func TestBehaviorEEG_Unsupported(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	f := newFakes(t)

	for _, axes := range []sweep.EEGAxes{
		{Subject: true},
		{Subject: true, Time: true},
		{Subject: true, Channel: true},
		{Subject: true, Channel: true, Time: true},
	} {
		out, err := sweep.New(sweep.WithMetrics(m)).BehaviorEEG(context.Background(), f.behavior(), f.eeg(),
			sweep.BehaviorEEGConfig{Axes: axes, BehaviorTrialLevel: false})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, sweep.ErrUnsupportedCombination)
	}
	assert.Zero(t, f.calls())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Sweeps.WithLabelValues(sweep.EntryBehaviorEEG, metrics.OutcomeUnsupported)))
}

// TestBehaviorEEG_PooledSpearman yields a real coefficient for identical RDMs.
func TestBehaviorEEG_PooledSpearman(t *testing.T) {
	same := waveStack(t, 6, 9)
	build := func(context.Context, sweep.BehaviorRequest) (*rdm.Stack, error) { return same, nil }
	eeg := func(context.Context, sweep.EEGRequest) (*rdm.Stack, error) { return same, nil }

	out, err := sweep.New().BehaviorEEG(context.Background(),
		sweep.BehaviorBuilderFunc(build), sweep.EEGBuilderFunc(eeg), sweep.BehaviorEEGConfig{})
	require.NoError(t, err)
	require.Equal(t, shape.Shape{2}, out.Shape())

	r, err := out.At()
	require.NoError(t, err)
	assert.False(t, math.IsNaN(r.Value))
	assert.InDelta(t, 1.0, r.Value, 1e-12)
	assert.InDelta(t, 0.0, r.P, 1e-12)
}

// TestBehaviorEEG_TimeWindow forwards the configured or default window.
func TestBehaviorEEG_TimeWindow(t *testing.T) {
	f := newFakes(t)
	cfg := sweep.BehaviorEEGConfig{Axes: sweep.EEGAxes{Time: true}}

	_, err := sweep.New().BehaviorEEG(context.Background(), f.behavior(), f.eeg(), cfg)
	require.NoError(t, err)
	assert.Equal(t, sweep.DefaultTimeWindow, f.lastEEG.TimeWindow)

	cfg.TimeWindow = 10
	_, err = sweep.New().BehaviorEEG(context.Background(), f.behavior(), f.eeg(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 10, f.lastEEG.TimeWindow)

	_, err = sweep.New(sweep.WithDefaultTimeWindow(3)).BehaviorEEG(context.Background(), f.behavior(), f.eeg(),
		sweep.BehaviorEEGConfig{Axes: sweep.EEGAxes{Time: true}})
	require.NoError(t, err)
	assert.Equal(t, 3, f.lastEEG.TimeWindow)
	assert.Equal(t, sweep.EEGRequest{PerTime: true, TimeWindow: 3}, f.lastEEG)

	_, err = sweep.New().BehaviorEEG(context.Background(), f.behavior(), f.eeg(),
		sweep.BehaviorEEGConfig{TimeWindow: -1})
	assert.ErrorIs(t, err, sweep.ErrInvalidConfig)
}

// TestBehaviorEEG_StackMismatch rejects builder output that disagrees with the layout.
func TestBehaviorEEG_StackMismatch(t *testing.T) {
	tests := []struct {
		name string
		bhv  *rdm.Stack
		eeg  *rdm.Stack
		axes sweep.EEGAxes
	}{
		{"eeg rank", waveStack(t, conditions, 1, 2), waveStack(t, conditions, 2, 2), sweep.EEGAxes{Subject: true, Time: true}},
		{"subject count", waveStack(t, conditions, 1, 3), waveStack(t, conditions, 2, 2, 4), sweep.EEGAxes{Subject: true, Time: true}},
		{"pooled reference expected", waveStack(t, conditions, 1, 2), waveStack(t, conditions, 2, 4), sweep.EEGAxes{Time: true}},
		{"condition count", waveStack(t, 4, 1), waveStack(t, conditions, 2, 4), sweep.EEGAxes{Time: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bhv := sweep.BehaviorBuilderFunc(func(context.Context, sweep.BehaviorRequest) (*rdm.Stack, error) { return tc.bhv, nil })
			eeg := sweep.EEGBuilderFunc(func(context.Context, sweep.EEGRequest) (*rdm.Stack, error) { return tc.eeg, nil })

			out, err := sweep.New().BehaviorEEG(context.Background(), bhv, eeg,
				sweep.BehaviorEEGConfig{Axes: tc.axes, BehaviorTrialLevel: true})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, rdm.ErrShape)
			assert.ErrorIs(t, err, sweep.ErrStackShape)
		})
	}
}

// TestBehaviorEEG_IncompleteStack rejects a stack with an empty slot.
func TestBehaviorEEG_IncompleteStack(t *testing.T) {
	partial, err := rdm.NewStack(2)
	require.NoError(t, err)
	require.NoError(t, partial.Set([]int{0}, waveRDM(t, conditions, 1)))

	f := newFakes(t)
	eeg := sweep.EEGBuilderFunc(func(context.Context, sweep.EEGRequest) (*rdm.Stack, error) { return partial, nil })
	out, err := sweep.New().BehaviorEEG(context.Background(), f.behavior(), eeg,
		sweep.BehaviorEEGConfig{Axes: sweep.EEGAxes{Channel: true}})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, rdm.ErrNilRDM)
}

// TestBehaviorEEG_BuilderError propagates builder failures unchanged.
func TestBehaviorEEG_BuilderError(t *testing.T) {
	boom := errors.New("disk on fire")
	f := newFakes(t)
	eeg := sweep.EEGBuilderFunc(func(context.Context, sweep.EEGRequest) (*rdm.Stack, error) { return nil, boom })

	out, err := sweep.New().BehaviorEEG(context.Background(), f.behavior(), eeg, sweep.BehaviorEEGConfig{})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, boom)
}

// TestBehaviorEEG_Rejects covers nil builders and unknown methods.
func TestBehaviorEEG_Rejects(t *testing.T) {
	f := newFakes(t)
	eng := sweep.New()

	_, err := eng.BehaviorEEG(context.Background(), nil, f.eeg(), sweep.BehaviorEEGConfig{})
	assert.ErrorIs(t, err, sweep.ErrNilBuilder)
	_, err = eng.BehaviorEEG(context.Background(), f.behavior(), nil, sweep.BehaviorEEGConfig{})
	assert.ErrorIs(t, err, sweep.ErrNilBuilder)
	_, err = eng.BehaviorEEG(context.Background(), f.behavior(), f.eeg(), sweep.BehaviorEEGConfig{Method: compare.Method(42)})
	assert.ErrorIs(t, err, compare.ErrUnknownMethod)
	assert.Zero(t, f.calls())
}

// TestBehaviorEEG_Rescale forwards the rescale flag to every cell.
func TestBehaviorEEG_Rescale(t *testing.T) {
	f := newFakes(t)
	out, err := sweep.New().BehaviorEEG(context.Background(), f.behavior(), f.eeg(),
		sweep.BehaviorEEGConfig{Method: compare.Distance, Rescale: sweep.Bool(true)})
	require.NoError(t, err)

	want, err := compare.Compare(waveRDM(t, conditions, 1), waveRDM(t, conditions, 2), compare.Distance, compare.WithRescale(true))
	require.NoError(t, err)
	got, err := out.At()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestBehaviorEEG_RescaleOverride lets a per-call policy beat the engine
// default in both directions, and nil inherit it.
func TestBehaviorEEG_RescaleOverride(t *testing.T) {
	ref, target := waveRDM(t, conditions, 1), waveRDM(t, conditions, 2)
	raw, err := compare.Compare(ref, target, compare.Distance)
	require.NoError(t, err)
	scaled, err := compare.Compare(ref, target, compare.Distance, compare.WithRescale(true))
	require.NoError(t, err)
	require.NotEqual(t, raw, scaled)

	tests := []struct {
		name    string
		engine  bool
		rescale *bool
		want    compare.Result
	}{
		{"engine on, call off", true, sweep.Bool(false), raw},
		{"engine on, call nil", true, nil, scaled},
		{"engine off, call on", false, sweep.Bool(true), scaled},
		{"engine off, call nil", false, nil, raw},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakes(t)
			eng := sweep.New(sweep.WithDefaultRescale(tc.engine))
			out, err := eng.BehaviorEEG(context.Background(), f.behavior(), f.eeg(),
				sweep.BehaviorEEGConfig{Method: compare.Distance, Rescale: tc.rescale})
			require.NoError(t, err)
			got, err := out.At()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLayout_String names every layout and tolerates unknown values.
func TestLayout_String(t *testing.T) {
	assert.Equal(t, "pooled", sweep.LayoutPooled.String())
	assert.Equal(t, "subject_channel_time", sweep.LayoutSubjectChannelTime.String())
	assert.Equal(t, "layout(9)", sweep.EEGLayout(9).String())
	assert.Equal(t, 3, sweep.EEGAxes{Subject: true, Channel: true, Time: true}.Rank())
}
