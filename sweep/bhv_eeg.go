// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/rdm"
)

// EEGAxes selects which EEG axes a behaviour×EEG sweep iterates.
// Active axes appear in the Output in the order subject, channel, time-bin.
type EEGAxes struct {
	Subject bool
	Channel bool
	Time    bool
}

// Rank returns the number of active axes.
func (a EEGAxes) Rank() int {
	n := 0
	for _, on := range [...]bool{a.Subject, a.Channel, a.Time} {
		if on {
			n++
		}
	}

	return n
}

// Layout maps the flag combination to its layout.
func (a EEGAxes) Layout() EEGLayout {
	var l EEGLayout
	if a.Subject {
		l |= 4
	}
	if a.Channel {
		l |= 2
	}
	if a.Time {
		l |= 1
	}

	return l
}

// EEGLayout enumerates the eight subject/channel/time combinations.
type EEGLayout int

// EEG layouts, named after the Output axes they produce.
const (
	LayoutPooled             EEGLayout = iota // [2]
	LayoutTime                                // [bins 2]
	LayoutChannel                             // [channels 2]
	LayoutChannelTime                         // [channels bins 2]
	LayoutSubject                             // [subjects 2]
	LayoutSubjectTime                         // [subjects bins 2]
	LayoutSubjectChannel                      // [subjects channels 2]
	LayoutSubjectChannelTime                  // [subjects channels bins 2]
)

var layoutNames = [...]string{
	"pooled", "time", "channel", "channel_time",
	"subject", "subject_time", "subject_channel", "subject_channel_time",
}

// String returns the layout name, e.g. "subject_time".
func (l EEGLayout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("layout(%d)", int(l))
	}

	return layoutNames[l]
}

// Axes returns the flag combination of l.
func (l EEGLayout) Axes() EEGAxes {
	return EEGAxes{Subject: l&4 != 0, Channel: l&2 != 0, Time: l&1 != 0}
}

// BehaviorEEGConfig parameterizes Engine.BehaviorEEG.
type BehaviorEEGConfig struct {
	Axes EEGAxes
	// BehaviorTrialLevel reports that the behavioural data is trial level.
	// Per-subject behavioural RDMs need it; Axes.Subject without it is
	// ErrUnsupportedCombination.
	BehaviorTrialLevel bool
	// TimeWindow is forwarded to the EEG builder; 0 uses the engine default.
	TimeWindow int
	// Method defaults to the engine method when zero.
	Method compare.Method
	// Rescale overrides the engine's rescale policy when non-nil.
	Rescale *bool
}

// BehaviorEEG compares behavioural RDMs with EEG/MEG/fNIRS RDMs across the
// selected axes.
//
// Stage 1 (Validate): builders, method, window and the axis combination are
// checked before any builder runs.
// Stage 2 (Build): the behavioural stack is [subjects] when Axes.Subject is
// set, otherwise pooled; the EEG stack carries every active axis.
// Stage 3 (Execute): every Output cell compares the behavioural RDM of its
// subject (or the pooled one) with the EEG RDM at the same coordinate.
//
// Errors: ErrNilBuilder, compare.ErrUnknownMethod, ErrInvalidConfig,
// ErrUnsupportedCombination (nil Output, no builder called), builder errors,
// rdm.ErrShape for stacks that disagree, context errors.
func (e *Engine) BehaviorEEG(ctx context.Context, bhv BehaviorBuilder, eeg EEGBuilder, cfg BehaviorEEGConfig) (*Output, error) {
	method, window, opts := e.resolve(cfg.Method, cfg.TimeWindow, cfg.Rescale)
	layout := cfg.Axes.Layout().String()

	// Stage 1 (Validate)
	if bhv == nil || eeg == nil {
		return e.reject(EntryBehaviorEEG, layout, method, ErrNilBuilder)
	}
	if err := checkMethod(method); err != nil {
		return e.reject(EntryBehaviorEEG, layout, method, err)
	}
	if window < 0 {
		return e.reject(EntryBehaviorEEG, layout, method, fmt.Errorf("time window %d: %w", window, ErrInvalidConfig))
	}
	if cfg.Axes.Subject && !cfg.BehaviorTrialLevel {
		return e.reject(EntryBehaviorEEG, layout, method,
			fmt.Errorf("per-subject behavioural RDMs need trial level data: %w", ErrUnsupportedCombination))
	}

	// Stage 2 (Build)
	start := time.Now()
	ref, err := bhv.BuildBehavior(ctx, BehaviorRequest{PerSubject: cfg.Axes.Subject, TrialLevel: cfg.BehaviorTrialLevel})
	if err != nil {
		return e.buildFailed(EntryBehaviorEEG, layout, method, start, fmt.Errorf("behaviour builder: %w", err))
	}
	target, err := eeg.BuildEEG(ctx, EEGRequest{
		PerSubject: cfg.Axes.Subject,
		PerChannel: cfg.Axes.Channel,
		PerTime:    cfg.Axes.Time,
		TimeWindow: window,
	})
	if err != nil {
		return e.buildFailed(EntryBehaviorEEG, layout, method, start, fmt.Errorf("EEG builder: %w", err))
	}
	axes, err := stackAxes("EEG", target, cfg.Axes.Rank())
	if err != nil {
		return e.buildFailed(EntryBehaviorEEG, layout, method, start, err)
	}
	refAxes := axes[:0]
	if cfg.Axes.Subject {
		refAxes = axes[:1]
	}
	if err = checkStack("behaviour", ref, refAxes); err != nil {
		return e.buildFailed(EntryBehaviorEEG, layout, method, start, err)
	}
	if err = checkConditions(ref, target); err != nil {
		return e.buildFailed(EntryBehaviorEEG, layout, method, start, err)
	}

	// Stage 3 (Execute)
	refRank := refAxes.Rank()

	return e.run(ctx, plan{
		entry:  EntryBehaviorEEG,
		layout: layout,
		method: method,
		opts:   opts,
		axes:   axes,
		pair: func(coord []int) (*rdm.RDM, *rdm.RDM, error) {
			a, err := ref.At(coord[:refRank]...)
			if err != nil {
				return nil, nil, err
			}
			b, err := target.At(coord...)

			return a, b, err
		},
	})
}
