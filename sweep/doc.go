// SPDX-License-Identifier: MIT

// Package sweep applies the pair comparator across the axes of a
// cross-modality experiment and collects the results in one array.
//
// 🚀 Entries (methods of Engine):
//
//	BehaviorEEG   behaviour × EEG/MEG/fNIRS   axes ⊆ {subject, channel, time}
//	BehaviorECoG  behaviour × ECoG            one of {allin, channel, time}
//	BehaviorFMRI  behaviour × fMRI            searchlight grid (x, y, z)
//	EEGFMRI       EEG × fMRI                  [channel,] x, y, z (magnitudes)
//
// RDMs come from external builders (BehaviorBuilder, EEGBuilder, ECoGBuilder,
// FMRIBuilder) returning rdm.Stack values; the engine checks every stack
// against the requested layout before comparing anything.
//
// Every entry returns an Output whose shape is the active axis cardinalities
// plus a trailing 2 for (value, secondary). A 10×10×10 volume with a 3×3×3
// kernel and unit strides yields [8 8 8 2].
//
// ⚙️ Usage:
//
//	eng := sweep.New(sweep.WithLogger(log), sweep.WithWorkers(8))
//	out, err := eng.BehaviorEEG(ctx, bhv, eeg, sweep.BehaviorEEGConfig{
//		Axes:               sweep.EEGAxes{Subject: true, Time: true},
//		BehaviorTrialLevel: true,
//		Method:             compare.Spearman,
//	})
//	if errors.Is(err, sweep.ErrUnsupportedCombination) {
//		// the behavioural data cannot be split per subject
//	}
//
// Cells are compared in parallel by a bounded errgroup; each writes its own
// two slots. The first error or a cancelled context aborts the sweep and no
// Output is returned.
package sweep
