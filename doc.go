// SPDX-License-Identifier: MIT

// Package rsacorr compares Representational Dissimilarity Matrices (RDMs)
// across recording modalities: behaviour, EEG/MEG/fNIRS, ECoG and fMRI.
//
// 🚀 What is rsacorr?
//
//	A second-order similarity engine for representational similarity analysis:
//		• rdm     RDM type, validation, upper-triangle Vectorizer, RDM stacks
//		• compare pair comparator (Spearman, Pearson, Kendall tau-b, cosine
//		          similarity, Euclidean distance) with optional rescale
//		• sweep   cross-modality sweeps over subjects, channels, time bins
//		          and fMRI searchlight blocks, run in parallel
//		• shape   row-major multi-dimensional index arithmetic
//		• matrix  dense row-major storage and structural validators under rdm
//
// Ambient packages:
//
//	config    RSACORR_* environment and .env configuration
//	logging   zap logger construction
//	metrics   Prometheus counters and histograms for sweeps
//
// RDM construction from raw recordings is left to the caller: sweeps take
// builder interfaces that return rdm.Stack values of a documented shape.
//
// Quick start:
//
//	res, _ := compare.Compare(modelRDM, brainRDM, compare.Spearman)
//	fmt.Println(res.Value, res.P)
//
//	out, err := sweep.New().BehaviorFMRI(ctx, bhv, fmri, sweep.BehaviorFMRIConfig{
//		Volume: [3]int{64, 64, 40},
//	})
//
// See examples/searchlight for a runnable searchlight demo.
package rsacorr
