// SPDX-License-Identifier: MIT

// Package compare is the pair comparator of representational similarity
// analysis: it measures how alike two RDMs are.
//
// Both RDMs are vectorized (strict upper triangle, row-major) and compared
// with one of five methods:
//
//	Spearman  : rank correlation, (rho, p)
//	Pearson   : linear correlation, (r, p)
//	Kendall   : tau-b rank correlation, (tau, p)
//	Similarity: 0.5 + 0.5·cosine, (s, 0)
//	Distance  : Euclidean norm of the difference, (d, 0)
//
// Every comparison returns a two-slot Result so sweeps can store any method
// in the same layout.
//
// ⚙️ Usage:
//
//	res, err := compare.Compare(bhv, eeg, compare.Spearman, compare.WithRescale(true))
//	if err != nil {
//		// compare.ErrUnknownMethod or an rdm shape error
//	}
//	fmt.Println(res.Value, res.P)
//
// WithRescale min-max normalizes both vectors to [0,1] first, for every
// method. Distance stays scale sensitive: it measures the normalized vectors.
package compare
