// SPDX-License-Identifier: MIT
// Package: compare
//
// Purpose:
//   - Method kernels over two equal-length vectors.
//   - Correlation coefficients come from gonum/stat (Pearson) and are
//     reused over average ranks (Spearman). Kendall's tau-b is counted
//     with a merge sort because gonum only offers the weighted tau-a.
//   - Two-sided p-values come from gonum/stat/distuv survival functions:
//     Student's t with n-2 degrees of freedom for Pearson and Spearman,
//     and for Kendall the exact permutation distribution of S when the
//     sample is untied and small, the tie-corrected normal approximation
//     otherwise.
//
// NaN policy:
//   - Any NaN in the inputs, a constant vector or fewer than two entries
//     yields NaN for the correlation methods. No special casing beyond that.

package compare

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// minPairs is the shortest vector a correlation is defined on.
const minPairs = 2

// nanResult is the degenerate outcome of a correlation.
var nanResult = Result{Value: math.NaN(), P: math.NaN()}

// pearson returns Pearson's r and its two-sided p-value.
func pearson(x, y []float64) Result {
	if len(x) < minPairs || hasNaN(x) || hasNaN(y) {
		return nanResult
	}
	r := clampUnit(stat.Correlation(x, y, nil))

	return Result{Value: r, P: tTestP(r, len(x))}
}

// spearman returns Spearman's rho (Pearson over average ranks) and its p-value.
func spearman(x, y []float64) Result {
	if len(x) < minPairs || hasNaN(x) || hasNaN(y) {
		return nanResult
	}

	return pearson(averageRanks(x), averageRanks(y))
}

// kendall returns Kendall's tau-b and its two-sided p-value.
//
// Implementation (Knight's algorithm):
//   - Stage 1: order indices by (x, y); count pairs tied in x (n1) and tied
//     in both (n3) from consecutive runs.
//   - Stage 2: merge-sort the y values in that order; every strict inversion
//     is a discordant pair (dis). Pairs tied in x are already y-ascending, so
//     they never count.
//   - Stage 3: count pairs tied in y (n2) from the now sorted y values.
//
// With m = len(x), n0 = m(m-1)/2 and con = n0-n1-n2+n3-dis:
//
//	tau_b = (con-dis) / sqrt((n0-n1)(n0-n2)).
//
// Complexity: O(m log m) time, O(m) space.
func kendall(x, y []float64) Result {
	n := len(x)
	if n < minPairs || hasNaN(x) || hasNaN(y) {
		return nanResult
	}

	k := kendallCount(x, y)
	denom := math.Sqrt(float64(k.n0-k.n1) * float64(k.n0-k.n2))
	if denom == 0 {
		return nanResult
	}
	s := float64(k.con - k.dis)
	tau := clampUnit(s / denom)

	if len(k.xTies) == 0 && len(k.yTies) == 0 {
		if c := min(k.dis, k.n0-k.dis); n <= maxExactKendall || c <= 1 {
			return Result{Value: tau, P: kendallExactP(n, c)}
		}
	}

	return Result{Value: tau, P: kendallP(s, n, k.xTies, k.yTies)}
}

// maxExactKendall is the largest untied sample that uses the exact null
// distribution of S; larger samples fall back to the normal approximation.
const maxExactKendall = 33

// kendallCounts holds the pair counts of one tau-b evaluation.
type kendallCounts struct {
	n0, n1, n2, n3 int64     // all pairs, tied in x, tied in y, tied in both
	con, dis       int64     // concordant, discordant
	xTies, yTies   []float64 // sizes of tie groups larger than one
}

// kendallCount classifies all pairs of (x, y) without visiting them.
func kendallCount(x, y []float64) kendallCounts {
	n := len(x)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if x[idx[a]] != x[idx[b]] {
			return x[idx[a]] < x[idx[b]]
		}
		return y[idx[a]] < y[idx[b]]
	})

	var k kendallCounts
	k.n0 = int64(n) * int64(n-1) / 2

	// x runs, and (x, y) runs inside them
	for i := 0; i < n; {
		j := i + 1
		for j < n && x[idx[j]] == x[idx[i]] {
			j++
		}
		if t := int64(j - i); t > 1 {
			k.n1 += t * (t - 1) / 2
			k.xTies = append(k.xTies, float64(t))
		}
		for a := i; a < j; {
			b := a + 1
			for b < j && y[idx[b]] == y[idx[a]] {
				b++
			}
			t := int64(b - a)
			k.n3 += t * (t - 1) / 2
			a = b
		}
		i = j
	}

	ys := make([]float64, n)
	for i, p := range idx {
		ys[i] = y[p]
	}
	k.dis = mergeInversions(ys, make([]float64, n))

	// ys is sorted now
	for i := 0; i < n; {
		j := i + 1
		for j < n && ys[j] == ys[i] {
			j++
		}
		if t := int64(j - i); t > 1 {
			k.n2 += t * (t - 1) / 2
			k.yTies = append(k.yTies, float64(t))
		}
		i = j
	}
	k.con = k.n0 - k.n1 - k.n2 + k.n3 - k.dis

	return k
}

// mergeInversions sorts v ascending and returns the number of pairs i<j with
// v[i] > v[j]. Equal values are not inversions. buf must be len(v).
func mergeInversions(v, buf []float64) int64 {
	n := len(v)
	if n < 2 {
		return 0
	}
	mid := n / 2
	inv := mergeInversions(v[:mid], buf[:mid]) + mergeInversions(v[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if v[i] <= v[j] {
			buf[k] = v[i]
			i++
		} else {
			buf[k] = v[j]
			inv += int64(mid - i) // v[j] jumps every remaining left value
			j++
		}
		k++
	}
	k += copy(buf[k:], v[i:mid])
	copy(buf[k:], v[j:])
	copy(v, buf)

	return inv
}

// similarity returns 0.5 + 0.5·cos(x, y) with P fixed at 0.
// A zero vector has no direction and yields NaN.
func similarity(x, y []float64) Result {
	if len(x) == 0 {
		return Result{Value: math.NaN()}
	}
	cos := floats.Dot(x, y) / (floats.Norm(x, 2) * floats.Norm(y, 2))

	return Result{Value: 0.5 + 0.5*cos}
}

// distance returns the Euclidean norm of x-y with P fixed at 0.
func distance(x, y []float64) Result {
	return Result{Value: floats.Distance(x, y, 2)}
}

// tTestP is the two-sided p-value of correlation r over n samples under
// the null of no correlation: t = r·sqrt(df/(1-r²)), df = n-2.
func tTestP(r float64, n int) float64 {
	df := float64(n - 2)
	if math.IsNaN(r) || df <= 0 {
		return math.NaN()
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := r * math.Sqrt(df/((1-r)*(1+r)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return clampProb(2 * dist.Survival(math.Abs(t)))
}

// kendallP is the two-sided p-value of S = C-D under the normal
// approximation with tie-corrected variance. xt and yt are tie group sizes.
func kendallP(s float64, size int, xt, yt []float64) float64 {
	n := float64(size)
	v0 := n * (n - 1) * (2*n + 5)
	var vt, vu, t1, u1, t2, u2 float64
	for _, t := range xt {
		vt += t * (t - 1) * (2*t + 5)
		t1 += t * (t - 1)
		t2 += t * (t - 1) * (t - 2)
	}
	for _, u := range yt {
		vu += u * (u - 1) * (2*u + 5)
		u1 += u * (u - 1)
		u2 += u * (u - 1) * (u - 2)
	}
	variance := (v0-vt-vu)/18 + t1*u1/(2*n*(n-1))
	if n > 2 {
		variance += t2 * u2 / (9 * n * (n - 1) * (n - 2))
	}
	if variance <= 0 {
		return math.NaN()
	}
	z := s / math.Sqrt(variance)

	return clampProb(2 * distuv.UnitNormal.Survival(math.Abs(z)))
}

// kendallExactP is the two-sided p-value 2·P(D ≤ c) for an untied sample of
// size n, where D is the number of inversions of a uniform random
// permutation and c = min(dis, n0-dis).
//
// P(D ≤ c) is built one element at a time: inserting element j adds 0..j-1
// inversions with equal probability, so
//
//	p_j(k) = (1/j)·sum_{i=0}^{min(k,j-1)} p_{j-1}(k-i).
//
// Only k ≤ c is tracked; a running window sum keeps each step O(c).
// Complexity: O(n·c) time, O(c) space.
func kendallExactP(n int, c int64) float64 {
	if n <= 2 {
		return 1
	}
	p := make([]float64, c+1)
	next := make([]float64, c+1)
	p[0] = 1 // one element, zero inversions
	for j := 2; j <= n; j++ {
		var window float64
		for k := int64(0); k <= c; k++ {
			window += p[k]
			if drop := k - int64(j); drop >= 0 {
				window -= p[drop]
			}
			next[k] = window / float64(j)
		}
		p, next = next, p
	}
	var cdf float64
	for _, v := range p {
		cdf += v
	}

	return clampProb(2 * cdf)
}

// averageRanks returns 1-based ranks; tied values share the mean of their ranks.
func averageRanks(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && v[idx[j]] == v[idx[i]] {
			j++
		}
		// positions i..j-1 hold one tie group with ranks i+1..j
		mean := float64(i+1+j) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = mean
		}
		i = j
	}

	return ranks
}

// rescale min-max normalizes v to [0,1] in place.
// A vector without range (max == min) is left unchanged.
func rescale(v []float64) {
	if len(v) == 0 {
		return
	}
	lo, hi := floats.Min(v), floats.Max(v)
	span := hi - lo
	if !(span > 0) {
		return
	}
	floats.AddConst(-lo, v)
	floats.Scale(1/span, v)
}

func hasNaN(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}

// clampUnit keeps a coefficient inside [-1,1] against rounding; NaN passes through.
func clampUnit(r float64) float64 {
	switch {
	case r > 1:
		return 1
	case r < -1:
		return -1
	default:
		return r
	}
}

func clampProb(p float64) float64 {
	switch {
	case p > 1:
		return 1
	case p < 0:
		return 0
	default:
		return p
	}
}
