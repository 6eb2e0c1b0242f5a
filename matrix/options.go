// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Notes:
//   - The policy is fixed when a Dense is created; Clone carries it over.
//   - eps is the tolerance a matrix reports through Epsilon; callers pass it
//     to ValidateSymmetric / ValidateZeroDiagonal when they have no better one.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether Set rejects NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// WithEpsilon sets the numeric tolerance eps reported by Dense.Epsilon.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// AI-Hints:
//   - 1e-9 suits double-precision dissimilarities produced by arithmetic;
//     raise it only for data that was round-tripped through text.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables finite-only Set (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN/±Inf.
// Use it for ingestion of external data that is validated as a whole later
// (ValidateFinite).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
