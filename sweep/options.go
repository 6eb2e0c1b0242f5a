// SPDX-License-Identifier: MIT

package sweep

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/metrics"
)

// Engine defaults.
const (
	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
	// DefaultTimeWindow is the number of time points per bin.
	DefaultTimeWindow = 5
	// DefaultMethod is used when an entry config leaves Method at its zero value.
	DefaultMethod = compare.Spearman
)

// Options configures an Engine.
type Options struct {
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Workers    int
	Method     compare.Method
	TimeWindow int
	// Rescale is the min-max rescale policy for calls that leave theirs nil.
	Rescale bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration Options: no logging, no
// metrics, GOMAXPROCS workers, Spearman, window 5.
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Workers:    DefaultWorkers,
		Method:     DefaultMethod,
		TimeWindow: DefaultTimeWindow,
	}
}

// WithLogger sets the engine logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the Prometheus recorder; nil disables recording.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithWorkers bounds the number of concurrent comparisons; n ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithDefaultMethod sets the method used when a call leaves Method unset.
// Invalid methods are ignored.
func WithDefaultMethod(m compare.Method) Option {
	return func(o *Options) {
		if m.Valid() {
			o.Method = m
		}
	}
}

// WithDefaultRescale sets the rescale policy used when a call leaves Rescale nil.
func WithDefaultRescale(on bool) Option {
	return func(o *Options) {
		o.Rescale = on
	}
}

// Bool returns a pointer to v, for the per-call Rescale override.
func Bool(v bool) *bool {
	return &v
}

// WithDefaultTimeWindow sets the window used when a call leaves TimeWindow at 0.
// Non-positive values are ignored.
func WithDefaultTimeWindow(w int) Option {
	return func(o *Options) {
		if w > 0 {
			o.TimeWindow = w
		}
	}
}
