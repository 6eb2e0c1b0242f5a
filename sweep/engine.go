// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/config"
	"github.com/katalvlaran/rsacorr/logging"
	"github.com/katalvlaran/rsacorr/metrics"
)

// Engine runs sweeps. It holds no per-call state and is safe for concurrent use.
type Engine struct {
	log        *zap.Logger
	metrics    *metrics.Metrics
	workers    int
	method     compare.Method
	timeWindow int
	rescale    bool
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Engine{
		log:        o.Logger,
		metrics:    o.Metrics,
		workers:    workers,
		method:     o.Method,
		timeWindow: o.TimeWindow,
		rescale:    o.Rescale,
	}
}

// FromConfig builds an Engine from a loaded configuration: a zap logger from
// LOG_LEVEL/LOG_FORMAT, Prometheus collectors on reg when METRICS is set, and
// the configured workers, method, rescale policy and time window as defaults.
// Errors: config.ErrInvalid, logging.ErrUnknownLevel.
func FromConfig(cfg config.Config, reg prometheus.Registerer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: FromConfig: %w", err)
	}
	lc := logging.DefaultConfig()
	lc.Level = cfg.LogLevel
	lc.Format = cfg.LogFormat
	log, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("sweep: FromConfig: %w", err)
	}

	opts := []Option{
		WithLogger(log),
		WithWorkers(cfg.Workers),
		WithDefaultMethod(cfg.Method),
		WithDefaultTimeWindow(cfg.TimeWindow),
		WithDefaultRescale(cfg.Rescale),
	}
	if cfg.Metrics {
		opts = append(opts, WithMetrics(metrics.New(reg)))
	}
	return New(opts...), nil
}

// Workers returns the concurrency bound.
func (e *Engine) Workers() int {
	return e.workers
}

// resolve fills the zero method, zero window and nil rescale of a call with
// engine defaults and returns the comparison options. A non-nil rescale wins
// in both directions.
func (e *Engine) resolve(m compare.Method, window int, rescale *bool) (compare.Method, int, []compare.Option) {
	if m == 0 {
		m = e.method
	}
	if window == 0 {
		window = e.timeWindow
	}
	on := e.rescale
	if rescale != nil {
		on = *rescale
	}

	return m, window, []compare.Option{compare.WithRescale(on)}
}
