// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/metrics"
	"github.com/katalvlaran/rsacorr/rdm"
	"github.com/katalvlaran/rsacorr/shape"
)

// Entry names, used as log fields and metric labels.
const (
	EntryBehaviorEEG  = "behavior_eeg"
	EntryBehaviorECoG = "behavior_ecog"
	EntryBehaviorFMRI = "behavior_fmri"
	EntryEEGFMRI      = "eeg_fmri"
)

// pairFunc returns the reference and target RDMs compared at coord.
type pairFunc func(coord []int) (ref, target *rdm.RDM, err error)

// plan is one validated sweep: which cells exist and what each one compares.
type plan struct {
	entry  string
	layout string
	method compare.Method
	opts   []compare.Option
	axes   shape.Shape
	pair   pairFunc
	abs    bool // store magnitudes of both slots
}

// run executes p over every coordinate of p.axes.
//
// Stage 1 (Prepare): allocate the Output once.
// Stage 2 (Execute): fan the flat cell indices out over an errgroup bounded
// by the engine's worker count; each cell checks the context, compares its
// pair and writes its own two slots.
// Stage 3 (Finalize): on any error or cancellation the Output is dropped.
func (e *Engine) run(ctx context.Context, p plan) (*Output, error) {
	start := time.Now()
	out := newOutput(p.axes)
	cells := out.Cells()
	e.log.Debug("sweep started",
		zap.String("entry", p.entry),
		zap.String("layout", p.layout),
		zap.Stringer("shape", out.Shape()),
		zap.Stringer("method", p.method),
		zap.Int("workers", e.workers),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for flat := 0; flat < cells; flat++ {
		if gctx.Err() != nil {
			break
		}
		coord, _ := p.axes.Coord(flat) // flat < cells
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ref, target, err := p.pair(coord)
			if err != nil {
				return fmt.Errorf("cell %v: %w", coord, err)
			}
			r, err := compare.Compare(ref, target, p.method, p.opts...)
			if err != nil {
				return fmt.Errorf("cell %v: %w", coord, err)
			}
			if p.abs {
				r = r.Abs()
			}
			out.setFlat(flat, r)

			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return e.fail(p, start, err)
	}

	d := time.Since(start)
	e.metrics.ObserveSweep(p.entry, methodLabel(p.method), metrics.OutcomeOK, cells, d)
	e.log.Info("sweep finished",
		zap.String("entry", p.entry),
		zap.String("layout", p.layout),
		zap.Stringer("shape", out.Shape()),
		zap.Int("cells", cells),
		zap.Duration("elapsed", d),
	)

	return out, nil
}

// fail records a failed sweep and returns the wrapped error.
func (e *Engine) fail(p plan, start time.Time, err error) (*Output, error) {
	e.metrics.ObserveSweep(p.entry, methodLabel(p.method), metrics.OutcomeError, 0, time.Since(start))
	e.log.Error("sweep failed",
		zap.String("entry", p.entry),
		zap.String("layout", p.layout),
		zap.Error(err),
	)

	return nil, sweepErrorf(p.entry, err)
}

// reject records a configuration refused before any builder ran.
func (e *Engine) reject(entry, layout string, m compare.Method, err error) (*Output, error) {
	outcome := metrics.OutcomeError
	if errors.Is(err, ErrUnsupportedCombination) {
		outcome = metrics.OutcomeUnsupported
		e.log.Warn("sweep combination not supported",
			zap.String("entry", entry),
			zap.String("layout", layout),
		)
	}
	e.metrics.ObserveReject(entry, outcome)
	e.log.Debug("sweep rejected",
		zap.String("entry", entry),
		zap.String("method", methodLabel(m)),
		zap.Error(err),
	)

	return nil, sweepErrorf(entry, err)
}

// methodLabel is m's name, or metrics.MethodInvalid for unknown values.
func methodLabel(m compare.Method) string {
	if !m.Valid() {
		return metrics.MethodInvalid
	}

	return m.String()
}

// buildFailed records a builder or stack-check failure.
func (e *Engine) buildFailed(entry, layout string, m compare.Method, start time.Time, err error) (*Output, error) {
	return e.fail(plan{entry: entry, layout: layout, method: m}, start, err)
}

// checkStack verifies that a builder returned a complete stack of shape want.
func checkStack(name string, s *rdm.Stack, want shape.Shape) error {
	if s == nil {
		return fmt.Errorf("%s stack: %w", name, rdm.ErrNilRDM)
	}
	if got := s.Shape(); !got.Equal(want) {
		return fmt.Errorf("%s stack shape %v, want %v: %w", name, got, want, ErrStackShape)
	}
	if err := s.Complete(); err != nil {
		return fmt.Errorf("%s stack: %w", name, err)
	}

	return nil
}

// checkConditions verifies that both stacks describe the same conditions.
func checkConditions(ref, target *rdm.Stack) error {
	if ref.Conditions() != target.Conditions() {
		return fmt.Errorf("conditions %d vs %d: %w", ref.Conditions(), target.Conditions(), ErrStackShape)
	}

	return nil
}

// checkMethod rejects unknown methods before any builder runs.
func checkMethod(m compare.Method) error {
	if !m.Valid() {
		return fmt.Errorf("method %d: %w", int(m), compare.ErrUnknownMethod)
	}

	return nil
}

// stackAxes verifies that a builder returned a complete stack of the given
// rank and returns its axes.
func stackAxes(name string, s *rdm.Stack, rank int) (shape.Shape, error) {
	if s == nil {
		return nil, fmt.Errorf("%s stack: %w", name, rdm.ErrNilRDM)
	}
	axes := s.Shape()
	if axes.Rank() != rank {
		return nil, fmt.Errorf("%s stack shape %v, want rank %d: %w", name, axes, rank, ErrStackShape)
	}
	if err := s.Complete(); err != nil {
		return nil, fmt.Errorf("%s stack: %w", name, err)
	}

	return axes, nil
}
