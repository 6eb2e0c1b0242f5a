// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/rsacorr/compare"
	"github.com/katalvlaran/rsacorr/rdm"
)

// ECoGMode is the mutually exclusive ECoG axis selector.
type ECoGMode int

const (
	// ECoGAllIn pools every channel and time point into one RDM; Output [2].
	ECoGAllIn ECoGMode = iota
	// ECoGChannel builds one RDM per channel; Output [channels 2].
	ECoGChannel
	// ECoGTime builds one RDM per time bin; Output [bins 2].
	ECoGTime
)

var ecogModeNames = [...]string{"allin", "channel", "time"}

// ParseECoGMode maps "allin", "channel" or "time" (case-insensitive) to a mode.
func ParseECoGMode(s string) (ECoGMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range ecogModeNames {
		if n == name {
			return ECoGMode(i), nil
		}
	}

	return 0, fmt.Errorf("sweep: ECoG mode %q: %w", s, ErrInvalidConfig)
}

// Valid reports whether m is a known mode.
func (m ECoGMode) Valid() bool {
	return m >= ECoGAllIn && m <= ECoGTime
}

// String returns the mode name.
func (m ECoGMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("ecog(%d)", int(m))
	}

	return ecogModeNames[m]
}

// rank is the number of Output axes the mode produces.
func (m ECoGMode) rank() int {
	if m == ECoGAllIn {
		return 0
	}

	return 1
}

// BehaviorECoGConfig parameterizes Engine.BehaviorECoG.
type BehaviorECoGConfig struct {
	Mode ECoGMode
	// TimeWindow is forwarded to the ECoG builder; 0 uses the engine default.
	TimeWindow int
	// Method defaults to the engine method when zero.
	Method compare.Method
	// Rescale overrides the engine's rescale policy when non-nil.
	Rescale *bool
}

// BehaviorECoG compares a single subject's behavioural RDM with ECoG RDMs.
//
// The behavioural RDM is built per subject from trial level data; the stack
// must hold exactly one RDM (shape [] or [1]). The ECoG stack is [channels],
// [bins] or pooled according to cfg.Mode.
//
// Errors: ErrNilBuilder, compare.ErrUnknownMethod, ErrInvalidConfig,
// builder errors, rdm.ErrShape, context errors.
func (e *Engine) BehaviorECoG(ctx context.Context, bhv BehaviorBuilder, ecog ECoGBuilder, cfg BehaviorECoGConfig) (*Output, error) {
	method, window, opts := e.resolve(cfg.Method, cfg.TimeWindow, cfg.Rescale)
	layout := cfg.Mode.String()

	// Stage 1 (Validate)
	if bhv == nil || ecog == nil {
		return e.reject(EntryBehaviorECoG, layout, method, ErrNilBuilder)
	}
	if err := checkMethod(method); err != nil {
		return e.reject(EntryBehaviorECoG, layout, method, err)
	}
	if !cfg.Mode.Valid() {
		return e.reject(EntryBehaviorECoG, layout, method, fmt.Errorf("ECoG mode %d: %w", int(cfg.Mode), ErrInvalidConfig))
	}
	if window < 0 {
		return e.reject(EntryBehaviorECoG, layout, method, fmt.Errorf("time window %d: %w", window, ErrInvalidConfig))
	}

	// Stage 2 (Build)
	start := time.Now()
	refStack, err := bhv.BuildBehavior(ctx, BehaviorRequest{PerSubject: true, TrialLevel: true})
	if err != nil {
		return e.buildFailed(EntryBehaviorECoG, layout, method, start, fmt.Errorf("behaviour builder: %w", err))
	}
	ref, err := singleRDM("behaviour", refStack)
	if err != nil {
		return e.buildFailed(EntryBehaviorECoG, layout, method, start, err)
	}
	target, err := ecog.BuildECoG(ctx, ECoGRequest{Mode: cfg.Mode, TimeWindow: window})
	if err != nil {
		return e.buildFailed(EntryBehaviorECoG, layout, method, start, fmt.Errorf("ECoG builder: %w", err))
	}
	axes, err := stackAxes("ECoG", target, cfg.Mode.rank())
	if err != nil {
		return e.buildFailed(EntryBehaviorECoG, layout, method, start, err)
	}
	if err = checkConditions(refStack, target); err != nil {
		return e.buildFailed(EntryBehaviorECoG, layout, method, start, err)
	}

	// Stage 3 (Execute)
	return e.run(ctx, plan{
		entry:  EntryBehaviorECoG,
		layout: layout,
		method: method,
		opts:   opts,
		axes:   axes,
		pair: func(coord []int) (*rdm.RDM, *rdm.RDM, error) {
			b, err := target.At(coord...)

			return ref, b, err
		},
	})
}

// singleRDM extracts the only RDM of a stack shaped [] or [1].
func singleRDM(name string, s *rdm.Stack) (*rdm.RDM, error) {
	if s == nil {
		return nil, fmt.Errorf("%s stack: %w", name, rdm.ErrNilRDM)
	}
	if s.Len() != 1 || s.Shape().Rank() > 1 {
		return nil, fmt.Errorf("%s stack shape %v, want a single RDM: %w", name, s.Shape(), ErrStackShape)
	}
	coord := make([]int, s.Shape().Rank())
	m, err := s.At(coord...)
	if err != nil {
		return nil, fmt.Errorf("%s stack: %w", name, err)
	}

	return m, nil
}
