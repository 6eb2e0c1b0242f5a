// SPDX-License-Identifier: MIT

package rdm

import (
	"fmt"

	"github.com/katalvlaran/rsacorr/shape"
)

// Stack is an n-dimensional array of RDMs sharing one condition count.
//
// It is the output contract of RDM builders: a pooled build is a zero-rank
// Stack holding one RDM, a per-subject build is a [subjects] Stack, a
// per-subject-per-channel-per-time build is [subjects, channels, bins], and a
// searchlight build is [x, y, z].
type Stack struct {
	shape shape.Shape
	items []*RDM
	n     int // condition count, 0 until the first Set
}

// NewStack returns an empty Stack with the given axis sizes.
//
// Implementation:
//   - Stage 1: validate dims through shape.New (every size ≥ 1).
//   - Stage 2: allocate Volume() empty slots in row-major order.
//
// Inputs:
//   - dims: axis sizes, outermost first. No dims yields a zero-rank Stack
//     with a single slot, the shape of a pooled build.
//
// Returns:
//   - *Stack with every slot nil and Conditions() == 0. The condition count
//     is fixed by the first successful Set.
//
// Errors:
//   - shape.ErrBadShape (wrapped) for a zero or negative size.
//
// Determinism:
//   - Slot k always holds coordinate shape.Coord(k); builders may fill slots
//     in any order. Set is not safe for concurrent use.
//
// Complexity:
//   - Time O(rank + volume), Space O(volume) pointers.
//
// AI-Hints:
//   - Call Complete before handing the stack to a sweep; the engine does the
//     same and rejects a partial stack with ErrNilRDM.
func NewStack(dims ...int) (*Stack, error) {
	s, err := shape.New(dims...)
	if err != nil {
		return nil, rdmErrorf("NewStack", err)
	}

	return &Stack{shape: s, items: make([]*RDM, s.Volume())}, nil // slots start nil
}

// Single wraps one RDM in a zero-rank Stack.
func Single(m *RDM) (*Stack, error) {
	if m == nil {
		return nil, rdmErrorf("Single", ErrNilRDM)
	}
	s, _ := NewStack()
	s.items[0] = m
	s.n = m.n

	return s, nil
}

// StackOf builds a Stack of the given dims from items laid out in row-major order.
// Errors: ErrShape when len(items) differs from the volume of dims,
// plus any error from Set.
func StackOf(dims []int, items []*RDM) (*Stack, error) {
	s, err := NewStack(dims...)
	if err != nil {
		return nil, err
	}
	if len(items) != s.shape.Volume() {
		return nil, rdmErrorf(fmt.Sprintf("StackOf: %d items for shape %v", len(items), s.shape), ErrShape)
	}
	for i, m := range items {
		if m == nil {
			return nil, rdmErrorf(fmt.Sprintf("StackOf: item %d", i), ErrNilRDM)
		}
		if s.n == 0 {
			s.n = m.n
		}
		if m.n != s.n {
			return nil, rdmErrorf(fmt.Sprintf("StackOf: item %d", i), ErrSizeMismatch)
		}
		s.items[i] = m
	}

	return s, nil
}

// Shape returns a copy of the stack's axis sizes.
func (s *Stack) Shape() shape.Shape {
	return s.shape.Clone()
}

// Len returns the number of slots.
func (s *Stack) Len() int {
	return len(s.items)
}

// Conditions returns the shared condition count (0 while the stack is empty).
func (s *Stack) Conditions() int {
	return s.n
}

// Set stores m at coord.
// Errors: ErrNilRDM, wrapped shape errors, ErrSizeMismatch when m's size
// differs from RDMs already stored.
func (s *Stack) Set(coord []int, m *RDM) error {
	if m == nil {
		return rdmErrorf("Stack.Set", ErrNilRDM)
	}
	off, err := s.shape.Offset(coord)
	if err != nil {
		return rdmErrorf("Stack.Set", err)
	}
	if s.n != 0 && m.n != s.n {
		return rdmErrorf(fmt.Sprintf("Stack.Set%v", coord), ErrSizeMismatch)
	}
	s.n = m.n
	s.items[off] = m

	return nil
}

// At returns the RDM stored at coord.
// Errors: wrapped shape errors, ErrNilRDM for an unfilled slot.
func (s *Stack) At(coord ...int) (*RDM, error) {
	off, err := s.shape.Offset(coord)
	if err != nil {
		return nil, rdmErrorf("Stack.At", err)
	}
	m := s.items[off]
	if m == nil {
		return nil, rdmErrorf(fmt.Sprintf("Stack.At%v", coord), ErrNilRDM)
	}

	return m, nil
}

// Complete reports the first unfilled slot, if any.
func (s *Stack) Complete() error {
	for i, m := range s.items {
		if m == nil {
			c, _ := s.shape.Coord(i)
			return rdmErrorf(fmt.Sprintf("Stack.Complete: slot %v", c), ErrNilRDM)
		}
	}

	return nil
}
