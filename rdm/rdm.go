// SPDX-License-Identifier: MIT

package rdm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rsacorr/matrix"
)

// minConditions is the smallest RDM with a non-empty upper triangle.
const minConditions = 2

// RDM is a square dissimilarity matrix over n experimental conditions,
// stored in a row-major matrix.Dense.
//
// Set keeps the matrix symmetric by writing both (i,j) and (j,i), and refuses
// non-zero diagonal values. Matrices built from external data (FromRows,
// FromSymmetric) are only checked for shape; run Validate for the numeric
// invariants.
type RDM struct {
	n int           // number of conditions
	d *matrix.Dense // n×n, NaN/Inf admitted on ingestion
}

// newDense allocates the n×n backing store. NaN and Inf pass through Set so
// that raw builder output can be loaded and then rejected by Validate with
// its coordinates.
func newDense(op string, n int) (*RDM, error) {
	d, err := matrix.NewDense(n, n,
		matrix.WithEpsilon(DefaultTolerance),
		matrix.WithNoValidateNaNInf(),
	)
	if err != nil {
		return nil, fromMatrix(op, err)
	}

	return &RDM{n: n, d: d}, nil
}

// New returns an n×n RDM filled with zeros.
// Errors: ErrTooSmall if n < 2.
// Complexity: O(n²).
func New(n int) (*RDM, error) {
	if n < minConditions {
		return nil, rdmErrorf("New", ErrTooSmall)
	}

	return newDense("New", n)
}

// FromRows copies a row-major [][]float64 into a new RDM.
//
// Stage 1 (Validate): n ≥ 2 and every row has length n.
// Stage 2 (Execute): copy rows into the dense store.
//
// Errors: ErrTooSmall, ErrNonSquare.
// Complexity: O(n²).
func FromRows(rows [][]float64) (*RDM, error) {
	n := len(rows)
	if n < minConditions {
		return nil, rdmErrorf("FromRows", ErrTooSmall)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return nil, rdmErrorf(fmt.Sprintf("FromRows: row %d", i), ErrNonSquare)
		}
	}

	m, err := newDense("FromRows", n)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		for j, v := range rows[i] {
			_ = m.d.Set(i, j, v) // in range, finite-only policy off
		}
	}

	return m, nil
}

// FromSymmetric copies a gonum symmetric matrix into a new RDM.
// Errors: ErrNilRDM if s is nil, ErrTooSmall if s is smaller than 2×2.
func FromSymmetric(s mat.Symmetric) (*RDM, error) {
	if s == nil {
		return nil, rdmErrorf("FromSymmetric", ErrNilRDM)
	}
	n := s.SymmetricDim()
	if n < minConditions {
		return nil, rdmErrorf("FromSymmetric", ErrTooSmall)
	}

	m, err := newDense("FromSymmetric", n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.d.Set(i, j, s.At(i, j))
		}
	}

	return m, nil
}

// Size returns the number of conditions n.
func (m *RDM) Size() int {
	return m.n
}

// Dense exposes the backing matrix for read-only use with the matrix
// validators. Writing through it bypasses the symmetric Set.
func (m *RDM) Dense() *matrix.Dense {
	return m.d
}

// At returns the dissimilarity between conditions i and j.
// Errors: ErrOutOfRange.
func (m *RDM) At(i, j int) (float64, error) {
	v, err := m.d.At(i, j)
	if err != nil {
		return 0, fromMatrix("At", err)
	}

	return v, nil
}

// Set assigns v to both (i,j) and (j,i).
// Errors: ErrOutOfRange, ErrNonZeroDiagonal when i==j and v != 0.
func (m *RDM) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return rdmErrorf(fmt.Sprintf("Set(%d,%d)", i, j), ErrOutOfRange)
	}
	if i == j && v != 0 {
		return rdmErrorf(fmt.Sprintf("Set(%d,%d)", i, j), ErrNonZeroDiagonal)
	}
	// both writes are in range after the guard above
	_ = m.d.Set(i, j, v)
	_ = m.d.Set(j, i, v)

	return nil
}

// Clone returns a deep copy.
func (m *RDM) Clone() *RDM {
	return &RDM{n: m.n, d: m.d.CloneDense()}
}

// Sym returns the RDM as a gonum *mat.SymDense built from its upper triangle.
func (m *RDM) Sym() *mat.SymDense {
	s := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		row, _ := m.d.RowView(i)
		for j := i; j < m.n; j++ {
			s.SetSym(i, j, row[j])
		}
	}

	return s
}

// Rows returns a row-major [][]float64 copy.
func (m *RDM) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		row, _ := m.d.RowView(i)
		rows[i] = append([]float64(nil), row...)
	}

	return rows
}

// String implements fmt.Stringer for debugging.
func (m *RDM) String() string {
	return m.d.String()
}
