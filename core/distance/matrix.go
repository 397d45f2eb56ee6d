// core/distance/matrix.go
package distance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrTooFew  = errors.New("at least 2 sequences are required")
	ErrLabels  = errors.New("label count does not match sequence count")
	ErrInvalid = errors.New("invalid distance matrix")
)

// SymmetryTolerance bounds |d[i][j]-d[j][i]| accepted by FromRows.
const SymmetryTolerance = 1e-9

// Matrix is a labelled symmetric distance matrix with a zero diagonal.
type Matrix struct {
	sym    *mat.SymDense // nil when there are no labels
	labels []string
}

// New returns an all-zero matrix over labels.
func New(labels []string) *Matrix {
	m := &Matrix{labels: append([]string(nil), labels...)}
	if n := len(labels); n > 0 {
		m.sym = mat.NewSymDense(n, nil)
	}
	return m
}

// Len is the number of taxa.
func (m *Matrix) Len() int { return len(m.labels) }

// Labels returns a copy of the taxon labels in index order.
func (m *Matrix) Labels() []string { return append([]string(nil), m.labels...) }

// At returns d(i,j).
func (m *Matrix) At(i, j int) float64 { return m.sym.At(i, j) }

// Set writes d(i,j) and d(j,i). The diagonal is fixed at zero.
func (m *Matrix) Set(i, j int, d float64) {
	if i == j {
		panic(fmt.Sprintf("distance: Set on diagonal (%d,%d)", i, j))
	}
	m.sym.SetSym(i, j, d)
}

// Symmetric exposes the backing gonum matrix read-only.
func (m *Matrix) Symmetric() mat.Symmetric {
	if m.sym == nil {
		return nil
	}
	return m.sym
}

// Rows copies the matrix out as nested slices.
func (m *Matrix) Rows() [][]float64 {
	n := m.Len()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = m.sym.At(i, j)
		}
	}
	return rows
}

// Validate checks the diagonal and that every entry is finite and non-negative.
// Symmetry holds by construction.
func (m *Matrix) Validate() error {
	n := m.Len()
	for i := 0; i < n; i++ {
		if v := m.sym.At(i, i); v != 0 {
			return fmt.Errorf("%w: d[%d][%d] = %g, want 0", ErrInvalid, i, i, v)
		}
		for j := i + 1; j < n; j++ {
			v := m.sym.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return fmt.Errorf("%w: d[%d][%d] = %g", ErrInvalid, i, j, v)
			}
		}
	}
	return nil
}

// CheckUnitRange reports the first off-diagonal entry outside [0,1].
// Identity-derived matrices always pass.
func (m *Matrix) CheckUnitRange() error {
	if err := m.Validate(); err != nil {
		return err
	}
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v := m.sym.At(i, j); v > 1 {
				return fmt.Errorf("%w: d[%d][%d] = %g exceeds 1", ErrInvalid, i, j, v)
			}
		}
	}
	return nil
}

// FromRows builds a Matrix from nested slices, rejecting ragged,
// asymmetric, negative or non-finite input and a non-zero diagonal.
func FromRows(rows [][]float64, labels []string) (*Matrix, error) {
	n := len(rows)
	if len(labels) == 0 {
		labels = DefaultLabels(n)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d rows", ErrLabels, len(labels), n)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalid, i, len(r), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rows[i][j]-rows[j][i]) > SymmetryTolerance {
				return nil, fmt.Errorf("%w: d[%d][%d]=%g differs from d[%d][%d]=%g",
					ErrInvalid, i, j, rows[i][j], j, i, rows[j][i])
			}
		}
	}
	m := New(labels)
	for i := 0; i < n; i++ {
		if rows[i][i] != 0 {
			return nil, fmt.Errorf("%w: d[%d][%d] = %g, want 0", ErrInvalid, i, i, rows[i][i])
		}
		for j := i + 1; j < n; j++ {
			m.sym.SetSym(i, j, rows[i][j])
		}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultLabels returns Seq1..SeqN.
func DefaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Seq%d", i+1)
	}
	return out
}
