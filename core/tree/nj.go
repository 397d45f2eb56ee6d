// core/tree/nj.go
package tree

import (
	"errors"
	"fmt"
	"math"

	"biogenesis-core/distance"
)

// ErrMalformed marks every rejection of NeighborJoining input.
var ErrMalformed = errors.New("malformed distance matrix")

// InputError describes why a matrix was rejected.
type InputError struct {
	Row, Col int // -1 when not tied to one cell
	Reason   string
}

func (e *InputError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformed, e.Reason)
	}
	return fmt.Sprintf("%s: %s at [%d][%d]", ErrMalformed, e.Reason, e.Row, e.Col)
}

func (e *InputError) Unwrap() error { return ErrMalformed }

// symmetryTol matches distance.FromRows.
const symmetryTol = distance.SymmetryTolerance

func validate(d [][]float64, labels []string) error {
	n := len(d)
	if len(labels) != n {
		return &InputError{Row: -1, Col: -1, Reason: fmt.Sprintf("%d labels for %d rows", len(labels), n)}
	}
	for i, row := range d {
		if len(row) != n {
			return &InputError{Row: i, Col: -1, Reason: fmt.Sprintf("row has %d columns, want %d", len(row), n)}
		}
	}
	for i := 0; i < n; i++ {
		if d[i][i] != 0 {
			return &InputError{Row: i, Col: i, Reason: "non-zero diagonal"}
		}
		for j := 0; j < n; j++ {
			v := d[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InputError{Row: i, Col: j, Reason: "non-finite distance"}
			}
			if v < 0 {
				return &InputError{Row: i, Col: j, Reason: "negative distance"}
			}
			if j > i && math.Abs(v-d[j][i]) > symmetryTol {
				return &InputError{Row: i, Col: j, Reason: "asymmetric distance"}
			}
		}
	}
	return nil
}

// NeighborJoining builds a rooted binary tree from a symmetric distance
// matrix with Saitou-Nei neighbor joining. Each round joins the active pair
// minimizing Q(i,j) = (r-2)d(i,j) - R(i) - R(j), taking the first minimum
// in row-major order over the active list; branch lengths below zero are
// clamped to 0. The merged node is appended after the surviving entries.
// The last two clusters are joined under the root at d/2 each.
//
// The input is not modified.
func NeighborJoining(d [][]float64, labels []string) (*Node, error) {
	if err := validate(d, labels); err != nil {
		return nil, err
	}
	n := len(labels)
	if n < 2 {
		name := "root"
		if n == 1 {
			name = labels[0]
		}
		return &Node{Name: name}, nil
	}
	if n == 2 {
		half := d[0][1] / 2
		return &Node{Children: []*Node{
			{Name: labels[0], Length: half},
			{Name: labels[1], Length: half},
		}}, nil
	}

	// work holds the live distances; slot s keeps its row across rounds and
	// active lists the slots in their current order.
	work := make([][]float64, n)
	for i := range work {
		work[i] = append([]float64(nil), d[i]...)
	}
	nodes := make([]*Node, n)
	for i, l := range labels {
		nodes[i] = &Node{Name: l}
	}
	active := make([]int, n)
	for i := range active {
		active[i] = i
	}
	r := make([]float64, n)

	for len(active) > 2 {
		size := len(active)
		for a, s := range active {
			sum := 0.0
			for _, t := range active {
				sum += work[s][t]
			}
			r[a] = sum
		}

		minQ, bi, bj := math.Inf(1), 0, 1
		for a := 0; a < size; a++ {
			for b := a + 1; b < size; b++ {
				q := float64(size-2)*work[active[a]][active[b]] - r[a] - r[b]
				if q < minQ {
					minQ, bi, bj = q, a, b
				}
			}
		}

		si, sj := active[bi], active[bj]
		dij := work[si][sj]
		li := dij/2 + (r[bi]-r[bj])/(2*float64(size-2))
		lj := dij - li
		joined := &Node{Children: []*Node{nodes[si], nodes[sj]}}
		nodes[si].Length = math.Max(0, li)
		nodes[sj].Length = math.Max(0, lj)

		// Reuse slot si for the merged cluster.
		kept := active[:0:0]
		for a, s := range active {
			if a == bi || a == bj {
				continue
			}
			kept = append(kept, s)
		}
		for _, k := range kept {
			v := (work[k][si] + work[k][sj] - dij) / 2
			work[k][si], work[si][k] = v, v
		}
		work[si][si] = 0
		nodes[si], nodes[sj] = joined, nil
		active = append(kept, si)
	}

	a, b := active[0], active[1]
	half := math.Max(0, work[a][b]/2)
	nodes[a].Length = half
	nodes[b].Length = half
	return &Node{Children: []*Node{nodes[a], nodes[b]}}, nil
}

// FromMatrix runs NeighborJoining on a distance.Matrix.
func FromMatrix(m *distance.Matrix) (*Node, error) {
	return NeighborJoining(m.Rows(), m.Labels())
}
