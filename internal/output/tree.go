// internal/output/tree.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"biogenesis-core/distance"
	"biogenesis-core/tree"

	"biogenesis/internal/jsonutil"
	"biogenesis/pkg/api"
)

// ToAPINode converts a tree to the wire schema, recursively.
func ToAPINode(n *tree.Node) api.NodeV1 {
	v := api.NodeV1{Name: n.Name, Length: n.Length}
	for _, c := range n.Children {
		v.Children = append(v.Children, ToAPINode(c))
	}
	return v
}

// ToAPIMatrix copies m into the wire schema.
func ToAPIMatrix(m *distance.Matrix) *api.DistanceMatrixV1 {
	if m == nil {
		return nil
	}
	return &api.DistanceMatrixV1{Labels: m.Labels(), Rows: m.Rows()}
}

// WriteNewick writes the tree on one line.
func WriteNewick(w io.Writer, root *tree.Node) error {
	_, err := fmt.Fprintln(w, root.Newick())
	return err
}

// WriteTreeJSON writes the tree, its Newick string and (optionally) the matrix.
func WriteTreeJSON(w io.Writer, root *tree.Node, m *distance.Matrix) error {
	return jsonutil.EncodePretty(w, api.TreeResultV1{
		Newick: root.Newick(),
		Tree:   ToAPINode(root),
		Matrix: ToAPIMatrix(m),
	})
}

// WriteDistanceTSV writes a labelled square table with 4-decimal distances.
func WriteDistanceTSV(w io.Writer, m *distance.Matrix, header bool) error {
	labels := m.Labels()
	if header {
		if _, err := io.WriteString(w, "taxon"); err != nil {
			return err
		}
		for _, l := range labels {
			if _, err := io.WriteString(w, "\t"+l); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for i, l := range labels {
		line := l
		for j := range labels {
			line += "\t" + strconv.FormatFloat(m.At(i, j), 'f', 4, 64)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
