// pkg/api/tree_v1.go
package api

// DistanceMatrixV1 is a labelled square matrix; Rows[i][j] = d(Labels[i], Labels[j]).
type DistanceMatrixV1 struct {
	Labels []string    `json:"labels"`
	Rows   [][]float64 `json:"rows"`
}

// NodeV1 is one vertex of a rooted tree. Length is the branch to the parent.
type NodeV1 struct {
	Name     string   `json:"name,omitempty"`
	Length   float64  `json:"length"`
	Children []NodeV1 `json:"children,omitempty"`
}

// TreeResultV1 bundles a tree with the matrix it was built from.
type TreeResultV1 struct {
	Newick string            `json:"newick"`
	Tree   NodeV1            `json:"tree"`
	Matrix *DistanceMatrixV1 `json:"matrix,omitempty"`
}
