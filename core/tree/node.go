// core/tree/node.go
package tree

// Node is a rooted tree vertex. Length is the branch length to the parent
// (0 on the root). Leaves carry taxon names; internal nodes built by
// NeighborJoining are unnamed. Every child has exactly one parent.
type Node struct {
	Name     string
	Length   float64
	Children []*Node
}

func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Leaves returns leaf nodes left to right.
func (n *Node) Leaves() []*Node {
	var out []*Node
	n.Walk(func(x *Node, _ int) {
		if x.IsLeaf() {
			out = append(out, x)
		}
	})
	return out
}

// Walk visits n and its descendants in pre-order, passing the depth in edges.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	var rec func(x *Node, d int)
	rec = func(x *Node, d int) {
		fn(x, d)
		for _, c := range x.Children {
			rec(c, d+1)
		}
	}
	rec(n, 0)
}

// ZeroLengthStep is the horizontal extent given to zero-length branches
// when laying out a tree, so collapsed edges stay visible.
const ZeroLengthStep = 0.1

// MaxDepth is the largest root-to-leaf path length, drawing zero-length
// branches as ZeroLengthStep.
func (n *Node) MaxDepth() float64 {
	best := 0.0
	for _, c := range n.Children {
		if d := drawLength(c) + c.MaxDepth(); d > best {
			best = d
		}
	}
	return best
}

func drawLength(n *Node) float64 {
	if n.Length == 0 {
		return ZeroLengthStep
	}
	return n.Length
}

// Point is the layout position of one node: X is the cumulative drawn
// branch length from the root, Y is the leaf row (internal nodes sit at the
// midpoint of their children's rows).
type Point struct {
	Node   *Node
	Parent *Node
	X, Y   float64
}

// Layout positions every node of root for a left-to-right phylogram.
// Points are returned in pre-order.
func Layout(root *Node) []Point {
	var pts []Point
	row := 0
	var rec func(x, parent *Node, at float64) float64
	rec = func(x, parent *Node, at float64) float64 {
		idx := len(pts)
		pts = append(pts, Point{Node: x, Parent: parent, X: at})
		if x.IsLeaf() {
			pts[idx].Y = float64(row)
			row++
			return pts[idx].Y
		}
		lo, hi := 0.0, 0.0
		for i, c := range x.Children {
			y := rec(c, x, at+drawLength(c))
			if i == 0 || y < lo {
				lo = y
			}
			if i == 0 || y > hi {
				hi = y
			}
		}
		pts[idx].Y = (lo + hi) / 2
		return pts[idx].Y
	}
	rec(root, nil, 0)
	return pts
}
