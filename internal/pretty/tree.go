package pretty

import (
	"fmt"
	"math"
	"strings"

	"biogenesis-core/tree"
)

// RenderTree draws root with DefaultOptions.
func RenderTree(root *tree.Node) string { return RenderTreeWithOptions(root, DefaultOptions) }

// RenderTreeWithOptions draws a left-to-right phylogram: horizontal extent
// follows branch length (scaled so the deepest leaf reaches TreeWidth),
// leaves are one row apart and labelled with their branch length.
func RenderTreeWithOptions(root *tree.Node, o Options) string {
	o = o.withDefaults()
	pts := tree.Layout(root)
	depth := root.MaxDepth()
	width := o.TreeWidth

	col := func(x float64) int {
		if depth <= 0 {
			return 0
		}
		return int(math.Round(x / depth * float64(width)))
	}
	row := func(y float64) int { return int(math.Round(2 * y)) }

	leaves := 0
	at := make(map[*tree.Node]tree.Point, len(pts))
	for _, p := range pts {
		at[p.Node] = p
		if p.Node.IsLeaf() {
			leaves++
		}
	}
	rows := max(2*leaves-1, 1)
	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width+1))
	}
	put := func(r, c int, ch byte, force bool) {
		if r < 0 || r >= rows || c < 0 || c > width {
			return
		}
		if force || grid[r][c] == ' ' {
			grid[r][c] = ch
		}
	}

	labels := make(map[int]string)
	for _, p := range pts {
		r := row(p.Y)
		if p.Node.IsLeaf() {
			labels[r] = leafLabel(p.Node, o)
		}
		if p.Parent == nil {
			put(r, col(p.X), '+', true)
			continue
		}
		q := at[p.Parent]
		c0, c1 := col(q.X), col(p.X)
		for c := c0 + 1; c <= c1; c++ {
			put(r, c, '-', true)
		}
		rq := row(q.Y)
		lo, hi := min(r, rq), max(r, rq)
		for rr := lo; rr <= hi; rr++ {
			put(rr, c0, '|', false)
		}
		put(r, c0, '+', true)
		put(rq, c0, '+', true)
	}

	var sb strings.Builder
	for r, line := range grid {
		s := strings.TrimRight(string(line), " ")
		if l, ok := labels[r]; ok {
			s += " " + l
		}
		sb.WriteString(s)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func leafLabel(n *tree.Node, o Options) string {
	name := n.Name
	if o.Color {
		name = colors().label.Render(name)
	}
	return fmt.Sprintf("%s (%.4f)", name, n.Length)
}
