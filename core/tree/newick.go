// core/tree/newick.go
package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// Newick renders n in Newick notation with 4-decimal branch lengths.
// Branches of exactly zero length are written without a length.
func (n *Node) Newick() string {
	var sb strings.Builder
	writeNewick(&sb, n)
	sb.WriteByte(';')
	return sb.String()
}

func writeNewick(sb *strings.Builder, n *Node) {
	if !n.IsLeaf() {
		sb.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeNewick(sb, c)
		}
		sb.WriteByte(')')
	}
	sb.WriteString(n.Name)
	if n.Length != 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(n.Length, 'f', 4, 64))
	}
}

// ParseNewick reads a single Newick tree. Names are trimmed; a missing
// length is 0. Quoted labels and comments are not supported.
func ParseNewick(s string) (*Node, error) {
	p := &newickParser{src: strings.TrimSpace(s)}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.src) && p.src[p.pos] == ';' {
		p.pos++
	}
	if rest := strings.TrimSpace(p.src[p.pos:]); rest != "" {
		return nil, fmt.Errorf("newick: trailing input %q at offset %d", rest, p.pos)
	}
	return root, nil
}

type newickParser struct {
	src string
	pos int
}

func (p *newickParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *newickParser) node() (*Node, error) {
	n := &Node{}
	if p.peek() == '(' {
		p.pos++
		for {
			c, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("newick: expected ')' at offset %d", p.pos)
		}
		p.pos++
	}

	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(":,();", rune(p.src[p.pos])) {
		p.pos++
	}
	n.Name = strings.TrimSpace(p.src[start:p.pos])

	if p.peek() == ':' {
		p.pos++
		start = p.pos
		for p.pos < len(p.src) && !strings.ContainsRune(",();", rune(p.src[p.pos])) {
			p.pos++
		}
		raw := strings.TrimSpace(p.src[start:p.pos])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("newick: bad branch length %q at offset %d", raw, start)
		}
		n.Length = v
	}
	return n, nil
}
