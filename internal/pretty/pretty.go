package pretty

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"biogenesis-core/align"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"biogenesis/internal/common"
)

// Options control the ASCII rendering.
type Options struct {
	// Residues per alignment row. If <=0, use default (60).
	Width int

	// Columns used for the tree drawing. If <=0, use default (48).
	TreeWidth int

	// Print the consensus row under each block.
	Consensus bool

	// Color residues by column class (match / mismatch / gap) with ANSI styles.
	Color bool

	// Glyphs for the match row
	MatchGlyph    byte // default '|'
	MismatchGlyph byte // default '.'
	GapGlyph      byte // default ' '
}

// DefaultOptions: 60-column blocks with a consensus row.
var DefaultOptions = Options{
	Width:         60,
	TreeWidth:     48,
	Consensus:     true,
	MatchGlyph:    '|',
	MismatchGlyph: '.',
	GapGlyph:      ' ',
}

const (
	linePrefix    = "# "
	consensusName = "consensus"
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.TreeWidth <= 0 {
		o.TreeWidth = DefaultOptions.TreeWidth
	}
	if o.MatchGlyph == 0 {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == 0 {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == 0 {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

/* --------------------------------- styles --------------------------------- */

type palette struct {
	match, mismatch, gap, label lipgloss.Style
}

var (
	paletteOnce sync.Once
	styles      palette
)

// colors are forced on: --color is an explicit request, even when piped.
func colors() palette {
	paletteOnce.Do(func() {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.ANSI256)
		styles = palette{
			match:    r.NewStyle().Foreground(lipgloss.Color("#10B981")),
			mismatch: r.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true),
			gap:      r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
			label:    r.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true),
		}
	})
	return styles
}

/* ------------------------------- alignments ------------------------------- */

// RenderAlignment draws p with DefaultOptions.
func RenderAlignment(p common.AlignedPair) string {
	return RenderAlignmentWithOptions(p, DefaultOptions)
}

// RenderAlignmentWithOptions draws a summary line then blocks of Width
// columns: query row, match row, target row and (optionally) consensus.
// Row coordinates are 1-based residue positions in the inputs. Every line
// starts with "# " so TSV consumers can skip it.
func RenderAlignmentWithOptions(p common.AlignedPair, o Options) string {
	o = o.withDefaults()
	r := p.Result
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s vs %s  mode=%s score=%d identity=%.2f%% gaps=%d length=%d\n",
		linePrefix, p.QueryID, p.TargetID, r.Mode, r.Score, r.Identity, r.Gaps, len(r.Aligned1))
	if len(r.Aligned1) == 0 {
		sb.WriteString(linePrefix + "(empty alignment)\n")
		return sb.String()
	}

	match := matchRow(r.Aligned1, r.Aligned2, o)
	var cons string
	if o.Consensus {
		cons = align.Consensus(r.Aligned1, r.Aligned2)
	}

	nameW := max(len(p.QueryID), len(p.TargetID))
	if o.Consensus {
		nameW = max(nameW, len(consensusName))
	}
	pad := strings.Repeat(" ", nameW)
	pos1, pos2 := r.Start1, r.Start2

	for off := 0; off < len(r.Aligned1); off += o.Width {
		end := min(off+o.Width, len(r.Aligned1))
		seg1, seg2 := r.Aligned1[off:end], r.Aligned2[off:end]
		if off > 0 {
			sb.WriteString("#\n")
		}
		pos1 = writeSeqRow(&sb, p.QueryID, nameW, seg1, match[off:end], pos1, o)
		fmt.Fprintf(&sb, "%s%s %6s %s\n", linePrefix, pad, "", match[off:end])
		pos2 = writeSeqRow(&sb, p.TargetID, nameW, seg2, match[off:end], pos2, o)
		if o.Consensus {
			fmt.Fprintf(&sb, "%s%-*s %6s %s\n", linePrefix, nameW, consensusName, "", cons[off:end])
		}
	}
	return sb.String()
}

// writeSeqRow prints "name start SEGMENT end" and returns the residue count
// consumed so far.
func writeSeqRow(sb *strings.Builder, name string, nameW int, seg, match string, pos int, o Options) int {
	n := len(seg) - strings.Count(seg, string(align.Gap))
	first := pos + 1
	if n == 0 {
		first = pos
	}
	body := seg
	if o.Color {
		body = colorize(seg, match, o)
	}
	fmt.Fprintf(sb, "%s%-*s %6d %s %d\n", linePrefix, nameW, name, first, body, pos+n)
	return pos + n
}

func matchRow(a1, a2 string, o Options) string {
	m := []byte(align.MatchLine(a1, a2))
	for i, c := range m {
		switch c {
		case '|':
			m[i] = o.MatchGlyph
		case '.':
			m[i] = o.MismatchGlyph
		default:
			m[i] = o.GapGlyph
		}
	}
	return string(m)
}

func colorize(seg, match string, o Options) string {
	pal := colors()
	var sb strings.Builder
	for i := 0; i < len(seg); i++ {
		s := string(seg[i])
		switch {
		case seg[i] == align.Gap || match[i] == o.GapGlyph:
			sb.WriteString(pal.gap.Render(s))
		case match[i] == o.MatchGlyph:
			sb.WriteString(pal.match.Render(s))
		default:
			sb.WriteString(pal.mismatch.Render(s))
		}
	}
	return sb.String()
}
