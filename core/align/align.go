// core/align/align.go
package align

import (
	"biogenesis-core/score"
	"biogenesis-core/seq"
)

// Gap is the symbol written into aligned strings for an indel column.
const Gap = '-'

// Result is one pairwise alignment. Aligned1 and Aligned2 always have equal
// length. Start1/Start2 are the 0-based offsets where a local alignment
// begins in the inputs; they are 0 for global alignments.
type Result struct {
	Aligned1 string
	Aligned2 string
	Score    int
	Identity float64
	Gaps     int
	Start1   int
	Start2   int
	Mode     Mode
}

// Align runs the aligner selected by mode.
func Align(s1, s2 string, mode Mode, sc score.Scheme) Result {
	if mode == Local {
		return SmithWaterman(s1, s2, sc)
	}
	return NeedlemanWunsch(s1, s2, sc)
}

// Sequences aligns two tagged sequences, switching to BLOSUM62 when either
// side is protein.
func Sequences(a, b seq.Sequence, mode Mode, gap int) Result {
	alpha := seq.DNA
	if seq.IsProteinPair(a, b) {
		alpha = seq.Protein
	}
	return Align(a.Residues, b.Residues, mode, score.Scheme{Alphabet: alpha, Gap: gap})
}

// NeedlemanWunsch returns an optimal global alignment of s1 and s2 under a
// linear gap penalty. Among co-optimal paths the traceback prefers the
// diagonal, then a gap in s2, then a gap in s1.
func NeedlemanWunsch(s1, s2 string, sc score.Scheme) Result {
	m, n := len(s1), len(s2)
	w := n + 1
	dp := make([]int, (m+1)*w)
	for i := 1; i <= m; i++ {
		dp[i*w] = i * sc.Gap
	}
	for j := 1; j <= n; j++ {
		dp[j] = j * sc.Gap
	}
	for i := 1; i <= m; i++ {
		a := s1[i-1]
		row, prev := i*w, (i-1)*w
		for j := 1; j <= n; j++ {
			best := dp[prev+j-1] + sc.Pair(a, s2[j-1])
			if up := dp[prev+j] + sc.Gap; up > best {
				best = up
			}
			if left := dp[row+j-1] + sc.Gap; left > best {
				best = left
			}
			dp[row+j] = best
		}
	}

	a1, a2, _, _ := traceback(dp, w, s1, s2, m, n, sc, false)
	return finish(a1, a2, dp[m*w+n], 0, 0, Global)
}

// SmithWaterman returns the best-scoring local alignment. The start cell is
// the first strict maximum in row-major order; traceback halts at the first
// zero cell. When no pair scores above zero the result is empty.
func SmithWaterman(s1, s2 string, sc score.Scheme) Result {
	m, n := len(s1), len(s2)
	w := n + 1
	dp := make([]int, (m+1)*w)
	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= m; i++ {
		a := s1[i-1]
		row, prev := i*w, (i-1)*w
		for j := 1; j <= n; j++ {
			best := dp[prev+j-1] + sc.Pair(a, s2[j-1])
			if up := dp[prev+j] + sc.Gap; up > best {
				best = up
			}
			if left := dp[row+j-1] + sc.Gap; left > best {
				best = left
			}
			if best < 0 {
				best = 0
			}
			dp[row+j] = best
			if best > maxScore {
				maxScore, maxI, maxJ = best, i, j
			}
		}
	}

	a1, a2, i, j := traceback(dp, w, s1, s2, maxI, maxJ, sc, true)
	return finish(a1, a2, maxScore, i, j, Local)
}

// traceback walks dp back from (i,j). Global walks to the origin; local
// stops on a zero cell or a table edge. It returns the aligned strings and
// the coordinates where the walk ended.
func traceback(dp []int, w int, s1, s2 string, i, j int, sc score.Scheme, local bool) (string, string, int, int) {
	buf1 := make([]byte, 0, i+j)
	buf2 := make([]byte, 0, i+j)
	for {
		if local {
			if i == 0 || j == 0 || dp[i*w+j] <= 0 {
				break
			}
		} else if i == 0 && j == 0 {
			break
		}
		cur := dp[i*w+j]
		switch {
		case i > 0 && j > 0 && cur == dp[(i-1)*w+j-1]+sc.Pair(s1[i-1], s2[j-1]):
			buf1 = append(buf1, s1[i-1])
			buf2 = append(buf2, s2[j-1])
			i--
			j--
		case i > 0 && cur == dp[(i-1)*w+j]+sc.Gap:
			buf1 = append(buf1, s1[i-1])
			buf2 = append(buf2, Gap)
			i--
		case j > 0:
			buf1 = append(buf1, Gap)
			buf2 = append(buf2, s2[j-1])
			j--
		default:
			// unreachable for a table filled by the recurrences above
			buf1 = append(buf1, s1[i-1])
			buf2 = append(buf2, Gap)
			i--
		}
	}
	reverse(buf1)
	reverse(buf2)
	return string(buf1), string(buf2), i, j
}

func finish(a1, a2 string, sc, start1, start2 int, mode Mode) Result {
	return Result{
		Aligned1: a1,
		Aligned2: a2,
		Score:    sc,
		Identity: Identity(a1, a2),
		Gaps:     CountGaps(a1, a2),
		Start1:   start1,
		Start2:   start2,
		Mode:     mode,
	}
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
