package align

// Identity is the percentage of ungapped columns whose symbols match,
// ignoring case. Columns where either side is a gap are excluded from both
// counts. It is 0 when no ungapped column exists.
func Identity(a1, a2 string) float64 {
	n := min(len(a1), len(a2))
	matches, total := 0, 0
	for i := 0; i < n; i++ {
		x, y := a1[i], a2[i]
		if x == Gap || y == Gap {
			continue
		}
		total++
		if upper(x) == upper(y) {
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total) * 100
}

// CountGaps counts columns where either aligned string holds a gap.
func CountGaps(a1, a2 string) int {
	n := min(len(a1), len(a2))
	gaps := 0
	for i := 0; i < n; i++ {
		if a1[i] == Gap || a2[i] == Gap {
			gaps++
		}
	}
	return gaps
}

// MatchLine renders the column annotation shown between two aligned rows:
// '|' for a match, '.' for a mismatch, ' ' for a gap column.
func MatchLine(a1, a2 string) string {
	n := min(len(a1), len(a2))
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		x, y := a1[i], a2[i]
		switch {
		case x == Gap || y == Gap:
			out[i] = ' '
		case upper(x) == upper(y):
			out[i] = '|'
		default:
			out[i] = '.'
		}
	}
	return string(out)
}

// Consensus returns, per column, the most frequent non-gap symbol
// (upper-cased) across the aligned rows. Ties go to the symbol seen first
// when scanning rows in order; all-gap columns yield '-'. The result has the
// length of the first row; shorter rows contribute nothing past their end.
func Consensus(rows ...string) string {
	if len(rows) == 0 {
		return ""
	}
	width := len(rows[0])
	out := make([]byte, width)
	var counts [256]int
	order := make([]byte, 0, len(rows))
	for col := 0; col < width; col++ {
		order = order[:0]
		for _, r := range rows {
			if col >= len(r) || r[col] == Gap {
				continue
			}
			c := upper(r[col])
			if counts[c] == 0 {
				order = append(order, c)
			}
			counts[c]++
		}
		best := byte(Gap)
		bestN := 0
		for _, c := range order {
			if counts[c] > bestN {
				best, bestN = c, counts[c]
			}
			counts[c] = 0
		}
		out[col] = best
	}
	return string(out)
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
