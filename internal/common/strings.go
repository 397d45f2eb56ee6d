package common

import (
	"strconv"
	"strings"
)

// UniqueLabels trims ids, fills blanks with Seq<N> (1-based position) and
// suffixes repeats with _2, _3, ... so every taxon label is distinct.
func UniqueLabels(ids []string) []string {
	seen := make(map[string]int, len(ids))
	out := make([]string, len(ids))
	for i, id := range ids {
		l := strings.TrimSpace(id)
		if l == "" {
			l = "Seq" + strconv.Itoa(i+1)
		}
		base := l
		for seen[l] > 0 {
			seen[base]++
			l = base + "_" + strconv.Itoa(seen[base])
		}
		seen[l]++
		out[i] = l
	}
	return out
}

// NewickSafe replaces characters that Newick reserves in unquoted labels.
func NewickSafe(label string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', ',', ':', ';', '[', ']', '\'', ' ', '\t':
			return '_'
		}
		return r
	}, label)
}
