// internal/common/sort.go
package common

import "sort"

// LessPair defines a stable order for alignments (for --sort).
func LessPair(a, b AlignedPair) bool {
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	if a.TargetID != b.TargetID {
		return a.TargetID < b.TargetID
	}
	if a.Result.Score != b.Result.Score {
		return a.Result.Score > b.Result.Score
	}
	return a.Index < b.Index
}

func SortPairs(ps []AlignedPair) {
	sort.SliceStable(ps, func(i, j int) bool { return LessPair(ps[i], ps[j]) })
}
