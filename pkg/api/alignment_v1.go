// pkg/api/alignment_v1.go
package api

// AlignmentV1 is the stable JSON/JSONL schema for one pairwise alignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type AlignmentV1 struct {
	QueryID  string  `json:"query_id"`
	TargetID string  `json:"target_id"`
	Mode     string  `json:"mode"`     // "global" | "local"
	Alphabet string  `json:"alphabet"` // scoring scheme used: "dna" | "protein"
	Score    int     `json:"score"`
	Identity float64 `json:"identity"` // percent, 0..100
	Gaps     int     `json:"gaps"`
	Length   int     `json:"length"` // aligned columns
	Aligned1 string  `json:"aligned1"`
	Aligned2 string  `json:"aligned2"`
	Start1   int     `json:"start1,omitempty"`
	Start2   int     `json:"start2,omitempty"`
	Match    string  `json:"match_line,omitempty"`
}
