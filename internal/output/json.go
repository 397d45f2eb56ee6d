// internal/output/json.go
package output

import (
	"io"

	"biogenesis-core/align"

	"biogenesis/internal/common"
	"biogenesis/internal/jsonutil"
	"biogenesis/pkg/api"
)

// ToAPIAlignment converts a pair to the stable wire schema (v1).
func ToAPIAlignment(p common.AlignedPair) api.AlignmentV1 {
	r := p.Result
	return api.AlignmentV1{
		QueryID:  p.QueryID,
		TargetID: p.TargetID,
		Mode:     r.Mode.String(),
		Alphabet: p.Alphabet.String(),
		Score:    r.Score,
		Identity: r.Identity,
		Gaps:     r.Gaps,
		Length:   len(r.Aligned1),
		Aligned1: r.Aligned1,
		Aligned2: r.Aligned2,
		Start1:   r.Start1,
		Start2:   r.Start2,
		Match:    align.MatchLine(r.Aligned1, r.Aligned2),
	}
}

func toAPIAlignments(list []common.AlignedPair) []api.AlignmentV1 {
	out := make([]api.AlignmentV1, 0, len(list))
	for _, p := range list {
		out = append(out, ToAPIAlignment(p))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 alignments (pretty-indented).
func WriteJSON(w io.Writer, list []common.AlignedPair) error {
	return jsonutil.EncodePretty(w, toAPIAlignments(list))
}
