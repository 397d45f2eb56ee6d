// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"biogenesis/internal/common"
)

// FormatIdentity renders an identity percentage with two decimals.
func FormatIdentity(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// FormatRowTSV returns the AlignHeader columns for one pair (no trailing newline).
func FormatRowTSV(p common.AlignedPair) string {
	r := p.Result
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s\t%d\t%d\t%d\t%d",
		p.QueryID, p.TargetID, r.Mode, p.Alphabet,
		r.Score, FormatIdentity(r.Identity), r.Gaps, len(r.Aligned1),
		r.Start1, r.Start2,
	)
}
