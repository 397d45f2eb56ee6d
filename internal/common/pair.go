// internal/common/pair.go
package common

import (
	"biogenesis-core/align"
	"biogenesis-core/seq"
)

// AlignedPair is one finished alignment as it travels from the pipeline to
// the writers. Index is the pair's position in job order.
type AlignedPair struct {
	Index    int
	QueryID  string
	TargetID string
	Alphabet seq.Alphabet // scheme actually used for scoring
	Result   align.Result
}
