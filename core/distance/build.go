// core/distance/build.go
package distance

import (
	"fmt"

	"biogenesis-core/align"
	"biogenesis-core/seq"
)

// PairDistance is 1 - identity/100 of the global alignment of a and b.
// The protein scheme is used when either side is protein.
func PairDistance(a, b seq.Sequence, gap int) float64 {
	r := align.Sequences(a, b, align.Global, gap)
	return 1 - r.Identity/100
}

// PrepareLabels validates the sequence count and resolves labels, using
// Seq1..SeqN when labels is empty.
func PrepareLabels(n int, labels []string) ([]string, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFew, n)
	}
	if len(labels) == 0 {
		return DefaultLabels(n), nil
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d sequences", ErrLabels, len(labels), n)
	}
	return labels, nil
}

// Builder computes all-pairs distance matrices serially.
type Builder struct {
	Gap int
}

// Build aligns every unordered pair once and fills both halves.
func (b Builder) Build(seqs []seq.Sequence, labels []string) (*Matrix, error) {
	labels, err := PrepareLabels(len(seqs), labels)
	if err != nil {
		return nil, err
	}
	m := New(labels)
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			m.Set(i, j, PairDistance(seqs[i], seqs[j], b.Gap))
		}
	}
	return m, nil
}
