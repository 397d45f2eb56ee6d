// internal/pipeline/aligner.go
package pipeline

import (
	"biogenesis-core/align"
	"biogenesis-core/seq"
)

// Aligner is the minimal capability the pipeline needs.
// Any aligner (including fakes in tests) can satisfy this.
type Aligner interface {
	Align(query, target seq.Sequence) (align.Result, seq.Alphabet)
}

// CoreAligner aligns with the core NW/SW implementations, picking BLOSUM62
// when either side is protein.
type CoreAligner struct {
	Mode align.Mode
	Gap  int
}

func (c CoreAligner) Align(q, t seq.Sequence) (align.Result, seq.Alphabet) {
	alpha := seq.DNA
	if seq.IsProteinPair(q, t) {
		alpha = seq.Protein
	}
	return align.Sequences(q, t, c.Mode, c.Gap), alpha
}

// Job is one pair to align. Index fixes its position in the output.
type Job struct {
	Index  int
	Query  seq.Sequence
	Target seq.Sequence
}

// CrossPairs pairs every query with every target, query-major.
func CrossPairs(queries, targets []seq.Sequence) []Job {
	jobs := make([]Job, 0, len(queries)*len(targets))
	for _, q := range queries {
		for _, t := range targets {
			jobs = append(jobs, Job{Index: len(jobs), Query: q, Target: t})
		}
	}
	return jobs
}

// SelfPairs pairs every sequence with each later one (i < j).
func SelfPairs(seqs []seq.Sequence) []Job {
	n := len(seqs)
	jobs := make([]Job, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			jobs = append(jobs, Job{Index: len(jobs), Query: seqs[i], Target: seqs[j]})
		}
	}
	return jobs
}
