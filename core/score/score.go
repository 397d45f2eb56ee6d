// core/score/score.go
package score

import (
	"fmt"

	"biogenesis-core/seq"
)

const (
	// DefaultGap is the linear penalty charged per gap column.
	DefaultGap = -2

	NucleotideMatch    = 2
	NucleotideMismatch = -1

	// MissingProtein is charged when a protein symbol is absent from BLOSUM62.
	MissingProtein = -1
)

// Score returns the substitution score for one aligned residue pair.
// Both schemes ignore letter case.
func Score(a, b byte, alpha seq.Alphabet) int {
	if alpha == seq.Protein {
		if v, ok := Blosum62(a, b); ok {
			return v
		}
		return MissingProtein
	}
	if upper(a) == upper(b) {
		return NucleotideMatch
	}
	return NucleotideMismatch
}

// Scheme bundles a substitution rule with a linear gap penalty.
type Scheme struct {
	Alphabet seq.Alphabet
	Gap      int
}

// NewScheme rejects positive gap penalties.
func NewScheme(alpha seq.Alphabet, gap int) (Scheme, error) {
	if gap > 0 {
		return Scheme{}, fmt.Errorf("gap penalty must be <= 0 (got %d)", gap)
	}
	return Scheme{Alphabet: alpha, Gap: gap}, nil
}

// Nucleotide is the +2/-1 scheme with the default gap.
func Nucleotide() Scheme { return Scheme{Alphabet: seq.DNA, Gap: DefaultGap} }

// Protein is the BLOSUM62 scheme with the default gap.
func Protein() Scheme { return Scheme{Alphabet: seq.Protein, Gap: DefaultGap} }

// Pair scores a residue pair under s.
func (s Scheme) Pair(a, b byte) int { return Score(a, b, s.Alphabet) }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
