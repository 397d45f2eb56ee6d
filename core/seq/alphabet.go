// core/seq/alphabet.go
package seq

import (
	"fmt"
	"strings"
)

// Alphabet tags the residue set a sequence is drawn from.
type Alphabet uint8

const (
	Unknown Alphabet = iota // not declared; callers may Infer it
	DNA
	RNA
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Protein:
		return "protein"
	}
	return "auto"
}

// IsNucleotide reports whether a scores with the nucleotide identity scheme.
// Unknown counts as nucleotide.
func (a Alphabet) IsNucleotide() bool { return a != Protein }

// ParseAlphabet accepts dna|rna|protein (any case). "auto" and "" map to Unknown.
func ParseAlphabet(s string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Unknown, nil
	case "dna", "nt", "nucleotide":
		return DNA, nil
	case "rna":
		return RNA, nil
	case "protein", "aa", "prot":
		return Protein, nil
	}
	return Unknown, fmt.Errorf("unknown alphabet %q (want auto|dna|rna|protein)", s)
}

/* ------------------------- nucleotide lookup table ------------------------- */

// nucleotide marks letters that may appear in a DNA/RNA record, IUPAC
// ambiguity codes included. isNuc marks membership; isT and isU record
// which of T and U the letter is.
var nucleotide [256]byte

const (
	isNuc byte = 1 << iota
	isT
	isU
)

func init() {
	for _, c := range []byte("ACGTURYSWKMBDHVN") {
		nucleotide[c] = isNuc
		nucleotide[c+'a'-'A'] = isNuc
	}
	nucleotide['T'] |= isT
	nucleotide['t'] |= isT
	nucleotide['U'] |= isU
	nucleotide['u'] |= isU
}

// Infer guesses the alphabet of raw residues. Anything outside the IUPAC
// nucleotide codes means Protein; U without T means RNA.
// Gap characters and whitespace are ignored. Empty input is DNA.
func Infer(residues string) Alphabet {
	var seen byte
	for i := 0; i < len(residues); i++ {
		c := residues[i]
		switch c {
		case '-', '.', '*', ' ', '\t', '\r', '\n':
			continue
		}
		m := nucleotide[c]
		if m == 0 {
			return Protein
		}
		seen |= m
	}
	if seen&isU != 0 && seen&isT == 0 {
		return RNA
	}
	return DNA
}
