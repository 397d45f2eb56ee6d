// core/seq/sequence.go
package seq

// Sequence is a named residue string with its declared alphabet.
// Values are never mutated by this module; methods return copies.
type Sequence struct {
	Name     string
	Residues string
	Alphabet Alphabet
}

// New returns a Sequence, inferring the alphabet when alpha is Unknown.
func New(name, residues string, alpha Alphabet) Sequence {
	if alpha == Unknown {
		alpha = Infer(residues)
	}
	return Sequence{Name: name, Residues: residues, Alphabet: alpha}
}

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s.Residues) }

// Truncate returns s cut to at most n residues. n <= 0 means no limit.
func (s Sequence) Truncate(n int) Sequence {
	if n <= 0 || len(s.Residues) <= n {
		return s
	}
	s.Residues = s.Residues[:n]
	return s
}

// IsProteinPair reports whether a pair must be scored with the protein scheme:
// true as soon as either side is declared Protein.
func IsProteinPair(a, b Sequence) bool {
	return a.Alphabet == Protein || b.Alphabet == Protein
}
