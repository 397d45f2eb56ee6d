package seq

import "testing"

func TestInfer(t *testing.T) {
	cases := map[string]Alphabet{
		"":            DNA,
		"ACGT":        DNA,
		"acgtn":       DNA,
		"ACGU":        RNA,
		"ACGTU":       DNA,
		"RYKMN":       DNA,
		"MKTAYIAKQR":  Protein,
		"ACG-T":       DNA,
		"MEEPQSDPSV*": Protein,
		// proteins spelled only with IUPAC nucleotide codes cannot be told apart
		"WW":    DNA,
		"KRAMS": DNA,
	}
	for in, want := range cases {
		if got := Infer(in); got != want {
			t.Errorf("Infer(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseAlphabet(t *testing.T) {
	for in, want := range map[string]Alphabet{"": Unknown, "auto": Unknown, "DNA": DNA, "rna": RNA, "Protein": Protein} {
		got, err := ParseAlphabet(in)
		if err != nil || got != want {
			t.Errorf("ParseAlphabet(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAlphabet("klingon"); err == nil {
		t.Fatalf("expected error for unknown alphabet")
	}
}

func TestTruncateDoesNotMutate(t *testing.T) {
	s := New("x", "ACGTACGT", Unknown)
	cut := s.Truncate(3)
	if cut.Residues != "ACG" || s.Residues != "ACGTACGT" {
		t.Fatalf("truncate: got %q, original now %q", cut.Residues, s.Residues)
	}
	if s.Truncate(0).Len() != 8 || s.Truncate(100).Len() != 8 {
		t.Fatalf("non-positive or large limits must keep the full sequence")
	}
}

func TestIsProteinPair(t *testing.T) {
	d := New("d", "ACGT", Unknown)
	p := New("p", "MKWVL", Unknown)
	if IsProteinPair(d, d) {
		t.Errorf("dna/dna must not be protein")
	}
	if !IsProteinPair(d, p) || !IsProteinPair(p, d) {
		t.Errorf("any protein side selects protein scoring")
	}
}
