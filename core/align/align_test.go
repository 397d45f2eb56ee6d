package align

import (
	"math/rand"
	"strings"
	"testing"

	"biogenesis-core/score"
	"biogenesis-core/seq"
)

func TestNeedlemanWunschBasic(t *testing.T) {
	r := NeedlemanWunsch("ACGT", "AGT", score.Nucleotide())
	if r.Aligned1 != "ACGT" || r.Aligned2 != "A-GT" {
		t.Fatalf("aligned = %q / %q", r.Aligned1, r.Aligned2)
	}
	if r.Score != 4 || r.Gaps != 1 || r.Identity != 100 {
		t.Fatalf("score=%d gaps=%d identity=%v", r.Score, r.Gaps, r.Identity)
	}
}

func TestNeedlemanWunschIdentical(t *testing.T) {
	r := NeedlemanWunsch("ACGT", "ACGT", score.Nucleotide())
	if r.Score != 8 || r.Aligned1 != "ACGT" || r.Aligned2 != "ACGT" || r.Identity != 100 || r.Gaps != 0 {
		t.Fatalf("got %+v", r)
	}
}

func TestNeedlemanWunschEmpty(t *testing.T) {
	r := NeedlemanWunsch("", "ACGT", score.Nucleotide())
	if r.Aligned1 != "----" || r.Aligned2 != "ACGT" || r.Score != -8 {
		t.Fatalf("got %+v", r)
	}
	if r.Identity != 0 || r.Gaps != 4 {
		t.Fatalf("identity=%v gaps=%d", r.Identity, r.Gaps)
	}
	r = NeedlemanWunsch("AC", "", score.Nucleotide())
	if r.Aligned1 != "AC" || r.Aligned2 != "--" || r.Score != -4 {
		t.Fatalf("got %+v", r)
	}
	r = NeedlemanWunsch("", "", score.Nucleotide())
	if r.Aligned1 != "" || r.Score != 0 {
		t.Fatalf("got %+v", r)
	}
}

func TestSmithWatermanCore(t *testing.T) {
	r := SmithWaterman("AAACGTAAA", "CCACGTCC", score.Nucleotide())
	if r.Aligned1 != "ACGT" || r.Aligned2 != "ACGT" || r.Score != 8 {
		t.Fatalf("got %+v", r)
	}
	if r.Start1 != 2 || r.Start2 != 2 {
		t.Fatalf("start = %d,%d want 2,2", r.Start1, r.Start2)
	}
	if r.Mode != Local {
		t.Fatalf("mode = %v", r.Mode)
	}
}

func TestSmithWatermanNoSimilarity(t *testing.T) {
	r := SmithWaterman("AAAA", "CCCC", score.Nucleotide())
	if r.Aligned1 != "" || r.Aligned2 != "" || r.Score != 0 || r.Start1 != 0 || r.Start2 != 0 {
		t.Fatalf("got %+v", r)
	}
	if r.Identity != 0 || r.Gaps != 0 {
		t.Fatalf("identity=%v gaps=%d", r.Identity, r.Gaps)
	}
}

func TestSequencesPicksProtein(t *testing.T) {
	a := seq.New("a", "WW", seq.Protein)
	b := seq.New("b", "WW", seq.Unknown)
	if got := Sequences(a, b, Global, score.DefaultGap).Score; got != 22 {
		t.Fatalf("protein score = %d, want 22", got)
	}
	d := seq.New("d", "AC", seq.DNA)
	if got := Sequences(d, d, Global, score.DefaultGap).Score; got != 4 {
		t.Fatalf("dna score = %d, want 4", got)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"global": Global, "NW": Global, "local": Local, "sw": Local} {
		if got, err := ParseMode(in); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("semi"); err == nil {
		t.Errorf("expected error")
	}
}

/* ------------------------------ brute force ------------------------------ */

// allAlignments enumerates every gapped pairing of a and b, never emitting
// a column that is gapped on both sides.
func allAlignments(a, b string, emit func(x, y string)) {
	var rec func(i, j int, x, y []byte)
	rec = func(i, j int, x, y []byte) {
		if i == len(a) && j == len(b) {
			emit(string(x), string(y))
			return
		}
		if i < len(a) && j < len(b) {
			rec(i+1, j+1, append(x, a[i]), append(y, b[j]))
		}
		if i < len(a) {
			rec(i+1, j, append(x, a[i]), append(y, Gap))
		}
		if j < len(b) {
			rec(i, j+1, append(x, Gap), append(y, b[j]))
		}
	}
	rec(0, 0, nil, nil)
}

func rescore(x, y string, sc score.Scheme) int {
	total := 0
	for i := 0; i < len(x); i++ {
		if x[i] == Gap || y[i] == Gap {
			total += sc.Gap
			continue
		}
		total += sc.Pair(x[i], y[i])
	}
	return total
}

func bruteGlobal(a, b string, sc score.Scheme) int {
	best := 0
	first := true
	allAlignments(a, b, func(x, y string) {
		if s := rescore(x, y, sc); first || s > best {
			best, first = s, false
		}
	})
	return best
}

func bruteLocal(a, b string, sc score.Scheme) int {
	best := 0
	for i := 0; i <= len(a); i++ {
		for k := i + 1; k <= len(a); k++ {
			for j := 0; j <= len(b); j++ {
				for l := j + 1; l <= len(b); l++ {
					if s := bruteGlobal(a[i:k], b[j:l], sc); s > best {
						best = s
					}
				}
			}
		}
	}
	return best
}

func randSeq(rng *rand.Rand, alphabet string, max int) string {
	n := rng.Intn(max + 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}

func TestGlobalOptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	schemes := []struct {
		sc    score.Scheme
		alpha string
	}{
		{score.Nucleotide(), "ACGT"},
		{score.Protein(), "WAKLDX"},
		{score.Scheme{Alphabet: seq.DNA, Gap: -1}, "AC"},
	}
	for _, s := range schemes {
		for trial := 0; trial < 60; trial++ {
			a, b := randSeq(rng, s.alpha, 5), randSeq(rng, s.alpha, 5)
			r := NeedlemanWunsch(a, b, s.sc)
			if want := bruteGlobal(a, b, s.sc); r.Score != want {
				t.Fatalf("NW(%q,%q) score %d, brute force %d", a, b, r.Score, want)
			}
			checkConsistent(t, a, b, r, s.sc)
			if back := NeedlemanWunsch(b, a, s.sc); back.Score != r.Score {
				t.Fatalf("NW not symmetric for %q,%q: %d vs %d", a, b, r.Score, back.Score)
			}
		}
	}
}

func TestLocalOptimalAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sc := score.Nucleotide()
	for trial := 0; trial < 60; trial++ {
		a, b := randSeq(rng, "ACG", 4), randSeq(rng, "ACG", 4)
		r := SmithWaterman(a, b, sc)
		if want := bruteLocal(a, b, sc); r.Score != want {
			t.Fatalf("SW(%q,%q) score %d, brute force %d", a, b, r.Score, want)
		}
		if r.Score < 0 {
			t.Fatalf("negative local score")
		}
		if got := rescore(r.Aligned1, r.Aligned2, sc); got != r.Score {
			t.Fatalf("SW(%q,%q) rescored %d, reported %d", a, b, got, r.Score)
		}
		u1 := strings.ReplaceAll(r.Aligned1, "-", "")
		u2 := strings.ReplaceAll(r.Aligned2, "-", "")
		if !strings.HasPrefix(a[r.Start1:], u1) || !strings.HasPrefix(b[r.Start2:], u2) {
			t.Fatalf("SW(%q,%q) region %q@%d / %q@%d not contained", a, b, u1, r.Start1, u2, r.Start2)
		}
	}
}

func checkConsistent(t *testing.T, a, b string, r Result, sc score.Scheme) {
	t.Helper()
	if len(r.Aligned1) != len(r.Aligned2) {
		t.Fatalf("unequal aligned lengths %q / %q", r.Aligned1, r.Aligned2)
	}
	if strings.ReplaceAll(r.Aligned1, "-", "") != a || strings.ReplaceAll(r.Aligned2, "-", "") != b {
		t.Fatalf("gap removal does not restore inputs: %q / %q", r.Aligned1, r.Aligned2)
	}
	for i := 0; i < len(r.Aligned1); i++ {
		if r.Aligned1[i] == Gap && r.Aligned2[i] == Gap {
			t.Fatalf("double-gap column at %d", i)
		}
	}
	if got := rescore(r.Aligned1, r.Aligned2, sc); got != r.Score {
		t.Fatalf("rescored %d, reported %d", got, r.Score)
	}
	if r.Identity < 0 || r.Identity > 100 {
		t.Fatalf("identity out of range: %v", r.Identity)
	}
}
