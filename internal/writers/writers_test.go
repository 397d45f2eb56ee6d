package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"biogenesis-core/align"
	"biogenesis-core/distance"
	"biogenesis-core/score"
	"biogenesis-core/seq"
	"biogenesis-core/tree"

	"biogenesis/internal/common"
	"biogenesis/internal/output"
	"biogenesis/internal/pretty"
	"biogenesis/pkg/api"
)

func pairs() []common.AlignedPair {
	return []common.AlignedPair{
		{Index: 0, QueryID: "b", TargetID: "x", Alphabet: seq.DNA, Result: align.NeedlemanWunsch("ACGT", "ACGT", score.Nucleotide())},
		{Index: 1, QueryID: "a", TargetID: "x", Alphabet: seq.DNA, Result: align.NeedlemanWunsch("ACGT", "AGT", score.Nucleotide())},
	}
}

func run(t *testing.T, format string, sort, header, prettyMode bool) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := StartAlignmentWriter(&buf, format, sort, header, prettyMode, pretty.DefaultOptions, 1)
	for _, p := range pairs() {
		in <- p
	}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("%s writer: %v", format, err)
	}
	return buf.String()
}

func TestTextWriterStreamsInOrder(t *testing.T) {
	got := run(t, output.FormatText, false, true, false)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 || lines[0] != output.AlignHeader {
		t.Fatalf("got %q", got)
	}
	if !strings.HasPrefix(lines[1], "b\t") || !strings.HasPrefix(lines[2], "a\t") {
		t.Fatalf("stream order changed: %q", got)
	}
}

func TestTextWriterSorted(t *testing.T) {
	got := run(t, output.FormatText, true, false, true)
	if !strings.HasPrefix(got, "a\tx\t") {
		t.Fatalf("sorted output should start with query a: %q", got)
	}
	if !strings.Contains(got, "# a vs x") {
		t.Fatalf("pretty block missing: %q", got)
	}
}

func TestJSONLWriter(t *testing.T) {
	for _, sort := range []bool{false, true} {
		got := run(t, output.FormatJSONL, sort, false, false)
		lines := strings.Split(strings.TrimSpace(got), "\n")
		if len(lines) != 2 {
			t.Fatalf("sort=%v lines=%d: %q", sort, len(lines), got)
		}
		var first api.AlignmentV1
		if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
			t.Fatal(err)
		}
		want := "b"
		if sort {
			want = "a"
		}
		if first.QueryID != want {
			t.Fatalf("sort=%v first = %q", sort, first.QueryID)
		}
	}
}

func TestJSONWriterArray(t *testing.T) {
	var got []api.AlignmentV1
	if err := json.Unmarshal([]byte(run(t, output.FormatJSON, false, false, false)), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1].Aligned2 != "A-GT" {
		t.Fatalf("got %+v", got)
	}
}

func TestFASTAWriter(t *testing.T) {
	got := run(t, output.FormatFASTA, false, false, false)
	if strings.Count(got, ">") != 4 {
		t.Fatalf("expected 4 records: %q", got)
	}
}

func TestUnknownAlignmentFormatDrains(t *testing.T) {
	in, errCh := StartAlignmentWriter(io.Discard, "xml", false, false, false, pretty.DefaultOptions, 1)
	for _, p := range pairs() {
		in <- p
	}
	close(in)
	if err := <-errCh; err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("err = %v", err)
	}
}

func TestTreeRegistry(t *testing.T) {
	m, _ := distance.FromRows([][]float64{{0, 0.4}, {0.4, 0}}, []string{"P", "Q"})
	root, _ := tree.FromMatrix(m)
	payload := TreePayload{Root: root, Matrix: m, Header: true, Pretty: pretty.DefaultOptions}

	var nw bytes.Buffer
	if err := WriteTree(output.FormatNewick, &nw, payload); err != nil {
		t.Fatal(err)
	}
	if nw.String() != "(P:0.2000,Q:0.2000);\n" {
		t.Fatalf("newick = %q", nw.String())
	}
	var txt bytes.Buffer
	if err := WriteTree(output.FormatText, &txt, payload); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(txt.String(), "P (0.2000)") || !strings.Contains(txt.String(), "taxon\tP\tQ") {
		t.Fatalf("text = %q", txt.String())
	}
	if err := WriteTree(output.FormatPHYLIP, io.Discard, TreePayload{Root: root}); err == nil {
		t.Fatalf("phylip without matrix must fail")
	}
	if err := WriteTree("svg", io.Discard, payload); err == nil || !strings.Contains(err.Error(), "no writer registered") {
		t.Fatalf("err = %v", err)
	}
	if got := fmt.Sprint(TreeFormats()); got != "[json newick phylip text]" {
		t.Fatalf("formats = %s", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("broken pipe not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatalf("false positive")
	}
}
