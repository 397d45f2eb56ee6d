package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"

	"biogenesis-core/align"
	"biogenesis-core/fasta"
	"biogenesis-core/seq"

	"biogenesis/internal/clibase"
	"biogenesis/internal/cmdutil"
	"biogenesis/internal/common"
	"biogenesis/internal/pipeline"
	"biogenesis/internal/pretty"
	"biogenesis/internal/visitors"
)

func jobs() []pipeline.Job {
	a := seq.New("a", "ACGT", seq.DNA)
	b := seq.New("b", "AGT", seq.DNA)
	c := seq.New("c", "TTTT", seq.DNA)
	return pipeline.SelfPairs([]seq.Sequence{a, b, c})
}

func TestRunTSV(t *testing.T) {
	var out bytes.Buffer
	wf := NewAlignmentWriterFactory("text", false, true, false, pretty.DefaultOptions)
	code := Run[common.AlignedPair](context.Background(), &out, cmdutil.Discard(),
		Options{Threads: 2, NoMatchExitCode: 1}, jobs(),
		pipeline.CoreAligner{Mode: align.Global, Gap: -2}, visitors.PassThrough{}.Visit, wf)
	if code != ExitOK {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header + 3 rows, got %q", out.String())
	}
	if !strings.HasPrefix(lines[1], "a\tb\tglobal\tdna\t4\t") {
		t.Fatalf("first row = %q", lines[1])
	}
}

func TestRunNoMatchExitCode(t *testing.T) {
	var out bytes.Buffer
	wf := NewAlignmentWriterFactory("jsonl", false, false, false, pretty.DefaultOptions)
	floor := visitors.Threshold{MinIdentity: 101}
	code := Run[common.AlignedPair](context.Background(), &out, cmdutil.Discard(),
		Options{Threads: 1, NoMatchExitCode: 7}, jobs(),
		pipeline.CoreAligner{Mode: align.Global, Gap: -2}, floor.Visit, wf)
	if code != 7 || out.Len() != 0 {
		t.Fatalf("exit %d out %q", code, out.String())
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	wf := NewAlignmentWriterFactory("jsonl", false, false, false, pretty.DefaultOptions)
	code := Run[common.AlignedPair](ctx, io.Discard, cmdutil.Discard(),
		Options{Threads: 2, NoMatchExitCode: 1}, jobs(),
		pipeline.CoreAligner{Mode: align.Global, Gap: -2}, visitors.PassThrough{}.Visit, wf)
	if code != ExitCanceled {
		t.Fatalf("exit %d, want %d", code, ExitCanceled)
	}
}

func TestRunVisitError(t *testing.T) {
	boom := errors.New("boom")
	visit := func(common.AlignedPair) (bool, common.AlignedPair, error) {
		return false, common.AlignedPair{}, boom
	}
	wf := NewAlignmentWriterFactory("jsonl", false, false, false, pretty.DefaultOptions)
	code := Run[common.AlignedPair](context.Background(), io.Discard, cmdutil.Discard(),
		Options{Threads: 2, NoMatchExitCode: 1}, jobs(),
		pipeline.CoreAligner{Mode: align.Global, Gap: -2}, visit, wf)
	if code != ExitRuntime {
		t.Fatalf("exit %d, want %d", code, ExitRuntime)
	}
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestEmit(t *testing.T) {
	var out bytes.Buffer
	if code := Emit(&out, cmdutil.Discard(), func(w io.Writer) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	}); code != ExitOK || out.String() != "ok\n" {
		t.Fatalf("emit: code %d out %q", code, out.String())
	}
	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "x")
		return err
	}
	if code := Emit(failWriter{syscall.EPIPE}, cmdutil.Discard(), write); code != ExitOK {
		t.Fatalf("broken pipe must be success, got %d", code)
	}
	if code := Emit(failWriter{errors.New("disk full")}, cmdutil.Discard(), write); code != ExitRuntime {
		t.Fatalf("write error: got %d", code)
	}
}

func TestFail(t *testing.T) {
	l := cmdutil.Discard()
	if Fail(l, clibase.Usagef("bad")) != ExitUsage {
		t.Errorf("usage error must exit 2")
	}
	if Fail(l, context.Canceled) != ExitCanceled {
		t.Errorf("cancel must exit 130")
	}
	if Fail(l, fmt.Errorf("x.fa: %w", fasta.ErrEmpty)) != ExitUsage {
		t.Errorf("empty input must exit 2")
	}
	if _, err := os.Open("/definitely/not/here.fa"); Fail(l, err) != ExitUsage {
		t.Errorf("missing file must exit 2")
	}
	if Fail(l, errors.New("io")) != ExitRuntime {
		t.Errorf("runtime error must exit 3")
	}
}
