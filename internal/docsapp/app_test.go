package docsapp

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	files, err := Generate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}
	b, err := os.ReadFile(filepath.Join(dir, "bg-tree.md"))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if !strings.HasPrefix(s, "---\nlayout: default\ntitle: bg-tree\nnav_order: 1\n") {
		t.Fatalf("front matter:\n%s", s)
	}
	if !strings.Contains(s, "--matrix") || !strings.Contains(s, "bg-tree --newick tree.nwk") {
		t.Fatalf("flags or examples missing:\n%s", s)
	}
}

func TestRunContext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if code := RunContext(context.Background(), []string{"--dir", dir, "-q"}, io.Discard, io.Discard); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if _, err := os.Stat(filepath.Join(dir, "bg-align.md")); err != nil {
		t.Fatal(err)
	}
	if code := RunContext(context.Background(), []string{"--bogus"}, io.Discard, io.Discard); code != 2 {
		t.Fatalf("bad flag exit %d", code)
	}
}
