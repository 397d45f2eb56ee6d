package treecli

import (
	"context"
	"io"
	"testing"

	"github.com/spf13/cobra"

	"biogenesis-core/seq"

	"biogenesis/internal/clibase"
	"biogenesis/internal/config"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	var got Options
	cmd := NewCommand(config.New(), func(_ *cobra.Command, o Options) error {
		got = o
		return nil
	})
	_, err := clibase.Parse(context.Background(), cmd, argv, io.Discard, io.Discard)
	return got, err
}

func TestDefaults(t *testing.T) {
	o, err := parse(t, "a.fa", "b.fa")
	if err != nil {
		t.Fatal(err)
	}
	if o.Source != FromSequences || len(o.SeqFiles) != 2 {
		t.Fatalf("source %v files %v", o.Source, o.SeqFiles)
	}
	if o.Output != "newick" || o.MaxLength != 500 || o.Gap != -2 || o.Alphabet != seq.Unknown || o.TreeWidth != 48 {
		t.Fatalf("defaults: %+v", o)
	}
}

func TestSources(t *testing.T) {
	o, err := parse(t, "--matrix", "d.phy", "-o", "phylip")
	if err != nil || o.Source != FromMatrix || o.MatrixFile != "d.phy" {
		t.Fatalf("matrix: %+v %v", o, err)
	}
	o, err = parse(t, "--newick", "t.nwk", "-o", "text")
	if err != nil || o.Source != FromNewick {
		t.Fatalf("newick: %+v %v", o, err)
	}
	o, err = parse(t, "-s", "-")
	if err != nil || o.Source != FromSequences || o.SeqFiles[0] != "-" {
		t.Fatalf("stdin: %+v %v", o, err)
	}
}

func TestEnv(t *testing.T) {
	t.Setenv("BIOGENESIS_TREE_OUTPUT", "json")
	t.Setenv("BIOGENESIS_TREE_MAX_LENGTH", "50")
	o, err := parse(t, "a.fa")
	if err != nil {
		t.Fatal(err)
	}
	if o.Output != "json" || o.MaxLength != 50 {
		t.Fatalf("env not applied: %+v", o)
	}
}

func TestUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no input":         {},
		"two sources":      {"a.fa", "--matrix", "d.phy"},
		"newick to phylip": {"--newick", "t.nwk", "-o", "phylip"},
		"bad output":       {"a.fa", "-o", "fasta"},
		"positive gap":     {"a.fa", "-g", "3"},
		"narrow tree":      {"a.fa", "--tree-width", "4"},
		"double stdin":     {"-", "-s", "-"},
	}
	for name, argv := range cases {
		if _, err := parse(t, argv...); err == nil || !clibase.IsUsage(err) {
			t.Errorf("%s: err=%v, want usage error", name, err)
		}
	}
}
