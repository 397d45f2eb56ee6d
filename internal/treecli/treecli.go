// internal/treecli/treecli.go
package treecli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"biogenesis-core/seq"

	"biogenesis/internal/clibase"
	"biogenesis/internal/cliutil"
	"biogenesis/internal/config"
	"biogenesis/internal/output"
)

// Formats accepted by --output.
var Formats = []string{output.FormatNewick, output.FormatJSON, output.FormatText, output.FormatPHYLIP}

// Source says where the tree comes from.
type Source uint8

const (
	FromSequences Source = iota // align all pairs, build distances, join
	FromMatrix                  // PHYLIP distance matrix, join
	FromNewick                  // existing tree, re-render only
)

type Options struct {
	clibase.Common

	Source     Source
	SeqFiles   []string
	MatrixFile string
	NewickFile string

	Gap       int
	Alphabet  seq.Alphabet
	MaxLength int

	TreeWidth int
}

var flagKeys = map[string]string{
	"gap":        "tree.gap",
	"alphabet":   "tree.alphabet",
	"max-length": "tree.max-length",
	"output":     "tree.output",
	"tree-width": "output.tree-width",
}

const long = `Build a Neighbor-Joining tree from global-alignment distances
(1 - identity/100) between every pair of FASTA records, from a PHYLIP
distance matrix, or re-render an existing Newick tree.`

// NewCommand builds the bg-tree command; see aligncli.NewCommand.
func NewCommand(v *viper.Viper, run func(*cobra.Command, Options) error) *cobra.Command {
	cmd := clibase.NewRoot("bg-tree", "Neighbor-Joining trees from sequences", long, clibase.Examples(
		"bg-tree family.fa",
		"bg-tree -o text --max-length 300 a.fa b.fa",
		"bg-tree --matrix dist.phy -o json",
		"bg-tree --newick tree.nwk -o text",
	))

	fs := cmd.Flags()
	d := config.Defaults
	fs.StringArrayP("sequences", "s", nil, "FASTA file with the taxa (repeatable, '-' = stdin)")
	fs.String("matrix", "", "PHYLIP distance matrix instead of sequences")
	fs.String("newick", "", "existing Newick tree to re-render")

	fs.IntP("gap", "g", d["tree.gap"].(int), "linear gap penalty (<= 0)")
	fs.StringP("alphabet", "a", d["tree.alphabet"].(string), "alphabet: auto | dna | rna | protein")
	fs.Int("max-length", d["tree.max-length"].(int), "truncate inputs to this many residues (0 = no limit)")
	fs.StringP("output", "o", d["tree.output"].(string), "output: newick | json | text | phylip")
	fs.Int("tree-width", d["output.tree-width"].(int), "columns for the text tree drawing")
	clibase.Register(fs)

	cmd.RunE = func(c *cobra.Command, args []string) error {
		if err := clibase.Bind(v, c.Flags(), clibase.SharedKeys); err != nil {
			return err
		}
		if err := clibase.Bind(v, c.Flags(), flagKeys); err != nil {
			return err
		}
		cfg, used, err := clibase.LoadConfig(c, v)
		if err != nil {
			return err
		}
		o, err := fromConfig(c, cfg, used, args)
		if err != nil {
			return &clibase.UsageError{Err: err}
		}
		return run(c, o)
	}
	return cmd
}

func fromConfig(c *cobra.Command, cfg config.Config, used string, args []string) (Options, error) {
	var o Options
	o.Common = clibase.FromConfig(cfg, cfg.Tree.Output, used)
	if err := clibase.Validate(o.Common, Formats...); err != nil {
		return o, err
	}

	fs := c.Flags()
	o.SeqFiles, _ = fs.GetStringArray("sequences")
	o.SeqFiles = append(o.SeqFiles, args...)
	o.MatrixFile, _ = fs.GetString("matrix")
	o.NewickFile, _ = fs.GetString("newick")

	var err error
	if o.SeqFiles, err = cliutil.ExpandPositionals(o.SeqFiles); err != nil {
		return o, err
	}

	sources := 0
	if len(o.SeqFiles) > 0 {
		sources++
		o.Source = FromSequences
	}
	if o.MatrixFile != "" {
		sources++
		o.Source = FromMatrix
	}
	if o.NewickFile != "" {
		sources++
		o.Source = FromNewick
	}
	switch {
	case sources == 0:
		return o, errors.New("no input: provide FASTA files, --matrix or --newick")
	case sources > 1:
		return o, errors.New("FASTA inputs, --matrix and --newick are mutually exclusive")
	}
	if cliutil.CountStdin(o.SeqFiles) > 1 {
		return o, errors.New("stdin ('-') can be read only once")
	}
	if o.Source == FromNewick && o.Output == output.FormatPHYLIP {
		return o, errors.New("--output phylip needs distances; a Newick input has none")
	}

	if o.Alphabet, err = seq.ParseAlphabet(cfg.Tree.Alphabet); err != nil {
		return o, err
	}
	o.Gap = cfg.Tree.Gap
	if o.Gap > 0 {
		return o, fmt.Errorf("--gap must be <= 0 (got %d)", o.Gap)
	}
	o.MaxLength = cfg.Tree.MaxLength
	if o.MaxLength < 0 {
		return o, errors.New("--max-length must be >= 0")
	}
	o.TreeWidth = cfg.Output.TreeWidth
	if o.TreeWidth < 8 {
		return o, errors.New("--tree-width must be >= 8")
	}
	return o, nil
}
