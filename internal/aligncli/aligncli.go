// internal/aligncli/aligncli.go
package aligncli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"biogenesis-core/align"
	"biogenesis-core/seq"

	"biogenesis/internal/clibase"
	"biogenesis/internal/cliutil"
	"biogenesis/internal/config"
	"biogenesis/internal/output"
)

// Formats accepted by --output.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatFASTA}

type Options struct {
	clibase.Common

	// Inline pair (--seq1/--seq2); mutually exclusive with files.
	Seq1, Seq2 string

	// FASTA inputs; queries alone means all-vs-all.
	Queries []string
	Targets []string

	Mode      align.Mode
	Gap       int
	Alphabet  seq.Alphabet
	MaxLength int

	MinIdentity float64
	MinScore    int
	ScoreFloor  bool

	Consensus bool
}

var flagKeys = map[string]string{
	"mode":         "align.mode",
	"gap":          "align.gap",
	"alphabet":     "align.alphabet",
	"max-length":   "align.max-length",
	"output":       "align.output",
	"min-identity": "align.min-identity",
	"min-score":    "align.min-score",
	"consensus":    "output.consensus",
}

const long = `Pairwise global (Needleman-Wunsch) or local (Smith-Waterman) alignment
with a linear gap penalty. Nucleotides score +2/-1; protein pairs use BLOSUM62.

Align two inline sequences with --seq1/--seq2, every query against every
target with --query/--target, or all query records against each other when
no target is given.`

// NewCommand builds the bg-align command. run receives the validated
// options; settings merge defaults, config file, BIOGENESIS_* env and flags.
func NewCommand(v *viper.Viper, run func(*cobra.Command, Options) error) *cobra.Command {
	cmd := clibase.NewRoot("bg-align", "Pairwise sequence alignment", long, clibase.Examples(
		"bg-align --seq1 ACGTACGT --seq2 ACGTTCGT",
		"bg-align --mode local --pretty --seq1 HEAGAWGHEE --seq2 PAWHEAE",
		"bg-align -Q queries.fa -T refs.fa.gz -o jsonl --sort",
		"bg-align --min-identity 90 family/*.fa",
	))

	fs := cmd.Flags()
	d := config.Defaults
	fs.String("seq1", "", "first sequence (inline)")
	fs.String("seq2", "", "second sequence (inline)")
	fs.StringArrayP("query", "Q", nil, "query FASTA file (repeatable, '-' = stdin)")
	fs.StringArrayP("target", "T", nil, "target FASTA file (repeatable)")

	fs.StringP("mode", "m", d["align.mode"].(string), "alignment mode: global | local")
	fs.IntP("gap", "g", d["align.gap"].(int), "linear gap penalty (<= 0)")
	fs.StringP("alphabet", "a", d["align.alphabet"].(string), "alphabet: auto | dna | rna | protein")
	fs.Int("max-length", d["align.max-length"].(int), "truncate inputs to this many residues (0 = no limit)")
	fs.StringP("output", "o", d["align.output"].(string), "output: text | json | jsonl | fasta")
	fs.Float64("min-identity", d["align.min-identity"].(float64), "drop pairs below this identity %")
	fs.Int("min-score", 0, "drop pairs scoring below this")
	fs.Bool("consensus", d["output.consensus"].(bool), "consensus row in pretty blocks")
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
		o, err := fromConfig(c, v, cfg, used, args)
		if err != nil {
			return &clibase.UsageError{Err: err}
		}
		return run(c, o)
	}
	return cmd
}

func fromConfig(c *cobra.Command, v *viper.Viper, cfg config.Config, used string, args []string) (Options, error) {
	var o Options
	o.Common = clibase.FromConfig(cfg, cfg.Align.Output, used)
	if err := clibase.Validate(o.Common, Formats...); err != nil {
		return o, err
	}

	fs := c.Flags()
	o.Seq1, _ = fs.GetString("seq1")
	o.Seq2, _ = fs.GetString("seq2")
	o.Queries, _ = fs.GetStringArray("query")
	o.Targets, _ = fs.GetStringArray("target")
	o.Queries = append(o.Queries, args...)

	var err error
	if o.Queries, err = cliutil.ExpandPositionals(o.Queries); err != nil {
		return o, err
	}
	if o.Targets, err = cliutil.ExpandPositionals(o.Targets); err != nil {
		return o, err
	}

	inline := o.Seq1 != "" || o.Seq2 != ""
	switch {
	case inline && (len(o.Queries) > 0 || len(o.Targets) > 0):
		return o, errors.New("--seq1/--seq2 cannot be combined with FASTA inputs")
	case inline && (o.Seq1 == "" || o.Seq2 == ""):
		return o, errors.New("--seq1 and --seq2 must be given together")
	case !inline && len(o.Queries) == 0:
		if len(o.Targets) > 0 {
			return o, errors.New("--target needs at least one --query")
		}
		return o, errors.New("no input: provide --seq1/--seq2 or FASTA files")
	}
	if cliutil.CountStdin(o.Queries, o.Targets) > 1 {
		return o, errors.New("stdin ('-') can be read only once")
	}

	if o.Mode, err = align.ParseMode(cfg.Align.Mode); err != nil {
		return o, err
	}
	if o.Alphabet, err = seq.ParseAlphabet(cfg.Align.Alphabet); err != nil {
		return o, err
	}
	o.Gap = cfg.Align.Gap
	if o.Gap > 0 {
		return o, fmt.Errorf("--gap must be <= 0 (got %d)", o.Gap)
	}
	o.MaxLength = cfg.Align.MaxLength
	if o.MaxLength < 0 {
		return o, errors.New("--max-length must be >= 0")
	}
	o.MinIdentity = cfg.Align.MinIdentity
	if o.MinIdentity < 0 || o.MinIdentity > 100 {
		return o, errors.New("--min-identity must be within [0,100]")
	}
	o.MinScore = cfg.Align.MinScore
	o.ScoreFloor = v.IsSet("align.min-score")
	o.Consensus = cfg.Output.Consensus
	return o, nil
}
