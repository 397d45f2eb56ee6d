package appcore

import (
	"context"

	"github.com/charmbracelet/log"

	"biogenesis-core/fasta"
	"biogenesis-core/seq"

	"biogenesis/internal/common"
	"biogenesis/internal/runutil"
)

// LoadSequences reads every record of every path in order and caps each
// at maxLen residues.
func LoadSequences(ctx context.Context, paths []string, alpha seq.Alphabet, maxLen int, logger *log.Logger) ([]seq.Sequence, error) {
	var out []seq.Sequence
	for _, p := range paths {
		recs, err := fasta.ReadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			out = append(out, r.Sequence(alpha))
		}
		logger.Debug("read sequences", "path", p, "records", len(recs))
	}
	return runutil.TruncateAll(out, maxLen, logger), nil
}

// Relabel gives every sequence a distinct, non-blank name. With newick
// set, names are first made safe for unquoted Newick labels.
func Relabel(seqs []seq.Sequence, newick bool) {
	ids := make([]string, len(seqs))
	for i, s := range seqs {
		ids[i] = s.Name
		if newick {
			ids[i] = common.NewickSafe(s.Name)
		}
	}
	for i, l := range common.UniqueLabels(ids) {
		seqs[i].Name = l
	}
}

// Names returns the sequence names in order.
func Names(seqs []seq.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.Name
	}
	return out
}
