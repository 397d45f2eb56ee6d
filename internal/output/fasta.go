package output

import (
	"fmt"
	"io"

	"biogenesis/internal/common"
)

// StreamFASTA writes each alignment as two gapped FASTA records. It always drains in.
func StreamFASTA(w io.Writer, in <-chan common.AlignedPair) error {
	var err error
	for p := range in {
		if err == nil {
			err = writeFASTAPair(w, p)
		}
	}
	return err
}

// WriteFASTA writes a slice of alignments as gapped FASTA records.
func WriteFASTA(w io.Writer, list []common.AlignedPair) error {
	for _, p := range list {
		if err := writeFASTAPair(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeFASTAPair(w io.Writer, p common.AlignedPair) error {
	r := p.Result
	_, err := fmt.Fprintf(w,
		">%s pair=%d mate=%s start=%d score=%d identity=%s\n%s\n>%s pair=%d mate=%s start=%d score=%d identity=%s\n%s\n",
		p.QueryID, p.Index+1, p.TargetID, r.Start1, r.Score, FormatIdentity(r.Identity), r.Aligned1,
		p.TargetID, p.Index+1, p.QueryID, r.Start2, r.Score, FormatIdentity(r.Identity), r.Aligned2,
	)
	return err
}
