// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"
	"strings"

	"biogenesis-core/seq"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Sequence converts r to a seq.Sequence. Unknown alphabets are inferred
// from the residues.
func (r Record) Sequence(alpha seq.Alphabet) seq.Sequence {
	return seq.New(r.ID, r.Seq, alpha)
}

// Parse reads every record from r.
func Parse(r io.Reader) ([]Record, error) {
	var out []Record
	err := Stream(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ParseString is Parse over an in-memory FASTA text.
func ParseString(s string) ([]Record, error) { return Parse(strings.NewReader(s)) }

// ReadFile opens path (gzip and "-" aware) and reads all records.
func ReadFile(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var out []Record
	err = Stream(ctx, rc, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}
