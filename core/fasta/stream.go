// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned by ReadFile when the input holds no records.
var ErrEmpty = errors.New("no FASTA records")

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// Stream parses FASTA from r and calls emit once per record, in input order.
// Whitespace inside sequence lines is dropped. Sequence data before the
// first header becomes a record with an empty ID. It returns promptly with
// ctx.Err() when ctx is done.
func Stream(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur   Record
		seq   = make([]byte, 0, 1<<16)
		inRec bool
	)
	flush := func() error {
		if !inRec && len(seq) == 0 {
			return nil
		}
		cur.Seq = string(seq)
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = parseHeader(line[1:])
			seq = seq[:0]
			inRec = true
			continue
		}
		for _, c := range line {
			if c != ' ' && c != '\t' {
				seq = append(seq, c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return flush()
}

// parseHeader splits ">id description" at the first space or tab.
func parseHeader(hdr []byte) Record {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return Record{ID: string(hdr[:i]), Desc: string(bytes.TrimSpace(hdr[i+1:]))}
	}
	return Record{ID: string(hdr)}
}
