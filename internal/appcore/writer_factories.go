package appcore

import (
	"io"

	"biogenesis/internal/common"
	"biogenesis/internal/pretty"
	"biogenesis/internal/writers"
)

// AlignmentWriterFactory starts the writer for aligned pairs.
type AlignmentWriterFactory struct {
	Format string
	Sort   bool
	Header bool
	Pretty bool
	Blocks pretty.Options
}

func NewAlignmentWriterFactory(format string, sort, header, prettyMode bool, blocks pretty.Options) AlignmentWriterFactory {
	return AlignmentWriterFactory{Format: format, Sort: sort, Header: header, Pretty: prettyMode, Blocks: blocks}
}

func (w AlignmentWriterFactory) Start(out io.Writer, bufSize int) (chan<- common.AlignedPair, <-chan error) {
	return writers.StartAlignmentWriter(out, w.Format, w.Sort, w.Header, w.Pretty, w.Blocks, bufSize)
}
