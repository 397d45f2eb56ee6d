// internal/writers/alignment.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"biogenesis/internal/common"
	"biogenesis/internal/jsonlutil"
	"biogenesis/internal/output"
	"biogenesis/internal/pretty"
)

// StartAlignmentWriter spins up a writer goroutine for aligned pairs.
// With sort, results are buffered and ordered by common.LessPair; json
// always buffers because it writes one array.
func StartAlignmentWriter(out io.Writer, format string, sort, header, prettyMode bool, popt pretty.Options, bufSize int) (chan<- common.AlignedPair, <-chan error) {
	if format == output.FormatJSONL && !sort {
		return jsonlutil.Start[common.AlignedPair](out, bufSize, func(enc *json.Encoder, p common.AlignedPair) error {
			return enc.Encode(output.ToAPIAlignment(p))
		}, IsBrokenPipe)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan common.AlignedPair, bufSize)
	errCh := make(chan error, 1)

	var render output.Renderer
	if prettyMode {
		render = func(p common.AlignedPair) string { return pretty.RenderAlignmentWithOptions(p, popt) }
	}

	go func() {
		collect := func() []common.AlignedPair {
			var buf []common.AlignedPair
			for p := range in {
				buf = append(buf, p)
			}
			if sort {
				common.SortPairs(buf)
			}
			return buf
		}

		var err error
		switch format {
		case output.FormatJSON:
			err = output.WriteJSON(out, collect())

		case output.FormatJSONL:
			enc := json.NewEncoder(out)
			for _, p := range collect() {
				if err = enc.Encode(output.ToAPIAlignment(p)); err != nil {
					break
				}
			}

		case output.FormatFASTA:
			if sort {
				err = output.WriteFASTA(out, collect())
			} else {
				err = output.StreamFASTA(out, in)
			}

		case output.FormatText:
			if sort {
				err = output.WriteText(out, collect(), header, render)
			} else {
				err = output.StreamText(out, in, header, render)
			}

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
