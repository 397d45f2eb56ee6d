// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"biogenesis/internal/common"
)

// Renderer draws the optional pretty block printed after a row.
type Renderer func(common.AlignedPair) string

// WriteText prints the header (optional) and one TSV row per pair, each
// followed by its pretty block when render is non-nil.
func WriteText(w io.Writer, list []common.AlignedPair, header bool, render Renderer) error {
	if header {
		if _, err := fmt.Fprintln(w, AlignHeader); err != nil {
			return err
		}
	}
	for _, p := range list {
		if err := writeTextRow(w, p, render); err != nil {
			return err
		}
	}
	return nil
}

// StreamText is WriteText fed from a channel. It always drains in.
func StreamText(w io.Writer, in <-chan common.AlignedPair, header bool, render Renderer) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, AlignHeader)
	}
	for p := range in {
		if err != nil {
			continue
		}
		err = writeTextRow(w, p, render)
	}
	return err
}

func writeTextRow(w io.Writer, p common.AlignedPair, render Renderer) error {
	if _, err := fmt.Fprintln(w, FormatRowTSV(p)); err != nil {
		return err
	}
	if render == nil {
		return nil
	}
	_, err := io.WriteString(w, render(p))
	return err
}
