// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"biogenesis-core/distance"
	"biogenesis-core/tree"

	"biogenesis/internal/output"
	"biogenesis/internal/pretty"
)

// TreePayload is everything a tree writer may render.
type TreePayload struct {
	Root   *tree.Node
	Matrix *distance.Matrix // nil when the tree was parsed, not built
	Header bool
	Pretty pretty.Options
}

// TreeWriters maps output format → handler. Last registration wins.
var TreeWriters = map[string]func(w io.Writer, p TreePayload) error{}

func RegisterTree(format string, fn func(io.Writer, TreePayload) error) { TreeWriters[format] = fn }

// WriteTree dispatches to the writer registered for format.
func WriteTree(format string, w io.Writer, p TreePayload) error {
	fn, ok := TreeWriters[format]
	if !ok {
		return fmt.Errorf("unknown tree format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// TreeFormats lists registered tree formats, sorted.
func TreeFormats() []string {
	out := make([]string, 0, len(TreeWriters))
	for k := range TreeWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterTree(output.FormatNewick, func(w io.Writer, p TreePayload) error {
		return output.WriteNewick(w, p.Root)
	})
	RegisterTree(output.FormatJSON, func(w io.Writer, p TreePayload) error {
		return output.WriteTreeJSON(w, p.Root, p.Matrix)
	})
	RegisterTree(output.FormatPHYLIP, func(w io.Writer, p TreePayload) error {
		if p.Matrix == nil {
			return fmt.Errorf("phylip output needs a distance matrix")
		}
		return output.WritePHYLIP(w, p.Matrix)
	})
	RegisterTree(output.FormatText, func(w io.Writer, p TreePayload) error {
		if _, err := io.WriteString(w, pretty.RenderTreeWithOptions(p.Root, p.Pretty)); err != nil {
			return err
		}
		if p.Matrix == nil {
			return nil
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		return output.WriteDistanceTSV(w, p.Matrix, p.Header)
	})
}
