// internal/runutil/runutil.go
package runutil

import (
	"runtime"

	"github.com/charmbracelet/log"

	"biogenesis-core/seq"
)

// EffectiveThreads resolves the --threads value: 0 or less means all CPUs.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// TruncateAll caps every sequence at max residues (max <= 0 keeps them
// whole) and logs a warning for each one that was cut.
func TruncateAll(seqs []seq.Sequence, max int, logger *log.Logger) []seq.Sequence {
	out := make([]seq.Sequence, len(seqs))
	for i, s := range seqs {
		out[i] = s.Truncate(max)
		if logger != nil && out[i].Len() < s.Len() {
			logger.Warn("sequence truncated", "name", s.Name, "length", s.Len(), "max", max)
		}
	}
	return out
}

// NeedMatrix tells the tree tool whether the distance matrix must travel
// with the tree to the writer.
func NeedMatrix(output string) bool {
	switch output {
	case "json", "phylip", "text":
		return true
	}
	return false
}
