// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// under reports whether path is pkg itself or one of its subpackages.
func under(path, pkg string) bool {
	return path == pkg || strings.HasPrefix(path, pkg+"/")
}

var (
	surfaces = []string{
		"biogenesis/internal/appcore", "biogenesis/internal/alignapp", "biogenesis/internal/treeapp",
		"biogenesis/internal/aligncli", "biogenesis/internal/treecli", "biogenesis/internal/clibase",
		"biogenesis/cmd",
	}
	rendering = []string{"biogenesis/internal/writers", "biogenesis/internal/output", "biogenesis/internal/pretty"}
)

func join(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "biogenesis/...", "biogenesis-core/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"biogenesis-core":              {"biogenesis/"},
		"biogenesis/internal/pipeline": join(surfaces, rendering),
		"biogenesis/internal/writers":  join(surfaces, []string{"biogenesis/internal/pipeline"}),
		"biogenesis/internal/output":   join(surfaces, []string{"biogenesis/internal/pipeline", "biogenesis/internal/writers"}),
		"biogenesis/internal/pretty":   join(surfaces, []string{"biogenesis/internal/pipeline", "biogenesis/internal/writers", "biogenesis/internal/output"}),
		"biogenesis/internal/common":   join(surfaces, rendering, []string{"biogenesis/internal/pipeline"}),
	}

	var violations []string
	seen := 0
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if p.Standard {
			continue
		}
		seen++
		for prefix, forbidden := range bans {
			if !under(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if under(dep, strings.TrimSuffix(ban, "/")) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}
	if seen == 0 {
		t.Fatalf("go list returned no packages")
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
