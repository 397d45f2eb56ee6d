package align

import (
	"fmt"
	"strings"
)

// Mode selects global (Needleman-Wunsch) or local (Smith-Waterman) alignment.
type Mode uint8

const (
	Global Mode = iota
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "global"
}

// ParseMode accepts global|nw|local|sw, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "global", "nw":
		return Global, nil
	case "local", "sw":
		return Local, nil
	}
	return Global, fmt.Errorf("unknown alignment mode %q (want global|local)", s)
}
