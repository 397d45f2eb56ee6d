// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostics logger for a tool. Results never go
// through it; it writes to w (normally stderr). quiet raises the floor to
// errors only. An unrecognized level falls back to info with a warning.
func NewLogger(w io.Writer, prefix, level string, quiet bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: prefix})
	lvl, ok := ParseLevel(level)
	logger.SetLevel(lvl)
	if !ok {
		logger.Warn("unknown log level, defaulting to info", "provided", level)
	}
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// ParseLevel maps debug|info|warn|warning|error to a log level.
// ok is false for anything else, which maps to info.
func ParseLevel(s string) (log.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel, true
	case "info", "":
		return log.InfoLevel, true
	case "warn", "warning":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	}
	return log.InfoLevel, false
}

// Discard is a logger that drops everything; handy for library callers and tests.
func Discard() *log.Logger {
	l := log.New(io.Discard)
	l.SetLevel(log.FatalLevel)
	return l
}
