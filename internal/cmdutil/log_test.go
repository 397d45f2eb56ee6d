package cmdutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel, "INFO": log.InfoLevel, "": log.InfoLevel,
		"warning": log.WarnLevel, "warn": log.WarnLevel, "error": log.ErrorLevel,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Errorf("unknown level accepted")
	}
}

func TestNewLoggerUnknownLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "bg", "loud", false)
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Fatalf("missing warning, got %q", buf.String())
	}
	if l.GetLevel() != log.InfoLevel {
		t.Fatalf("level = %v", l.GetLevel())
	}
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "bg", "debug", true)
	l.Info("hidden")
	l.Warn("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
	l.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("errors must survive --quiet, got %q", buf.String())
	}
}
