package internal

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"ERROR", LogLevelError, true},
		{"debug", LogLevelDebug, true},
		{" trace ", LogLevelTrace, true},
		{"verbose", LogLevelError, false},
	}

	for _, test := range tests {
		level, ok := ParseLogLevel(test.input)
		if ok != test.ok {
			t.Errorf("ParseLogLevel(%q) ok = %v, want %v", test.input, ok, test.ok)
		}
		if ok && level != test.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", test.input, level, test.expected)
		}
	}
}

func TestComponentLoggerFollowsRootLevel(t *testing.T) {
	buf := captureLog(t)

	root := NewLogger(LogLevelWarn)
	child := root.With("dataset")

	child.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("Expected no output at WARN level, got %q", buf.String())
	}

	root.SetLevel(LogLevelDebug)
	child.Debug("loaded %d rows", 3)

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] [dataset] loaded 3 rows") {
		t.Errorf("Unexpected log output: %q", out)
	}
}
