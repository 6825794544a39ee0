package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden at notice")
	logger.Notice("shown at notice")

	SetLevel(Debug)
	logger.Debugf("shown at %s", "debug")

	out := buf.String()
	if strings.Contains(out, "hidden at notice") {
		t.Errorf("Info message should be filtered at Notice level, got %q", out)
	}
	if !strings.Contains(out, "shown at notice") {
		t.Errorf("Notice message missing from output %q", out)
	}
	if !strings.Contains(out, "shown at debug") {
		t.Errorf("Debug message missing after raising verbosity, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}
