package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	SetLevel("info")
	Debug("hidden message")
	Info("visible message", "ball", 3)

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("debug message should be filtered at info level, got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "ball=3") {
		t.Errorf("info message missing from output: %q", out)
	}

	SetLevel("debug")
	Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug message should be written at debug level")
	}
	SetLevel("info")
}

func TestSetFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crease_debug.log")
	if err := SetFileOutput(path); err != nil {
		t.Fatalf("SetFileOutput() error = %v", err)
	}
	Warn("written to file", "path", path)
	Close()
	SetOutput(os.Stdout)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message, got %q", string(data))
	}
}
