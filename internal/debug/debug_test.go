package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	SetDebug(true)
	SetNoColor(true)

	Debug("git %s", "init")

	w.Close()
	os.Stderr = oldStderr

	SetDebug(false)

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("Output should contain [DEBUG] prefix, got: %s", output)
	}

	if !strings.Contains(output, "git init") {
		t.Errorf("Output should contain message, got: %s", output)
	}
}
