package main

import (
	"bytes"
	"os"
	"testing"
)

// captureOutput captures stdout produced while running fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), fnErr
}

// writeTempTrace writes lines to a temp file and returns its path.
func writeTempTrace(t *testing.T, lines string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "trace-*.rep")
	if err != nil {
		t.Fatalf("failed to create temp trace file: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(lines); err != nil {
		t.Fatalf("failed to write temp trace file: %v", err)
	}
	return f.Name()
}
