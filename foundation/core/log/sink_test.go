// File: sink_test.go
// Title: Rotating File Sink Tests
// Description: Tests for the lumberjack backed writer and Tee.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotatingWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argv.log")
	w := NewRotatingWriter(path, DefaultRotation())

	logger := NewWithConfig(Config{Level: LevelInfo, Format: FormatText, Output: w})
	logger.Info("written to file")

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file content = %q", data)
	}
}

func TestTee(t *testing.T) {
	var a, b bytes.Buffer

	if Tee() != io.Discard {
		t.Error("Tee() without writers should discard")
	}
	if Tee(nil, &a) != &a {
		t.Error("Tee() with one writer should return it unchanged")
	}

	w := Tee(&a, nil, &b)
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if a.String() != "x" || b.String() != "x" {
		t.Errorf("a=%q b=%q", a.String(), b.String())
	}
}
