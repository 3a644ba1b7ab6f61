// File: sink.go
// Title: Rotating File Sink
// Description: Log file output with size based rotation, backed by lumberjack.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation controls when log files are rotated and how many are kept
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultRotation returns conservative rotation settings for CLI usage
func DefaultRotation() Rotation {
	return Rotation{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// NewRotatingWriter returns a writer that appends to path and rotates it.
// The caller owns the returned closer.
func NewRotatingWriter(path string, rotation Rotation) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}
}

// Tee returns a writer duplicating output to every non-nil writer
func Tee(writers ...io.Writer) io.Writer {
	active := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			active = append(active, w)
		}
	}
	switch len(active) {
	case 0:
		return io.Discard
	case 1:
		return active[0]
	default:
		return io.MultiWriter(active...)
	}
}
