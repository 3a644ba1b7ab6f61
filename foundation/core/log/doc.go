// Package log provides structured logging for the argv foundation and tools.
//
// Package: log
// Title: argv Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output. Loggers are immutable: every With* call returns a copy,
//              so a logger can be handed to a classifier and shared between
//              goroutines without coordination.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-03-02 v0.2.0: Removed async mode and user context, added rotating file sink
//                      and lipgloss based console formatter
//
// Usage:
//   import mdwlog "github.com/msto63/argv/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{
//     Level:  mdwlog.LevelDebug,
//     Format: mdwlog.FormatConsole,
//   }).WithRequestID(runID)
//
//   logger.Debug("classified token", mdwlog.Fields{"index": 3, "kind": "flag"})
//
//   timer := logger.StartTimer("classify")
//   // ... work
//   timer.Stop()
//
// Rotating files are provided by NewRotatingWriter, backed by lumberjack.
package log
