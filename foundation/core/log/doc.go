// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Levelled, structured logging with JSON, text, console and logfmt
//              output and integration with the textkit error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Dropped async buffering and request/user context
//
// Usage:
//
//	import mdwlog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithName("realign")
//
//	logger.Info("aligned text", mdwlog.Int("columns", 4))
//	logger.ErrorWithErr("capture failed", err)
//
//	timer := logger.StartTimer("render table")
//	// ...
//	timer.Stop()
package log
