// Package logging provides structured logging for taskdeck.
//
// It wraps log/slog to write JSON-formatted entries to a rotating file
// under the taskdeck data directory, with child loggers carrying the
// component and task id of whatever produced the entry.
//
// Polling loops deliberately log their read-path failures at debug
// level only: a missed list or log fetch self-heals on the next tick
// and is never surfaced to the user.
//
// Basic usage:
//
//	logger, err := logging.NewLogger(dataDir, "info", logging.DefaultRotationConfig())
//	if err != nil { ... }
//	defer logger.Close()
//
//	tailLog := logger.WithComponent("tail").WithTask(7)
//	tailLog.Debug("fetch failed, keeping previous text", "error", err)
//
// NopLogger returns a logger that discards everything; tests use it so
// components never need a nil check.
package logging
