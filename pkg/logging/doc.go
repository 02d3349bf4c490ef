// Package logging provides structured logging utilities for icinga-diagnostics.
//
// # Overview
//
// This package wraps the standard library slog package with consistent
// defaults: JSON records on stderr, module and version attributes on every
// record, and source locations when running at debug level.
//
// Stdout is reserved for the diagnostics report itself, so log records never
// mix with report lines.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages
//   - WARN/WARNING: Degraded collection results
//   - ERROR: Failures requiring attention
//
// # Usage
//
// Loggers are constructed once and passed down explicitly:
//
//	logger := logging.NewStructuredLogger("icinga-diagnostics", "0.2.0", "warn")
//	runner := &diagnostics.Runner{Logger: logger}
//
// Components accept a nil logger and fall back to a discarding one:
//
//	log := logging.OrDiscard(c.Logger)
//	log.Debug("icinga2 binary not found", "binary", c.Binary)
//
// # Environment Configuration
//
// When no level is passed, LOG_LEVEL controls verbosity:
//
//	LOG_LEVEL=debug icinga-diagnostics
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "cpu count unavailable, using runtime value",
//	    "module": "icinga-diagnostics",
//	    "version": "0.2.0"
//	}
package logging
