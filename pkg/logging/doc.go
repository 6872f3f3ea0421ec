// Package logging provides structured logging utilities for mise.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that the CLI and the batch runner log in one consistent format. It
// supports environment-based log level configuration, module/version context
// injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: parse diagnostics (unparseable quantity, unrecognized unit,
//     malformed conversion) with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: rejected input lines
//   - ERROR: failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("mise", version)
//	    slog.Info("batch started", "lines", 120)
//	}
//
// Setting an explicit level, as the CLI does from --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("mise", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug mise parse "1 cup (4 tbsp.) honey"
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never mix with
// parse results written to stdout:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "batch completed",
//	    "module": "mise",
//	    "version": "v1.0.0",
//	    "lines": 120
//	}
package logging
