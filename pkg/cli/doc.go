// Package cli implements the command-line interface for the mise ingredient parser.
//
// # Overview
//
// The mise CLI turns free-text recipe ingredient lines into structured
// measurements, names and preparation notes. It wraps pkg/ingredient for
// single lines and pkg/batch for files.
//
// # Commands
//
// parse - Parse lines given as arguments or on stdin:
//
//	mise parse [--output FILE] [--format json|yaml|table] [LINE...]
//
// One line produces a single result object; several lines produce a list
// pairing each line with its result.
//
// batch - Parse a file concurrently into a report:
//
//	mise batch --input FILE [--input-format text|json|yaml] [--concurrency N]
//	           [--timeout DURATION] [--baseline REPORT] [--metrics-file FILE]
//	           [--output FILE] [--format json|yaml|table]
//
// The report has a header (kind, apiVersion, timestamp, version, run id),
// per-line entries in input order and summary statistics. Over-long lines
// are reported as rejected entries rather than failing the run. With
// --baseline, an earlier JSON or YAML report of the same input is loaded
// and the report gains a drift section listing lines whose result changed.
//
// units - List the unit vocabulary:
//
//	mise units [--format json|yaml|table]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Machine-parseable
//   - Unrecognized quantity and unit are null
//
// YAML:
//   - Human-readable, same structure as JSON
//
// Table:
//   - One row per line: measurement, converted, name, additional
//   - Suitable for terminal viewing
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity (debug, info, warn, error)
//	MISE_FORMAT       Default output format
//	MISE_CONCURRENCY  Default batch concurrency
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable input, timeout)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/mise/pkg/cli.version=1.0.0'"
package cli
