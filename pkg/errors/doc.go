// Package errors provides structured error types for better observability
// and programmatic error handling across the diagnostics collectors.
//
// Collector failures never abort a report. They are wrapped into a
// StructuredError, attached to the collector result and logged, so the
// failure reason stays available for inspection and tests.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNonZeroExit,
//	    "icinga2 version query failed",
//	    exitErr,
//	    map[string]any{
//	        "binary": "icinga2",
//	        "args":   []string{"--version"},
//	    },
//	)
package errors
