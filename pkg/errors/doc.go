// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeInputTooLong,
//	    "ingredient line exceeds maximum length",
//	    map[string]any{
//	        "length": len(line),
//	        "max":    defaults.MaxLineLength,
//	    },
//	)
//
// Parsing itself never fails. The ErrCodeUnparseableQuantity,
// ErrCodeUnrecognizedUnit and ErrCodeMalformedConversion codes classify
// partial results in debug logs only.
package errors
