// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"fmt"
	"log/slog"
	"sort"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource, such as an input file, was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeTimeout indicates an operation exceeded its time limit.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInputTooLong indicates an ingredient line exceeds the accepted length.
	ErrCodeInputTooLong ErrorCode = "INPUT_TOO_LONG"
)

// Parse diagnostics. The parser absorbs these locally and never returns
// them; they are logged at debug level with the offending text in Context.
const (
	// ErrCodeUnparseableQuantity indicates no numeric prefix was found.
	ErrCodeUnparseableQuantity ErrorCode = "UNPARSEABLE_QUANTITY"
	// ErrCodeUnrecognizedUnit indicates no known unit followed the quantity.
	ErrCodeUnrecognizedUnit ErrorCode = "UNRECOGNIZED_UNIT"
	// ErrCodeMalformedConversion indicates a conversion marker whose amount or unit did not parse.
	ErrCodeMalformedConversion ErrorCode = "MALFORMED_CONVERSION"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code, so
// errors.Is(err, New(ErrCodeTimeout, "")) matches any timeout.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	return ok && t.Code == e.Code
}

// LogValue implements slog.LogValuer. The error renders as a group with
// its code, message, cause and context keys in sorted order.
func (e *StructuredError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Context)+3)
	attrs = append(attrs,
		slog.String("code", string(e.Code)),
		slog.String("message", e.Message))
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, e.Context[k]))
	}
	return slog.GroupValue(attrs...)
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}
