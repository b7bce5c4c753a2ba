// Package loomerrors provides structured error handling for the attribute
// normalization engine, with error categorization, key-value context and
// stack traces.
//
// # Overview
//
// The loomerrors package extends Go's standard error handling with:
//   - Error categorization through ErrorType
//   - Structured context with key-value details
//   - Automatic stack trace capture
//   - Error wrapping with cause preservation
//
// # Basic Usage
//
//	// Create a new error
//	err := loomerrors.New(loomerrors.ErrorTypeShape, "attribute values must be 1-dimensional")
//
//	// Add context
//	err = err.WithDetail("rows", rows).
//	         WithDetail("cols", cols)
//
//	// Wrap existing errors
//	if err := encode(arr); err != nil {
//	    return loomerrors.Wrap(err, loomerrors.ErrorTypeData, "attribute encoding failed").
//	        WithDetail("kind", arr.Kind())
//	}
//
// # Error Types
//
// The write path raises exactly three caller-facing categories, mirroring
// the engine's validation taxonomy: ErrorTypeType for unsupported input
// containers, ErrorTypeShape for 2-D inputs without a singleton axis, and
// ErrorTypeValue for element kinds that cannot be persisted. These are
// programmer/data errors and are never retried. ErrorTypeData and
// ErrorTypeInternal cover residual failures on the read path.
//
// # Thread Safety
//
// Error instances are not thread-safe for modification. Create new
// instances or use WithDetail before sharing across goroutines.
package loomerrors

import (
	"errors"
	"runtime"

	stringpool "github.com/jlikhuva/loompy/pkg/strings"
)

// ErrorType represents the category of error, used for error handling
// strategies and test assertions.
type ErrorType string

const (
	// ErrorTypeInternal represents internal engine errors
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeType represents an input container kind outside the accepted set
	ErrorTypeType ErrorType = "type"
	// ErrorTypeShape represents a multi-dimensional input without a singleton axis
	ErrorTypeShape ErrorType = "shape"
	// ErrorTypeValue represents an element kind that cannot be persisted
	ErrorTypeValue ErrorType = "value"
	// ErrorTypeData represents unrecoverable stored-data errors on the read path
	ErrorTypeData ErrorType = "data"
)

// Error represents a structured error with context.
//
// Fields:
//   - Type: Categorizes the error
//   - Message: Human-readable error description
//   - Cause: The underlying error that caused this error
//   - Details: Key-value pairs providing additional context
//   - Stack: Call stack at the point of error creation
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack, capturing
// the function name, file path, and line number for debugging.
type StackFrame struct {
	Function string // Fully qualified function name
	File     string // Source file path
	Line     int    // Line number in source file
}

// Error implements the error interface, returning a formatted error message
// that includes the error type, message, and cause (if present).
func (e *Error) Error() string {
	if e.Cause != nil {
		return stringpool.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return stringpool.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error, enabling compatibility with errors.Is
// and errors.As for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error. This method can be
// chained for adding multiple details.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message, automatically
// capturing the call stack at the point of creation.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context, preserving the
// original error as the cause. If the error is already a structured Error,
// its stack trace is preserved. Returns nil if the input error is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type, useful for dispatching
// on the engine's validation taxonomy.
//
// Example:
//
//	if loomerrors.IsType(err, loomerrors.ErrorTypeShape) {
//	    // reject the caller's matrix
//	}
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// captureStack captures the current call stack up to maxFrames deep,
// skipping the specified number of frames from the top.
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
