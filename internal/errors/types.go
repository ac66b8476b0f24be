package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypePermission
	ErrorTypeSnapshot
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeDatabase:     "database",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
	ErrorTypePermission:   "permission",
	ErrorTypeSnapshot:     "snapshot",
}

// String returns the string representation of the error type
func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// AppError is the structured error shared by every layer of the tracker.
// Context carries machine-readable details (entity, identifier, date,
// operation) that the CLI prints in verbose mode.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code.
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Details renders Context as sorted key=value pairs, or "" when empty.
func (e *AppError) Details() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, key := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", key, e.Context[key])
	}
	return strings.Join(pairs, " ")
}
