package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeWrite      ErrorType = "WRITE"
	ErrTypeShape      ErrorType = "SHAPE"
	ErrTypeParsing    ErrorType = "PARSING"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeConfig     ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewWriteError creates an error for a destination that cannot be written
func NewWriteError(path string, cause error) *AppError {
	return NewAppError(ErrTypeWrite, fmt.Sprintf("cannot write %s", path), cause).
		WithContext("path", path)
}

// NewShapeError creates an error for a record whose field count does not
// match the column count
func NewShapeError(row, got, want int) *AppError {
	return NewAppError(ErrTypeShape,
		fmt.Sprintf("record %d has %d fields, expected %d", row, got, want), nil).
		WithContext("row", row).
		WithContext("fields", got).
		WithContext("columns", want)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewAppValidationError creates a validation error for AppError type
func NewAppValidationError(message string) *AppError {
	return NewAppError(ErrTypeValidation, message, nil)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether any error in err's chain is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Type == errType {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// IsWriteError reports whether err is, or wraps, a write error
func IsWriteError(err error) bool {
	return IsType(err, ErrTypeWrite)
}

// IsShapeError reports whether err is, or wraps, a shape error
func IsShapeError(err error) bool {
	return IsType(err, ErrTypeShape)
}
