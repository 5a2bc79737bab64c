// Package derrors provides custom error types for builtinsheet.
// These error types carry a stable code so callers can react to a failure
// class without matching on messages.
package derrors

import (
	"errors"
	"fmt"
)

// SheetError is the base interface for all builtinsheet errors
type SheetError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all builtinsheet errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents a rejected input value
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// WriteError represents a failure to persist a cheatsheet
type WriteError struct {
	baseError
	Path string
}

// NewWriteError creates a new write error
func NewWriteError(path string, message string, cause error) *WriteError {
	return &WriteError{
		baseError: baseError{
			code:    "WRITE_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// FormatError represents a failure while rendering a document
type FormatError struct {
	baseError
	Format string
}

// NewFormatError creates a new format error
func NewFormatError(format string, message string, cause error) *FormatError {
	return &FormatError{
		baseError: baseError{
			code:    "FORMAT_ERROR",
			message: message,
			cause:   cause,
		},
		Format: format,
	}
}

// CodeOf returns the code of the first SheetError in err's chain, or "".
func CodeOf(err error) string {
	var se SheetError
	if errors.As(err, &se) {
		return se.Code()
	}
	return ""
}
