package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Argument errors
	ErrorTypeArgsCount ErrorType = "args_count"
	ErrorTypeArgsName  ErrorType = "args_name"

	// Resource errors
	ErrorTypeResource ErrorType = "resource"

	ErrorTypeUnknown ErrorType = "unknown"
)

// Messages carried by argument errors.
const (
	MessageArgsCount = "parameter count error"
	MessageArgsName  = "parameter name error"
)

// Sentinels for errors.Is classification. AppError.Is compares only Type.
var (
	ErrArgsCount = New(ErrorTypeArgsCount, MessageArgsCount)
	ErrArgsName  = New(ErrorTypeArgsName, MessageArgsName)
	ErrResource  = New(ErrorTypeResource, "resource error")
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType      `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	InnerError error          `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Type)
	}
	if e.InnerError != nil {
		return msg + ": " + e.InnerError.Error()
	}
	return msg
}

// Unwrap returns the inner error
func (e *AppError) Unwrap() error {
	return e.InnerError
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if this error is of a specific type
func (e *AppError) Is(target error) bool {
	if targetApp, ok := target.(*AppError); ok {
		return e.Type == targetApp.Type
	}
	return false
}

// New creates a new AppError
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    string(errType),
	}
}

// FromError converts a standard error to AppError
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Type:       ErrorTypeUnknown,
		Code:       string(ErrorTypeUnknown),
		Message:    err.Error(),
		InnerError: err,
	}
}

// WrapWithType wraps an error with a specific type
func WrapWithType(err error, errType ErrorType, message string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		InnerError: err,
		Code:       string(errType),
	}
}

// NewArgsCount reports a configuration bundle with an unsupported number of options.
func NewArgsCount(count int) *AppError {
	return New(ErrorTypeArgsCount, MessageArgsCount).WithDetail("count", count)
}

// NewArgsName reports a configuration bundle whose options have the wrong names or values.
func NewArgsName(field string, reason string) *AppError {
	return New(ErrorTypeArgsName, MessageArgsName).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// NewResource wraps an I/O failure on the named resource.
func NewResource(resource string, err error) *AppError {
	return WrapWithType(err, ErrorTypeResource, fmt.Sprintf("open %s", resource)).
		WithDetail("resource", resource)
}

// TypeOf returns the AppError type found in err's chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}
