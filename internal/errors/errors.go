// Package errors defines the structured error taxonomy used across the
// console. Errors are categorised so the rendering layer can distinguish
// transient fetch failures (retried at the next poll tick) from validation
// and hard failures (surfaced to the operator).
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource was not found on the pipeline.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input (bad filter expression, bad request).
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeTransient indicates a temporary fetch failure; the next poll tick retries.
	ErrCodeTransient ErrorCode = "transient"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeCanceled indicates the operation was canceled by its context.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As via Unwrap.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new not-found error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new not-found error with a formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a new validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new validation error with a formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Transient creates a new transient error wrapping a cause.
func Transient(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeTransient, Message: message, Cause: cause}
}

// Internal creates a new internal error wrapping a cause.
func Internal(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Cause: cause}
}

// Canceled creates a new canceled error wrapping a cause.
func Canceled(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeCanceled, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err, walking the wrap chain. Errors
// outside the taxonomy classify as internal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// IsNotFound reports whether err classifies as not-found.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

// IsTransient reports whether err classifies as transient.
func IsTransient(err error) bool {
	return CodeOf(err) == ErrCodeTransient
}

// IsValidation reports whether err classifies as validation.
func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}
