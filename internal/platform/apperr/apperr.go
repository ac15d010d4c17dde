// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error taxonomy shared by the catalog handlers.

It bridges low-level storage errors and what the browser finally sees.

Architecture:

  - AppError: machine-readable Code, client-safe Message and an HTTP status.
  - Validation: VALIDATION_ERROR carries per-field messages that handlers
    turn back into a re-rendered form instead of an error page.
  - Everything else is rendered by the process-wide error page.
*/
package apperr

import (
	"errors"
	"net/http"
)

// Error codes understood by the error boundary.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is the canonical error type of the catalog.
//
// # Security
//
// Cause is for server-side logging only and is never rendered, so SQL text or
// driver messages do not leak into pages.
type AppError struct {
	// Code is a machine-readable identifier (e.g. "NOT_FOUND").
	Code string
	// Message is safe to show to the user.
	Message string
	// HTTPStatus is the response status used by the error page.
	HTTPStatus int
	// Cause is the underlying error.
	Cause error
	// Details holds per-field validation failures, in rule order.
	Details []FieldError
}

// FieldError is a single failed rule on a form field.
type FieldError struct {
	// Field is the form field name (e.g. "first_name").
	Field string
	// Message is the rule's user-facing message.
	Message string
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Author") // "Author Not Found!"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    resource + " Not Found!",
		HTTPStatus: http.StatusNotFound,
	}
}

// ValidationError creates a 400 [AppError] with per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsNotFound reports whether err carries a NOT_FOUND [AppError].
func IsNotFound(err error) bool {
	ae := As(err)
	return ae != nil && ae.Code == CodeNotFound
}

// Validation returns the field errors carried by err when it is a
// VALIDATION_ERROR, and false otherwise.
func Validation(err error) ([]FieldError, bool) {
	ae := As(err)
	if ae == nil || ae.Code != CodeValidation {
		return nil, false
	}
	return ae.Details, true
}
