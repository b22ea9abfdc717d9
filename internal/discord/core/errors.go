package core

import (
	"errors"
	"fmt"
)

// Error codes loosely follow HTTP status semantics
const (
	ErrorCodeBadRequest  = 400
	ErrorCodeForbidden   = 403
	ErrorCodeNotFound    = 404
	ErrorCodeConflict    = 409
	ErrorCodeInternal    = 500
	ErrorCodeUnavailable = 503
)

// HandlerError carries both the wrapped error and the message shown to
// the user. Every handler error is user visible; internal errors show
// a generic message and keep the cause for the logs.
type HandlerError struct {
	// Err is the underlying error
	Err error

	// UserMessage is what the user sees
	UserMessage string

	// Code classifies the error
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewUserError creates an error whose message is meant for the user
func NewUserError(message string, code int) *HandlerError {
	return &HandlerError{
		Err:         errors.New(message),
		UserMessage: message,
		Code:        code,
	}
}

// NewInternalError wraps an unexpected error behind a generic message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: "Something went wrong. Please try again.",
		Code:        ErrorCodeInternal,
	}
}

// NewValidationError creates a bad request error
func NewValidationError(message string) *HandlerError {
	return NewUserError(message, ErrorCodeBadRequest)
}

// NewForbiddenError creates a permission error
func NewForbiddenError(message string) *HandlerError {
	return NewUserError(message, ErrorCodeForbidden)
}

// NewNotFoundError creates a not found error for the named thing
func NewNotFoundError(what string) *HandlerError {
	return NewUserError(fmt.Sprintf("%s not found", what), ErrorCodeNotFound)
}

// AsHandlerError extracts a HandlerError from an error chain
func AsHandlerError(err error) (*HandlerError, bool) {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr, true
	}
	return nil, false
}
