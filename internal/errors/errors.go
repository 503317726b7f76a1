package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrViewport = "VIEWPORT"
	ErrInput    = "INPUT"
	ErrIngest   = "INGEST"
	ErrSource   = "SOURCE"
	ErrRender   = "RENDER"
	ErrInternal = "INTERNAL"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap adds a message to err. A structured cause keeps its code and
// suggestion; anything else is filed under ErrInternal.
func Wrap(err error, message string) *Error {
	wrapped := &Error{Code: ErrInternal, Message: message, Cause: err}
	var cause *Error
	if errors.As(err, &cause) {
		wrapped.Code = cause.Code
	}
	return wrapped
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewViewportTooSmall reports a canvas that cannot fit the circular layout margin.
func NewViewportTooSmall(width, height int) *Error {
	return &Error{
		Code:       ErrViewport,
		Message:    fmt.Sprintf("Viewport %dx%d is too small to lay out a graph", width, height),
		Suggestion: "Use a graph width and height of at least 4 cells each",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var tvErr *Error
	if errors.As(err, &tvErr) {
		return tvErr.Code == code
	}
	return false
}
