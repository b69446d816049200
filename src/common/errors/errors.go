// Package errors provides the structured errors used across boardlist.
// Errors carry a domain, a code unique within that domain and the HTTP status
// boardsd answers with. They are only produced at input boundaries: decoding
// snapshots and validating requests. The list derivation itself reports
// absence and ambiguity as data.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a unique error code within a domain
type Code string

// Domain represents an error domain (e.g., "port", "snapshot")
type Domain string

// Error domains
const (
	DomainPort       Domain = "port"
	DomainBoard      Domain = "board"
	DomainSnapshot   Domain = "snapshot"
	DomainValidation Domain = "validation"
	DomainInternal   Domain = "internal"
)

// Error represents a structured error with domain, code, and HTTP status
type Error struct {
	Domain  Domain `json:"domain"`
	Code    Code   `json:"code"`
	Message string `json:"message"`

	// Field is the path of the offending input, e.g. detectedPorts["port+serial://COM1"].port.protocol
	Field string `json:"field,omitempty"`

	HTTPStatus int `json:"-"`

	cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s.%s: %s", e.Domain, e.Code, e.Message)
	if e.Field != "" {
		msg += " (" + e.Field + ")"
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is and errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors with the same domain and code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Domain == t.Domain && e.Code == t.Code
}

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// WithCause returns a copy with the underlying cause attached
func (e *Error) WithCause(cause error) *Error {
	c := e.clone()
	c.cause = cause
	return c
}

// WithMessage returns a copy with a custom message
func (e *Error) WithMessage(message string) *Error {
	c := e.clone()
	c.Message = message
	return c
}

// WithMessagef returns a copy with a formatted custom message
func (e *Error) WithMessagef(format string, args ...interface{}) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithField returns a copy pointing at the offending input
func (e *Error) WithField(field string) *Error {
	c := e.clone()
	c.Field = field
	return c
}

// New creates a new Error
func New(domain Domain, code Code, httpStatus int, message string) *Error {
	return &Error{
		Domain:     domain,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, domain Domain, code Code, httpStatus int, message string) *Error {
	e := New(domain, code, httpStatus, message)
	e.cause = err
	return e
}

// GetHTTPStatus returns the HTTP status of err, 500 when err is not an *Error
func GetHTTPStatus(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.HTTPStatus
	}
	return http.StatusInternalServerError
}

// GetCode returns the error code if the error is an *Error, otherwise empty string
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetDomain returns the error domain if the error is an *Error, otherwise empty string
func GetDomain(err error) Domain {
	var e *Error
	if errors.As(err, &e) {
		return e.Domain
	}
	return ""
}

// Is delegates to errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As delegates to errors.As
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
