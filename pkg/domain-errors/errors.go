// Package domainerrors provides code-tagged errors shared across domain,
// service, and transport layers. Codes classify failures so the HTTP layer
// can map them to status codes without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeValidation marks input that fails domain validation rules.
	CodeValidation Code = "validation"
	// CodeBadRequest marks malformed requests (unparseable bodies, wrong types).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks lookups that matched nothing.
	CodeNotFound Code = "not_found"
	// CodeInvariantViolation marks states that should be impossible given the
	// domain rules; it usually indicates a configuration or authoring error.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeUnavailable marks dependencies that could not be reached.
	CodeUnavailable Code = "unavailable"
	// CodeInternal is the catch-all for unexpected failures.
	CodeInternal Code = "internal"
)

// Error carries a classification code alongside the message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New creates an error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message while keeping it unwrappable.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		de = nil
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// error is untagged.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
