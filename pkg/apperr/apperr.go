// Package apperr classifies failures so handlers can map them to transport
// status codes without inspecting error strings.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "VALIDATION_ERROR"
	KindNotFound    Kind = "NOT_FOUND"
	KindConflict    Kind = "CONFLICT"
	KindPersistence Kind = "PERSISTENCE_ERROR"
)

type Error struct {
	kind    Kind
	message string
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{kind: kind, message: message, cause: err}
}

func (e *Error) Kind() Kind {
	if e == nil {
		return KindPersistence
	}
	return e.kind
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the typed error if err carries one, or nil.
func As(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}

// KindOf classifies any error; unknown errors count as persistence failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if typed := As(err); typed != nil {
		return typed.Kind()
	}
	return KindPersistence
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
