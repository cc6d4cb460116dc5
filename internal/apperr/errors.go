// Package apperr defines the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain error with a stable machine-readable code and the
// i18n catalog key used to render a localized message.
type Error struct {
	Status int
	Code   string
	Key    string
}

func (e *Error) Error() string { return e.Code }

// Is matches on Code so wrapped copies of a sentinel still compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(status int, code, key string) *Error {
	return &Error{Status: status, Code: code, Key: key}
}

func Validation(code, key string) *Error      { return newError(http.StatusBadRequest, code, key) }
func Unauthenticated(code, key string) *Error { return newError(http.StatusUnauthorized, code, key) }
func Forbidden(code, key string) *Error       { return newError(http.StatusForbidden, code, key) }
func NotFound(code, key string) *Error        { return newError(http.StatusNotFound, code, key) }

// Conflict covers duplicates (email, application, slug). It answers 400,
// which is what existing clients check for.
func Conflict(code, key string) *Error { return newError(http.StatusBadRequest, code, key) }

// Common errors used across packages.
var (
	ErrValidation   = Validation("VALIDATION_ERROR", "common.validation")
	ErrInvalidID    = Validation("INVALID_ID", "common.invalid_id")
	ErrNotFound     = NotFound("NOT_FOUND", "common.not_found")
	ErrForbidden    = Forbidden("FORBIDDEN", "auth.forbidden")
	ErrDuplicate    = Conflict("DUPLICATE", "common.duplicate")
	ErrTranslations = Validation("TRANSLATIONS_REQUIRED", "common.translations_required")
)

// FieldError carries per-field validation failures alongside ErrValidation.
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string { return "validation failed" }

func (e *FieldError) Unwrap() error { return ErrValidation }

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
