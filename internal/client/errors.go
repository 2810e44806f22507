package client

import (
	"errors"
	"fmt"
	"net/http"
)

// The console's failure taxonomy. Every request that does not land a usable
// response surfaces as exactly one of these; callers convert them to a short
// user-facing message and never retry automatically.

type ErrNetwork struct {
	error
}

func NewErrNetwork(op string, cause error) *ErrNetwork {
	return &ErrNetwork{fmt.Errorf("%s: request could not complete: %w", op, cause)}
}

type ErrAuth struct {
	error
}

func NewErrAuth(op string) *ErrAuth {
	return &ErrAuth{fmt.Errorf("%s: not authorized, token missing or expired", op)}
}

type ErrNotFound struct {
	error
}

func NewErrNotFound(kind, id string) *ErrNotFound {
	return &ErrNotFound{fmt.Errorf("%s %s not found", kind, id)}
}

type ErrValidation struct {
	error
}

func NewErrValidation(op, message string) *ErrValidation {
	return &ErrValidation{fmt.Errorf("%s: %s", op, message)}
}

// errorFromStatus maps a non-2xx response onto the taxonomy.
func errorFromStatus(op, kind, id string, code int, body string) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return NewErrAuth(op)
	case code == http.StatusNotFound:
		return NewErrNotFound(kind, id)
	case code >= 400 && code < 500:
		if body == "" {
			body = http.StatusText(code)
		}
		return NewErrValidation(op, body)
	default:
		return NewErrNetwork(op, fmt.Errorf("server returned status %d", code))
	}
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) bool {
	var e *ErrAuth
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a vanished-entity failure.
func IsNotFound(err error) bool {
	var e *ErrNotFound
	return errors.As(err, &e)
}

// IsValidation reports whether err is a rejected-input failure.
func IsValidation(err error) bool {
	var e *ErrValidation
	return errors.As(err, &e)
}
