package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInitialization indicates the backing site or list could not be
// resolved. Fatal for the repository instance; callers should not retry.
var ErrInitialization = errors.New("list store initialization failed")

// ErrFetch indicates a list or get call against the external store failed.
var ErrFetch = errors.New("list store fetch failed")

// ErrWrite indicates a create, patch or delete against the external store
// failed. A failed create may leave a partially written item behind; see
// the repository Add contract.
var ErrWrite = errors.New("list store write failed")

// StatusError carries the HTTP status and raw body of a failed external
// store call so the presentation layer can distinguish auth/permission
// failures from generic ones.
type StatusError struct {
	Status int
	Body   string
	Err    error
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Err.Error(), e.Status, e.Body)
	}
	return fmt.Sprintf("%s (status %d)", e.Err.Error(), e.Status)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// NewStatusError wraps sentinel with the status code and response body of
// the originating external call.
func NewStatusError(sentinel error, status int, body string) *StatusError {
	return &StatusError{Status: status, Body: body, Err: sentinel}
}

// StatusOf returns the HTTP status attached to err, or 0 when none is.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
