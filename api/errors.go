package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the StudySpace API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("studyspace api: status %d", e.Status)
	}
	return fmt.Sprintf("studyspace api: status %d: %s", e.Status, e.Message)
}

// networkError marks a transport-level failure (connection refused, timeout,
// DNS). The request never produced a status code.
type networkError struct {
	err error
}

func (e *networkError) Error() string { return fmt.Sprintf("studyspace api unreachable: %v", e.err) }
func (e *networkError) Unwrap() error { return e.err }

// IsNetwork reports whether err is a transport failure rather than an HTTP
// error response.
func IsNetwork(err error) bool {
	var ne *networkError
	return errors.As(err, &ne)
}

// IsAuth reports whether err is a 401 or 403 from the remote API. Either
// signals the bearer token is no longer accepted.
func IsAuth(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// IsConflict reports whether err is a 409, i.e. the slot was taken by a
// concurrent booker between the availability check and submission.
func IsConflict(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict
}

// IsValidation reports whether err is a 400 from the remote API.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest
}

// Message returns the server-provided message for err, or fallback when the
// error carries none. Every error path must surface human-readable text.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
