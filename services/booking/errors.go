package booking

import "fmt"

// Submission error kinds, one per failure category the dialog can surface.
const (
	KindValidation = "validation" // client-side precondition, no request made
	KindConflict   = "conflict"   // 409: slot taken by a concurrent booker
	KindBadRequest = "badRequest" // 400 from the remote API
	KindAuth       = "auth"       // 401/403 from the remote API
	KindFailed     = "failed"     // network failure or any other non-2xx
)

// FlowError is a terminal failure of one submission attempt. Message is
// always human-readable; the dialog stays open for correction and nothing is
// retried automatically.
type FlowError struct {
	Kind    string
	Message string
	err     error
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FlowError) Unwrap() error { return e.err }

// NewValidationError reports a precondition failure caught before any
// network call.
func NewValidationError(msg string) error {
	return &FlowError{Kind: KindValidation, Message: msg}
}

// IsValidation reports whether err is a client-side precondition failure.
func IsValidation(err error) bool {
	fe, ok := err.(*FlowError)
	return ok && fe.Kind == KindValidation
}
