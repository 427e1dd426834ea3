// api/errors/transport_errors.go
package errors

import "errors"

// Transport-level taxonomy for calls against the hospital backend. Every
// backend failure is folded into one of these before it leaves the directory
// client; the concrete backend message travels in a BackendError wrapper.
var (
	ErrSessionInvalid = errors.New("session invalid or expired")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrBadRequest     = errors.New("bad request")
	ErrNoResponse     = errors.New("no response from server")
	ErrInternalServer = errors.New("internal server error")
)

// BackendError carries the backend's own message alongside the taxonomy
// sentinel so controllers can surface it verbatim.
type BackendError struct {
	Kind    error
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// NewBackendError wraps a backend response in the taxonomy.
func NewBackendError(kind error, status int, message string) *BackendError {
	return &BackendError{Kind: kind, Status: status, Message: message}
}
