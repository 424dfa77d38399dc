package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// ErrAuthRequired is returned before any network I/O when an operation that
// needs a bearer token finds none in the store.
var ErrAuthRequired = errors.New("no authentication token found")

// DefaultErrorMessage is used when a failure response carries no message
// field.
const DefaultErrorMessage = "An error occurred"

// APIError is a non-2xx response normalized into an error carrying the
// server-supplied message.
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the server's message verbatim so callers can surface it to
// the user unchanged.
func (e *APIError) Error() string { return e.Message }
