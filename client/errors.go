package client

import (
	"errors"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// ErrAuthRequired is the synchronous precondition failure returned when an
// authenticated operation finds no token in the store. No network I/O is
// performed.
var ErrAuthRequired = types.ErrAuthRequired

// APIError carries the server-supplied message of a non-2xx response.
// Its Error() is the message verbatim, suitable for direct display.
type APIError = types.APIError

// IsAuthRequired reports whether err is the missing-token precondition
// failure.
func IsAuthRequired(err error) bool { return errors.Is(err, ErrAuthRequired) }

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
