package client

import "github.com/lexdesk/lexdesk/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.

// Requests
type (
	SignupRequest   = types.SignupRequest
	LoginRequest    = types.LoginRequest
	CustomerRequest = types.CustomerRequest
	MatterRequest   = types.MatterRequest
)

// Domain entities
type (
	User     = types.User
	Customer = types.Customer
	Matter   = types.Matter
)

// Responses
type (
	Session = types.Session
	Stats   = types.Stats
)

// Matter status values accepted by the API.
const (
	StatusOpen    = types.StatusOpen
	StatusPending = types.StatusPending
	StatusClosed  = types.StatusClosed
)

// DateLayout is the wire format for matter open/close dates.
const DateLayout = types.DateLayout

// PracticeAreas returns the fixed set of practice areas a matter can belong
// to, in display order.
func PracticeAreas() []string {
	out := make([]string, len(types.PracticeAreas))
	copy(out, types.PracticeAreas)
	return out
}
