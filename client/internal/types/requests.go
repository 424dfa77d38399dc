package types

// ------------------------------
// Request Types
// ------------------------------

// SignupRequest holds parameters for registering a new firm user.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FirmName string `json:"firmName"`
}

// LoginRequest holds credentials for opening a session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerRequest holds the writable fields of a customer, used for both
// create and update.
type CustomerRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// MatterRequest holds the writable fields of a matter, used for both
// create and update.
type MatterRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Status       string `json:"status"`
	OpenDate     string `json:"openDate"`
	CloseDate    string `json:"closeDate,omitempty"`
	PracticeArea string `json:"practiceArea"`
}
