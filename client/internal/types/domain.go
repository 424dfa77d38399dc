package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------
//
// All records are owned server-side; the client keeps transient,
// refetchable copies only.

// User represents an authenticated firm user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirmName  string    `json:"firmName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Customer represents a firm client record.
type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Matter represents a legal case belonging to a Customer. Open and close
// dates travel as YYYY-MM-DD strings; CloseDate is empty while the matter
// is not closed.
type Matter struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Status       string    `json:"status"`
	OpenDate     string    `json:"openDate"`
	CloseDate    string    `json:"closeDate,omitempty"`
	PracticeArea string    `json:"practiceArea"`
	CustomerID   string    `json:"customerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
