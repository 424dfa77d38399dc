package types

import (
	"fmt"
	"time"
)

// Matter status values accepted by the API.
const (
	StatusOpen    = "open"
	StatusPending = "pending"
	StatusClosed  = "closed"
)

// DateLayout is the wire format for matter open/close dates.
const DateLayout = "2006-01-02"

// PracticeAreas is the fixed set of practice areas a matter can belong to.
var PracticeAreas = []string{
	"Family Law",
	"Criminal Law",
	"Corporate Law",
	"Real Estate",
	"Intellectual Property",
	"Immigration",
	"Tax Law",
	"Employment Law",
	"Personal Injury",
	"Estate Planning",
	"Other",
}

// ValidateSignupRequest checks required signup fields.
func ValidateSignupRequest(r SignupRequest) error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.FirmName == "" {
		return fmt.Errorf("firmName is required")
	}
	return nil
}

// ValidateLoginRequest checks required login fields.
func ValidateLoginRequest(r LoginRequest) error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateCustomerRequest enforces the customer create/update invariants:
// name and phoneNumber must be non-empty.
func ValidateCustomerRequest(r CustomerRequest) error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.PhoneNumber == "" {
		return fmt.Errorf("phoneNumber is required")
	}
	return nil
}

// ValidateMatterRequest enforces the matter create/update invariants.
//
// Only the presence of closeDate is checked for closed matters; whether
// closeDate falls on or after openDate is left to the server.
func ValidateMatterRequest(r MatterRequest) error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch r.Status {
	case StatusOpen, StatusPending, StatusClosed:
	default:
		return fmt.Errorf("status must be one of %s, %s, %s", StatusOpen, StatusPending, StatusClosed)
	}
	if r.OpenDate == "" {
		return fmt.Errorf("openDate is required")
	}
	if _, err := time.Parse(DateLayout, r.OpenDate); err != nil {
		return fmt.Errorf("openDate must be a date in YYYY-MM-DD format")
	}
	if r.PracticeArea == "" {
		return fmt.Errorf("practiceArea is required")
	}
	if !validPracticeArea(r.PracticeArea) {
		return fmt.Errorf("unknown practice area %q", r.PracticeArea)
	}
	if r.Status == StatusClosed && r.CloseDate == "" {
		return fmt.Errorf("A close date is required when status is set to Closed")
	}
	if r.CloseDate != "" {
		if _, err := time.Parse(DateLayout, r.CloseDate); err != nil {
			return fmt.Errorf("closeDate must be a date in YYYY-MM-DD format")
		}
	}
	return nil
}

func validPracticeArea(area string) bool {
	for _, a := range PracticeAreas {
		if a == area {
			return true
		}
	}
	return false
}
