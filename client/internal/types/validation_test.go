package types

import (
	"strings"
	"testing"
)

func TestValidateCustomerRequest(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		req     CustomerRequest
		wantErr string
	}{
		{"valid", CustomerRequest{Name: "John Doe", PhoneNumber: "1234567890"}, ""},
		{"missing name", CustomerRequest{PhoneNumber: "1234567890"}, "name is required"},
		{"missing phone", CustomerRequest{Name: "John Doe"}, "phoneNumber is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCustomerRequest(tc.req)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("got %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateMatterRequest(t *testing.T) {
	t.Parallel()
	valid := MatterRequest{
		Name:         "Estate of Smith",
		Status:       StatusOpen,
		OpenDate:     "2025-01-15",
		PracticeArea: "Estate Planning",
	}
	if err := ValidateMatterRequest(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := valid
	bad.Status = "archived"
	if err := ValidateMatterRequest(bad); err == nil {
		t.Fatal("expected error for unknown status")
	}

	bad = valid
	bad.OpenDate = "15/01/2025"
	if err := ValidateMatterRequest(bad); err == nil {
		t.Fatal("expected error for malformed openDate")
	}

	bad = valid
	bad.PracticeArea = "Maritime Law"
	if err := ValidateMatterRequest(bad); err == nil {
		t.Fatal("expected error for unknown practice area")
	}
}

func TestValidateMatterRequest_ClosedNeedsCloseDate(t *testing.T) {
	t.Parallel()
	req := MatterRequest{
		Name:         "Acme v. Widget Co",
		Status:       StatusClosed,
		OpenDate:     "2024-06-01",
		CloseDate:    "",
		PracticeArea: "Corporate Law",
	}
	err := ValidateMatterRequest(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Error() != "A close date is required when status is set to Closed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	req.CloseDate = "2025-02-01"
	if err := ValidateMatterRequest(req); err != nil {
		t.Fatalf("closed matter with close date rejected: %v", err)
	}
}

func TestValidateMatterRequest_DoesNotCheckDateOrdering(t *testing.T) {
	t.Parallel()
	// closeDate before openDate passes client-side validation; the server is
	// the authority on ordering.
	req := MatterRequest{
		Name:         "Ordering gap",
		Status:       StatusClosed,
		OpenDate:     "2025-03-01",
		CloseDate:    "2025-01-01",
		PracticeArea: "Other",
	}
	if err := ValidateMatterRequest(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPracticeAreas_ContainsExpectedValues(t *testing.T) {
	t.Parallel()
	joined := strings.Join(PracticeAreas, ",")
	for _, want := range []string{"Family Law", "Immigration", "Other"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("practice areas missing %q", want)
		}
	}
}
