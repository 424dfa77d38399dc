package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequest_SetsCorrelationID(t *testing.T) {
	t.Parallel()
	first, err := newRequest(context.Background(), http.MethodGet, "http://example.test/customers", "tok", nil)
	if err != nil {
		t.Fatalf("newRequest: %v", err)
	}
	id := first.Header.Get("X-Request-Id")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("X-Request-Id %q is not a UUID: %v", id, err)
	}

	second, err := newRequest(context.Background(), http.MethodGet, "http://example.test/customers", "tok", nil)
	if err != nil {
		t.Fatalf("newRequest: %v", err)
	}
	if second.Header.Get("X-Request-Id") == id {
		t.Fatal("request ids must differ per request")
	}
}
