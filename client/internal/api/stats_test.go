package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

func TestGetStats_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"totalCustomers":12,"activeMatters":5}`))
	}))
	defer srv.Close()

	s, err := GetStats(context.Background(), srv.Client(), srv.URL, "tok")
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if s.TotalCustomers != 12 || s.ActiveMatters != 5 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestGetStats_NoToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be made without a token")
	}))
	defer srv.Close()

	_, err := GetStats(context.Background(), srv.Client(), srv.URL, "")
	if !errors.Is(err, types.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}
