package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

func TestSignup_Success(t *testing.T) {
	t.Parallel()
	req := types.SignupRequest{Email: "jane@firm.example", Password: "s3cret", FirmName: "Doe & Partners"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/auth/signup" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}
		var got types.SignupRequest
		_ = json.NewDecoder(r.Body).Decode(&got)
		b, _ := json.Marshal(types.Session{Token: "tok-1", User: types.User{Email: got.Email, FirmName: got.FirmName}})
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	s, err := Signup(context.Background(), srv.Client(), srv.URL, req)
	if err != nil {
		t.Fatalf("Signup error: %v", err)
	}
	if s.Token != "tok-1" || s.User.FirmName != req.FirmName {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestLogin_ServerMessageSurfacesVerbatim(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "x@y.z", Password: "nope"})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Invalid credentials" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	var apiErr *types.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected *APIError with 401, got %#v", err)
	}
}

func TestLogin_MissingMessageFallsBack(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := Login(context.Background(), srv.Client(), srv.URL, types.LoginRequest{Email: "x@y.z", Password: "pw"})
	if err == nil || err.Error() != "An error occurred" {
		t.Fatalf("expected fallback message, got %v", err)
	}
}

func TestMe_BearerHeaderAttached(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-42" {
			t.Fatalf("unexpected Authorization header: %q", auth)
		}
		if r.URL.Path != "/auth/me" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		b, _ := json.Marshal(types.User{Email: "jane@firm.example", FirmName: "Doe & Partners"})
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	u, err := Me(context.Background(), srv.Client(), srv.URL, "tok-42")
	if err != nil {
		t.Fatalf("Me error: %v", err)
	}
	if u.Email != "jane@firm.example" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestMe_NoToken(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request should be made without a token")
	}))
	defer srv.Close()

	_, err := Me(context.Background(), srv.Client(), srv.URL, "")
	if !errors.Is(err, types.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}
