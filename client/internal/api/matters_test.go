package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

func TestListMatters_Success(t *testing.T) {
	t.Parallel()
	want := []types.Matter{{ID: "m1", Name: "Estate of Smith", Status: types.StatusOpen, OpenDate: "2025-01-15", PracticeArea: "Estate Planning"}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/customers/c1/matters" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		b, _ := json.Marshal(want)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	got, err := ListMatters(context.Background(), srv.Client(), srv.URL, "tok", "c1")
	if err != nil {
		t.Fatalf("ListMatters error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("unexpected matters: %+v", got)
	}
}

func TestListMatters_ErrorPropagatesFromAPILayer(t *testing.T) {
	t.Parallel()
	// The empty-list policy lives in the public client, not here.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	if _, err := ListMatters(context.Background(), srv.Client(), srv.URL, "tok", "c1"); err == nil {
		t.Fatal("expected error from API layer")
	}
}

func TestGetMatter_Path(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/c1/matters/m1" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		b, _ := json.Marshal(types.Matter{ID: "m1", Name: "Estate of Smith"})
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	m, err := GetMatter(context.Background(), srv.Client(), srv.URL, "tok", "c1", "m1")
	if err != nil {
		t.Fatalf("GetMatter error: %v", err)
	}
	if m.ID != "m1" {
		t.Fatalf("unexpected matter: %+v", m)
	}
}

func TestCreateMatter_RequestShape(t *testing.T) {
	t.Parallel()
	req := types.MatterRequest{Name: "Acme v. Widget Co", Status: types.StatusOpen, OpenDate: "2025-02-01", PracticeArea: "Corporate Law"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/customers/c1/matters" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var got types.MatterRequest
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got != req {
			t.Fatalf("body mismatch: %+v", got)
		}
		b, _ := json.Marshal(types.Matter{ID: "m2", Name: got.Name, CustomerID: "c1"})
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	m, err := CreateMatter(context.Background(), srv.Client(), srv.URL, "tok", "c1", req)
	if err != nil {
		t.Fatalf("CreateMatter error: %v", err)
	}
	if m.ID != "m2" || m.CustomerID != "c1" {
		t.Fatalf("unexpected matter: %+v", m)
	}
}

func TestUpdateMatter_UsesPut(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/customers/c1/matters/m1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		b, _ := json.Marshal(types.Matter{ID: "m1", Status: types.StatusClosed, CloseDate: "2025-03-01"})
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	m, err := UpdateMatter(context.Background(), srv.Client(), srv.URL, "tok", "c1", "m1", types.MatterRequest{
		Name: "Estate of Smith", Status: types.StatusClosed, OpenDate: "2025-01-15", CloseDate: "2025-03-01", PracticeArea: "Estate Planning",
	})
	if err != nil {
		t.Fatalf("UpdateMatter error: %v", err)
	}
	if m.Status != types.StatusClosed {
		t.Fatalf("unexpected matter: %+v", m)
	}
}
