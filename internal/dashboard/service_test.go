package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/querycache"
)

// fakeAPI is an in-memory backend recording per-path hit counts.
type fakeAPI struct {
	mu        sync.Mutex
	hits      map[string]int
	customers []client.Customer
	matters   map[string][]client.Matter
	rejectMe  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits: make(map[string]int),
		customers: []client.Customer{
			{ID: "c1", Name: "Acme Corp"},
			{ID: "c2", Name: "Bell Estates"},
		},
		matters: map[string][]client.Matter{
			"c1": {
				{ID: "m1", Name: "Contract dispute", Status: client.StatusOpen, OpenDate: "2026-01-10", CustomerID: "c1"},
			},
			"c2": {
				{ID: "m2", Name: "Property closing", Status: client.StatusPending, OpenDate: "2026-03-02", CustomerID: "c2"},
			},
		},
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits["me"]++
		reject := f.rejectMe
		f.mu.Unlock()
		if reject {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Session expired"})
			return
		}
		json.NewEncoder(w).Encode(client.User{ID: "u1", Email: "partner@firm.example"})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits["customers"]++
		out := f.customers
		f.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /customers", func(w http.ResponseWriter, r *http.Request) {
		var req client.CustomerRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.hits["createCustomer"]++
		c := client.Customer{ID: "c3", Name: req.Name, PhoneNumber: req.PhoneNumber}
		f.customers = append(f.customers, c)
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(c)
	})
	mux.HandleFunc("GET /customers/{id}/matters", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		f.mu.Lock()
		f.hits["matters/"+id]++
		out := f.matters[id]
		f.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("PUT /customers/{id}/matters/{mid}", func(w http.ResponseWriter, r *http.Request) {
		var req client.MatterRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.hits["updateMatter"]++
		f.mu.Unlock()
		json.NewEncoder(w).Encode(client.Matter{
			ID: r.PathValue("mid"), Name: req.Name, Status: req.Status,
			OpenDate: req.OpenDate, CloseDate: req.CloseDate,
			CustomerID: r.PathValue("id"),
		})
	})
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits["stats"]++
		f.mu.Unlock()
		json.NewEncoder(w).Encode(client.Stats{TotalCustomers: 2, ActiveMatters: 2})
	})
	return mux
}

func newTestService(t *testing.T) (*Service, *fakeAPI, client.TokenStore) {
	t.Helper()
	f := newFakeAPI()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	tokens := client.NewMemoryTokenStore()
	if err := tokens.Save("tok-1"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	api := client.New(srv.URL, tokens)

	cache := querycache.New(querycache.WithRetry(time.Millisecond, 0))
	t.Cleanup(cache.Close)
	return NewService(api, cache), f, tokens
}

func TestCustomers_CachedAcrossReads(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		customers, err := svc.Customers(ctx)
		if err != nil {
			t.Fatalf("Customers: %v", err)
		}
		if len(customers) != 2 {
			t.Fatalf("got %d customers, want 2", len(customers))
		}
	}
	if n := f.count("customers"); n != 1 {
		t.Fatalf("backend hit %d times, want 1", n)
	}
}

func TestCreateCustomer_InvalidatesCustomerList(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Customers(ctx); err != nil {
		t.Fatalf("Customers: %v", err)
	}

	created, err := svc.CreateCustomer(ctx, client.CustomerRequest{Name: "New Client", PhoneNumber: "555-0100"})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if created.ID != "c3" {
		t.Fatalf("created id = %q, want c3", created.ID)
	}

	customers, err := svc.Customers(ctx)
	if err != nil {
		t.Fatalf("Customers after create: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("got %d customers, want 3 (list refetched)", len(customers))
	}
	if n := f.count("customers"); n != 2 {
		t.Fatalf("backend hit %d times, want 2", n)
	}
}

func TestAllMatters_AnnotatesCustomerNames(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	all, err := svc.AllMatters(ctx)
	if err != nil {
		t.Fatalf("AllMatters: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d matters, want 2", len(all))
	}
	names := map[string]string{}
	for _, m := range all {
		names[m.ID] = m.CustomerName
	}
	if names["m1"] != "Acme Corp" || names["m2"] != "Bell Estates" {
		t.Fatalf("customer names wrong: %v", names)
	}
}

func TestAllMatters_DisabledUntilCustomersExist(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	f.mu.Lock()
	f.customers = nil
	f.mu.Unlock()

	all, err := svc.AllMatters(ctx)
	if err != nil {
		t.Fatalf("AllMatters: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("got %d matters, want 0", len(all))
	}
	if got := svc.Cache().Status(KeyAllMatters()); got != querycache.StatusIdle {
		t.Fatalf("aggregate status = %v, want %v (must not fetch with no customers)", got, querycache.StatusIdle)
	}
}

func TestRecentMatters_OrdersByOpenDateDescending(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	recent, err := svc.RecentMatters(ctx, 1)
	if err != nil {
		t.Fatalf("RecentMatters: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d matters, want 1", len(recent))
	}
	if recent[0].ID != "m2" {
		t.Fatalf("most recent = %q, want m2 (opened 2026-03-02)", recent[0].ID)
	}
}

func TestMatterWithCustomer_ResolvesFromIDAlone(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	detail, err := svc.MatterWithCustomer(ctx, "m2")
	if err != nil {
		t.Fatalf("MatterWithCustomer: %v", err)
	}
	if detail.Matter.ID != "m2" || detail.Customer.ID != "c2" {
		t.Fatalf("got matter=%q customer=%q, want m2/c2", detail.Matter.ID, detail.Customer.ID)
	}
}

func TestMatterWithCustomer_NotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.MatterWithCustomer(ctx, "nope")
	if err == nil {
		t.Fatal("want error for unknown matter id")
	}
}

func TestUpdateMatter_InvalidatesFanOut(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Matters(ctx, "c1"); err != nil {
		t.Fatalf("Matters: %v", err)
	}
	if _, err := svc.Stats(ctx); err != nil {
		t.Fatalf("Stats: %v", err)
	}

	_, err := svc.UpdateMatter(ctx, "c1", "m1", client.MatterRequest{
		Name:     "Contract dispute",
		Status:   client.StatusClosed,
		OpenDate: "2026-01-10", CloseDate: "2026-08-01",
		PracticeArea: "Corporate Law",
	})
	if err != nil {
		t.Fatalf("UpdateMatter: %v", err)
	}

	if _, err := svc.Matters(ctx, "c1"); err != nil {
		t.Fatalf("Matters after update: %v", err)
	}
	if _, err := svc.Stats(ctx); err != nil {
		t.Fatalf("Stats after update: %v", err)
	}
	if n := f.count("matters/c1"); n != 2 {
		t.Fatalf("matters/c1 hit %d times, want 2 (refetch after update)", n)
	}
	if n := f.count("stats"); n != 2 {
		t.Fatalf("stats hit %d times, want 2 (refetch after update)", n)
	}
}

func TestUpdateMatter_LeavesUnrelatedCustomerCached(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Matters(ctx, "c2"); err != nil {
		t.Fatalf("Matters c2: %v", err)
	}
	_, err := svc.UpdateMatter(ctx, "c1", "m1", client.MatterRequest{
		Name: "Contract dispute", Status: client.StatusOpen,
		OpenDate: "2026-01-10", PracticeArea: "Corporate Law",
	})
	if err != nil {
		t.Fatalf("UpdateMatter: %v", err)
	}
	if _, err := svc.Matters(ctx, "c2"); err != nil {
		t.Fatalf("Matters c2 after update: %v", err)
	}
	if n := f.count("matters/c2"); n != 1 {
		t.Fatalf("matters/c2 hit %d times, want 1 (other customer untouched)", n)
	}
}

func TestEnsureSession_CachesProfile(t *testing.T) {
	t.Parallel()
	svc, f, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		u, err := svc.EnsureSession(ctx)
		if err != nil {
			t.Fatalf("EnsureSession: %v", err)
		}
		if u.ID != "u1" {
			t.Fatalf("user id = %q, want u1", u.ID)
		}
	}
	if n := f.count("me"); n != 1 {
		t.Fatalf("me hit %d times, want 1", n)
	}
}

func TestEnsureSession_RejectionClearsToken(t *testing.T) {
	t.Parallel()
	svc, f, tokens := newTestService(t)
	ctx := context.Background()

	f.mu.Lock()
	f.rejectMe = true
	f.mu.Unlock()

	_, err := svc.EnsureSession(ctx)
	if err == nil {
		t.Fatal("want error when session is rejected")
	}
	apiErr, ok := client.AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("got %v, want 401 APIError", err)
	}
	if _, ok := tokens.Token(); ok {
		t.Fatal("token must be cleared after a rejected session check")
	}

	// The next gate check fails fast on the missing token.
	_, err = svc.EnsureSession(ctx)
	if !client.IsAuthRequired(err) {
		t.Fatalf("got %v, want ErrAuthRequired", err)
	}
}
