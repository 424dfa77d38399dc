package dashboard

import (
	"context"
	"errors"
	"sort"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/querycache"
)

// ErrMatterNotFound is returned when no customer owns the requested matter.
var ErrMatterNotFound = errors.New("matter not found")

// MatterSummary is a matter annotated with its owning customer's name, used
// by the firm-wide aggregates where matters from many customers render in
// one list.
type MatterSummary struct {
	client.Matter
	CustomerName string `json:"customerName"`
}

// MatterDetail pairs a matter with its full owning customer record.
type MatterDetail struct {
	Matter   client.Matter   `json:"matter"`
	Customer client.Customer `json:"customer"`
}

// Service exposes the application's reads and writes. Reads resolve through
// the cache; writes go straight to the API and invalidate the reads they
// affect.
type Service struct {
	api   *client.Client
	cache *querycache.Cache
}

// NewService wires the API client to a query cache.
func NewService(api *client.Client, cache *querycache.Cache) *Service {
	return &Service{api: api, cache: cache}
}

// Cache exposes the underlying query cache for status checks and
// subscriptions.
func (s *Service) Cache() *querycache.Cache { return s.cache }

// Customers returns the firm's customers, cached under KeyCustomers.
func (s *Service) Customers(ctx context.Context) ([]client.Customer, error) {
	return querycache.Fetch(ctx, s.cache, KeyCustomers(), func(ctx context.Context) ([]client.Customer, error) {
		return s.api.ListCustomers(ctx)
	})
}

// Customer returns one customer record, cached under KeyCustomer.
func (s *Service) Customer(ctx context.Context, customerID string) (*client.Customer, error) {
	return querycache.Fetch(ctx, s.cache, KeyCustomer(customerID), func(ctx context.Context) (*client.Customer, error) {
		return s.api.GetCustomer(ctx, customerID)
	})
}

// Matters returns one customer's matters, cached under KeyMatters.
func (s *Service) Matters(ctx context.Context, customerID string) ([]client.Matter, error) {
	return querycache.Fetch(ctx, s.cache, KeyMatters(customerID), func(ctx context.Context) ([]client.Matter, error) {
		return s.api.ListMatters(ctx, customerID)
	})
}

// Matter returns one matter, cached under KeyMatter.
func (s *Service) Matter(ctx context.Context, customerID, matterID string) (*client.Matter, error) {
	return querycache.Fetch(ctx, s.cache, KeyMatter(customerID, matterID), func(ctx context.Context) (*client.Matter, error) {
		return s.api.GetMatter(ctx, customerID, matterID)
	})
}

// Stats returns the dashboard counts, cached under KeyDashboardStats.
func (s *Service) Stats(ctx context.Context) (*client.Stats, error) {
	return querycache.Fetch(ctx, s.cache, KeyDashboardStats(), func(ctx context.Context) (*client.Stats, error) {
		return s.api.Stats(ctx)
	})
}

// collectMatters fans out over customers and annotates each matter with its
// owner's name. Per-customer failures surface as empty matter lists from the
// client, so one bad customer does not sink the aggregate.
func (s *Service) collectMatters(ctx context.Context, customers []client.Customer) ([]MatterSummary, error) {
	out := make([]MatterSummary, 0)
	for _, cust := range customers {
		matters, err := s.api.ListMatters(ctx, cust.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range matters {
			out = append(out, MatterSummary{Matter: m, CustomerName: cust.Name})
		}
	}
	return out, nil
}

// AllMatters returns every matter in the firm with customer names attached.
// The aggregate depends on the customer list and stays disabled until it has
// resolved to a non-empty set; while disabled the result is simply empty.
func (s *Service) AllMatters(ctx context.Context) ([]MatterSummary, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	out, err := querycache.FetchIf(ctx, s.cache, len(customers) > 0, KeyAllMatters(), func(ctx context.Context) ([]MatterSummary, error) {
		return s.collectMatters(ctx, customers)
	})
	if errors.Is(err, querycache.ErrDisabled) {
		return []MatterSummary{}, nil
	}
	return out, err
}

// RecentMatters returns up to limit matters ordered by most recent open
// date, for the dashboard's activity panel. Cached independently of
// AllMatters so invalidating one view does not force the other's consumers
// to refetch at different times.
func (s *Service) RecentMatters(ctx context.Context, limit int) ([]MatterSummary, error) {
	customers, err := s.Customers(ctx)
	if err != nil {
		return nil, err
	}
	out, err := querycache.FetchIf(ctx, s.cache, len(customers) > 0, KeyAllMattersDashboard(), func(ctx context.Context) ([]MatterSummary, error) {
		all, err := s.collectMatters(ctx, customers)
		if err != nil {
			return nil, err
		}
		// Open dates are YYYY-MM-DD, so string order is date order.
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].OpenDate > all[j].OpenDate
		})
		return all, nil
	})
	if errors.Is(err, querycache.ErrDisabled) {
		return []MatterSummary{}, nil
	}
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MatterWithCustomer resolves a matter from its id alone by scanning each
// customer's matters, returning the matter paired with its owner. The API
// has no direct matter-by-id endpoint, so the scan is cached per matter id.
func (s *Service) MatterWithCustomer(ctx context.Context, matterID string) (*MatterDetail, error) {
	return querycache.Fetch(ctx, s.cache, KeyMatterWithCustomer(matterID), func(ctx context.Context) (*MatterDetail, error) {
		customers, err := s.api.ListCustomers(ctx)
		if err != nil {
			return nil, err
		}
		for _, cust := range customers {
			matters, err := s.api.ListMatters(ctx, cust.ID)
			if err != nil {
				return nil, err
			}
			for _, m := range matters {
				if m.ID == matterID {
					return &MatterDetail{Matter: m, Customer: cust}, nil
				}
			}
		}
		return nil, ErrMatterNotFound
	})
}

// CreateCustomer creates a customer and invalidates the customer list.
func (s *Service) CreateCustomer(ctx context.Context, req client.CustomerRequest) (*client.Customer, error) {
	m := s.cache.NewMutation(KeyCustomers())
	v, err := m.Do(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateCustomer(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.Customer), nil
}

// UpdateCustomer updates a customer and invalidates the list and the
// individual record.
func (s *Service) UpdateCustomer(ctx context.Context, customerID string, req client.CustomerRequest) (*client.Customer, error) {
	m := s.cache.NewMutation(KeyCustomers(), KeyCustomer(customerID))
	v, err := m.Do(ctx, func(ctx context.Context) (any, error) {
		return s.api.UpdateCustomer(ctx, customerID, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.Customer), nil
}

// DeleteCustomer removes a customer. The deletion cascades to the customer's
// matters server-side, so every aggregate that may contain them goes stale
// too.
func (s *Service) DeleteCustomer(ctx context.Context, customerID string) error {
	m := s.cache.NewMutation(
		KeyCustomers(),
		KeyCustomer(customerID),
		KeyMatters(customerID),
		KeyAllMatters(),
		KeyAllMattersDashboard(),
		KeyDashboardStats(),
	)
	_, err := m.Do(ctx, func(ctx context.Context) (any, error) {
		return nil, s.api.DeleteCustomer(ctx, customerID)
	})
	return err
}

// CreateMatter creates a matter under a customer and invalidates the
// customer's matter list plus the firm-wide aggregates.
func (s *Service) CreateMatter(ctx context.Context, customerID string, req client.MatterRequest) (*client.Matter, error) {
	m := s.cache.NewMutation(
		KeyMatters(customerID),
		KeyAllMatters(),
		KeyAllMattersDashboard(),
		KeyDashboardStats(),
	)
	v, err := m.Do(ctx, func(ctx context.Context) (any, error) {
		return s.api.CreateMatter(ctx, customerID, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.Matter), nil
}

// UpdateMatter updates a matter and invalidates every read that can render
// it: the customer's list, the individual record, the id-resolved view, the
// aggregates, and the counts.
func (s *Service) UpdateMatter(ctx context.Context, customerID, matterID string, req client.MatterRequest) (*client.Matter, error) {
	m := s.cache.NewMutation(
		KeyMatters(customerID),
		KeyMatter(customerID, matterID),
		KeyMatterWithCustomer(matterID),
		KeyAllMatters(),
		KeyAllMattersDashboard(),
		KeyDashboardStats(),
	)
	v, err := m.Do(ctx, func(ctx context.Context) (any, error) {
		return s.api.UpdateMatter(ctx, customerID, matterID, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.Matter), nil
}
