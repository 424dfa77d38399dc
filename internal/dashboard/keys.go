// Package dashboard is the state layer between the API client and the
// surfaces that render firm data. Reads go through a query cache keyed by
// resource identity; writes declare the cached reads they make stale.
package dashboard

import "github.com/lexdesk/lexdesk/querycache"

// Cache key constructors. Every cached read in the application addresses one
// of these; mutations invalidate by the same constructors, so the fan-out of
// a write is auditable in one place.

// KeyUser addresses the authenticated user's profile.
func KeyUser() querycache.Key { return querycache.K("user") }

// KeyCustomers addresses the firm's full customer list.
func KeyCustomers() querycache.Key { return querycache.K("customers") }

// KeyCustomer addresses one customer record.
func KeyCustomer(customerID string) querycache.Key {
	return querycache.K("customer", customerID)
}

// KeyMatters addresses one customer's matter list.
func KeyMatters(customerID string) querycache.Key {
	return querycache.K("matters", customerID)
}

// KeyMatter addresses one matter under its customer.
func KeyMatter(customerID, matterID string) querycache.Key {
	return querycache.K("matter", customerID, matterID)
}

// KeyMatterWithCustomer addresses the matter-plus-owner view resolved from a
// matter id alone.
func KeyMatterWithCustomer(matterID string) querycache.Key {
	return querycache.K("matter-with-customer", matterID)
}

// KeyAllMatters addresses the firm-wide matter aggregate.
func KeyAllMatters() querycache.Key { return querycache.K("all-matters") }

// KeyAllMattersDashboard addresses the dashboard's recent-matters aggregate.
func KeyAllMattersDashboard() querycache.Key {
	return querycache.K("all-matters-dashboard")
}

// KeyDashboardStats addresses the dashboard count summary.
func KeyDashboardStats() querycache.Key { return querycache.K("dashboard-stats") }
