package client

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/client/internal/api"
	"github.com/lexdesk/lexdesk/client/internal/types"
)

// ListCustomers returns every customer of the authenticated firm.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.ListCustomers(ctx, c.http, c.baseURL, token)
}

// GetCustomer retrieves a customer by ID.
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.GetCustomer(ctx, c.http, c.baseURL, token, customerID)
}

// CreateCustomer validates req and creates a new customer record.
func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	if err := types.ValidateCustomerRequest(req); err != nil {
		return nil, err
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.CreateCustomer(ctx, c.http, c.baseURL, token, req)
}

// UpdateCustomer validates req and replaces the customer's writable fields.
func (c *Client) UpdateCustomer(ctx context.Context, customerID string, req CustomerRequest) (*Customer, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if err := types.ValidateCustomerRequest(req); err != nil {
		return nil, err
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.UpdateCustomer(ctx, c.http, c.baseURL, token, customerID, req)
}

// DeleteCustomer removes a customer by ID.
func (c *Client) DeleteCustomer(ctx context.Context, customerID string) error {
	if customerID == "" {
		return fmt.Errorf("customer id is required")
	}
	token, err := c.token()
	if err != nil {
		return err
	}
	return api.DeleteCustomer(ctx, c.http, c.baseURL, token, customerID)
}
