package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// ListCustomers returns all customers of the authenticated firm.
func ListCustomers(ctx context.Context, httpClient *http.Client, baseURL, token string) ([]types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/customers", baseURL), token, nil)
	if err != nil {
		return nil, err
	}
	var customers []types.Customer
	if err := do(httpClient, httpReq, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer retrieves a customer by ID.
func GetCustomer(ctx context.Context, httpClient *http.Client, baseURL, token, customerID string) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/customers/%s", baseURL, customerID), token, nil)
	if err != nil {
		return nil, err
	}
	var customer types.Customer
	if err := do(httpClient, httpReq, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a new customer record.
func CreateCustomer(ctx context.Context, httpClient *http.Client, baseURL, token string, req types.CustomerRequest) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodPost, fmt.Sprintf("%s/customers", baseURL), token, req)
	if err != nil {
		return nil, err
	}
	var customer types.Customer
	if err := do(httpClient, httpReq, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer replaces a customer's writable fields.
func UpdateCustomer(ctx context.Context, httpClient *http.Client, baseURL, token, customerID string, req types.CustomerRequest) (*types.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodPut, fmt.Sprintf("%s/customers/%s", baseURL, customerID), token, req)
	if err != nil {
		return nil, err
	}
	var customer types.Customer
	if err := do(httpClient, httpReq, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer by ID. The acknowledgment body is
// discarded.
func DeleteCustomer(ctx context.Context, httpClient *http.Client, baseURL, token, customerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if token == "" {
		return types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodDelete, fmt.Sprintf("%s/customers/%s", baseURL, customerID), token, nil)
	if err != nil {
		return err
	}
	return do(httpClient, httpReq, nil)
}
