package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client/internal/api"
	"github.com/lexdesk/lexdesk/client/internal/types"
)

// ListMatters returns the matters of one customer.
//
// This read is deliberately best-effort: transport and server failures are
// swallowed into an empty slice so views that enumerate matters across many
// customers keep working when a single customer's endpoint misbehaves. Only
// the missing-token precondition still fails, since it would fail for every
// customer anyway.
func (c *Client) ListMatters(ctx context.Context, customerID string) ([]Matter, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	matters, err := api.ListMatters(ctx, c.http, c.baseURL, token, customerID)
	if err != nil {
		log.Warn().Err(err).Str("customer_id", customerID).Msg("listing matters failed, returning empty result")
		return []Matter{}, nil
	}
	if matters == nil {
		matters = []Matter{}
	}
	return matters, nil
}

// GetMatter retrieves one matter of a customer.
func (c *Client) GetMatter(ctx context.Context, customerID, matterID string) (*Matter, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if matterID == "" {
		return nil, fmt.Errorf("matter id is required")
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.GetMatter(ctx, c.http, c.baseURL, token, customerID, matterID)
}

// CreateMatter validates req and creates a matter under the customer.
func (c *Client) CreateMatter(ctx context.Context, customerID string, req MatterRequest) (*Matter, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if err := types.ValidateMatterRequest(req); err != nil {
		return nil, err
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.CreateMatter(ctx, c.http, c.baseURL, token, customerID, req)
}

// UpdateMatter validates req and replaces the matter's writable fields.
func (c *Client) UpdateMatter(ctx context.Context, customerID, matterID string, req MatterRequest) (*Matter, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required")
	}
	if matterID == "" {
		return nil, fmt.Errorf("matter id is required")
	}
	if err := types.ValidateMatterRequest(req); err != nil {
		return nil, err
	}
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.UpdateMatter(ctx, c.http, c.baseURL, token, customerID, matterID, req)
}
