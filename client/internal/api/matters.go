package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// ListMatters returns the matters belonging to one customer. Errors propagate
// from here; the public client applies the best-effort empty-list policy.
func ListMatters(ctx context.Context, httpClient *http.Client, baseURL, token, customerID string) ([]types.Matter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/customers/%s/matters", baseURL, customerID), token, nil)
	if err != nil {
		return nil, err
	}
	var matters []types.Matter
	if err := do(httpClient, httpReq, &matters); err != nil {
		return nil, err
	}
	return matters, nil
}

// GetMatter retrieves one matter of a customer.
func GetMatter(ctx context.Context, httpClient *http.Client, baseURL, token, customerID, matterID string) (*types.Matter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/customers/%s/matters/%s", baseURL, customerID, matterID), token, nil)
	if err != nil {
		return nil, err
	}
	var matter types.Matter
	if err := do(httpClient, httpReq, &matter); err != nil {
		return nil, err
	}
	return &matter, nil
}

// CreateMatter creates a matter under a customer.
func CreateMatter(ctx context.Context, httpClient *http.Client, baseURL, token, customerID string, req types.MatterRequest) (*types.Matter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodPost, fmt.Sprintf("%s/customers/%s/matters", baseURL, customerID), token, req)
	if err != nil {
		return nil, err
	}
	var matter types.Matter
	if err := do(httpClient, httpReq, &matter); err != nil {
		return nil, err
	}
	return &matter, nil
}

// UpdateMatter replaces a matter's writable fields.
func UpdateMatter(ctx context.Context, httpClient *http.Client, baseURL, token, customerID, matterID string, req types.MatterRequest) (*types.Matter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodPut, fmt.Sprintf("%s/customers/%s/matters/%s", baseURL, customerID, matterID), token, req)
	if err != nil {
		return nil, err
	}
	var matter types.Matter
	if err := do(httpClient, httpReq, &matter); err != nil {
		return nil, err
	}
	return &matter, nil
}
