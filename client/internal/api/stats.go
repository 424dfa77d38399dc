package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// GetStats retrieves the dashboard aggregate counts.
func GetStats(ctx context.Context, httpClient *http.Client, baseURL, token string) (*types.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/stats", baseURL), token, nil)
	if err != nil {
		return nil, err
	}
	var stats types.Stats
	if err := do(httpClient, httpReq, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
