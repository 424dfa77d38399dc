package client

import (
	"context"

	"github.com/lexdesk/lexdesk/client/internal/api"
)

// Stats returns the dashboard aggregate counts for the authenticated firm.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.GetStats(ctx, c.http, c.baseURL, token)
}
