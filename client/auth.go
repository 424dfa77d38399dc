package client

import (
	"context"
	"fmt"

	"github.com/lexdesk/lexdesk/client/internal/api"
	"github.com/lexdesk/lexdesk/client/internal/types"
)

// Signup registers a new firm user and opens a session. The returned token
// is persisted into the token store so subsequent calls are authenticated.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	if err := types.ValidateSignupRequest(req); err != nil {
		return nil, err
	}
	s, err := api.Signup(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		if err := c.tokens.Save(s.Token); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}
	return s, nil
}

// Login exchanges credentials for a session token and persists it into the
// token store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := types.ValidateLoginRequest(req); err != nil {
		return nil, err
	}
	s, err := api.Login(ctx, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		if err := c.tokens.Save(s.Token); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}
	return s, nil
}

// Logout clears the persisted session token. No server call is made; an
// in-flight request holding the old token is unaffected.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

// Me returns the profile of the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	return api.Me(ctx, c.http, c.baseURL, token)
}
