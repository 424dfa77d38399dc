package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lexdesk/lexdesk/client/internal/types"
)

// Signup registers a new firm user. No token is required.
func Signup(ctx context.Context, httpClient *http.Client, baseURL string, req types.SignupRequest) (*types.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newRequest(ctx, http.MethodPost, fmt.Sprintf("%s/auth/signup", baseURL), "", req)
	if err != nil {
		return nil, err
	}
	var s types.Session
	if err := do(httpClient, httpReq, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Login exchanges credentials for a session token. No token is required.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := newRequest(ctx, http.MethodPost, fmt.Sprintf("%s/auth/login", baseURL), "", req)
	if err != nil {
		return nil, err
	}
	var s types.Session
	if err := do(httpClient, httpReq, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Me returns the authenticated user's profile.
func Me(ctx context.Context, httpClient *http.Client, baseURL, token string) (*types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, types.ErrAuthRequired
	}
	httpReq, err := newRequest(ctx, http.MethodGet, fmt.Sprintf("%s/auth/me", baseURL), token, nil)
	if err != nil {
		return nil, err
	}
	var u types.User
	if err := do(httpClient, httpReq, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
