package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/internal/dashboard"
)

// AuthHandler exposes session tools: logging in, checking the session, and
// logging out.
type AuthHandler struct {
	client *client.Client
	svc    *dashboard.Service
}

func NewAuthHandler(c *client.Client, svc *dashboard.Service) *AuthHandler {
	return &AuthHandler{client: c, svc: svc}
}

func (ah *AuthHandler) RegisterTools(s *server.MCPServer) error {
	login := mcp.NewTool("login",
		mcp.WithDescription("Log in to LexDesk and store the session token"),
		mcp.WithString("email", mcp.Required(), mcp.Description("Account email")),
		mcp.WithString("password", mcp.Required(), mcp.Description("Account password")),
	)
	whoami := mcp.NewTool("whoami",
		mcp.WithDescription("Return the authenticated user's profile"),
	)
	logout := mcp.NewTool("logout",
		mcp.WithDescription("Discard the stored session token"),
	)
	s.AddTool(login, ah.handleLogin)
	s.AddTool(whoami, ah.handleWhoami)
	s.AddTool(logout, ah.handleLogout)
	return nil
}

func (ah *AuthHandler) handleLogin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, _ := req.RequireString("email")
	password, _ := req.RequireString("password")

	log.Debug().Str("email", email).Msg("login invoked")

	s, err := ah.client.Login(ctx, client.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("login failed")
		return mcp.NewToolResultError(fmt.Sprintf("login failed: %v", err)), nil
	}
	b, _ := json.Marshal(s.User)
	return mcp.NewToolResultText(string(b)), nil
}

func (ah *AuthHandler) handleWhoami(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, err := ah.svc.EnsureSession(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no valid session: %v", err)), nil
	}
	b, _ := json.Marshal(u)
	return mcp.NewToolResultText(string(b)), nil
}

func (ah *AuthHandler) handleLogout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := ah.client.Logout(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("logout failed: %v", err)), nil
	}
	return mcp.NewToolResultText(`{"loggedOut":true}`), nil
}
