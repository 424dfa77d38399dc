// Package mcp exposes the LexDesk API as Model Context Protocol tools so
// assistant hosts can read and write firm data over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/internal/config"
	"github.com/lexdesk/lexdesk/internal/dashboard"
	"github.com/lexdesk/lexdesk/mcp/internal/handlers"
	"github.com/lexdesk/lexdesk/querycache"
)

const (
	serverName    = "lexdesk-mcp-server"
	serverVersion = "0.1.0"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunServer starts the MCP server on stdio. It blocks until the host closes
// the transport.
func RunServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Init()

	tokenPath := cfg.TokenFile
	if tokenPath == "" {
		tokenPath, err = client.DefaultTokenPath()
		if err != nil {
			return err
		}
	}
	api := client.New(cfg.APIURL, client.NewFileTokenStore(tokenPath))

	cache := querycache.New()
	defer cache.Close()
	svc := dashboard.NewService(api, cache)

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewAuthHandler(api, svc), "auth")
	registerHandler(s, handlers.NewCustomerHandler(svc), "customer")
	registerHandler(s, handlers.NewMatterHandler(svc), "matter")
	registerHandler(s, handlers.NewDashboardHandler(svc), "dashboard")

	log.Info().Str("api_url", cfg.APIURL).Msg("Starting LexDesk MCP server (stdio transport)")
	return server.ServeStdio(s)
}
