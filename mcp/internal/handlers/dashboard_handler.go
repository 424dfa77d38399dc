package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/internal/dashboard"
)

// DashboardHandler exposes the firm-wide aggregate tools.
type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (dh *DashboardHandler) RegisterTools(s *server.MCPServer) error {
	stats := mcp.NewTool("get_stats",
		mcp.WithDescription("Return firm counts: total customers and active matters"),
	)
	all := mcp.NewTool("list_all_matters",
		mcp.WithDescription("List every matter in the firm annotated with customer names"),
	)
	recent := mcp.NewTool("recent_matters",
		mcp.WithDescription("List the most recently opened matters across the firm"),
		mcp.WithNumber("limit", mcp.Description("Maximum matters to return (default 5)")),
	)
	s.AddTool(stats, dh.handleStats)
	s.AddTool(all, dh.handleAllMatters)
	s.AddTool(recent, dh.handleRecentMatters)
	return nil
}

func (dh *DashboardHandler) handleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := dh.svc.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("get_stats failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to get stats: %v", err)), nil
	}
	b, _ := json.Marshal(stats)
	return mcp.NewToolResultText(string(b)), nil
}

func (dh *DashboardHandler) handleAllMatters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all, err := dh.svc.AllMatters(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list_all_matters failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list matters: %v", err)), nil
	}
	b, _ := json.Marshal(all)
	return mcp.NewToolResultText(string(b)), nil
}

func (dh *DashboardHandler) handleRecentMatters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := 5
	if v, ok := req.GetArguments()["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	matters, err := dh.svc.RecentMatters(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("recent_matters failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list recent matters: %v", err)), nil
	}
	b, _ := json.Marshal(matters)
	return mcp.NewToolResultText(string(b)), nil
}
