package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/internal/dashboard"
)

// MatterHandler exposes matter CRUD tools and the id-only matter lookup.
type MatterHandler struct {
	svc *dashboard.Service
}

func NewMatterHandler(svc *dashboard.Service) *MatterHandler {
	return &MatterHandler{svc: svc}
}

func (mh *MatterHandler) RegisterTools(s *server.MCPServer) error {
	areas := strings.Join(client.PracticeAreas(), ", ")

	list := mcp.NewTool("list_matters",
		mcp.WithDescription("List one customer's matters"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
	)
	get := mcp.NewTool("get_matter",
		mcp.WithDescription("Return one matter with its owning customer, resolved from the matter id alone"),
		mcp.WithString("matter_id", mcp.Required(), mcp.Description("Matter ID")),
	)
	create := mcp.NewTool("create_matter",
		mcp.WithDescription("Open a matter under a customer"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Matter name")),
		mcp.WithString("status", mcp.Required(), mcp.Description("open, pending, or closed")),
		mcp.WithString("open_date", mcp.Required(), mcp.Description("Open date, YYYY-MM-DD")),
		mcp.WithString("practice_area", mcp.Required(), mcp.Description("One of: "+areas)),
		mcp.WithString("description", mcp.Description("Free-form description")),
		mcp.WithString("close_date", mcp.Description("Close date, YYYY-MM-DD; required when status is closed")),
	)
	update := mcp.NewTool("update_matter",
		mcp.WithDescription("Replace a matter's writable fields"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
		mcp.WithString("matter_id", mcp.Required(), mcp.Description("Matter ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Matter name")),
		mcp.WithString("status", mcp.Required(), mcp.Description("open, pending, or closed")),
		mcp.WithString("open_date", mcp.Required(), mcp.Description("Open date, YYYY-MM-DD")),
		mcp.WithString("practice_area", mcp.Required(), mcp.Description("One of: "+areas)),
		mcp.WithString("description", mcp.Description("Free-form description")),
		mcp.WithString("close_date", mcp.Description("Close date, YYYY-MM-DD; required when status is closed")),
	)
	s.AddTool(list, mh.handleList)
	s.AddTool(get, mh.handleGet)
	s.AddTool(create, mh.handleCreate)
	s.AddTool(update, mh.handleUpdate)
	return nil
}

func matterRequestFromArgs(req mcp.CallToolRequest) client.MatterRequest {
	out := client.MatterRequest{}
	out.Name, _ = req.RequireString("name")
	out.Status, _ = req.RequireString("status")
	out.OpenDate, _ = req.RequireString("open_date")
	out.PracticeArea, _ = req.RequireString("practice_area")
	args := req.GetArguments()
	if v, ok := args["description"].(string); ok {
		out.Description = v
	}
	if v, ok := args["close_date"].(string); ok {
		out.CloseDate = v
	}
	return out
}

func (mh *MatterHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")

	matters, err := mh.svc.Matters(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("list_matters failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list matters: %v", err)), nil
	}
	b, _ := json.Marshal(matters)
	return mcp.NewToolResultText(string(b)), nil
}

func (mh *MatterHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	matterID, _ := req.RequireString("matter_id")

	detail, err := mh.svc.MatterWithCustomer(ctx, matterID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get matter: %v", err)), nil
	}
	b, _ := json.Marshal(detail)
	return mcp.NewToolResultText(string(b)), nil
}

func (mh *MatterHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")
	in := matterRequestFromArgs(req)
	log.Debug().Str("customer_id", customerID).Str("name", in.Name).Msg("create_matter invoked")

	m, err := mh.svc.CreateMatter(ctx, customerID, in)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("create_matter failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create matter: %v", err)), nil
	}
	b, _ := json.Marshal(m)
	return mcp.NewToolResultText(string(b)), nil
}

func (mh *MatterHandler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")
	matterID, _ := req.RequireString("matter_id")
	in := matterRequestFromArgs(req)

	m, err := mh.svc.UpdateMatter(ctx, customerID, matterID, in)
	if err != nil {
		log.Error().Err(err).Str("matter_id", matterID).Msg("update_matter failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to update matter: %v", err)), nil
	}
	b, _ := json.Marshal(m)
	return mcp.NewToolResultText(string(b)), nil
}
