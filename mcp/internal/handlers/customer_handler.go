package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/internal/dashboard"
)

// CustomerHandler exposes customer CRUD tools.
type CustomerHandler struct {
	svc *dashboard.Service
}

func NewCustomerHandler(svc *dashboard.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (ch *CustomerHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_customers",
		mcp.WithDescription("List all customers of the firm (returns id, name, phone)"),
	)
	get := mcp.NewTool("get_customer",
		mcp.WithDescription("Return one customer's full record"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
	)
	create := mcp.NewTool("create_customer",
		mcp.WithDescription("Create a customer; name and phone are required"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Customer name")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Phone number")),
		mcp.WithString("email", mcp.Description("Email address")),
		mcp.WithString("address", mcp.Description("Postal address")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
	)
	update := mcp.NewTool("update_customer",
		mcp.WithDescription("Replace a customer's writable fields"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Customer name")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Phone number")),
		mcp.WithString("email", mcp.Description("Email address")),
		mcp.WithString("address", mcp.Description("Postal address")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
	)
	del := mcp.NewTool("delete_customer",
		mcp.WithDescription("Delete a customer and every matter under it"),
		mcp.WithString("customer_id", mcp.Required(), mcp.Description("Customer ID")),
	)
	s.AddTool(list, ch.handleList)
	s.AddTool(get, ch.handleGet)
	s.AddTool(create, ch.handleCreate)
	s.AddTool(update, ch.handleUpdate)
	s.AddTool(del, ch.handleDelete)
	return nil
}

func customerRequestFromArgs(req mcp.CallToolRequest) client.CustomerRequest {
	out := client.CustomerRequest{}
	out.Name, _ = req.RequireString("name")
	out.PhoneNumber, _ = req.RequireString("phone")
	args := req.GetArguments()
	if v, ok := args["email"].(string); ok {
		out.Email = v
	}
	if v, ok := args["address"].(string); ok {
		out.Address = v
	}
	if v, ok := args["notes"].(string); ok {
		out.Notes = v
	}
	return out
}

func (ch *CustomerHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	customers, err := ch.svc.Customers(ctx)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("list_customers failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to list customers: %v", err)), nil
	}

	type lite struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		PhoneNumber string `json:"phoneNumber"`
	}
	out := make([]lite, len(customers))
	for i, c := range customers {
		out[i] = lite{ID: c.ID, Name: c.Name, PhoneNumber: c.PhoneNumber}
	}
	b, _ := json.Marshal(out)
	return mcp.NewToolResultText(string(b)), nil
}

func (ch *CustomerHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")

	c, err := ch.svc.Customer(ctx, customerID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get customer: %v", err)), nil
	}
	b, _ := json.Marshal(c)
	return mcp.NewToolResultText(string(b)), nil
}

func (ch *CustomerHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := customerRequestFromArgs(req)
	log.Debug().Str("name", in.Name).Msg("create_customer invoked")

	c, err := ch.svc.CreateCustomer(ctx, in)
	if err != nil {
		log.Error().Err(err).Msg("create_customer failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to create customer: %v", err)), nil
	}
	b, _ := json.Marshal(c)
	return mcp.NewToolResultText(string(b)), nil
}

func (ch *CustomerHandler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")
	in := customerRequestFromArgs(req)

	c, err := ch.svc.UpdateCustomer(ctx, customerID, in)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("update_customer failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to update customer: %v", err)), nil
	}
	b, _ := json.Marshal(c)
	return mcp.NewToolResultText(string(b)), nil
}

func (ch *CustomerHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	customerID, _ := req.RequireString("customer_id")

	if err := ch.svc.DeleteCustomer(ctx, customerID); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("delete_customer failed")
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete customer: %v", err)), nil
	}
	return mcp.NewToolResultText(`{"deleted":true}`), nil
}
