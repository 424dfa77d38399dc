package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/client"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newListCustomersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-customers",
		Short: "List the firm's customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			customers, err := c.ListCustomers(ctx)
			if err != nil {
				return err
			}
			return printJSON(customers)
		},
	}
}

func newGetCustomerCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "get-customer",
		Short: "Show one customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			customer, err := c.GetCustomer(ctx, customerID)
			if err != nil {
				return err
			}
			return printJSON(customer)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

func customerRequestFlags(cmd *cobra.Command, req *client.CustomerRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Customer name (required)")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "Phone number (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (optional)")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address (optional)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes (optional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")
}

func newCreateCustomerCmd() *cobra.Command {
	var req client.CustomerRequest

	cmd := &cobra.Command{
		Use:   "create-customer",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			customer, err := c.CreateCustomer(ctx, req)
			if err != nil {
				log.Error().Err(err).Str("name", req.Name).Msg("create customer failed")
				return err
			}
			fmt.Printf("Customer created: %s (%s)\n", customer.Name, customer.ID)
			return nil
		},
	}

	customerRequestFlags(cmd, &req)
	return cmd
}

func newUpdateCustomerCmd() *cobra.Command {
	var customerID string
	var req client.CustomerRequest

	cmd := &cobra.Command{
		Use:   "update-customer",
		Short: "Update a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			customer, err := c.UpdateCustomer(ctx, customerID, req)
			if err != nil {
				log.Error().Err(err).Str("customer_id", customerID).Msg("update customer failed")
				return err
			}
			fmt.Printf("Customer updated: %s (%s)\n", customer.Name, customer.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	customerRequestFlags(cmd, &req)
	return cmd
}

func newDeleteCustomerCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "delete-customer",
		Short: "Delete a customer and its matters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := c.DeleteCustomer(ctx, customerID); err != nil {
				log.Error().Err(err).Str("customer_id", customerID).Msg("delete customer failed")
				return err
			}
			fmt.Printf("Customer deleted: %s\n", customerID)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}
