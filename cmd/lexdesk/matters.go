package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/client"
)

func matterRequestFlags(cmd *cobra.Command, req *client.MatterRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Matter name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (optional)")
	cmd.Flags().StringVar(&req.Status, "status", client.StatusOpen, "Status: open|pending|closed")
	cmd.Flags().StringVar(&req.OpenDate, "open-date", "", "Open date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.CloseDate, "close-date", "", "Close date, YYYY-MM-DD (required when status is closed)")
	cmd.Flags().StringVar(&req.PracticeArea, "practice-area", "", "Practice area, one of: "+strings.Join(client.PracticeAreas(), ", "))
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("open-date")
	_ = cmd.MarkFlagRequired("practice-area")
}

func newListMattersCmd() *cobra.Command {
	var customerID string

	cmd := &cobra.Command{
		Use:   "list-matters",
		Short: "List one customer's matters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			matters, err := c.ListMatters(ctx, customerID)
			if err != nil {
				return err
			}
			return printJSON(matters)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	return cmd
}

func newGetMatterCmd() *cobra.Command {
	var customerID, matterID string

	cmd := &cobra.Command{
		Use:   "get-matter",
		Short: "Show one matter",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			matter, err := c.GetMatter(ctx, customerID, matterID)
			if err != nil {
				return err
			}
			return printJSON(matter)
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	cmd.Flags().StringVar(&matterID, "matter-id", "", "Matter ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	_ = cmd.MarkFlagRequired("matter-id")
	return cmd
}

func newCreateMatterCmd() *cobra.Command {
	var customerID string
	var req client.MatterRequest

	cmd := &cobra.Command{
		Use:   "create-matter",
		Short: "Open a matter under a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			matter, err := c.CreateMatter(ctx, customerID, req)
			if err != nil {
				log.Error().Err(err).Str("customer_id", customerID).Msg("create matter failed")
				return err
			}
			fmt.Printf("Matter created: %s (%s)\n", matter.Name, matter.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	matterRequestFlags(cmd, &req)
	return cmd
}

func newUpdateMatterCmd() *cobra.Command {
	var customerID, matterID string
	var req client.MatterRequest

	cmd := &cobra.Command{
		Use:   "update-matter",
		Short: "Update a matter",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			matter, err := c.UpdateMatter(ctx, customerID, matterID, req)
			if err != nil {
				log.Error().Err(err).Str("matter_id", matterID).Msg("update matter failed")
				return err
			}
			fmt.Printf("Matter updated: %s (%s)\n", matter.Name, matter.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&customerID, "customer-id", "", "Customer ID (required)")
	cmd.Flags().StringVar(&matterID, "matter-id", "", "Matter ID (required)")
	_ = cmd.MarkFlagRequired("customer-id")
	_ = cmd.MarkFlagRequired("matter-id")
	matterRequestFlags(cmd, &req)
	return cmd
}
