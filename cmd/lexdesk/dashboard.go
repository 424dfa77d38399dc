package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAllMattersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all-matters",
		Short: "List every matter in the firm with customer names",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done := newService()
			defer done()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			all, err := svc.AllMatters(ctx)
			if err != nil {
				return err
			}
			return printJSON(all)
		},
	}
}

func newDashboardCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show firm counts and recent matters",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done := newService()
			defer done()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			stats, err := svc.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Customers: %d\nActive matters: %d\n", stats.TotalCustomers, stats.ActiveMatters)

			matters, err := svc.RecentMatters(ctx, recent)
			if err != nil {
				return err
			}
			for _, m := range matters {
				fmt.Printf("  %s  %-8s  %s (%s)\n", m.OpenDate, m.Status, m.Name, m.CustomerName)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent matters to show")
	return cmd
}
