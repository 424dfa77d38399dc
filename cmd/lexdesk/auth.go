package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/client"
)

func newSignupCmd() *cobra.Command {
	var email, password, firmName string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new firm account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			s, err := c.Signup(ctx, client.SignupRequest{
				Email:    email,
				Password: password,
				FirmName: firmName,
			})
			if err != nil {
				log.Error().Err(err).Str("email", email).Dur("elapsed", time.Since(start)).Msg("signup failed")
				return err
			}

			fmt.Printf("Signed up as %s (%s)\n", s.User.Email, s.User.FirmName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&firmName, "firm-name", "", "Firm name (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("firm-name")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			s, err := c.Login(ctx, client.LoginRequest{Email: email, Password: password})
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("login failed")
				return err
			}

			fmt.Printf("Logged in as %s\n", s.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, done := newService()
			defer done()
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			u, err := svc.EnsureSession(ctx)
			if err != nil {
				if client.IsAuthRequired(err) {
					return fmt.Errorf("not logged in, run `lexdesk login`")
				}
				return err
			}
			fmt.Printf("%s (%s)\n", u.Email, u.FirmName)
			return nil
		},
	}
}
