// Command lexdesk is a CLI over the LexDesk practice-management API: auth,
// customers, matters, and the dashboard aggregates.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/lexdesk/lexdesk/client"
	"github.com/lexdesk/lexdesk/internal/config"
	"github.com/lexdesk/lexdesk/internal/dashboard"
	"github.com/lexdesk/lexdesk/querycache"
)

var serviceURL string
var tokenFile string
var debug bool

const requestTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lexdesk",
		Short: "LexDesk CLI for managing customers and legal matters",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("LEXDESK_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("LEXDESK_API_URL", "http://localhost:8080")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the LexDesk API")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", os.Getenv("LEXDESK_TOKEN_FILE"), "Path of the bearer token file (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newSignupCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newListCustomersCmd())
	rootCmd.AddCommand(newGetCustomerCmd())
	rootCmd.AddCommand(newCreateCustomerCmd())
	rootCmd.AddCommand(newUpdateCustomerCmd())
	rootCmd.AddCommand(newDeleteCustomerCmd())
	rootCmd.AddCommand(newListMattersCmd())
	rootCmd.AddCommand(newGetMatterCmd())
	rootCmd.AddCommand(newCreateMatterCmd())
	rootCmd.AddCommand(newUpdateMatterCmd())
	rootCmd.AddCommand(newAllMattersCmd())
	rootCmd.AddCommand(newDashboardCmd())

	return rootCmd
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newClient() *client.Client {
	path := tokenFile
	if path == "" {
		p, err := client.DefaultTokenPath()
		if err != nil {
			log.Fatal().Err(err).Msg("resolving token path failed")
		}
		path = p
	}
	return client.New(serviceURL, client.NewFileTokenStore(path))
}

// newService builds the cached read layer. The CLI is a short-lived process,
// so the cache mostly deduplicates the reads within one command, e.g. the
// dashboard command resolving customers once for both aggregates.
func newService() (*dashboard.Service, func()) {
	cache := querycache.New()
	return dashboard.NewService(newClient(), cache), cache.Close
}
