// Package config loads application settings from the environment and wires
// process-wide logging.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration. Every field is overridable via a
// LEXDESK_-prefixed environment variable.
type Config struct {
	// APIURL is the base URL of the LexDesk backend.
	APIURL string `envconfig:"API_URL" default:"http://localhost:8080"`
	// TokenFile overrides the default bearer token location. Empty means
	// the per-user config directory.
	TokenFile string `envconfig:"TOKEN_FILE"`
	// LogLevel is one of debug|info|warn|error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from LEXDESK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("lexdesk", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init initializes logging from the loaded configuration.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.Level())

	log.Debug().
		Str("api_url", c.APIURL).
		Str("log_level", c.LogLevel).
		Msg("configuration loaded")
}

// Level parses the configured log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
