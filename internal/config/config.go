package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the Apollo tool server.
// Environment variables are parsed from the APOLLO_ prefix.
type Config struct {
	// Apollo API key. Required; the client cannot be built without it.
	APIKey string `envconfig:"API_KEY"`

	// Request timeout for a single Apollo API call.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// MCP server identity
	ServerName    string `envconfig:"MCP_SERVER_NAME" default:"apollo-mcp-server"`
	ServerVersion string `envconfig:"MCP_SERVER_VERSION" default:"0.1.0"`

	// HTTP transport configuration (unused for stdio transport)
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8931"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// Load parses configuration from APOLLO_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("apollo", &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that envconfig defaults cannot guarantee.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("APOLLO_API_KEY is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("APOLLO_REQUEST_TIMEOUT must be > 0")
	}
	return nil
}
