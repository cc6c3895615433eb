package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the API-key transport wrapper is installed, so
// transport-related options (like debug logging) will be placed underneath
// the API-key wrapper. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// This bounds the total time spent on a single request (connection, TLS
// handshake, and reading the response); a timed-out call surfaces as a
// RequestError. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithBaseURL overrides the Apollo API host. Intended for tests and
// API-compatible proxies.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the API-key wrapper. Do not
// enable this option in production environments: dumps include the API key
// header and full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
