package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mertdeveci5/apollo-tools/client/internal/api"
)

// DefaultBaseURL is the production Apollo.io API host.
const DefaultBaseURL = "https://api.apollo.io"

// DefaultTimeout bounds a single request when no WithHTTPTimeout option is
// given.
const DefaultTimeout = 10 * time.Second

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a thin adapter over three Apollo.io REST endpoints: people
// search, organization search, and bulk people enrichment. Each operation is
// a single synchronous POST; the client holds no mutable state and is safe
// for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	rest    *resty.Client
}

// New constructs a Client with the given API key. Additional options can be
// provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so every request carries the API key.
	c.wrapTransportWithAPIKey()

	c.rest = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeader("accept", "application/json").
		SetHeader("Cache-Control", "no-cache").
		SetHeader("Content-Type", "application/json")

	return c, nil
}

// wrapTransportWithAPIKey wraps the HTTP client's transport to automatically
// add the x-api-key header to all requests.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the Apollo API-key header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("x-api-key", t.apiKey)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Operations - delegated to internal/api
// --------------------------------------------------------------------

// SearchPeople searches for people matching the criteria. On success it
// returns formatted text records with a pagination summary first.
func (c *Client) SearchPeople(ctx context.Context, criteria PeopleSearchCriteria) ([]string, error) {
	return c.observe("search_people", func() ([]string, error) {
		return api.SearchPeople(ctx, c.rest, criteria)
	})
}

// SearchOrganizations searches for companies matching the criteria. On
// success it returns formatted text records with a pagination summary first.
func (c *Client) SearchOrganizations(ctx context.Context, criteria OrganizationSearchCriteria) ([]string, error) {
	return c.observe("search_organizations", func() ([]string, error) {
		return api.SearchOrganizations(ctx, c.rest, criteria)
	})
}

// EnrichPeople enriches the given targets via the bulk match endpoint. Each
// target must carry a non-blank email or LinkedIn URL; otherwise the whole
// call is rejected with a ValidationError before any network I/O. On success
// it returns formatted text records with an enrichment summary first.
func (c *Client) EnrichPeople(ctx context.Context, targets []EnrichmentTarget) ([]string, error) {
	return c.observe("enrich_people", func() ([]string, error) {
		return api.EnrichPeople(ctx, c.rest, targets)
	})
}

// observe wraps an operation with request/failure counters.
func (c *Client) observe(op string, fn func() ([]string, error)) ([]string, error) {
	requestsTotal.WithLabelValues(op).Inc()
	records, err := fn()
	if err != nil {
		requestFailuresTotal.WithLabelValues(op, errorKind(err)).Inc()
		return nil, err
	}
	return records, nil
}
