package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

func TestSearchOrganizations_PayloadOmitsEmptyFields(t *testing.T) {
	t.Parallel()
	var payload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/mixed_companies/search", r.URL.Path)
		payload = capturePayload(t, r)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	criteria := types.OrganizationSearchCriteria{
		KeywordTags: []string{"mining", "consulting"},
	}
	_, err := SearchOrganizations(context.Background(), newTestREST(srv), criteria)
	require.NoError(t, err)

	assert.Equal(t, []any{"mining", "consulting"}, payload["q_organization_keyword_tags"])
	assert.Equal(t, float64(1), payload["page"])
	assert.Equal(t, float64(10), payload["per_page"])

	for _, key := range []string{
		"organization_num_employees_ranges",
		"organization_locations",
		"organization_not_locations",
	} {
		_, present := payload[key]
		assert.Falsef(t, present, "key %q must be omitted when empty", key)
	}
}

func TestSearchOrganizations_Records(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"pagination": {"total_entries": 2, "total_pages": 1, "page": 1, "per_page": 10},
			"organizations": [
				{
					"name": "Acme Mining",
					"website_url": "https://acme.example",
					"linkedin_url": "https://linkedin.com/company/acme",
					"twitter_url": "https://twitter.com/acme",
					"primary_phone": {"number": "+1 555 0100"},
					"phone": "+1 555 9999",
					"languages": ["English", "Spanish"],
					"alexa_ranking": 1234,
					"founded_year": 1999,
					"publicly_traded_symbol": "ACME",
					"publicly_traded_exchange": "nyse",
					"logo_url": "https://acme.example/logo.png",
					"primary_domain": "acme.example"
				},
				{
					"name": "Flat Phone Co",
					"phone": "+44 20 0000"
				}
			]
		}`))
	}))
	defer srv.Close()

	records, err := SearchOrganizations(context.Background(), newTestREST(srv), types.OrganizationSearchCriteria{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.True(t, strings.HasPrefix(records[0], "Pagination Information:"))
	assert.Contains(t, records[0], "Total Organizations Found: 2")

	acme := records[1]
	assert.Contains(t, acme, "Name: Acme Mining")
	assert.Contains(t, acme, "Website: https://acme.example")
	// primary_phone wins over the flat phone field
	assert.Contains(t, acme, "Phone: +1 555 0100")
	assert.Contains(t, acme, "Languages: English, Spanish")
	assert.Contains(t, acme, "Alexa Ranking: 1234")
	assert.Contains(t, acme, "Founded Year: 1999")
	assert.Contains(t, acme, "Stock Symbol: ACME")
	assert.Contains(t, acme, "Stock Exchange: nyse")
	assert.Contains(t, acme, "Primary Domain: acme.example")

	flat := records[2]
	assert.Contains(t, flat, "Phone: +44 20 0000")
	// numeric fields absent from the response render blank, not zero
	assert.Contains(t, flat, "Founded Year: \n")
	assert.Contains(t, flat, "Alexa Ranking: \n")
}

func TestSearchOrganizations_ZeroResultsStillSummarized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pagination": {"total_entries": 0}, "organizations": []}`))
	}))
	defer srv.Close()

	records, err := SearchOrganizations(context.Background(), newTestREST(srv), types.OrganizationSearchCriteria{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, strings.HasPrefix(records[0], "Pagination Information:"))
}

func TestSearchOrganizations_FailureKinds(t *testing.T) {
	t.Parallel()
	srv1 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv1.Close()
	_, err := SearchOrganizations(context.Background(), newTestREST(srv1), types.OrganizationSearchCriteria{})
	var reqErr *types.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusUnprocessableEntity, reqErr.StatusCode)

	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{bad json"))
	}))
	defer srv2.Close()
	_, err = SearchOrganizations(context.Background(), newTestREST(srv2), types.OrganizationSearchCriteria{})
	var decErr *types.DecodeError
	require.True(t, errors.As(err, &decErr))
}
