package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
)

// newTestREST builds a resty client pointed at the stub server, mirroring
// the one the SDK constructs in client.New.
func newTestREST(srv *httptest.Server) *resty.Client {
	return resty.NewWithClient(srv.Client()).
		SetBaseURL(srv.URL).
		SetHeader("accept", "application/json").
		SetHeader("Content-Type", "application/json")
}

// capturePayload decodes the request body into a map for payload assertions.
func capturePayload(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		t.Fatalf("decode request payload: %v", err)
	}
	return payload
}
