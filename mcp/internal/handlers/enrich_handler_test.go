package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestEnrichPeopleTool(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/people/bulk_match" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
            "total_requested_enrichments": 1,
            "unique_enriched_records": 1,
            "matches": [{"name": "Grace Hopper", "email": "grace@navy.example"}]
        }`))
	}))
	defer ts.Close()

	eh := NewEnrichHandler(newTestClient(t, ts.URL))
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"details": []any{
					map[string]any{"email": "grace@navy.example"},
				},
			},
		},
	}

	res, err := eh.handleEnrichPeople(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %v", res.Content)
	}

	content := resultText(t, res)
	if !strings.HasPrefix(content, "Enrichment Summary:") {
		t.Errorf("summary must come first, got: %q", content)
	}
	if !strings.Contains(content, "Name: Grace Hopper") {
		t.Errorf("missing match record: %q", content)
	}
}

func TestEnrichPeopleTool_MissingIdentifiers(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer ts.Close()

	eh := NewEnrichHandler(newTestClient(t, ts.URL))
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"details": []any{map[string]any{}},
			},
		},
	}

	res, err := eh.handleEnrichPeople(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for target without identifiers")
	}
	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("expected no backend calls, got %d", got)
	}
}
