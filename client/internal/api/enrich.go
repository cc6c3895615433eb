package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

// EnrichPeople validates and cleans the targets, runs a bulk match, and
// formats the response into text records, enrichment summary first.
// Validation happens before any network I/O; a rejected target fails the
// whole batch.
func EnrichPeople(ctx context.Context, rc *resty.Client, targets []types.EnrichmentTarget) ([]string, error) {
	details, err := types.CleanTargets(targets)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"details":                details,
		"reveal_personal_emails": false,
		"reveal_phone_number":    false,
	}

	var resp types.BulkMatchResponse
	if err := postJSON(ctx, rc, "enrich_people", BulkMatchPath, payload, &resp); err != nil {
		return nil, err
	}

	records := make([]string, 0, len(resp.Matches)+1)
	records = append(records, enrichmentSummaryRecord(resp))
	for _, match := range resp.Matches {
		records = append(records, matchRecord(match))
	}
	return records, nil
}
