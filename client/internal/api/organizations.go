package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

func buildOrganizationPayload(c types.OrganizationSearchCriteria) map[string]any {
	payload := map[string]any{}

	if len(c.NumEmployeesRanges) > 0 {
		payload["organization_num_employees_ranges"] = c.NumEmployeesRanges
	}
	if len(c.Locations) > 0 {
		payload["organization_locations"] = c.Locations
	}
	if len(c.NotLocations) > 0 {
		payload["organization_not_locations"] = c.NotLocations
	}
	if len(c.KeywordTags) > 0 {
		payload["q_organization_keyword_tags"] = c.KeywordTags
	}

	payload["page"] = defaultPage
	payload["per_page"] = defaultPerPage
	return payload
}

// SearchOrganizations runs a company search and formats the response into
// text records, pagination summary first.
func SearchOrganizations(ctx context.Context, rc *resty.Client, c types.OrganizationSearchCriteria) ([]string, error) {
	var resp types.OrganizationSearchResponse
	if err := postJSON(ctx, rc, "search_organizations", OrganizationSearchPath, buildOrganizationPayload(c), &resp); err != nil {
		return nil, err
	}

	records := make([]string, 0, len(resp.Organizations)+1)
	records = append(records, paginationRecord(resp.Pagination, "Organizations"))
	for _, org := range resp.Organizations {
		records = append(records, organizationRecord(org))
	}
	return records, nil
}
