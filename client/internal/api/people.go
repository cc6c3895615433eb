package api

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

// Fixed pagination for every search request.
const (
	defaultPage    = 1
	defaultPerPage = 10
)

// buildPeoplePayload copies present, non-empty criteria fields into the
// request body. Empty fields are omitted entirely, never sent as empty
// lists. Domains collapse into one newline-separated string.
func buildPeoplePayload(c types.PeopleSearchCriteria) map[string]any {
	payload := map[string]any{}

	if len(c.PersonTitles) > 0 {
		payload["person_titles"] = c.PersonTitles
	}
	if len(c.PersonLocations) > 0 {
		payload["person_locations"] = c.PersonLocations
	}
	if len(c.OrganizationLocations) > 0 {
		payload["organization_locations"] = c.OrganizationLocations
	}
	if len(c.OrganizationNumEmployeesRanges) > 0 {
		payload["organization_num_employees_ranges"] = c.OrganizationNumEmployeesRanges
	}
	if len(c.OrganizationKeywordTags) > 0 {
		payload["q_organization_keyword_tags"] = c.OrganizationKeywordTags
	}
	if len(c.OrganizationDomains) > 0 {
		payload["q_organization_domains"] = strings.Join(c.OrganizationDomains, "\n")
	}

	payload["page"] = defaultPage
	payload["per_page"] = defaultPerPage
	payload["contact_email_status"] = []string{"verified"}
	return payload
}

// SearchPeople runs a people search and formats the response into text
// records, pagination summary first.
func SearchPeople(ctx context.Context, rc *resty.Client, c types.PeopleSearchCriteria) ([]string, error) {
	var resp types.PeopleSearchResponse
	if err := postJSON(ctx, rc, "search_people", PeopleSearchPath, buildPeoplePayload(c), &resp); err != nil {
		return nil, err
	}

	records := make([]string, 0, len(resp.People)+1)
	records = append(records, paginationRecord(resp.Pagination, "Profiles"))
	for _, person := range resp.People {
		records = append(records, personRecord(person))
	}
	return records, nil
}
