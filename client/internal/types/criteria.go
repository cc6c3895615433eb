package types

// ------------------------------
// Criteria Types
// ------------------------------

// PeopleSearchCriteria holds the optional filters for a people search.
// Empty fields are omitted from the outgoing payload entirely.
type PeopleSearchCriteria struct {
	// Job titles held by the people to find (e.g. "marketing manager").
	PersonTitles []string
	// Locations where people live (city, region, or country).
	PersonLocations []string
	// Headquarters locations of the people's companies.
	OrganizationLocations []string
	// Company size ranges in "min,max" form (e.g. "11,50").
	OrganizationNumEmployeesRanges []string
	// Keywords associated with the company, never company names or URLs.
	OrganizationKeywordTags []string
	// Company website domains; joined with newlines on the wire.
	OrganizationDomains []string
}

// OrganizationSearchCriteria holds the optional filters for a company search.
type OrganizationSearchCriteria struct {
	NumEmployeesRanges []string
	Locations          []string
	NotLocations       []string
	KeywordTags        []string
}

// EnrichmentTarget identifies one person to enrich. At least one of Email
// or LinkedInURL must be non-blank.
type EnrichmentTarget struct {
	Email       string
	LinkedInURL string
}
