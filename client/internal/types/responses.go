package types

// ------------------------------
// Response Types
// ------------------------------
//
// These mirror the Apollo.io response JSON. The remote shape is not owned by
// this SDK, so every field decodes to a zero value when absent; nothing here
// assumes a key is present.

// Pagination mirrors the "pagination" object on search responses.
type Pagination struct {
	TotalEntries int `json:"total_entries"`
	TotalPages   int `json:"total_pages"`
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
}

// Organization mirrors an Apollo organization, both the nested form attached
// to a person and the full form returned by the company search.
type Organization struct {
	Name                   string   `json:"name"`
	WebsiteURL             string   `json:"website_url"`
	LinkedInURL            string   `json:"linkedin_url"`
	TwitterURL             string   `json:"twitter_url"`
	FacebookURL            string   `json:"facebook_url"`
	BlogURL                string   `json:"blog_url"`
	Phone                  string   `json:"phone"`
	PrimaryPhone           *Phone   `json:"primary_phone"`
	Languages              []string `json:"languages"`
	AlexaRanking           *int     `json:"alexa_ranking"`
	FoundedYear            *int     `json:"founded_year"`
	PubliclyTradedSymbol   string   `json:"publicly_traded_symbol"`
	PubliclyTradedExchange string   `json:"publicly_traded_exchange"`
	LogoURL                string   `json:"logo_url"`
	PrimaryDomain          string   `json:"primary_domain"`
}

// Phone mirrors the "primary_phone" object.
type Phone struct {
	Number string `json:"number"`
}

// PhoneNumber returns the primary phone number, falling back to the flat
// phone field when no primary_phone structure was returned.
func (o Organization) PhoneNumber() string {
	if o.PrimaryPhone != nil && o.PrimaryPhone.Number != "" {
		return o.PrimaryPhone.Number
	}
	return o.Phone
}

// Employment mirrors one entry of a person's "employment_history".
type Employment struct {
	Current          bool   `json:"current"`
	OrganizationName string `json:"organization_name"`
	Title            string `json:"title"`
}

// Person mirrors an Apollo person, as returned by both the people search and
// the bulk match endpoints.
type Person struct {
	Name              string       `json:"name"`
	Title             string       `json:"title"`
	Headline          string       `json:"headline"`
	Email             string       `json:"email"`
	EmailStatus       string       `json:"email_status"`
	LinkedInURL       string       `json:"linkedin_url"`
	City              string       `json:"city"`
	State             string       `json:"state"`
	Country           string       `json:"country"`
	Seniority         string       `json:"seniority"`
	Departments       []string     `json:"departments"`
	Functions         []string     `json:"functions"`
	Organization      Organization `json:"organization"`
	EmploymentHistory []Employment `json:"employment_history"`
	IsLikelyToEngage  bool         `json:"is_likely_to_engage"`
}

// CurrentEmployment returns the first employment history entry flagged
// current, or false when none is.
func (p Person) CurrentEmployment() (Employment, bool) {
	for _, job := range p.EmploymentHistory {
		if job.Current {
			return job, true
		}
	}
	return Employment{}, false
}

// PeopleSearchResponse wraps the people search result.
type PeopleSearchResponse struct {
	Pagination Pagination `json:"pagination"`
	People     []Person   `json:"people"`
}

// OrganizationSearchResponse wraps the company search result.
type OrganizationSearchResponse struct {
	Pagination    Pagination     `json:"pagination"`
	Organizations []Organization `json:"organizations"`
}

// BulkMatchResponse wraps the bulk enrichment result.
type BulkMatchResponse struct {
	TotalRequestedEnrichments int      `json:"total_requested_enrichments"`
	UniqueEnrichedRecords     int      `json:"unique_enriched_records"`
	MissingRecords            int      `json:"missing_records"`
	CreditsConsumed           float64  `json:"credits_consumed"`
	Matches                   []Person `json:"matches"`
}
