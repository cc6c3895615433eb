package client

import "github.com/mertdeveci5/apollo-tools/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Criteria
	PeopleSearchCriteria       = types.PeopleSearchCriteria
	OrganizationSearchCriteria = types.OrganizationSearchCriteria
	EnrichmentTarget           = types.EnrichmentTarget
)

// Errors re-exported in errors.go
