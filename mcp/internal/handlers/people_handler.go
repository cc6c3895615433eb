package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/mertdeveci5/apollo-tools/client"
)

// PeopleHandler exposes the search_people tool.
type PeopleHandler struct {
	client *client.Client
}

func NewPeopleHandler(c *client.Client) *PeopleHandler {
	return &PeopleHandler{client: c}
}

// RegisterTools registers the search_people tool.
func (ph *PeopleHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_people",
		mcp.WithDescription("Searches for people on Apollo.io based on specified criteria. Returns a pagination summary followed by one formatted record per person."),
		mcp.WithArray("person_titles",
			mcp.Description("Job titles held by the people you want to find (e.g., ['marketing manager', 'research analyst'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("person_locations",
			mcp.Description("Locations where people live (e.g., ['chicago', 'london', 'United States', 'Turkey'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("organization_locations",
			mcp.Description("Headquarters locations of companies (e.g., ['chicago', 'london', 'United States', 'Turkey'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("organization_num_employees_ranges",
			mcp.Description("Company size ranges in 'min,max' format (e.g., ['1,10', '11,50', '51,200'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("q_organization_keyword_tags",
			mcp.Description("Keywords associated with the company, never the name of the company (e.g., ['software', 'sales', 'artificial intelligence'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("q_organization_domains",
			mcp.Description("Company website domains to search within (e.g., ['monad.xyz', 'arbitrum.io'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(searchTool, ph.handleSearchPeople)
	return nil
}

func (ph *PeopleHandler) handleSearchPeople(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	criteria := client.PeopleSearchCriteria{
		PersonTitles:                   stringList(args, "person_titles"),
		PersonLocations:                stringList(args, "person_locations"),
		OrganizationLocations:          stringList(args, "organization_locations"),
		OrganizationNumEmployeesRanges: stringList(args, "organization_num_employees_ranges"),
		OrganizationKeywordTags:        stringList(args, "q_organization_keyword_tags"),
		OrganizationDomains:            stringList(args, "q_organization_domains"),
	}

	log.Debug().Interface("criteria", criteria).Msg("search_people invoked")

	start := time.Now()
	records, err := ph.client.SearchPeople(ctx, criteria)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("search_people failed")
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return mcp.NewToolResultText(strings.Join(records, "\n\n")), nil
}
