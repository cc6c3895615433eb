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

// OrganizationHandler exposes the search_organizations tool.
type OrganizationHandler struct {
	client *client.Client
}

func NewOrganizationHandler(c *client.Client) *OrganizationHandler {
	return &OrganizationHandler{client: c}
}

// RegisterTools registers the search_organizations tool.
func (oh *OrganizationHandler) RegisterTools(s *server.MCPServer) error {
	searchTool := mcp.NewTool("search_organizations",
		mcp.WithDescription("Searches for companies and organizations on Apollo.io based on specified criteria. Returns a pagination summary followed by one formatted record per organization."),
		mcp.WithArray("organization_num_employees_ranges",
			mcp.Description("Company size ranges in 'min,max' format (e.g., ['1,10', '11,50', '51,200'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("organization_locations",
			mcp.Description("Headquarters locations of companies (e.g., ['chicago', 'london', 'United States'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("organization_not_locations",
			mcp.Description("Locations to exclude from search (e.g., ['ireland', 'minnesota'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("q_organization_keyword_tags",
			mcp.Description("Keywords associated with companies (e.g., ['mining', 'sales strategy', 'consulting'])"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(searchTool, oh.handleSearchOrganizations)
	return nil
}

func (oh *OrganizationHandler) handleSearchOrganizations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	criteria := client.OrganizationSearchCriteria{
		NumEmployeesRanges: stringList(args, "organization_num_employees_ranges"),
		Locations:          stringList(args, "organization_locations"),
		NotLocations:       stringList(args, "organization_not_locations"),
		KeywordTags:        stringList(args, "q_organization_keyword_tags"),
	}

	log.Debug().Interface("criteria", criteria).Msg("search_organizations invoked")

	start := time.Now()
	records, err := oh.client.SearchOrganizations(ctx, criteria)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("search_organizations failed")
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return mcp.NewToolResultText(strings.Join(records, "\n\n")), nil
}
