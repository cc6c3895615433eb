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

// EnrichHandler exposes the enrich_people tool.
type EnrichHandler struct {
	client *client.Client
}

func NewEnrichHandler(c *client.Client) *EnrichHandler {
	return &EnrichHandler{client: c}
}

// RegisterTools registers the enrich_people tool.
func (eh *EnrichHandler) RegisterTools(s *server.MCPServer) error {
	enrichTool := mcp.NewTool("enrich_people",
		mcp.WithDescription("Finds people's data with emails and additional information. Either a LinkedIn URL or an email is required for each person."),
		mcp.WithArray("details",
			mcp.Required(),
			mcp.Description("List of people to enrich. Each entry must provide either a LinkedIn URL or an email."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"email":        map[string]any{"type": "string"},
					"linkedin_url": map[string]any{"type": "string"},
				},
			}),
		),
	)
	s.AddTool(enrichTool, eh.handleEnrichPeople)
	return nil
}

func (eh *EnrichHandler) handleEnrichPeople(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, _ := req.GetArguments()["details"].([]any)
	targets := make([]client.EnrichmentTarget, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		targets = append(targets, client.EnrichmentTarget{
			Email:       stringField(obj, "email"),
			LinkedInURL: stringField(obj, "linkedin_url"),
		})
	}

	log.Debug().Int("targets", len(targets)).Msg("enrich_people invoked")

	start := time.Now()
	records, err := eh.client.EnrichPeople(ctx, targets)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("enrich_people failed")
		return mcp.NewToolResultError(fmt.Sprintf("enrichment failed: %v", err)), nil
	}

	return mcp.NewToolResultText(strings.Join(records, "\n\n")), nil
}
