package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mertdeveci5/apollo-tools/client"
)

var (
	apiKey  string
	timeout time.Duration
	debug   bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apolloctl",
		Short: "One-shot Apollo.io searches and enrichment from the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("APOLLO_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("APOLLO_API_KEY"), "Apollo API key (defaults to APOLLO_API_KEY)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "Request timeout for a single API call")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newSearchPeopleCmd())
	rootCmd.AddCommand(newSearchOrgsCmd())
	rootCmd.AddCommand(newEnrichCmd())
	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.New(apiKey, client.WithHTTPTimeout(timeout))
}

func printRecords(records []string) {
	fmt.Println(strings.Join(records, "\n\n"))
}

func newSearchPeopleCmd() *cobra.Command {
	var criteria client.PeopleSearchCriteria
	cmd := &cobra.Command{
		Use:   "search-people",
		Short: "Search for people by title, location, and company filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			records, err := c.SearchPeople(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			printRecords(records)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&criteria.PersonTitles, "title", nil, "Job title filter (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.PersonLocations, "location", nil, "Person location filter (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.OrganizationLocations, "org-location", nil, "Company headquarters location filter (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.OrganizationNumEmployeesRanges, "employees", nil, "Company size range 'min,max' (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.OrganizationKeywordTags, "keyword", nil, "Company keyword tag (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.OrganizationDomains, "domain", nil, "Company website domain (repeatable)")
	return cmd
}

func newSearchOrgsCmd() *cobra.Command {
	var criteria client.OrganizationSearchCriteria
	cmd := &cobra.Command{
		Use:   "search-orgs",
		Short: "Search for companies by size, location, and keyword filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			records, err := c.SearchOrganizations(cmd.Context(), criteria)
			if err != nil {
				return err
			}
			printRecords(records)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&criteria.NumEmployeesRanges, "employees", nil, "Company size range 'min,max' (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.Locations, "location", nil, "Headquarters location filter (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.NotLocations, "not-location", nil, "Location to exclude (repeatable)")
	cmd.Flags().StringSliceVar(&criteria.KeywordTags, "keyword", nil, "Company keyword tag (repeatable)")
	return cmd
}

func newEnrichCmd() *cobra.Command {
	var emails, linkedins []string
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Bulk-enrich people identified by email or LinkedIn URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]client.EnrichmentTarget, 0, len(emails)+len(linkedins))
			for _, e := range emails {
				targets = append(targets, client.EnrichmentTarget{Email: e})
			}
			for _, l := range linkedins {
				targets = append(targets, client.EnrichmentTarget{LinkedInURL: l})
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			records, err := c.EnrichPeople(cmd.Context(), targets)
			if err != nil {
				return err
			}
			printRecords(records)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&emails, "email", nil, "Email of a person to enrich (repeatable)")
	cmd.Flags().StringSliceVar(&linkedins, "linkedin", nil, "LinkedIn URL of a person to enrich (repeatable)")
	return cmd
}
