package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mertdeveci5/apollo-tools/client/internal/types"
)

// Record formatting. Each record is one multi-line text block; a successful
// search or enrichment returns a summary record followed by one record per
// result. Field order is part of the output contract.

func paginationRecord(p types.Pagination, noun string) string {
	page := p.Page
	if page == 0 {
		page = 1
	}
	perPage := p.PerPage
	if perPage == 0 {
		perPage = defaultPerPage
	}
	var b strings.Builder
	b.WriteString("Pagination Information:\n")
	fmt.Fprintf(&b, "- Total %s Found: %d\n", noun, p.TotalEntries)
	fmt.Fprintf(&b, "- Total Pages: %d\n", p.TotalPages)
	fmt.Fprintf(&b, "- Current Page: %d\n", page)
	fmt.Fprintf(&b, "- Results Per Page: %d", perPage)
	return b.String()
}

func personRecord(p types.Person) string {
	org := p.Organization
	lines := []string{
		"Name: " + p.Name,
		"Title: " + p.Title,
		"Headline: " + p.Headline,
		"Email Status: " + p.EmailStatus,
		"LinkedIn: " + p.LinkedInURL,
		"Location: " + location(p),
		"Company: " + org.Name,
		"Company Website: " + org.WebsiteURL,
		"Company LinkedIn: " + org.LinkedInURL,
		"Seniority: " + p.Seniority,
		"Departments: " + strings.Join(p.Departments, ", "),
		"Functions: " + strings.Join(p.Functions, ", "),
	}
	return strings.Join(lines, "\n")
}

func organizationRecord(o types.Organization) string {
	lines := []string{
		"Name: " + o.Name,
		"Website: " + o.WebsiteURL,
		"LinkedIn: " + o.LinkedInURL,
		"Twitter: " + o.TwitterURL,
		"Facebook: " + o.FacebookURL,
		"Blog: " + o.BlogURL,
		"Phone: " + o.PhoneNumber(),
		"Languages: " + strings.Join(o.Languages, ", "),
		"Alexa Ranking: " + optInt(o.AlexaRanking),
		"Founded Year: " + optInt(o.FoundedYear),
		"Stock Symbol: " + o.PubliclyTradedSymbol,
		"Stock Exchange: " + o.PubliclyTradedExchange,
		"Logo URL: " + o.LogoURL,
		"Primary Domain: " + o.PrimaryDomain,
	}
	return strings.Join(lines, "\n")
}

func enrichmentSummaryRecord(r types.BulkMatchResponse) string {
	var b strings.Builder
	b.WriteString("Enrichment Summary:\n")
	fmt.Fprintf(&b, "- Total Requested: %d\n", r.TotalRequestedEnrichments)
	fmt.Fprintf(&b, "- Successfully Enriched: %d\n", r.UniqueEnrichedRecords)
	fmt.Fprintf(&b, "- Missing Records: %d\n", r.MissingRecords)
	fmt.Fprintf(&b, "- Credits Consumed: %g", r.CreditsConsumed)
	return b.String()
}

func matchRecord(p types.Person) string {
	job, _ := p.CurrentEmployment()
	lines := []string{
		"Name: " + p.Name,
		"Email: " + p.Email,
		"LinkedIn: " + p.LinkedInURL,
		"Current Title: " + p.Title,
		"Current Company: " + job.OrganizationName,
		"Location: " + location(p),
		"Departments: " + strings.Join(p.Departments, ", "),
		"Seniority: " + p.Seniority,
		"Functions: " + strings.Join(p.Functions, ", "),
		"Is Likely to Engage: " + strconv.FormatBool(p.IsLikelyToEngage),
	}
	return strings.Join(lines, "\n")
}

func location(p types.Person) string {
	return fmt.Sprintf("%s, %s, %s", p.City, p.State, p.Country)
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
