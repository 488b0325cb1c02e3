package tools

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const googleSearchName = "google_search"

// GoogleSearch builds the web search tool.
func GoogleSearch(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        googleSearchName,
			Description: "Perform a Google web search. Returns organic results with titles, URLs, and descriptions.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Search"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query (e.g. 'best restaurants 2024')",
					},
					"pages_per_query": map[string]any{
						"type":        "integer",
						"description": "Number of result pages to fetch (max 10)",
						"default":     1,
						"minimum":     1,
						"maximum":     10,
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Language code",
						"default":     "en",
					},
					"region": map[string]any{
						"type":        "string",
						"description": "Country/region code (e.g. 'US', 'GB', 'DE')",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupSearch,
		Execute: executeGoogleSearch(client),
	}
}

func executeGoogleSearch(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(googleSearchName, err), nil
		}
		pages, err := ReadBoundedInt(args, "pages_per_query", 1, 1, 10)
		if err != nil {
			return ValidationResult(googleSearchName, err), nil
		}
		region, err := ReadRegion(args)
		if err != nil {
			return ValidationResult(googleSearchName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("pagesPerQuery", strconv.Itoa(pages))
		params.Set("language", language)
		if region != "" {
			params.Set("region", region)
		}

		outcome, err := client.Run(ctx, "/google-search-v3", params)
		if err != nil {
			return APIErrorResult(googleSearchName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatSearchHits(displayQuery(queries), outcome.Records)), nil
	}
}

// displayQuery renders a query batch for payload headers.
func displayQuery(queries []string) string {
	return strings.Join(queries, "; ")
}
