package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const googleNewsName = "google_search_news"

// GoogleNews builds the news search tool.
func GoogleNews(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        googleNewsName,
			Description: "Search Google News. Returns headlines with sources, dates, and summaries.",
			Annotations: &mcp.ToolAnnotations{Title: "Google News Search"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "News search query (e.g. 'AI technology news')",
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
					"tbs": map[string]any{
						"type":        "string",
						"description": "Time-based filter (e.g. 'qdr:d' for past day, 'qdr:w' for past week)",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupSearch,
		Execute: executeGoogleNews(client),
	}
}

func executeGoogleNews(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(googleNewsName, err), nil
		}
		pages, err := ReadBoundedInt(args, "pages_per_query", 1, 1, 10)
		if err != nil {
			return ValidationResult(googleNewsName, err), nil
		}
		region, err := ReadRegion(args)
		if err != nil {
			return ValidationResult(googleNewsName, err), nil
		}
		tbs, err := ReadString(args, "tbs", false)
		if err != nil {
			return ValidationResult(googleNewsName, err), nil
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
		if tbs != "" {
			params.Set("tbs", tbs)
		}

		outcome, err := client.Run(ctx, "/google-search-news", params)
		if err != nil {
			return APIErrorResult(googleNewsName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatNews(displayQuery(queries), outcome.Records)), nil
	}
}
