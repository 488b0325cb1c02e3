package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const mapsSearchName = "google_maps_search"

// MapsSearch builds the Google Maps place search tool.
func MapsSearch(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        mapsSearchName,
			Description: "Search for businesses and places on Google Maps. Returns business details including address, rating, phone, website, and place id.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Maps Search"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query (e.g. 'restaurants brooklyn usa', 'hotels paris france')",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of results to return per query (max 400)",
						"default":     20,
						"minimum":     1,
						"maximum":     400,
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
					"drop_duplicates": map[string]any{
						"type":        "boolean",
						"description": "Remove duplicate results",
						"default":     false,
					},
					"enrichment": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Additional enrichment services to run (e.g. 'domains_service', 'emails_validator_service')",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupMaps,
		Execute: executeMapsSearch(client),
	}
}

func executeMapsSearch(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(mapsSearchName, err), nil
		}
		limit, err := ReadBoundedInt(args, "limit", 20, 1, 400)
		if err != nil {
			return ValidationResult(mapsSearchName, err), nil
		}
		region, err := ReadRegion(args)
		if err != nil {
			return ValidationResult(mapsSearchName, err), nil
		}
		enrichment, err := ReadStringArray(args, "enrichment")
		if err != nil {
			return ValidationResult(mapsSearchName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")
		dropDuplicates := ReadBool(args, "drop_duplicates", false)

		cfg := client.Config()
		async := len(queries) > cfg.AsyncQueryThreshold && limit > 1

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("language", language)
		params.Set("organizationsPerQueryLimit", strconv.Itoa(limit))
		params.Set("async", strconv.FormatBool(async))
		params.Set("dropDuplicates", strconv.FormatBool(dropDuplicates))
		if region != "" {
			params.Set("region", region)
		}
		for _, e := range enrichment {
			params.Add("enrichment", e)
		}

		outcome, err := client.Run(ctx, "/maps/search-v3", params)
		if err != nil {
			return APIErrorResult(mapsSearchName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatPlaces(displayQuery(queries), outcome.Records)), nil
	}
}
