package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const mapsPhotosName = "google_maps_photos"

// MapsPhotos builds the Google Maps photo extraction tool.
func MapsPhotos(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        mapsPhotosName,
			Description: "Extract photos from Google Maps places with URLs and dimensions.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Maps Photos"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Place query, place id, or business name",
					},
					"photos_limit": map[string]any{
						"type":        "integer",
						"description": "Number of photos to extract per place (max 500)",
						"default":     20,
						"minimum":     1,
						"maximum":     500,
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of places to process (max 500)",
						"default":     1,
						"minimum":     1,
						"maximum":     500,
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
		Group:   GroupMaps,
		Execute: executeMapsPhotos(client),
	}
}

func executeMapsPhotos(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(mapsPhotosName, err), nil
		}
		photosLimit, err := ReadBoundedInt(args, "photos_limit", 20, 1, 500)
		if err != nil {
			return ValidationResult(mapsPhotosName, err), nil
		}
		limit, err := ReadBoundedInt(args, "limit", 1, 1, 500)
		if err != nil {
			return ValidationResult(mapsPhotosName, err), nil
		}
		region, err := ReadRegion(args)
		if err != nil {
			return ValidationResult(mapsPhotosName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("photosLimit", strconv.Itoa(photosLimit))
		params.Set("limit", strconv.Itoa(limit))
		params.Set("language", language)
		if region != "" {
			params.Set("region", region)
		}

		outcome, err := client.Run(ctx, "/maps/photos", params)
		if err != nil {
			return APIErrorResult(mapsPhotosName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatPhotos(displayQuery(queries), outcome.Records)), nil
	}
}
