package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const mapsDirectionsName = "google_maps_directions"

var travelModes = []string{"driving", "walking", "bicycling", "transit"}

// MapsDirections builds the directions tool.
func MapsDirections(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        mapsDirectionsName,
			Description: "Get directions between locations, including distance, duration, and turn-by-turn steps.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Maps Directions"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Route query (e.g. 'from Times Square to Central Park', or coordinates)",
					},
					"travel_mode": map[string]any{
						"type":        "string",
						"description": "Mode of travel",
						"enum":        travelModes,
						"default":     "driving",
					},
					"departure_time": map[string]any{
						"type":        "integer",
						"description": "Unix timestamp for departure time (for transit and traffic estimates)",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Language code",
						"default":     "en",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupMaps,
		Execute: executeMapsDirections(client),
	}
}

func executeMapsDirections(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(mapsDirectionsName, err), nil
		}
		travelMode, err := ReadEnum(args, "travel_mode", "driving", travelModes...)
		if err != nil {
			return ValidationResult(mapsDirectionsName, err), nil
		}
		departureTime, departureSet, err := ReadPositiveInt(args, "departure_time")
		if err != nil {
			return ValidationResult(mapsDirectionsName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("travelMode", travelMode)
		params.Set("language", language)
		if departureSet {
			params.Set("departureTime", strconv.Itoa(departureTime))
		}

		outcome, err := client.Run(ctx, "/maps/directions", params)
		if err != nil {
			return APIErrorResult(mapsDirectionsName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatDirections(displayQuery(queries), travelMode, outcome.Records)), nil
	}
}
