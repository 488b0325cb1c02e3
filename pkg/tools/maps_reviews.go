package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const mapsReviewsName = "google_maps_reviews"

var reviewSortOrders = []string{"most_relevant", "newest", "highest_rating", "lowest_rating"}

// MapsReviews builds the Google Maps review extraction tool. Large review
// requests are deferred by the API and polled as a job.
func MapsReviews(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        mapsReviewsName,
			Description: "Extract reviews from Google Maps places. Accepts a place query, place id, or business name. A reviews_limit of 0 requests all reviews as a deferred job.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Maps Reviews"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Place query, place id, or business name (e.g. 'ChIJrc9T9fpYwokRdvjYRHT8nI4', 'Memphis Seoul brooklyn usa')",
					},
					"reviews_limit": map[string]any{
						"type":        "integer",
						"description": "Number of reviews to extract per place (0 for unlimited)",
						"default":     10,
						"minimum":     0,
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Number of places to process (max 500)",
						"default":     1,
						"minimum":     1,
						"maximum":     500,
					},
					"sort": map[string]any{
						"type":        "string",
						"description": "Sort order for reviews",
						"enum":        reviewSortOrders,
						"default":     "most_relevant",
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
					"cutoff": map[string]any{
						"type":        "integer",
						"description": "Unix timestamp; only reviews newer than this are returned",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupMaps,
		Execute: executeMapsReviews(client),
	}
}

func executeMapsReviews(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		var reviewsLimitSet bool
		reviewsLimit, err := ReadInt(args, "reviews_limit", &reviewsLimitSet)
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		if !reviewsLimitSet {
			reviewsLimit = 10
		} else if reviewsLimit < 0 {
			return ValidationResult(mapsReviewsName, &ValidationError{Field: "reviews_limit", Constraint: "must be zero or positive"}), nil
		}
		limit, err := ReadBoundedInt(args, "limit", 1, 1, 500)
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		sort, err := ReadEnum(args, "sort", "most_relevant", reviewSortOrders...)
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		region, err := ReadRegion(args)
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		cutoff, cutoffSet, err := ReadPositiveInt(args, "cutoff")
		if err != nil {
			return ValidationResult(mapsReviewsName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")

		cfg := client.Config()
		async := reviewsLimit == 0 ||
			reviewsLimit >= cfg.AsyncReviewsLimit ||
			len(queries) > cfg.AsyncQueryThreshold

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("reviewsLimit", strconv.Itoa(reviewsLimit))
		params.Set("limit", strconv.Itoa(limit))
		params.Set("sort", sort)
		params.Set("language", language)
		params.Set("async", strconv.FormatBool(async))
		if region != "" {
			params.Set("region", region)
		}
		if cutoffSet {
			params.Set("cutoff", strconv.Itoa(cutoff))
		}

		outcome, err := client.Run(ctx, "/maps/reviews-v3", params)
		if err != nil {
			return APIErrorResult(mapsReviewsName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatReviews(displayQuery(queries), outcome.Records, cfg.MaxInlineReviews)), nil
	}
}
