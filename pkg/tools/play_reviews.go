package tools

import (
	"context"
	"net/url"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const playReviewsName = "google_play_reviews"

var playSortOrders = []string{"most_relevant", "newest", "rating"}

// PlayReviews builds the Google Play app review extraction tool.
func PlayReviews(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        playReviewsName,
			Description: "Extract Google Play Store app reviews with ratings, text, and app versions.",
			Annotations: &mcp.ToolAnnotations{Title: "Google Play Reviews"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "App package name (e.g. 'com.facebook.katana')",
					},
					"reviews_limit": map[string]any{
						"type":        "integer",
						"description": "Number of reviews to extract (max 1000)",
						"default":     100,
						"minimum":     1,
						"maximum":     1000,
					},
					"sort": map[string]any{
						"type":        "string",
						"description": "Sort order",
						"enum":        playSortOrders,
						"default":     "most_relevant",
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
		Group:   GroupSearch,
		Execute: executePlayReviews(client),
	}
}

func executePlayReviews(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(playReviewsName, err), nil
		}
		reviewsLimit, err := ReadBoundedInt(args, "reviews_limit", 100, 1, 1000)
		if err != nil {
			return ValidationResult(playReviewsName, err), nil
		}
		sort, err := ReadEnum(args, "sort", "most_relevant", playSortOrders...)
		if err != nil {
			return ValidationResult(playReviewsName, err), nil
		}
		language := ReadStringDefault(args, "language", "en")

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}
		params.Set("reviewsLimit", strconv.Itoa(reviewsLimit))
		params.Set("sort", sort)
		params.Set("language", language)

		outcome, err := client.Run(ctx, "/google-play-reviews", params)
		if err != nil {
			return APIErrorResult(playReviewsName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatPlayReviews(displayQuery(queries), outcome.Records, client.Config().MaxInlineReviews)), nil
	}
}
