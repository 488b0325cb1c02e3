package tools

import (
	"encoding/json"
	"testing"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

func TestFormatPlacesRoundTrip(t *testing.T) {
	records := []outscraper.Record{
		{
			"name":         "Memphis Seoul",
			"full_address": "569 Lincoln Pl, Brooklyn, NY",
			"rating":       4.5,
			"reviews":      120.0,
			"phone":        "+1 718-230-5700",
			"site":         "https://example.com",
			"type":         "Restaurant",
			"place_id":     "ChIJrc9T9fpYwokRdvjYRHT8nI4",
			"emails":       []any{map[string]any{"value": "hi@example.com"}},
		},
		{"name": "Second Place"},
		{"name": "Third Place"},
	}

	payload := FormatPlaces("memphis seoul brooklyn", records)
	if payload.Status != "completed" {
		t.Fatalf("expected completed status, got %q", payload.Status)
	}
	if payload.Count != len(records) {
		t.Fatalf("record count mismatch: got %d, want %d", payload.Count, len(records))
	}

	// Round-trip through JSON and confirm no records are dropped.
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Records) != len(records) {
		t.Fatalf("round-trip dropped records: got %d, want %d", len(decoded.Records), len(records))
	}

	first := decoded.Records[0]
	if first["address"] != "569 Lincoln Pl, Brooklyn, NY" {
		t.Fatalf("address not flattened: %v", first["address"])
	}
	emails, ok := first["emails"].([]any)
	if !ok || len(emails) != 1 || emails[0] != "hi@example.com" {
		t.Fatalf("enrichment emails not flattened: %v", first["emails"])
	}
}

func TestFormatReviewsTruncatesWithNotice(t *testing.T) {
	reviews := make([]any, 8)
	for i := range reviews {
		reviews[i] = map[string]any{
			"autor_name":    "Reviewer",
			"review_rating": 5.0,
			"review_text":   "great",
		}
	}
	records := []outscraper.Record{{
		"name":         "Place",
		"reviews_data": reviews,
	}}

	payload := FormatReviews("place", records, 5)
	if !payload.Truncated {
		t.Fatalf("expected truncated flag")
	}
	if payload.Notice == "" {
		t.Fatalf("expected truncation notice")
	}
	place := payload.Records[0]
	if place["reviews_shown"] != 5 {
		t.Fatalf("expected 5 reviews shown, got %v", place["reviews_shown"])
	}
	if place["reviews_total"] != 8 {
		t.Fatalf("expected total 8 preserved, got %v", place["reviews_total"])
	}
}

func TestFormatReviewsNoTruncationUnderCutoff(t *testing.T) {
	records := []outscraper.Record{{
		"name": "Place",
		"reviews_data": []any{
			map[string]any{"autor_name": "A", "review_text": "ok"},
		},
	}}

	payload := FormatReviews("place", records, 50)
	if payload.Truncated {
		t.Fatalf("unexpected truncation")
	}
	if payload.Records[0]["reviews_shown"] != 1 {
		t.Fatalf("expected 1 review shown, got %v", payload.Records[0]["reviews_shown"])
	}
}

func TestFormatReviewsTruncatesLongText(t *testing.T) {
	long := make([]rune, 300)
	for i := range long {
		long[i] = 'x'
	}
	records := []outscraper.Record{{
		"name": "Place",
		"reviews_data": []any{
			map[string]any{"autor_name": "A", "review_text": string(long)},
		},
	}}

	payload := FormatReviews("place", records, 50)
	reviews := payload.Records[0]["reviews"].([]map[string]any)
	text := reviews[0]["text"].(string)
	if len([]rune(text)) != 203 { // 200 runes + "..."
		t.Fatalf("expected 200-rune cut with ellipsis, got %d runes", len([]rune(text)))
	}
}

func TestFormatPendingDistinctFromEmptyCompleted(t *testing.T) {
	pending := FormatPending("query", "job-9")
	if pending.Status != "processing" {
		t.Fatalf("expected processing status, got %q", pending.Status)
	}
	if pending.JobID != "job-9" {
		t.Fatalf("expected job id carried, got %q", pending.JobID)
	}

	empty := FormatSearchHits("query", nil)
	if empty.Status != "completed" {
		t.Fatalf("empty result set must be completed, got %q", empty.Status)
	}
	if empty.Count != 0 {
		t.Fatalf("expected count 0, got %d", empty.Count)
	}
	if empty.Status == pending.Status {
		t.Fatalf("pending and empty-completed must be distinguishable")
	}
}

func TestFormatPlayReviewsTruncation(t *testing.T) {
	records := make([]outscraper.Record, 60)
	for i := range records {
		records[i] = outscraper.Record{"autor_name": "A", "review_rating": 4.0}
	}

	payload := FormatPlayReviews("com.example.app", records, 50)
	if payload.Count != 50 {
		t.Fatalf("expected 50 inline records, got %d", payload.Count)
	}
	if payload.TotalCount != 60 {
		t.Fatalf("expected total count 60, got %d", payload.TotalCount)
	}
	if !payload.Truncated || payload.Notice == "" {
		t.Fatalf("expected truncation flag and notice")
	}
}

func TestFormatContactsFlattens(t *testing.T) {
	records := []outscraper.Record{{
		"domain": "example.com",
		"emails": []any{
			map[string]any{"value": "a@example.com", "sources": []any{"p1", "p2"}},
		},
		"phones":  []any{map[string]any{"value": "+1 555 0100"}},
		"socials": map[string]any{"twitter": "https://twitter.com/example"},
		"site_data": map[string]any{
			"title":       "Example",
			"description": "An example site",
		},
	}}

	payload := FormatContacts("example.com", records)
	contact := payload.Records[0]
	emails := contact["emails"].([]string)
	if len(emails) != 1 || emails[0] != "a@example.com" {
		t.Fatalf("emails not flattened: %v", contact["emails"])
	}
	if contact["site_title"] != "Example" {
		t.Fatalf("site metadata not flattened: %v", contact["site_title"])
	}
	if contact["site_description"] != "An example site" {
		t.Fatalf("site description not flattened: %v", contact["site_description"])
	}
}

func TestFormatDirectionsSteps(t *testing.T) {
	records := []outscraper.Record{{
		"distance": "5.2 km",
		"duration": "12 min",
		"steps": []any{
			map[string]any{"html_instructions": "Head north", "distance": "200 m", "duration": "1 min"},
			map[string]any{"html_instructions": "Turn right", "distance": "5 km", "duration": "11 min"},
		},
	}}

	payload := FormatDirections("from A to B", "driving", records)
	route := payload.Records[0]
	if route["travel_mode"] != "driving" {
		t.Fatalf("expected travel mode in route, got %v", route["travel_mode"])
	}
	steps := route["steps"].([]map[string]any)
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0]["instructions"] != "Head north" {
		t.Fatalf("unexpected step: %v", steps[0])
	}
}
