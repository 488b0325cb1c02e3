package tools

import (
	"fmt"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

// Payload is the normalized tool output shape. A pending job is marked
// with status "processing" and a job id; a completed, empty result set is
// a valid outcome, not an error.
type Payload struct {
	Query      string           `json:"query"`
	Status     string           `json:"status"`
	Count      int              `json:"count"`
	TotalCount int              `json:"total_count,omitempty"`
	Truncated  bool             `json:"truncated,omitempty"`
	Notice     string           `json:"notice,omitempty"`
	JobID      string           `json:"job_id,omitempty"`
	Records    []map[string]any `json:"records,omitempty"`
}

const (
	payloadCompleted  = "completed"
	payloadProcessing = "processing"
)

// FormatPending marks an extraction job that is still running remotely.
func FormatPending(query, jobID string) Payload {
	return Payload{
		Query:  query,
		Status: payloadProcessing,
		JobID:  jobID,
		Notice: "extraction job still processing; retry later with the same parameters to pick up the result",
	}
}

func completedPayload(query string, records []map[string]any) Payload {
	return Payload{
		Query:   query,
		Status:  payloadCompleted,
		Count:   len(records),
		Records: records,
	}
}

// FormatPlaces flattens Google Maps place records: contact and enrichment
// sub-objects become top-level fields.
func FormatPlaces(query string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		place := map[string]any{
			"name":     str(rec, "name"),
			"address":  str(rec, "full_address"),
			"rating":   rec["rating"],
			"reviews":  rec["reviews"],
			"phone":    str(rec, "phone"),
			"site":     str(rec, "site"),
			"type":     str(rec, "type"),
			"place_id": str(rec, "place_id"),
		}
		if hours := str(rec, "working_hours_old_format"); hours != "" {
			place["hours"] = hours
		}
		if emails := flattenValues(rec, "emails"); len(emails) > 0 {
			place["emails"] = emails
		}
		out = append(out, place)
	}
	return completedPayload(query, out)
}

// FormatReviews shapes place review extractions. Review sets larger than
// maxInline are cut with an explicit truncation notice.
func FormatReviews(query string, records []outscraper.Record, maxInline int) Payload {
	payload := completedPayload(query, nil)
	for _, rec := range records {
		place := map[string]any{
			"name":          str(rec, "name"),
			"address":       str(rec, "address"),
			"rating":        rec["rating"],
			"total_reviews": rec["reviews"],
			"phone":         str(rec, "phone"),
			"site":          str(rec, "site"),
		}
		reviews := subRecords(rec, "reviews_data")
		total := len(reviews)
		if maxInline > 0 && total > maxInline {
			reviews = reviews[:maxInline]
			payload.Truncated = true
			payload.Notice = fmt.Sprintf("review set truncated to %d of %d entries", maxInline, total)
		}
		shaped := make([]map[string]any, 0, len(reviews))
		for _, rv := range reviews {
			shaped = append(shaped, map[string]any{
				"author": str(rv, "autor_name"),
				"rating": rv["review_rating"],
				"date":   str(rv, "review_datetime_utc"),
				"text":   truncateText(str(rv, "review_text"), 200),
				"likes":  rv["review_likes"],
			})
		}
		place["reviews_shown"] = len(shaped)
		place["reviews_total"] = total
		place["reviews"] = shaped
		payload.Records = append(payload.Records, place)
	}
	payload.Count = len(payload.Records)
	return payload
}

// FormatPhotos shapes place photo extractions.
func FormatPhotos(query string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		photos := subRecords(rec, "photos_data")
		shaped := make([]map[string]any, 0, len(photos))
		for _, ph := range photos {
			entry := map[string]any{"url": str(ph, "photo_url")}
			if ph["photo_width"] != nil {
				entry["width"] = ph["photo_width"]
				entry["height"] = ph["photo_height"]
			}
			shaped = append(shaped, entry)
		}
		out = append(out, map[string]any{
			"name":         str(rec, "name"),
			"address":      str(rec, "address"),
			"photos_count": rec["photos_count"],
			"photos":       shaped,
		})
	}
	return completedPayload(query, out)
}

// FormatDirections shapes route records with their step lists.
func FormatDirections(query, travelMode string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		route := map[string]any{
			"travel_mode": travelMode,
			"distance":    rec["distance"],
			"duration":    rec["duration"],
		}
		if rec["duration_in_traffic"] != nil {
			route["duration_in_traffic"] = rec["duration_in_traffic"]
		}
		steps := subRecords(rec, "steps")
		shaped := make([]map[string]any, 0, len(steps))
		for _, step := range steps {
			shaped = append(shaped, map[string]any{
				"instructions": str(step, "html_instructions"),
				"distance":     step["distance"],
				"duration":     step["duration"],
			})
		}
		route["steps"] = shaped
		out = append(out, route)
	}
	return completedPayload(query, out)
}

// FormatSearchHits shapes organic web search results.
func FormatSearchHits(query string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		hit := map[string]any{
			"title":   str(rec, "title"),
			"link":    str(rec, "link"),
			"snippet": str(rec, "snippet"),
		}
		if displayed := str(rec, "displayed_link"); displayed != "" {
			hit["displayed_link"] = displayed
		}
		out = append(out, hit)
	}
	return completedPayload(query, out)
}

// FormatNews shapes news search results.
func FormatNews(query string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		out = append(out, map[string]any{
			"title":   str(rec, "title"),
			"source":  str(rec, "source"),
			"date":    str(rec, "date"),
			"link":    str(rec, "link"),
			"snippet": str(rec, "snippet"),
		})
	}
	return completedPayload(query, out)
}

// FormatPlayReviews shapes app store reviews; each record is one review.
func FormatPlayReviews(query string, records []outscraper.Record, maxInline int) Payload {
	payload := completedPayload(query, nil)
	total := len(records)
	if maxInline > 0 && total > maxInline {
		records = records[:maxInline]
		payload.Truncated = true
		payload.TotalCount = total
		payload.Notice = fmt.Sprintf("review set truncated to %d of %d entries", maxInline, total)
	}
	for _, rec := range records {
		payload.Records = append(payload.Records, map[string]any{
			"author":  str(rec, "autor_name"),
			"rating":  rec["review_rating"],
			"date":    str(rec, "review_datetime_utc"),
			"version": str(rec, "version"),
			"text":    truncateText(str(rec, "review_text"), 250),
			"likes":   rec["review_likes"],
		})
	}
	payload.Count = len(payload.Records)
	return payload
}

// FormatContacts flattens domain contact records: emails, phones, social
// links, and site metadata all become top-level fields.
func FormatContacts(query string, records []outscraper.Record) Payload {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		contact := map[string]any{
			"domain": str(rec, "domain"),
			"emails": flattenValues(rec, "emails"),
			"phones": flattenValues(rec, "phones"),
		}
		if socials, ok := rec["socials"].(map[string]any); ok && len(socials) > 0 {
			contact["socials"] = socials
		}
		if site, ok := rec["site_data"].(map[string]any); ok {
			if title, ok := site["title"].(string); ok && title != "" {
				contact["site_title"] = title
			}
			if desc, ok := site["description"].(string); ok && desc != "" {
				contact["site_description"] = desc
			}
		}
		out = append(out, contact)
	}
	return completedPayload(query, out)
}

func str(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

// subRecords reads a nested array of objects from a record field.
func subRecords(rec map[string]any, key string) []map[string]any {
	raw, ok := rec[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// flattenValues extracts the "value" field from a nested collection like
// emails or phones: [{"value": "a@b.c", "sources": [...]}] -> ["a@b.c"].
func flattenValues(rec map[string]any, key string) []string {
	var out []string
	for _, item := range subRecords(rec, key) {
		if v := str(item, "value"); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func truncateText(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
