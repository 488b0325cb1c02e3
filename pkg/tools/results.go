package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

// JSONResult creates a structured JSON result from any payload.
func JSONResult(payload any) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: mustJSON(payload)}},
		Details: toMap(payload),
	}
}

// TextResult creates a simple text result.
func TextResult(text string) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult creates an error result. Tools return structured errors
// rather than propagating panics or raw API failures.
func ErrorResult(toolName, message string) *Result {
	return &Result{
		Status:  ResultError,
		Content: []ContentBlock{{Type: "text", Text: message}},
		Details: map[string]any{"tool": toolName, "error": message},
		Error:   message,
	}
}

// ValidationResult reports a rejected parameter. The message names the
// offending field and the violated constraint.
func ValidationResult(toolName string, err error) *Result {
	return ErrorResult(toolName, "validation failed: "+err.Error())
}

// APIErrorResult maps the client error taxonomy onto caller-facing
// messages. Transient failures are labelled retryable; remote rejections
// and configuration errors are not.
func APIErrorResult(toolName string, err error) *Result {
	if errors.Is(err, outscraper.ErrMissingAPIKey) {
		return ErrorResult(toolName, "configuration error: "+err.Error())
	}
	var remote *outscraper.RemoteError
	if errors.As(err, &remote) {
		return ErrorResult(toolName, fmt.Sprintf("rejected by Outscraper API (http %d): %s", remote.StatusCode, remote.Body))
	}
	var transient *outscraper.TransientError
	if errors.As(err, &transient) {
		return ErrorResult(toolName, fmt.Sprintf("transient failure, retry later: %v", transient))
	}
	var failed *outscraper.JobFailedError
	if errors.As(err, &failed) {
		return ErrorResult(toolName, fmt.Sprintf("extraction job %s failed (status %s)", failed.JobID, failed.Status))
	}
	return ErrorResult(toolName, err.Error())
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal: %s"}`, err.Error())
	}
	return string(data)
}

func toMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}
