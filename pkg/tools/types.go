// Package tools exposes the Outscraper extraction operations as MCP
// tools: per-tool parameter validation, dispatch to the API client, and
// response shaping for a language-model consumer.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool with its execution logic.
type Tool struct {
	mcp.Tool        // Name, Description, InputSchema
	Group    string // group:maps, group:search, group:contacts
	Execute  func(ctx context.Context, args map[string]any) (*Result, error)
}

// Tool groups.
const (
	GroupMaps     = "group:maps"
	GroupSearch   = "group:search"
	GroupContacts = "group:contacts"
)

// Result standardizes tool output.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Details map[string]any `json:"details,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is one piece of result content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed successfully.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the tool failed with an error.
	ResultError ResultStatus = "error"
)

// IsError returns true if the result indicates an error.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}

// Text returns the first text block, or the error message on error.
func (r *Result) Text() string {
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}
