package tools

import (
	"context"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

const contactsName = "emails_and_contacts"

// Contacts builds the domain contact extraction tool.
func Contacts(client *outscraper.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        contactsName,
			Description: "Extract emails, phone numbers, and social links from a domain.",
			Annotations: &mcp.ToolAnnotations{Title: "Emails & Contacts"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Domain name (e.g. 'outscraper.com')",
					},
				},
				"required": []string{"query"},
			},
		},
		Group:   GroupContacts,
		Execute: executeContacts(client),
	}
}

func executeContacts(client *outscraper.Client) func(ctx context.Context, args map[string]any) (*Result, error) {
	return func(ctx context.Context, args map[string]any) (*Result, error) {
		queries, err := ReadQueries(args, "query")
		if err != nil {
			return ValidationResult(contactsName, err), nil
		}

		params := url.Values{}
		for _, q := range queries {
			params.Add("query", q)
		}

		outcome, err := client.Run(ctx, "/emails-and-contacts", params)
		if err != nil {
			return APIErrorResult(contactsName, err), nil
		}
		if outcome.Status == outscraper.StatusPending {
			return JSONResult(FormatPending(displayQuery(queries), outcome.JobID)), nil
		}
		return JSONResult(FormatContacts(displayQuery(queries), outcome.Records)), nil
	}
}
