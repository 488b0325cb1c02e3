package tools

import (
	"github.com/outscraper/outscraper-mcp/pkg/outscraper"
)

// DefaultRegistry returns a registry with all eight extraction tools
// bound to the given client.
func DefaultRegistry(client *outscraper.Client) *Registry {
	registry := NewRegistry()
	registry.Register(MapsSearch(client))
	registry.Register(MapsReviews(client))
	registry.Register(MapsPhotos(client))
	registry.Register(MapsDirections(client))
	registry.Register(GoogleSearch(client))
	registry.Register(GoogleNews(client))
	registry.Register(PlayReviews(client))
	registry.Register(Contacts(client))
	return registry
}
