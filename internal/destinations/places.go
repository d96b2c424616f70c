// README: Live fact provider backed by the Google Places text search API.
package destinations

import (
	"context"
	"fmt"
	"log"

	"googlemaps.github.io/maps"
)

// maxResults caps how many attraction/restaurant names go into a fact sheet;
// the planner only ever slices a handful per day.
const maxResults = 10

// PlacesProvider looks destinations up through Google Places. On any API
// failure it degrades to the static provider so /plan keeps working without
// quota or connectivity.
type PlacesProvider struct {
	client   *maps.Client
	fallback *StaticProvider
}

// NewPlacesProvider creates a provider with the given API key.
func NewPlacesProvider(apiKey string) (*PlacesProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesProvider{client: client, fallback: NewStaticProvider()}, nil
}

func (p *PlacesProvider) Lookup(ctx context.Context, destination string) (Facts, error) {
	attractions, err := p.textSearch(ctx, fmt.Sprintf("top attractions in %s", destination))
	if err != nil {
		log.Printf("places lookup failed for %q, using static facts: %v", destination, err)
		return p.fallback.Lookup(ctx, destination)
	}
	restaurants, err := p.textSearch(ctx, fmt.Sprintf("best restaurants in %s", destination))
	if err != nil {
		log.Printf("places restaurant lookup failed for %q: %v", destination, err)
		restaurants = []string{"Local cuisine"}
	}

	if len(attractions) == 0 {
		return p.fallback.Lookup(ctx, destination)
	}
	return Facts{
		Attractions: attractions,
		Restaurants: restaurants,
		// Places has no forecast data; keep the placeholder the static sheets use.
		Weather: "Check local forecast",
	}, nil
}

func (p *PlacesProvider) textSearch(ctx context.Context, query string) ([]string, error) {
	resp, err := p.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("text search %q: %w", query, err)
	}
	names := make([]string, 0, maxResults)
	for _, r := range resp.Results {
		if r.Name == "" {
			continue
		}
		names = append(names, r.Name)
		if len(names) == maxResults {
			break
		}
	}
	return names, nil
}
