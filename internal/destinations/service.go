// README: Fact provider contract and the built-in static provider.
package destinations

import (
	"context"
	"fmt"
	"strings"
)

// Provider resolves a destination name to a fact sheet. Implementations must
// fall back to a generic sheet rather than fail on unknown destinations.
type Provider interface {
	Lookup(ctx context.Context, destination string) (Facts, error)
}

// staticFacts holds the curated fact sheets for well-known destinations.
// Lookup is case-insensitive on the destination name.
var staticFacts = map[string]Facts{
	"paris": {
		Attractions: []string{"Eiffel Tower", "Louvre Museum", "Notre Dame"},
		Restaurants: []string{"Le Jules Verne", "Café de Flore"},
		Weather:     "Sunny, 22°C",
	},
	"tokyo": {
		Attractions: []string{"Shibuya Crossing", "Tokyo Tower", "Senso-ji"},
		Restaurants: []string{"Sukiyabashi Jiro", "Ichiran Ramen"},
		Weather:     "Cloudy, 18°C",
	},
}

// StaticProvider serves the built-in fact sheets and a generic placeholder for
// everything else. It never returns an error.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Lookup(_ context.Context, destination string) (Facts, error) {
	if f, ok := staticFacts[strings.ToLower(strings.TrimSpace(destination))]; ok {
		return f, nil
	}
	return genericFacts(destination), nil
}

// genericFacts is the placeholder sheet for destinations we know nothing about.
func genericFacts(destination string) Facts {
	return Facts{
		Attractions: []string{fmt.Sprintf("Top sights in %s", destination)},
		Restaurants: []string{"Local cuisine"},
		Weather:     "Check local forecast",
	}
}
