// README: Itinerary synthesizer; sequential per-day generation with retry-once extraction.
package planner

import (
	"context"
	"fmt"

	"trek/internal/destinations"
	"trek/internal/llm"
)

// seedStride spreads per-day seeds apart so the retry seed of one day never
// collides with the primary seed of the next.
const seedStride = 7919

// Service synthesizes itineraries from a completion backend and a fact
// provider. It is stateless; each Plan call owns its own title accumulator,
// so concurrent requests are independent.
type Service struct {
	completer llm.Completer
	facts     destinations.Provider
}

func NewService(completer llm.Completer, facts destinations.Provider) *Service {
	return &Service{completer: completer, facts: facts}
}

// Result is the full outcome of one planning request.
type Result struct {
	Destination     string
	Days            int
	Travelers       int
	Itinerary       Itinerary
	EstimatedCost   int
	DestinationInfo destinations.Facts
}

// Plan produces a complete itinerary for req. Days are generated strictly in
// order: theme rotation, attraction slicing and title dedup all depend on the
// day index. Any failure aborts the whole plan; there is no partial result.
func (s *Service) Plan(ctx context.Context, req TripRequest) (Result, error) {
	req.applyDefaults()

	facts, err := s.facts.Lookup(ctx, req.Destination)
	if err != nil {
		return Result{}, fmt.Errorf("destination lookup: %w", err)
	}

	used := make(titleSet)
	days := make([]DayPlan, 0, req.Days)
	for d := 1; d <= req.Days; d++ {
		plan, err := s.generateDay(ctx, req, facts, d, used)
		if err != nil {
			return Result{}, fmt.Errorf("day %d: %w", d, err)
		}
		days = append(days, plan)
	}

	overview := fmt.Sprintf("%d-day trip to %s for %d traveler(s). Budget: %s. Interests: %s.",
		req.Days, req.Destination, req.Travelers, req.Budget, req.interestsLine())

	return Result{
		Destination:     req.Destination,
		Days:            req.Days,
		Travelers:       req.Travelers,
		Itinerary:       Itinerary{Text: overview, Structured: days},
		EstimatedCost:   EstimateCost(req.Days, req.Budget, req.Travelers),
		DestinationInfo: facts,
	}, nil
}

// generateDay runs one completion for the given day and coerces the reply
// into a DayPlan. A failed extraction gets exactly one retry with a stricter
// instruction and a shifted seed; a second failure propagates.
func (s *Service) generateDay(ctx context.Context, req TripRequest, facts destinations.Facts, day int, used titleSet) (DayPlan, error) {
	theme := themeFor(day)
	prompt := buildDayPrompt(req, day, theme, attractionSlice(facts.Attractions, day))

	opts := llm.Options{
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   250,
		Seed:        int64(day) * seedStride,
		JSONFormat:  true,
	}

	raw, err := s.completer.Generate(ctx, prompt, opts)
	if err != nil {
		return DayPlan{}, fmt.Errorf("completion: %w", err)
	}

	obj, err := ExtractJSONObject(raw)
	if err != nil {
		opts.Seed++
		raw, err2 := s.completer.Generate(ctx, prompt+retrySuffix, opts)
		if err2 != nil {
			return DayPlan{}, fmt.Errorf("completion retry: %w", err2)
		}
		obj, err = ExtractJSONObject(raw)
		if err != nil {
			return DayPlan{}, fmt.Errorf("model returned no usable JSON: %w", err)
		}
	}

	return normalizeDay(obj, day, theme, used), nil
}
