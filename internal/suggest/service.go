// README: LLM-backed destination and district suggestions.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"trek/internal/llm"
	"trek/internal/planner"
)

const suggestionCount = 6

// Service generates travel suggestions through the completion backend, using
// the same tolerant extraction and retry-once policy as the planner.
type Service struct {
	completer llm.Completer
}

func NewService(completer llm.Completer) *Service {
	return &Service{completer: completer}
}

// Destinations suggests countries matching an interest.
func (s *Service) Destinations(ctx context.Context, interest string) ([]DestinationSuggestion, error) {
	prompt := fmt.Sprintf(`You are a travel expert.

Suggest %d countries for a traveler interested in: %s.

STRICT RULES:
- Output ONLY a JSON object (no markdown, no extra text).
- "flag" is the country's flag emoji.
- "reason" is one concrete sentence tied to the interest.

Return JSON EXACTLY in this format:
{
  "suggestions": [
    {"country":"Japan","reason":"Why it fits the interest","flag":"🇯🇵"}
  ]
}`, suggestionCount, interest)

	obj, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	all, err := decodeSuggestions[DestinationSuggestion](obj)
	if err != nil {
		return nil, err
	}
	kept := all[:0]
	for _, sg := range all {
		if strings.TrimSpace(sg.Country) == "" {
			continue
		}
		kept = append(kept, sg)
	}
	return kept, nil
}

// Districts suggests areas to stay in within a country, matching an interest.
func (s *Service) Districts(ctx context.Context, country, interest string) ([]DistrictSuggestion, error) {
	prompt := fmt.Sprintf(`You are a travel expert.

Suggest %d districts, cities or areas in %s for a traveler interested in: %s.

STRICT RULES:
- Output ONLY a JSON object (no markdown, no extra text).
- "image_keyword" is a short phrase suitable for an image search.

Return JSON EXACTLY in this format:
{
  "suggestions": [
    {"name":"Shibuya","description":"Why it fits the interest","image_keyword":"shibuya crossing night"}
  ]
}`, suggestionCount, country, interest)

	obj, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	all, err := decodeSuggestions[DistrictSuggestion](obj)
	if err != nil {
		return nil, err
	}
	kept := all[:0]
	for _, sg := range all {
		if strings.TrimSpace(sg.Name) == "" {
			continue
		}
		kept = append(kept, sg)
	}
	return kept, nil
}

// generate runs one completion and extracts the JSON object, retrying once
// with a stricter instruction when extraction fails.
func (s *Service) generate(ctx context.Context, prompt string) (map[string]any, error) {
	opts := llm.Options{
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   600,
		JSONFormat:  true,
	}

	raw, err := s.completer.Generate(ctx, prompt, opts)
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	obj, err := planner.ExtractJSONObject(raw)
	if err != nil {
		raw, err2 := s.completer.Generate(ctx, prompt+"\n\nIMPORTANT: Return ONLY JSON. Do not add any commentary.", opts)
		if err2 != nil {
			return nil, fmt.Errorf("completion retry: %w", err2)
		}
		obj, err = planner.ExtractJSONObject(raw)
		if err != nil {
			return nil, fmt.Errorf("model returned no usable JSON: %w", err)
		}
	}
	return obj, nil
}

// decodeSuggestions re-encodes each entry of the loose "suggestions" array
// into T, skipping entries that don't fit the schema at all.
func decodeSuggestions[T any](obj map[string]any) ([]T, error) {
	raw, ok := obj["suggestions"].([]any)
	if !ok {
		return nil, fmt.Errorf("model output missing suggestions array")
	}
	out := make([]T, 0, len(raw))
	for _, e := range raw {
		buf, err := json.Marshal(e)
		if err != nil {
			continue
		}
		var one T
		if err := json.Unmarshal(buf, &one); err != nil {
			continue
		}
		out = append(out, one)
	}
	return out, nil
}
