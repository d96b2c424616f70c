// README: Normalizer coercing loose model output into a valid DayPlan, with cross-day title dedup.
package planner

import (
	"fmt"
	"strings"
)

const (
	defaultDayCost      = 150
	defaultNotes        = "Start early to avoid crowds."
	defaultActivityDesc = "Enjoy a local experience."
)

// titleSet tracks lowercase activity titles used so far in one itinerary.
// It is owned by a single Plan call; nothing is shared across requests.
type titleSet map[string]struct{}

func (s titleSet) has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s titleSet) add(key string) {
	s[key] = struct{}{}
}

// normalizeDay turns the untrusted parsed object into a structurally valid
// DayPlan: defaults for missing scalar fields, exactly 3 activities padded or
// truncated into Morning/Afternoon/Evening order, and globally unique titles.
//
// Dedup is single-rewrite: a colliding title is prefixed with the day theme
// once and the rewritten key is recorded without re-checking. A model that
// echoes an already-rewritten title can therefore still collide; that bounded
// effort is deliberate.
func normalizeDay(obj map[string]any, dayIndex int, theme string, used titleSet) DayPlan {
	plan := DayPlan{
		Day:           intOr(obj, "day", dayIndex),
		Theme:         stringOr(obj, "theme", theme),
		EstimatedCost: nonNegative(floatOr(obj, "estimated_cost", defaultDayCost)),
		Notes:         stringOr(obj, "notes", defaultNotes),
	}

	rawActs, _ := obj["activities"].([]any)
	if len(rawActs) > len(slots) {
		rawActs = rawActs[:len(slots)]
	}

	plan.Activities = make([]Activity, len(slots))
	for i := range slots {
		var m map[string]any
		if i < len(rawActs) {
			// Non-object entries degrade to an empty map and get placeholders.
			m, _ = rawActs[i].(map[string]any)
		}

		fallbackTitle := fmt.Sprintf("Day %d %s Activity", dayIndex, slots[i])
		title := strings.TrimSpace(nonEmptyStringOr(m, "title", fallbackTitle))

		key := strings.ToLower(title)
		if used.has(key) {
			title = fmt.Sprintf("%s — %s", theme, title)
			key = strings.ToLower(title)
		}
		used.add(key)

		plan.Activities[i] = Activity{
			Time:        nonEmptyStringOr(m, "time", slots[i]),
			Title:       title,
			Description: nonEmptyStringOr(m, "description", defaultActivityDesc),
			Cost:        nonNegative(floatOr(m, "cost", 0)),
		}
	}
	return plan
}

func stringOr(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func nonEmptyStringOr(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func floatOr(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return def
}

func intOr(m map[string]any, key string, def int) int {
	if v, ok := m[key].(float64); ok {
		return int(v)
	}
	return def
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
