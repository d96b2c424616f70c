// README: Prompt construction for per-day itinerary generation.
package planner

import (
	"fmt"
	"strings"
)

// retrySuffix is appended to the prompt on the single retry after a failed
// extraction.
const retrySuffix = "\n\nIMPORTANT: Return ONLY JSON. Do not add any commentary."

// buildDayPrompt composes the generation request for one day. Title
// uniqueness is stated here as an instruction, but enforcement happens in the
// normalizer; models routinely ignore the rule.
func buildDayPrompt(req TripRequest, day int, theme string, attractions []string) string {
	return fmt.Sprintf(`You are a professional travel planner.

Create ONLY Day %d of the itinerary for %s.
Theme: %s

STRICT RULES:
- Output ONLY a JSON object (no markdown, no extra text).
- Exactly 3 activities: Morning, Afternoon, Evening.
- Activity titles must be unique and not repeated from previous days.
- Avoid generic text like "Explore the city". Be concrete.

Trip details:
- Budget: %s
- Interests: %s
- Travelers: %d

Suggested attractions today (use some): %s

Return JSON EXACTLY in this format:
{
  "day": %d,
  "theme": "%s",
  "estimated_cost": 150,
  "activities": [
    {"time":"Morning","title":"Specific activity","description":"Concrete detail","cost":40},
    {"time":"Afternoon","title":"Different activity","description":"Different experience","cost":50},
    {"time":"Evening","title":"Another unique activity","description":"No repetition allowed","cost":30}
  ],
  "notes":"Unique local tip"
}`,
		day, req.Destination, theme,
		req.Budget, req.interestsLine(), req.Travelers,
		strings.Join(attractions, ", "),
		day, theme)
}

// attractionSlice picks a rotating window of up to 4 attraction hints for the
// given day. When the window starts past the end of the list the first 4
// attractions are reused instead.
func attractionSlice(attractions []string, day int) []string {
	low := (day - 1) * 2
	if low >= len(attractions) {
		if len(attractions) > 4 {
			return attractions[:4]
		}
		return attractions
	}
	high := low + 4
	if high > len(attractions) {
		high = len(attractions)
	}
	return attractions[low:high]
}
