// README: Trip request and itinerary domain model.
package planner

import "strings"

// Budget tiers. "budget" is accepted on the wire as a legacy alias of economy.
const (
	BudgetEconomy  = "economy"
	BudgetMidrange = "midrange"
	BudgetLuxury   = "luxury"
)

const (
	defaultDays      = 5
	defaultTravelers = 2
)

// TripRequest is the inbound planning request. Defaults are applied once at
// the start of Plan; the request is not mutated afterwards.
type TripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	Travelers   int      `json:"travelers"`
}

func (r *TripRequest) applyDefaults() {
	if r.Days <= 0 {
		r.Days = defaultDays
	}
	if r.Travelers <= 0 {
		r.Travelers = defaultTravelers
	}
	r.Budget = strings.ToLower(strings.TrimSpace(r.Budget))
	if r.Budget == "" {
		r.Budget = BudgetMidrange
	}
}

// interestsLine renders the interests for prompts and the overview sentence.
func (r TripRequest) interestsLine() string {
	if len(r.Interests) == 0 {
		return "general sightseeing"
	}
	return strings.Join(r.Interests, ", ")
}

// Activity is one slot of a day plan. Titles are unique across the whole
// itinerary (case-insensitive), enforced by the normalizer.
type Activity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// DayPlan always carries exactly three activities in
// Morning/Afternoon/Evening order.
type DayPlan struct {
	Day           int        `json:"day"`
	Theme         string     `json:"theme"`
	EstimatedCost float64    `json:"estimated_cost"`
	Activities    []Activity `json:"activities"`
	Notes         string     `json:"notes"`
}

// Itinerary is the complete plan: a derived overview sentence plus one
// DayPlan per requested day.
type Itinerary struct {
	Text       string    `json:"text"`
	Structured []DayPlan `json:"structured"`
}

// slots is the canonical activity order within a day.
var slots = []string{"Morning", "Afternoon", "Evening"}

// themes rotate by (day-1) mod len(themes) across the itinerary.
var themes = []string{
	"Iconic Landmarks & City Introduction",
	"Food & Local Markets",
	"Culture, Museums & History",
	"Nature, Parks & Scenic Spots",
	"Neighborhood Walks & Hidden Gems",
	"Shopping & Modern City Life",
	"Nightlife & Entertainment",
	"Day Trip / Nearby Highlights",
	"Relaxation & Wellness",
	"Art, Architecture & Local Stories",
}

func themeFor(day int) string {
	return themes[(day-1)%len(themes)]
}
