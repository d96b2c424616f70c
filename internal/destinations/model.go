// README: Destination fact sheet model.
package destinations

// Facts is the read-only fact sheet the planner grounds its prompts on.
type Facts struct {
	Attractions []string `json:"attractions"`
	Restaurants []string `json:"restaurants"`
	Weather     string   `json:"weather"`
}
