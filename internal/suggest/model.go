// README: Suggestion payload types.
package suggest

// DestinationSuggestion is one country recommendation for an interest.
type DestinationSuggestion struct {
	Country string `json:"country"`
	Reason  string `json:"reason"`
	Flag    string `json:"flag"`
}

// DistrictSuggestion is one area recommendation within a country.
type DistrictSuggestion struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImageKeyword string `json:"image_keyword"`
}
