package planner

import "testing"

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		budget    string
		travelers int
		want      int
	}{
		{name: "midrange couple", days: 5, budget: "midrange", travelers: 2, want: 1500},
		{name: "luxury solo", days: 3, budget: "luxury", travelers: 1, want: 1200},
		{name: "unknown tier falls back to midrange", days: 2, budget: "unknown", travelers: 2, want: 600},
		{name: "economy", days: 4, budget: "economy", travelers: 2, want: 400},
		{name: "legacy budget alias", days: 4, budget: "budget", travelers: 2, want: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateCost(tt.days, tt.budget, tt.travelers); got != tt.want {
				t.Errorf("EstimateCost(%d, %q, %d) = %d, want %d", tt.days, tt.budget, tt.travelers, got, tt.want)
			}
		})
	}
}
