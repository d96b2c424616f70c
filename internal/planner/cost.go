// README: Fixed-rate trip cost estimate, independent of model-reported day costs.
package planner

// dailyRates is the per-day-per-traveler rate table. "budget" is the legacy
// wire alias for economy.
var dailyRates = map[string]int{
	BudgetEconomy:  50,
	"budget":       50,
	BudgetMidrange: 150,
	BudgetLuxury:   400,
}

// EstimateCost computes rate * days * travelers. Unrecognized tiers use the
// midrange rate. The result is never reconciled with the model-generated
// per-day costs; both are surfaced to the caller independently.
func EstimateCost(days int, budget string, travelers int) int {
	rate, ok := dailyRates[budget]
	if !ok {
		rate = dailyRates[BudgetMidrange]
	}
	return rate * days * travelers
}
