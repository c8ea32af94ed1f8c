// Package strategy distributes a monthly budget across multiple revolving
// balances and simulates the payoff of the whole account set under the
// avalanche and snowball policies.
//
// A simulation that fails to clear every balance reports a month counter
// capped at constants.MaxSimulationMonths; the cap value itself is the
// non-convergence signal for this package. The single-balance projector in
// pkg/payoff uses the separate constants.NonConvergentMonths sentinel, and
// the two conventions are deliberately not unified.
package strategy

// Policy selects the account ordering used when routing surplus funds.
type Policy string

const (
	// Avalanche prioritizes the highest annual rate.
	Avalanche Policy = "avalanche"

	// Snowball prioritizes the lowest balance.
	Snowball Policy = "snowball"
)

// AccountDebt describes one revolving balance. The simulator works on its
// own copies; callers' values are never mutated.
type AccountDebt struct {
	AccountID      string
	Balance        float64
	AnnualRate     float64
	MinimumPayment float64
}

// PaymentPlan maps each account ID to the payment assigned to it for one
// simulated month. Keys are exactly the account IDs present in the input
// account set; values sum to at most the monthly budget.
type PaymentPlan map[string]float64

// StrategyResult is the output of one full multi-account simulation run
// under one policy.
type StrategyResult struct {
	TotalInterest  float64
	MonthsToPayoff int
}
