package strategy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/debtwise/payoff-engine/pkg/constants"
	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// PolicyComparison holds the results of simulating the same account set
// and budget under both policies.
type PolicyComparison struct {
	Avalanche     StrategyResult
	Snowball      StrategyResult
	Recommended   Policy
	InterestSaved float64
	MonthsSaved   int
}

// ComparePolicies simulates both policies and recommends one. Avalanche is
// recommended only when it beats snowball by more than
// constants.RecommendationThreshold in total interest; at or below that
// margin the behaviorally easier snowball wins.
func (s *Simulator) ComparePolicies(accounts []AccountDebt, totalBudget float64) PolicyComparison {
	avalanche := s.Simulate(accounts, totalBudget, Avalanche)
	snowball := s.Simulate(accounts, totalBudget, Snowball)

	comparison := PolicyComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: mathutil.Round(mathutil.Max(0, snowball.TotalInterest-avalanche.TotalInterest)),
		MonthsSaved:   snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
	}

	if snowball.TotalInterest-avalanche.TotalInterest > constants.RecommendationThreshold {
		comparison.Recommended = Avalanche
	} else {
		comparison.Recommended = Snowball
	}

	s.logger.Debug(fmt.Sprintf("recommending %s: avalanche interest %.2f over %d months, snowball interest %.2f over %d months",
		comparison.Recommended, avalanche.TotalInterest, avalanche.MonthsToPayoff,
		snowball.TotalInterest, snowball.MonthsToPayoff),
		zap.String("op", "strategy.ComparePolicies"),
	)

	return comparison
}
