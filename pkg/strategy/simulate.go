package strategy

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/debtwise/payoff-engine/pkg/constants"
	"github.com/debtwise/payoff-engine/pkg/interest"
	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// Simulator runs multi-account payoff simulations.
type Simulator struct {
	logger *zap.Logger
}

// NewSimulator creates a new simulator instance.
func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Simulate pays down the account set month by month under one policy and
// reports the total interest accrued and the months until every balance
// reached zero. The month counter caps at constants.MaxSimulationMonths
// when the budget never clears the debt; callers detect non-convergence by
// comparing against the cap, not against the projector's 9999 sentinel.
//
// Each month's payment plan is computed from the balances before that
// month's interest accrues, and minimum payments stay fixed at their
// original values throughout the run.
func (s *Simulator) Simulate(accounts []AccountDebt, totalBudget float64, policy Policy) StrategyResult {
	working := make([]AccountDebt, len(accounts))
	copy(working, accounts)

	totalInterest := 0.0
	months := 0

	for months < constants.MaxSimulationMonths {
		if allPaid(working) {
			break
		}

		plan := Distribute(working, totalBudget, policy)

		for i := range working {
			if working[i].Balance <= 0 {
				continue
			}
			accrued := interest.Monthly(working[i].Balance, working[i].AnnualRate)
			working[i].Balance += accrued
			totalInterest += accrued

			working[i].Balance -= plan[working[i].AccountID]
			if working[i].Balance < 0 {
				working[i].Balance = 0
			}
		}

		months++
	}

	if months == constants.MaxSimulationMonths && !allPaid(working) {
		s.logger.Debug(fmt.Sprintf("%s simulation hit the %d month cap with debt remaining",
			policy, constants.MaxSimulationMonths),
			zap.String("op", "strategy.Simulate"),
		)
	}

	return StrategyResult{
		TotalInterest:  mathutil.Round(totalInterest),
		MonthsToPayoff: months,
	}
}

func allPaid(accounts []AccountDebt) bool {
	for _, account := range accounts {
		if account.Balance > 0 {
			return false
		}
	}
	return true
}
