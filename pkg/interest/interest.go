// Package interest provides primitives for converting a balance and an
// annual percentage rate into a per-period interest amount.
//
// Every function degrades to a zero-interest result on degenerate input
// (non-positive balance, non-positive rate, empty balance history) rather
// than returning an error. The engine feeds financial displays, not a
// ledger of record, so a no-op is always an acceptable answer.
package interest

import (
	"github.com/debtwise/payoff-engine/pkg/constants"
)

// Monthly returns one month of interest on a balance at the given annual
// percentage rate (18.99 means 18.99%/year).
func Monthly(balance, apr float64) float64 {
	if balance <= 0 || apr <= 0 {
		return 0
	}
	return balance * (apr / constants.PercentageMultiplier) / constants.MonthsPerYear
}

// Daily returns one day of interest on a balance at the given annual
// percentage rate.
func Daily(balance, apr float64) float64 {
	if balance <= 0 || apr <= 0 {
		return 0
	}
	return balance * (apr / constants.PercentageMultiplier) / constants.DaysPerYear
}

// AverageDailyBalance returns the interest accrued over daysInPeriod days
// using the average-daily-balance method: the arithmetic mean of the
// supplied daily balances times the daily rate times the period length.
func AverageDailyBalance(balances []float64, apr float64, daysInPeriod int) float64 {
	if len(balances) == 0 || apr <= 0 || daysInPeriod <= 0 {
		return 0
	}

	sum := 0.0
	for _, balance := range balances {
		sum += balance
	}
	average := sum / float64(len(balances))

	dailyRate := (apr / constants.PercentageMultiplier) / constants.DaysPerYear
	return average * dailyRate * float64(daysInPeriod)
}
