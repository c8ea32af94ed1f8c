package payoff

import (
	"math"

	"github.com/debtwise/payoff-engine/pkg/constants"
	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// PaymentForTerm returns the fixed monthly payment that clears a balance
// in exactly targetMonths using the closed-form annuity formula. Returns 0
// when there is nothing to solve (non-positive balance or term). Results
// round up to the next cent: underpaying by a cent would leave residual
// debt at the end of the term.
func PaymentForTerm(balance, apr float64, targetMonths int) float64 {
	if balance <= 0 || targetMonths <= 0 {
		return 0
	}

	// Rates at or below zero accrue no interest, so the balance divides
	// evenly across the term; the annuity formula would divide by zero.
	if apr <= 0 {
		return mathutil.CeilCents(balance / float64(targetMonths))
	}

	monthlyRate := (apr / constants.PercentageMultiplier) / constants.MonthsPerYear
	payment := (monthlyRate * balance) / (1 - math.Pow(1+monthlyRate, -float64(targetMonths)))
	return mathutil.CeilCents(payment)
}
