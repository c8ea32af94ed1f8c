// Package payoff projects revolving balances forward under compound
// interest: when a fixed monthly payment clears a balance, what payment
// clears it in a target number of months, and what an alternative payment
// would save.
//
// Non-convergence is signaled by Projection.MonthsToPayoff ==
// constants.NonConvergentMonths. This sentinel belongs to this package
// only; the multi-account simulator in pkg/strategy signals
// non-convergence by capping its month counter at
// constants.MaxSimulationMonths instead.
package payoff

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/debtwise/payoff-engine/pkg/constants"
	"github.com/debtwise/payoff-engine/pkg/interest"
	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// Outcome is the tagged result of amortizing one balance with a fixed
// payment. Converged is false when the plan never reaches zero within
// the horizon; in that case the totals are zero and must not be read as
// real figures.
type Outcome struct {
	Converged     bool
	Months        int
	TotalInterest float64
	TotalPayments float64
}

// Projection holds the result of projecting a single balance to payoff.
// PayoffDate is nil when the plan is non-convergent.
type Projection struct {
	StartingBalance float64
	MonthlyPayment  float64
	AnnualRate      float64
	PayoffDate      *time.Time
	TotalInterest   float64
	TotalPayments   float64
	MonthsToPayoff  int
	CalculatedAt    time.Time
}

// NonConvergent reports whether the projection hit the sentinel.
func (p Projection) NonConvergent() bool {
	return p.MonthsToPayoff == constants.NonConvergentMonths
}

// Projector computes payoff projections for single balances.
type Projector struct {
	logger *zap.Logger
}

// NewProjector creates a new projector instance.
func NewProjector(logger *zap.Logger) *Projector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Projector{logger: logger}
}

// Project amortizes a balance to zero under a fixed monthly payment and
// reports when it pays off and what it costs. The payoff date is measured
// from the current wall clock.
func (p *Projector) Project(balance, apr, monthlyPayment float64) Projection {
	return p.ProjectAt(time.Now(), balance, apr, monthlyPayment)
}

// ProjectAt is Project with a fixed reference time, for deterministic
// payoff dates.
func (p *Projector) ProjectAt(now time.Time, balance, apr, monthlyPayment float64) Projection {
	projection := Projection{
		StartingBalance: balance,
		MonthlyPayment:  monthlyPayment,
		AnnualRate:      apr,
		CalculatedAt:    now,
	}

	if balance <= 0 {
		// Nothing owed; already paid off as of now.
		payoffDate := now
		projection.PayoffDate = &payoffDate
		return projection
	}

	if monthlyPayment <= 0 {
		p.logger.Debug(fmt.Sprintf("no projection possible for balance %.2f with payment %.2f",
			balance, monthlyPayment),
			zap.String("op", "payoff.ProjectAt"),
		)
		projection.MonthsToPayoff = constants.NonConvergentMonths
		return projection
	}

	outcome := Amortize(balance, apr, monthlyPayment)
	if !outcome.Converged {
		p.logger.Debug(fmt.Sprintf("payment %.2f never clears balance %.2f at %.2f%% within %d months",
			monthlyPayment, balance, apr, constants.MaxProjectionMonths),
			zap.String("op", "payoff.ProjectAt"),
		)
		projection.MonthsToPayoff = constants.NonConvergentMonths
		return projection
	}

	projection.MonthsToPayoff = outcome.Months
	projection.TotalInterest = mathutil.Round(outcome.TotalInterest)
	projection.TotalPayments = mathutil.Round(outcome.TotalPayments)
	payoffDate := now.AddDate(0, outcome.Months, 0)
	projection.PayoffDate = &payoffDate
	return projection
}

// Amortize iterates a balance month by month under a fixed payment and
// returns the tagged outcome. The negative-amortization abort (interest
// alone meets or exceeds the payment) is deliberately skipped on the very
// first iteration: one month of negative amortization is tolerated as long
// as the balance still clears before the horizon.
func Amortize(balance, apr, monthlyPayment float64) Outcome {
	if balance <= 0 {
		return Outcome{Converged: true}
	}
	if monthlyPayment <= 0 {
		return Outcome{}
	}

	remaining := balance
	totalInterest := 0.0
	totalPayments := 0.0

	for month := 0; month < constants.MaxProjectionMonths; month++ {
		accrued := interest.Monthly(remaining, apr)
		totalInterest += accrued

		if month > 0 && accrued >= monthlyPayment {
			return Outcome{}
		}

		// The final payment only covers what is left.
		totalPayments += mathutil.Min(monthlyPayment, remaining+accrued)

		remaining = remaining + accrued - monthlyPayment
		if remaining <= 0 {
			return Outcome{
				Converged:     true,
				Months:        month + 1,
				TotalInterest: totalInterest,
				TotalPayments: totalPayments,
			}
		}
	}

	return Outcome{}
}
