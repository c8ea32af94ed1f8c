package payoff

import (
	"time"

	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// Savings reports what an alternative monthly payment buys over the
// current one for the same balance and rate.
type Savings struct {
	MonthsSaved              int
	InterestSaved            float64
	AdditionalMonthlyPayment float64
}

// Compare projects the same balance under the current and an alternative
// payment and reports the difference. If either projection is
// non-convergent there is no meaningful baseline to subtract from, so
// both saved figures report 0.
func (p *Projector) Compare(balance, apr, currentPayment, alternativePayment float64) Savings {
	return p.CompareAt(time.Now(), balance, apr, currentPayment, alternativePayment)
}

// CompareAt is Compare with a fixed reference time.
func (p *Projector) CompareAt(now time.Time, balance, apr, currentPayment, alternativePayment float64) Savings {
	savings := Savings{
		AdditionalMonthlyPayment: mathutil.Round(alternativePayment - currentPayment),
	}

	current := p.ProjectAt(now, balance, apr, currentPayment)
	alternative := p.ProjectAt(now, balance, apr, alternativePayment)

	if current.NonConvergent() || alternative.NonConvergent() {
		return savings
	}

	savings.MonthsSaved = current.MonthsToPayoff - alternative.MonthsToPayoff
	savings.InterestSaved = mathutil.Round(current.TotalInterest - alternative.TotalInterest)
	return savings
}
