// Package output provides utilities for formatting and displaying payoff
// results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/debtwise/payoff-engine/pkg/constants"
	"github.com/debtwise/payoff-engine/pkg/payoff"
	"github.com/debtwise/payoff-engine/pkg/strategy"
)

// PrettyFormat outputs a human-readable rather than machine-readable view
// of the projections and the policy comparison.
func PrettyFormat(projections []payoff.Projection, comparison *strategy.PolicyComparison) {
	p := message.NewPrinter(language.English)

	for _, projection := range projections {
		fmt.Printf("--- Projection for $%.2f at %.2f%% paying $%.2f/month ---\n",
			projection.StartingBalance, projection.AnnualRate, projection.MonthlyPayment)
		if projection.NonConvergent() {
			fmt.Printf("This payment never clears the balance.\n\n")
			continue
		}
		_, _ = p.Printf("Payoff:         %s (%d months)\n",
			projection.PayoffDate.Format(constants.DateTimeLayout), projection.MonthsToPayoff)
		_, _ = p.Printf("Total interest: $%.2f\n", projection.TotalInterest)
		_, _ = p.Printf("Total paid:     $%.2f\n\n", projection.TotalPayments)
	}

	if comparison != nil {
		fmt.Printf("--- Strategy comparison ---\n")
		fmt.Printf("Policy    | Months | Total interest\n")
		fmt.Printf("______    | ______ | ______________\n")
		_, _ = p.Printf("avalanche | %6d | $%.2f\n",
			comparison.Avalanche.MonthsToPayoff, comparison.Avalanche.TotalInterest)
		_, _ = p.Printf("snowball  | %6d | $%.2f\n",
			comparison.Snowball.MonthsToPayoff, comparison.Snowball.TotalInterest)
		_, _ = p.Printf("Recommended: %s (saves $%.2f, %d months)\n",
			comparison.Recommended, comparison.InterestSaved, comparison.MonthsSaved)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(projections []payoff.Projection, comparison *strategy.PolicyComparison) {
	fmt.Printf(`"balance","rate","payment","months","total interest","total paid","payoff date"`)
	fmt.Printf("\n")
	for _, projection := range projections {
		payoffDate := ""
		if projection.PayoffDate != nil {
			payoffDate = projection.PayoffDate.Format(constants.DateTimeLayout)
		}
		fmt.Printf(`"%.2f","%.2f","%.2f","%d","%.2f","%.2f","%s"`,
			projection.StartingBalance, projection.AnnualRate, projection.MonthlyPayment,
			projection.MonthsToPayoff, projection.TotalInterest, projection.TotalPayments,
			payoffDate)
		fmt.Printf("\n")
	}

	if comparison != nil {
		fmt.Printf(`"policy","months","total interest","recommended"`)
		fmt.Printf("\n")
		fmt.Printf(`"avalanche","%d","%.2f","%t"`,
			comparison.Avalanche.MonthsToPayoff, comparison.Avalanche.TotalInterest,
			comparison.Recommended == strategy.Avalanche)
		fmt.Printf("\n")
		fmt.Printf(`"snowball","%d","%.2f","%t"`,
			comparison.Snowball.MonthsToPayoff, comparison.Snowball.TotalInterest,
			comparison.Recommended == strategy.Snowball)
		fmt.Printf("\n")
	}
}
