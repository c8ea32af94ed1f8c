// Package validation provides input validation utilities. Checks produce
// warnings rather than errors: the engine itself degrades degenerate
// numeric input to well-defined results, so validation exists to tell the
// user something looks off, not to refuse the computation.
package validation

import (
	"fmt"

	"github.com/debtwise/payoff-engine/pkg/interest"
	"github.com/debtwise/payoff-engine/pkg/strategy"
)

// ValidateAccounts inspects an account set and returns warnings for
// anything that will produce surprising (though well-defined) results.
func ValidateAccounts(accounts []strategy.AccountDebt) []string {
	var warnings []string

	seen := make(map[string]bool)
	for _, account := range accounts {
		if account.AccountID == "" {
			warnings = append(warnings, "an account has an empty ID; its payments will collide with any other unnamed account")
		}
		if seen[account.AccountID] {
			warnings = append(warnings, fmt.Sprintf("duplicate account ID '%s'; payment plans key by ID and will merge these accounts", account.AccountID))
		}
		seen[account.AccountID] = true

		if account.Balance < 0 {
			warnings = append(warnings, fmt.Sprintf("account '%s' has a negative balance (%.2f) and will be treated as paid off", account.AccountID, account.Balance))
		}
		if account.AnnualRate < 0 {
			warnings = append(warnings, fmt.Sprintf("account '%s' has a negative rate (%.2f%%) and will accrue no interest", account.AccountID, account.AnnualRate))
		}
		if account.AnnualRate > 100 {
			warnings = append(warnings, fmt.Sprintf("account '%s' has an unusually high rate (%.2f%%)", account.AccountID, account.AnnualRate))
		}

		if account.Balance > 0 {
			if account.MinimumPayment <= 0 {
				warnings = append(warnings, fmt.Sprintf("account '%s' has no minimum payment; it will only receive surplus funds", account.AccountID))
			} else if monthly := interest.Monthly(account.Balance, account.AnnualRate); account.MinimumPayment < monthly {
				warnings = append(warnings, fmt.Sprintf("account '%s' minimum payment (%.2f) is below its monthly interest (%.2f); the balance grows under minimum-only payments", account.AccountID, account.MinimumPayment, monthly))
			}
		}
	}

	return warnings
}

// ValidateBudget checks the monthly budget against the account set.
func ValidateBudget(accounts []strategy.AccountDebt, monthlyBudget float64) []string {
	var warnings []string

	if monthlyBudget <= 0 {
		warnings = append(warnings, fmt.Sprintf("monthly budget is %.2f; no payments will be assigned", monthlyBudget))
		return warnings
	}

	minimums := 0.0
	for _, account := range accounts {
		if account.Balance > 0 {
			minimums += account.MinimumPayment
		}
	}
	if monthlyBudget < minimums {
		warnings = append(warnings, fmt.Sprintf("monthly budget (%.2f) does not cover the combined minimum payments (%.2f); lower-priority accounts will be shorted", monthlyBudget, minimums))
	}

	return warnings
}
