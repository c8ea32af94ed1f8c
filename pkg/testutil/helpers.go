// Package testutil provides shared fixtures for payoff engine tests.
package testutil

import "github.com/debtwise/payoff-engine/pkg/strategy"

// DivergentAccounts returns a two-account fixture where avalanche and
// snowball route surplus funds to different accounts: the smaller balance
// carries the lower rate, so balance order and rate order disagree.
func DivergentAccounts() []strategy.AccountDebt {
	return []strategy.AccountDebt{
		{AccountID: "small-low-rate", Balance: 200, AnnualRate: 5.0, MinimumPayment: 20},
		{AccountID: "large-high-rate", Balance: 5000, AnnualRate: 25.0, MinimumPayment: 100},
	}
}

// HeavyDebtAccounts returns a fixture where the policy choice changes the
// total interest by far more than the recommendation threshold.
func HeavyDebtAccounts() []strategy.AccountDebt {
	return []strategy.AccountDebt{
		{AccountID: "small-cheap", Balance: 3000, AnnualRate: 5.0, MinimumPayment: 90},
		{AccountID: "large-expensive", Balance: 8000, AnnualRate: 28.0, MinimumPayment: 240},
	}
}
