package strategy

import (
	"sort"

	"github.com/debtwise/payoff-engine/pkg/mathutil"
)

// prioritize returns the accounts in the order the policy pays them down.
// The sort is stable: accounts with equal keys keep their input order.
func prioritize(accounts []AccountDebt, policy Policy) []AccountDebt {
	ordered := make([]AccountDebt, len(accounts))
	copy(ordered, accounts)

	switch policy {
	case Snowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Balance < ordered[j].Balance
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].AnnualRate > ordered[j].AnnualRate
		})
	}
	return ordered
}

// Distribute allocates one month's budget across the accounts: first every
// open account gets min(minimumPayment, balance) in priority order, then
// any surplus is routed to the highest-priority account with headroom
// until the budget runs out.
//
// There is no error condition. A budget too small to cover the minimums
// simply exhausts during the first pass and later accounts receive less
// than their stated minimum.
func Distribute(accounts []AccountDebt, totalBudget float64, policy Policy) PaymentPlan {
	plan := make(PaymentPlan, len(accounts))
	for _, account := range accounts {
		plan[account.AccountID] = 0
	}

	ordered := prioritize(accounts, policy)
	remaining := totalBudget

	for _, account := range ordered {
		if remaining <= 0 {
			break
		}
		if account.Balance <= 0 {
			continue
		}
		payment := mathutil.Min(account.MinimumPayment, account.Balance)
		payment = mathutil.Min(payment, remaining)
		if payment <= 0 {
			continue
		}
		plan[account.AccountID] = payment
		remaining -= payment
	}

	for _, account := range ordered {
		if remaining <= 0 {
			break
		}
		if account.Balance <= 0 {
			continue
		}
		headroom := account.Balance - plan[account.AccountID]
		if headroom <= 0 {
			continue
		}
		extra := mathutil.Min(remaining, headroom)
		plan[account.AccountID] += extra
		remaining -= extra
	}

	return plan
}
