package strategy

import (
	"testing"

	"github.com/debtwise/payoff-engine/pkg/constants"
)

func TestComparePoliciesRecommendsAvalancheOnLargeSavings(t *testing.T) {
	simulator := NewSimulator(nil)

	// A large high-rate balance behind a small low-rate one: snowball
	// parks the surplus on the cheap account while the expensive one
	// accrues, so avalanche saves far more than the threshold.
	accounts := []AccountDebt{
		{AccountID: "small-cheap", Balance: 3000, AnnualRate: 5.0, MinimumPayment: 90},
		{AccountID: "large-expensive", Balance: 8000, AnnualRate: 28.0, MinimumPayment: 240},
	}

	comparison := simulator.ComparePolicies(accounts, 600)

	if comparison.Recommended != Avalanche {
		t.Errorf("Recommended = %s, expected avalanche", comparison.Recommended)
	}
	if comparison.InterestSaved <= constants.RecommendationThreshold {
		t.Errorf("InterestSaved = %v, expected more than the %v threshold",
			comparison.InterestSaved, constants.RecommendationThreshold)
	}
	if comparison.Avalanche.TotalInterest >= comparison.Snowball.TotalInterest {
		t.Errorf("avalanche interest %v not below snowball %v",
			comparison.Avalanche.TotalInterest, comparison.Snowball.TotalInterest)
	}
}

func TestComparePoliciesDefaultsToSnowball(t *testing.T) {
	simulator := NewSimulator(nil)

	// A single account pays off identically under either ordering, so the
	// savings are zero and snowball wins as the easier habit.
	accounts := []AccountDebt{
		{AccountID: "only", Balance: 2000, AnnualRate: 18.0, MinimumPayment: 60},
	}

	comparison := simulator.ComparePolicies(accounts, 150)

	if comparison.Recommended != Snowball {
		t.Errorf("Recommended = %s, expected snowball for equal-cost policies", comparison.Recommended)
	}
	if comparison.InterestSaved != 0 {
		t.Errorf("InterestSaved = %v, expected 0", comparison.InterestSaved)
	}
	if comparison.MonthsSaved != 0 {
		t.Errorf("MonthsSaved = %v, expected 0", comparison.MonthsSaved)
	}
}

func TestComparePoliciesNeverReportsNegativeSavings(t *testing.T) {
	simulator := NewSimulator(nil)

	accounts := []AccountDebt{
		{AccountID: "a", Balance: 1500, AnnualRate: 10.0, MinimumPayment: 45},
		{AccountID: "b", Balance: 1500, AnnualRate: 10.0, MinimumPayment: 45},
	}

	comparison := simulator.ComparePolicies(accounts, 200)

	if comparison.InterestSaved < 0 {
		t.Errorf("InterestSaved = %v, expected >= 0", comparison.InterestSaved)
	}
}
