package strategy

import (
	"math"
	"math/rand"
	"testing"
)

func assertPlanInvariants(t *testing.T, accounts []AccountDebt, budget float64, plan PaymentPlan) {
	t.Helper()

	if len(plan) != len(accounts) {
		t.Errorf("plan has %d entries, expected one per account (%d)", len(plan), len(accounts))
	}

	total := 0.0
	for _, account := range accounts {
		payment, ok := plan[account.AccountID]
		if !ok {
			t.Errorf("plan is missing account %s", account.AccountID)
			continue
		}
		if payment < 0 {
			t.Errorf("account %s assigned negative payment %v", account.AccountID, payment)
		}
		total += payment
	}
	if total > budget+0.0001 {
		t.Errorf("plan assigns %v, exceeding budget %v", total, budget)
	}
}

func TestDistributeAvalancheRoutesSurplusByRate(t *testing.T) {
	// Small balance carries the LOW rate here so the two policies disagree.
	accounts := []AccountDebt{
		{AccountID: "small-low-rate", Balance: 200, AnnualRate: 5.0, MinimumPayment: 20},
		{AccountID: "large-high-rate", Balance: 5000, AnnualRate: 25.0, MinimumPayment: 100},
	}

	plan := Distribute(accounts, 200, Avalanche)
	assertPlanInvariants(t, accounts, 200, plan)

	// Minimums 20 + 100 leave an $80 surplus for the 25% account.
	if math.Abs(plan["small-low-rate"]-20) > 0.0001 {
		t.Errorf("small-low-rate assigned %v, expected its 20 minimum", plan["small-low-rate"])
	}
	if math.Abs(plan["large-high-rate"]-180) > 0.0001 {
		t.Errorf("large-high-rate assigned %v, expected 100 minimum + 80 surplus", plan["large-high-rate"])
	}
}

func TestDistributeSnowballRoutesSurplusByBalance(t *testing.T) {
	accounts := []AccountDebt{
		{AccountID: "small-low-rate", Balance: 200, AnnualRate: 5.0, MinimumPayment: 20},
		{AccountID: "large-high-rate", Balance: 5000, AnnualRate: 25.0, MinimumPayment: 100},
	}

	plan := Distribute(accounts, 200, Snowball)
	assertPlanInvariants(t, accounts, 200, plan)

	if math.Abs(plan["small-low-rate"]-100) > 0.0001 {
		t.Errorf("small-low-rate assigned %v, expected 20 minimum + 80 surplus", plan["small-low-rate"])
	}
	if math.Abs(plan["large-high-rate"]-100) > 0.0001 {
		t.Errorf("large-high-rate assigned %v, expected its 100 minimum", plan["large-high-rate"])
	}
}

func TestDistributeSurplusCascades(t *testing.T) {
	// Surplus exceeds the top-priority account's headroom and spills over.
	accounts := []AccountDebt{
		{AccountID: "high", Balance: 150, AnnualRate: 25.0, MinimumPayment: 20},
		{AccountID: "low", Balance: 5000, AnnualRate: 10.0, MinimumPayment: 100},
	}

	plan := Distribute(accounts, 500, Avalanche)
	assertPlanInvariants(t, accounts, 500, plan)

	// "high" takes its whole 150 balance; the remaining 250 of surplus
	// moves on to "low".
	if math.Abs(plan["high"]-150) > 0.0001 {
		t.Errorf("high assigned %v, expected 150 (full balance)", plan["high"])
	}
	if math.Abs(plan["low"]-350) > 0.0001 {
		t.Errorf("low assigned %v, expected 100 minimum + 250 spillover", plan["low"])
	}
}

func TestDistributeUnderfundedBudget(t *testing.T) {
	// Budget cannot cover the minimums: the first pass exhausts it in
	// priority order and later accounts get less than their minimum.
	accounts := []AccountDebt{
		{AccountID: "first", Balance: 1000, AnnualRate: 25.0, MinimumPayment: 60},
		{AccountID: "second", Balance: 2000, AnnualRate: 15.0, MinimumPayment: 60},
		{AccountID: "third", Balance: 3000, AnnualRate: 5.0, MinimumPayment: 60},
	}

	plan := Distribute(accounts, 100, Avalanche)
	assertPlanInvariants(t, accounts, 100, plan)

	if math.Abs(plan["first"]-60) > 0.0001 {
		t.Errorf("first assigned %v, expected full 60 minimum", plan["first"])
	}
	if math.Abs(plan["second"]-40) > 0.0001 {
		t.Errorf("second assigned %v, expected the remaining 40", plan["second"])
	}
	if plan["third"] != 0 {
		t.Errorf("third assigned %v, expected 0 after budget exhaustion", plan["third"])
	}
}

func TestDistributePaidOffAccountGetsNothing(t *testing.T) {
	accounts := []AccountDebt{
		{AccountID: "open", Balance: 500, AnnualRate: 18.0, MinimumPayment: 25},
		{AccountID: "paid", Balance: 0, AnnualRate: 22.0, MinimumPayment: 50},
	}

	plan := Distribute(accounts, 200, Avalanche)
	assertPlanInvariants(t, accounts, 200, plan)

	if plan["paid"] != 0 {
		t.Errorf("paid-off account assigned %v, expected 0 regardless of its stated minimum", plan["paid"])
	}
	if math.Abs(plan["open"]-200) > 0.0001 {
		t.Errorf("open assigned %v, expected the whole 200 budget", plan["open"])
	}
}

func TestDistributeMinimumCappedByBalance(t *testing.T) {
	accounts := []AccountDebt{
		{AccountID: "nearly-done", Balance: 12.50, AnnualRate: 18.0, MinimumPayment: 50},
	}

	plan := Distribute(accounts, 100, Snowball)
	assertPlanInvariants(t, accounts, 100, plan)

	if math.Abs(plan["nearly-done"]-12.50) > 0.0001 {
		t.Errorf("nearly-done assigned %v, expected the 12.50 balance, not the 50 minimum", plan["nearly-done"])
	}
}

func TestDistributeStableOrderOnTies(t *testing.T) {
	// Equal rates: the stable sort preserves input order, so the surplus
	// goes to the account listed first.
	accounts := []AccountDebt{
		{AccountID: "alpha", Balance: 1000, AnnualRate: 15.0, MinimumPayment: 25},
		{AccountID: "beta", Balance: 1000, AnnualRate: 15.0, MinimumPayment: 25},
	}

	plan := Distribute(accounts, 150, Avalanche)

	if math.Abs(plan["alpha"]-125) > 0.0001 {
		t.Errorf("alpha assigned %v, expected 25 minimum + 100 surplus (tie broken by input order)", plan["alpha"])
	}
	if math.Abs(plan["beta"]-25) > 0.0001 {
		t.Errorf("beta assigned %v, expected its 25 minimum", plan["beta"])
	}
}

func TestDistributeZeroBudget(t *testing.T) {
	accounts := []AccountDebt{
		{AccountID: "a", Balance: 1000, AnnualRate: 15.0, MinimumPayment: 25},
	}

	plan := Distribute(accounts, 0, Snowball)
	if plan["a"] != 0 {
		t.Errorf("zero budget assigned %v, expected 0", plan["a"])
	}
}

func TestDistributeInvariantsHoldOnRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		count := 1 + rng.Intn(6)
		accounts := make([]AccountDebt, count)
		for i := range accounts {
			accounts[i] = AccountDebt{
				AccountID:      string(rune('a' + i)),
				Balance:        rng.Float64() * 8000,
				AnnualRate:     rng.Float64() * 30,
				MinimumPayment: rng.Float64() * 200,
			}
		}
		budget := rng.Float64() * 1500
		policy := Avalanche
		if trial%2 == 1 {
			policy = Snowball
		}

		plan := Distribute(accounts, budget, policy)
		assertPlanInvariants(t, accounts, budget, plan)
	}
}
