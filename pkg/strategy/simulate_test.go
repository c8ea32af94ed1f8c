package strategy

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/debtwise/payoff-engine/pkg/constants"
)

func TestSimulateSingleAccount(t *testing.T) {
	simulator := NewSimulator(nil)

	accounts := []AccountDebt{
		{AccountID: "card", Balance: 1000, AnnualRate: 18.99, MinimumPayment: 25},
	}

	result := simulator.Simulate(accounts, 100, Avalanche)

	if result.MonthsToPayoff <= 0 || result.MonthsToPayoff >= constants.MaxSimulationMonths {
		t.Errorf("MonthsToPayoff = %d, expected a finite payoff below the cap", result.MonthsToPayoff)
	}
	if result.TotalInterest <= 0 {
		t.Errorf("TotalInterest = %v, expected > 0", result.TotalInterest)
	}
	// Interest on a shrinking $1000 balance at ~1.58%/month over roughly a
	// year stays well under the starting balance.
	if result.TotalInterest >= 1000 {
		t.Errorf("TotalInterest = %v, implausibly high", result.TotalInterest)
	}
}

func TestSimulateZeroRatePaysExactly(t *testing.T) {
	simulator := NewSimulator(nil)

	accounts := []AccountDebt{
		{AccountID: "loan", Balance: 1200, AnnualRate: 0, MinimumPayment: 100},
	}

	result := simulator.Simulate(accounts, 100, Snowball)

	if result.MonthsToPayoff != 12 {
		t.Errorf("MonthsToPayoff = %d, expected 12", result.MonthsToPayoff)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0 at zero rate", result.TotalInterest)
	}
}

func TestSimulateAlreadyPaid(t *testing.T) {
	simulator := NewSimulator(nil)

	accounts := []AccountDebt{
		{AccountID: "done", Balance: 0, AnnualRate: 18.99, MinimumPayment: 25},
	}

	result := simulator.Simulate(accounts, 100, Avalanche)

	if result.MonthsToPayoff != 0 {
		t.Errorf("MonthsToPayoff = %d, expected 0 for a fully paid account set", result.MonthsToPayoff)
	}
	if result.TotalInterest != 0 {
		t.Errorf("TotalInterest = %v, expected 0", result.TotalInterest)
	}
}

func TestSimulateCapsAtMaxMonths(t *testing.T) {
	simulator := NewSimulator(nil)

	// A zero budget can never pay anything down.
	accounts := []AccountDebt{
		{AccountID: "stuck", Balance: 1000, AnnualRate: 0, MinimumPayment: 25},
	}

	result := simulator.Simulate(accounts, 0, Snowball)

	if result.MonthsToPayoff != constants.MaxSimulationMonths {
		t.Errorf("MonthsToPayoff = %d, expected the %d cap",
			result.MonthsToPayoff, constants.MaxSimulationMonths)
	}
	// The simulator's non-convergence signal is the cap itself, not the
	// projector's 9999 sentinel.
	if result.MonthsToPayoff == constants.NonConvergentMonths {
		t.Errorf("simulator reported the projector sentinel %d; the conventions must stay distinct",
			constants.NonConvergentMonths)
	}
}

func TestSimulateDoesNotMutateCallerAccounts(t *testing.T) {
	simulator := NewSimulator(nil)

	accounts := []AccountDebt{
		{AccountID: "a", Balance: 900, AnnualRate: 20.0, MinimumPayment: 30},
		{AccountID: "b", Balance: 2500, AnnualRate: 12.0, MinimumPayment: 75},
	}

	simulator.Simulate(accounts, 300, Avalanche)

	if accounts[0].Balance != 900 || accounts[1].Balance != 2500 {
		t.Errorf("caller balances mutated: %v, %v", accounts[0].Balance, accounts[1].Balance)
	}
}

func TestSimulateAvalancheNeverCostsMoreThanSnowball(t *testing.T) {
	simulator := NewSimulator(nil)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		count := 2 + rng.Intn(4)
		accounts := make([]AccountDebt, count)
		minimums := 0.0
		for i := range accounts {
			balance := 500 + rng.Float64()*7500
			accounts[i] = AccountDebt{
				AccountID:  fmt.Sprintf("acct-%d", i),
				Balance:    math.Round(balance*100) / 100,
				AnnualRate: math.Round((3+rng.Float64()*27)*100) / 100,
				// 3% of balance always covers even 30% APR interest, so
				// every account shrinks every month and both runs converge.
				MinimumPayment: math.Round(balance*0.03*100) / 100,
			}
			minimums += accounts[i].MinimumPayment
		}
		budget := minimums + 100 + rng.Float64()*400

		avalanche := simulator.Simulate(accounts, budget, Avalanche)
		snowball := simulator.Simulate(accounts, budget, Snowball)

		if avalanche.MonthsToPayoff >= constants.MaxSimulationMonths ||
			snowball.MonthsToPayoff >= constants.MaxSimulationMonths {
			t.Fatalf("trial %d: fixture unexpectedly failed to converge", trial)
		}

		if avalanche.TotalInterest > snowball.TotalInterest+0.01 {
			t.Errorf("trial %d: avalanche interest %v exceeds snowball %v",
				trial, avalanche.TotalInterest, snowball.TotalInterest)
		}
	}
}
