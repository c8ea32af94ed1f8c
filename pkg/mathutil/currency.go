// Package mathutil provides common mathematical utility functions for
// currency arithmetic.
package mathutil

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-engine/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Midpoints round half away from zero on the cent boundary.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// CeilCents rounds a value up to the next cent. Computed in exact decimal
// arithmetic: a pure float ceiling turns exact quotients like 5000/10 into
// 500.01 whenever the binary representation lands a hair above the true
// value.
func CeilCents(val float64) float64 {
	d := decimal.NewFromFloat(val).
		Round(6).
		Mul(decimal.NewFromInt(constants.DecimalPrecision)).
		Ceil().
		Div(decimal.NewFromInt(constants.DecimalPrecision))
	f, _ := d.Float64()
	return f
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Min returns the minimum of two float64 values
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
