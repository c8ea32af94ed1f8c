// Package constants provides shared constants for the payoff engine.
package constants

// DateTimeLayout is the month-granularity date format used in configuration
// files and in formatted output.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DaysPerYear is the day count used for daily interest accrual
	DaysPerYear = 365

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Horizon and sentinel constants. The single-balance projector and the
// multi-account simulator deliberately signal non-convergence differently:
// the projector reports NonConvergentMonths while the simulator reports a
// month counter capped at MaxSimulationMonths. Callers must check the
// convention that matches the API they called; the two are never unified.
const (
	// NonConvergentMonths is the months-to-payoff sentinel returned by the
	// single-balance projector (and propagated by the scenario comparator)
	// when a payment plan never reaches a zero balance within the horizon.
	NonConvergentMonths = 9999

	// MaxProjectionMonths bounds the single-balance projection loop; 600
	// months (50 years) is the maximum supported term.
	MaxProjectionMonths = 600

	// MaxSimulationMonths bounds the multi-account strategy simulation. A
	// simulation that terminates at exactly this value did not pay off all
	// balances; the cap itself is the non-convergence signal for that API.
	MaxSimulationMonths = 600
)

// Strategy comparison constants
const (
	// RecommendationThreshold is the interest savings, in currency units,
	// that avalanche must beat snowball by before it is recommended over
	// the behaviorally easier snowball policy.
	RecommendationThreshold = 50.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server defaults
const (
	// DefaultListenAddress is the default HTTP listen address for serve mode
	DefaultListenAddress = ":8080"
)
