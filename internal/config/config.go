// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/debtwise/payoff-engine/pkg/strategy"
	"github.com/debtwise/payoff-engine/pkg/validation"
)

// Configuration holds all configuration for the payoff engine CLI and
// server.
type Configuration struct {
	MonthlyBudget float64
	Accounts      []Account
	Projections   []ProjectionInput
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
	Server        ServerConfig  `yaml:"server,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds options for serve mode.
type ServerConfig struct {
	Address   string `yaml:"address,omitempty"`
	RedisAddr string `yaml:"redisAddr,omitempty"` // optional; in-process cache when empty
}

// Account describes one revolving balance in the configuration file.
type Account struct {
	ID             string
	Balance        float64
	AnnualRate     float64
	MinimumPayment float64
}

// ProjectionInput describes one standalone single-balance projection. When
// TargetMonths is set the payment for that term is solved and projected
// alongside any configured MonthlyPayment.
type ProjectionInput struct {
	Balance        float64
	AnnualRate     float64
	MonthlyPayment float64
	TargetMonths   int
}

// LoadConfiguration takes a file path as input and loads the
// YAML-formatted configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// AccountDebts converts the configured accounts into engine inputs.
func (conf *Configuration) AccountDebts() []strategy.AccountDebt {
	accounts := make([]strategy.AccountDebt, len(conf.Accounts))
	for i, account := range conf.Accounts {
		accounts[i] = strategy.AccountDebt{
			AccountID:      account.ID,
			Balance:        account.Balance,
			AnnualRate:     account.AnnualRate,
			MinimumPayment: account.MinimumPayment,
		}
	}
	return accounts
}

// ValidateConfiguration checks the loaded configuration and returns
// warnings for anything that will produce surprising results. Nothing here
// is fatal: the engine handles every degenerate input deterministically.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	accounts := conf.AccountDebts()
	warnings = append(warnings, validation.ValidateAccounts(accounts)...)
	if len(accounts) > 0 {
		warnings = append(warnings, validation.ValidateBudget(accounts, conf.MonthlyBudget)...)
	}

	for i, projection := range conf.Projections {
		if projection.MonthlyPayment <= 0 && projection.TargetMonths <= 0 {
			warnings = append(warnings, fmt.Sprintf(
				"projection %d has neither a monthly payment nor a target term; nothing can be projected", i+1))
		}
		if projection.Balance <= 0 {
			warnings = append(warnings, fmt.Sprintf(
				"projection %d has no open balance; it will report an immediate payoff", i+1))
		}
	}

	return warnings
}
