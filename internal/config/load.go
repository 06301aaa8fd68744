package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/shared"
)

// LoadConfig loads configuration from an optional atm.env file and the
// environment, layered over defaults:
//  1. Load defaults
//  2. Override with config file values (if found)
//  3. Override with environment variables
//  4. Validate the final configuration
func LoadConfig() (*Config, error) {
	return loadConfig("atm.env")
}

// LoadConfigWithName loads configuration using the given env-format
// file name; useful for tests and alternate deployments.
func LoadConfigWithName(configName string) (*Config, error) {
	return loadConfig(configName)
}

func loadConfig(configName string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("env")

	// Config paths in order of priority
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", configName, err)
		}
	}

	v.AutomaticEnv()

	limits, err := loadLimits(v)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Application: ApplicationConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Ledger: LedgerConfig{
			AccountsFile:       v.GetString("ATM_ACCOUNTS_FILE"),
			TransactionLogFile: v.GetString("ATM_TRANSACTION_LOG_FILE"),
		},
		Limits: limits,
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadLimits parses the session caps, which are configured as decimal
// dollar amounts and held internally in minor units.
func loadLimits(v *viper.Viper) (LimitsConfig, error) {
	var limits LimitsConfig
	for _, entry := range []struct {
		key  string
		dest *int64
	}{
		{"ATM_WITHDRAWAL_LIMIT", &limits.Withdrawal},
		{"ATM_TRANSFER_LIMIT", &limits.Transfer},
		{"ATM_PAYBILL_LIMIT", &limits.PayBill},
	} {
		amount, err := shared.ParseAmount(v.GetString(entry.key))
		if err != nil {
			return limits, fmt.Errorf("invalid %s: %w", entry.key, err)
		}
		*entry.dest = amount
	}
	return limits, nil
}

// setDefaults initializes configuration with the values the terminal
// runs with when no configuration file or environment variables are
// present.
func setDefaults(v *viper.Viper) {
	// File defaults match the layout the terminal ships with
	v.SetDefault("ATM_ACCOUNTS_FILE", "data/accounts.txt")
	v.SetDefault("ATM_TRANSACTION_LOG_FILE", "data/transactions.txt")

	// Standard-session caps, in dollars
	v.SetDefault("ATM_WITHDRAWAL_LIMIT", "500.00")
	v.SetDefault("ATM_TRANSFER_LIMIT", "1000.00")
	v.SetDefault("ATM_PAYBILL_LIMIT", "2000.00")

	// Logging defaults - 'info' provides good balance of information vs noise
	v.SetDefault("LOG_LEVEL", "info")

	// Application defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "atm-terminal")
}
