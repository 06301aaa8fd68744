// Package config provides configuration structures and validation for
// the terminal. Settings cover the ledger and transaction log file
// locations, logging, and the standard-session limits.
package config

import (
	"errors"
	"strings"
)

// Config holds the complete terminal configuration, validated during
// startup.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Ledger      LedgerConfig
	Limits      LimitsConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// LedgerConfig locates the durable files the terminal operates on.
type LedgerConfig struct {
	AccountsFile       string // Fixed-width account ledger, read at session start
	TransactionLogFile string // Written once per session, at logout
}

// LimitsConfig holds the cumulative standard-session caps in minor
// units. Admin sessions are exempt from all three.
type LimitsConfig struct {
	Withdrawal int64
	Transfer   int64
	PayBill    int64
}

// validate ensures the configuration meets minimum requirements before
// the terminal starts.
func (c *Config) validate() error {
	var validationErrors []string

	if c.Ledger.AccountsFile == "" {
		validationErrors = append(validationErrors, "ATM_ACCOUNTS_FILE is required")
	}
	if c.Ledger.TransactionLogFile == "" {
		validationErrors = append(validationErrors, "ATM_TRANSACTION_LOG_FILE is required")
	}
	if c.Limits.Withdrawal <= 0 {
		validationErrors = append(validationErrors, "ATM_WITHDRAWAL_LIMIT must be greater than 0")
	}
	if c.Limits.Transfer <= 0 {
		validationErrors = append(validationErrors, "ATM_TRANSFER_LIMIT must be greater than 0")
	}
	if c.Limits.PayBill <= 0 {
		validationErrors = append(validationErrors, "ATM_PAYBILL_LIMIT must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
