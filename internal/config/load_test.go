package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into dir so LoadConfig's relative search paths
// resolve against a directory the test controls.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Application.Env)
	assert.Equal(t, "atm-terminal", cfg.Application.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data/accounts.txt", cfg.Ledger.AccountsFile)
	assert.Equal(t, "data/transactions.txt", cfg.Ledger.TransactionLogFile)
	assert.Equal(t, int64(50000), cfg.Limits.Withdrawal)
	assert.Equal(t, int64(100000), cfg.Limits.Transfer)
	assert.Equal(t, int64(200000), cfg.Limits.PayBill)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ATM_ACCOUNTS_FILE", "/var/lib/atm/accounts.txt")
	t.Setenv("ATM_WITHDRAWAL_LIMIT", "250.50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/atm/accounts.txt", cfg.Ledger.AccountsFile)
	assert.Equal(t, int64(25050), cfg.Limits.Withdrawal)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(100000), cfg.Limits.Transfer, "untouched keys keep their defaults")
}

func TestLoadConfig_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := "ATM_ACCOUNTS_FILE=ledger/accounts.txt\nATM_PAYBILL_LIMIT=1500.00\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "atm.env"), []byte(file), 0o644))
	chdir(t, dir)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ledger/accounts.txt", cfg.Ledger.AccountsFile)
	assert.Equal(t, int64(150000), cfg.Limits.PayBill)
}

func TestLoadConfig_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := "ATM_ACCOUNTS_FILE=ledger/accounts.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "atm.env"), []byte(file), 0o644))
	chdir(t, dir)
	t.Setenv("ATM_ACCOUNTS_FILE", "/etc/atm/accounts.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/etc/atm/accounts.txt", cfg.Ledger.AccountsFile)
}

func TestLoadConfigWithName(t *testing.T) {
	dir := t.TempDir()
	file := "ATM_TRANSACTION_LOG_FILE=out/translog.txt\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alternate.env"), []byte(file), 0o644))
	chdir(t, dir)

	cfg, err := LoadConfigWithName("alternate.env")
	require.NoError(t, err)
	assert.Equal(t, "out/translog.txt", cfg.Ledger.TransactionLogFile)
}

func TestLoadConfig_InvalidLimitFormat(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ATM_TRANSFER_LIMIT", "lots")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATM_TRANSFER_LIMIT")
}

func TestLoadConfig_ValidationRejectsZeroLimit(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ATM_WITHDRAWAL_LIMIT", "0.00")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATM_WITHDRAWAL_LIMIT must be greater than 0")
}
