package console

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/data/flatfile"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/session"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/engine"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const (
	aliceLine = "00123 Alice Smith          A 00150.00"
	sentinel  = "00000 END_OF_FILE          A 00000.00"
)

// runScript replays newline-separated operator input against a fresh
// terminal over a temp ledger and returns everything it printed plus
// the transaction log path.
func runScript(t *testing.T, inputs ...string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	accountsPath := filepath.Join(dir, "accounts.txt")
	translogPath := filepath.Join(dir, "transactions.txt")
	ledger := strings.Join([]string{aliceLine, sentinel}, "\n") + "\n"
	require.NoError(t, os.WriteFile(accountsPath, []byte(ledger), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := flatfile.NewStore(logger, accountsPath)
	require.NoError(t, store.Load())

	eng := engine.New(logger, store, flatfile.NewTransactionLog(logger, translogPath),
		engine.Limits{Withdrawal: 50000, Transfer: 100000, PayBill: 200000})

	var out bytes.Buffer
	script := strings.NewReader(strings.Join(inputs, "\n") + "\n")
	require.NoError(t, New(logger, eng, script, &out).Run())

	return out.String(), translogPath
}

func TestRun_StandardSession(t *testing.T) {
	out, translogPath := runScript(t,
		"1", "standard", "Alice Smith",
		"3", "00123", "100.00",
		"10",
		"exit",
	)

	assert.Contains(t, out, "you have logged in successfully")
	assert.Contains(t, out, "withdrew $100.00")
	assert.Contains(t, out, "current balance: $50.00")
	assert.Contains(t, out, "you have logged out successfully")
	assert.Contains(t, out, "goodbye")

	data, err := os.ReadFile(translogPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "01 Alice Smith"))
	assert.Equal(t, "00"+strings.Repeat(" ", 38), lines[1])
}

func TestRun_WordCommands(t *testing.T) {
	out, _ := runScript(t,
		"login", "standard", "Alice Smith",
		"logout",
		"quit",
	)
	assert.Contains(t, out, "you have logged in successfully")
	assert.Contains(t, out, "you have logged out successfully")
}

func TestRun_UnknownCommand(t *testing.T) {
	out, _ := runScript(t, "99", "exit")
	assert.Contains(t, out, "not an option, try again")
}

func TestRun_OperationBeforeLogin(t *testing.T) {
	out, _ := runScript(t, "3", "00123", "100.00", "exit")
	assert.Contains(t, out, session.ErrNotLoggedIn.Error())
}

func TestRun_BadAmountReturnsToMenu(t *testing.T) {
	out, _ := runScript(t,
		"1", "standard", "Alice Smith",
		"3", "00123", "abc",
		"10",
		"exit",
	)
	assert.NotContains(t, out, "withdrew")
	assert.Contains(t, out, "you have logged out successfully")
}

func TestRun_ExitFlushesOpenSession(t *testing.T) {
	out, translogPath := runScript(t,
		"1", "standard", "Alice Smith",
		"2", "00123", "25.00",
		"exit",
	)
	assert.Contains(t, out, "funds are available next session")

	data, err := os.ReadFile(translogPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2, "exit logs the open session out")
	assert.True(t, strings.HasPrefix(lines[0], "04 Alice Smith"))
}

func TestRun_EOFExits(t *testing.T) {
	out, _ := runScript(t, "1", "standard", "Alice Smith")
	assert.Contains(t, out, "goodbye")
}

func TestRun_AdminPromptsForHolder(t *testing.T) {
	out, _ := runScript(t,
		"1", "admin",
		"3", "Alice Smith", "00123", "50.00",
		"10",
		"exit",
	)
	assert.Contains(t, out, "account holder name:")
	assert.Contains(t, out, "withdrew $50.00")
	assert.Contains(t, out, "current balance: $100.00")
}

func TestRun_AdminCreateAndDelete(t *testing.T) {
	out, _ := runScript(t,
		"1", "admin",
		"6", "Dana White", "75.00",
		"7", "Dana White", "00124",
		"10",
		"exit",
	)
	assert.Contains(t, out, "created account 00124 for Dana White")
	assert.Contains(t, out, "deleted account 00124")
}
