package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/transaction"
)

func TestFormatRecord(t *testing.T) {
	t.Run("CommonEntry", func(t *testing.T) {
		line := FormatRecord(transaction.Entry{
			Code:   transaction.CodeWithdrawal,
			Name:   "Alice Smith",
			Number: "00123",
			Amount: 10000,
			Misc:   "N/A",
		})
		assert.Equal(t, "01 Alice Smith          00123 00100.00 N/", line)
	})

	t.Run("PayBillCarriesCompany", func(t *testing.T) {
		line := FormatRecord(transaction.Entry{
			Code:   transaction.CodePayBill,
			Name:   "Alice Smith",
			Number: "00123",
			Amount: 2550,
			Misc:   "EC",
		})
		assert.Equal(t, "03 Alice Smith          00123 00025.50 EC", line)
	})

	t.Run("TransferUsesSenderNumber", func(t *testing.T) {
		line := FormatRecord(transaction.TransferEntry{
			Entry: transaction.Entry{
				Code:   transaction.CodeTransfer,
				Name:   "Alice Smith",
				Number: "00123",
				Amount: 5000,
				Misc:   "N/A",
			},
			Receiver: "00124",
		})
		assert.True(t, strings.HasPrefix(line, "02 Alice Smith          00123 00050.00"))
	})

	t.Run("LongNameTruncated", func(t *testing.T) {
		line := FormatRecord(transaction.Entry{
			Code:   transaction.CodeCreate,
			Name:   strings.Repeat("x", 25),
			Number: "00200",
			Amount: 0,
			Misc:   "N/A",
		})
		assert.Equal(t, strings.Repeat("x", 20), line[3:23])
	})
}

func TestTransactionLog_Write(t *testing.T) {
	t.Run("EndsWithSentinel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.txt")
		log := NewTransactionLog(testLogger(), path)

		require.NoError(t, log.Write([]transaction.Record{
			transaction.Entry{Code: transaction.CodeWithdrawal, Name: "Alice Smith", Number: "00123", Amount: 10000, Misc: "N/A"},
		}))

		lines := rawLines(t, path)
		require.Len(t, lines, 2)
		assert.Equal(t, "00"+strings.Repeat(" ", 38), lines[1])
	})

	t.Run("EmptySessionStillWritesSentinel", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.txt")
		log := NewTransactionLog(testLogger(), path)

		require.NoError(t, log.Write(nil))

		lines := rawLines(t, path)
		require.Len(t, lines, 1)
		assert.Equal(t, "00"+strings.Repeat(" ", 38), lines[0])
	})

	t.Run("RecordsInInsertionOrder", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.txt")
		log := NewTransactionLog(testLogger(), path)

		require.NoError(t, log.Write([]transaction.Record{
			transaction.Entry{Code: transaction.CodeDeposit, Name: "Alice Smith", Number: "00123", Amount: 100, Misc: "N/A"},
			transaction.Entry{Code: transaction.CodeWithdrawal, Name: "Alice Smith", Number: "00123", Amount: 200, Misc: "N/A"},
		}))

		lines := rawLines(t, path)
		require.Len(t, lines, 3)
		assert.True(t, strings.HasPrefix(lines[0], "04 "))
		assert.True(t, strings.HasPrefix(lines[1], "01 "))
	})

	t.Run("OverwritesPreviousSession", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "transactions.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

		log := NewTransactionLog(testLogger(), path)
		require.NoError(t, log.Write(nil))

		lines := rawLines(t, path)
		require.Len(t, lines, 1)
		assert.Equal(t, "00"+strings.Repeat(" ", 38), lines[0])
	})
}
