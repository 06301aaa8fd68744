package flatfile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/account"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/shared"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/transaction"
)

// Transaction log record layout: CC_AAAAAAAAAAAAAAAAAAAA_NNNNN_PPPPPPPP_MM
// with the name left-justified, the number zero-padded, and the misc
// field space-padded to 2 characters.
const miscWidth = 2

// TransactionLog writes one session's records to the transaction log
// file, ending with the end-of-session sentinel line.
type TransactionLog struct {
	logger *slog.Logger
	path   string
}

func NewTransactionLog(logger *slog.Logger, path string) *TransactionLog {
	return &TransactionLog{
		logger: logger,
		path:   path,
	}
}

// Write renders the records in order, appends the code-00 sentinel, and
// atomically replaces the log file.
func (t *TransactionLog) Write(records []transaction.Record) error {
	lines := make([]string, 0, len(records)+1)
	for _, r := range records {
		lines = append(lines, FormatRecord(r))
	}
	lines = append(lines, sentinelRecordLine())

	if err := writeLines(t.path, lines); err != nil {
		return fmt.Errorf("writing transaction log %s: %w", t.path, err)
	}
	t.logger.Info("transaction log written", "path", t.path, "records", len(records))
	return nil
}

// FormatRecord renders one transaction record as a fixed-width log
// line.
func FormatRecord(r transaction.Record) string {
	e := r.Common()
	name := e.Name
	if len(name) > account.MaxNameLength {
		name = name[:account.MaxNameLength]
	}
	misc := e.Misc
	if len(misc) > miscWidth {
		misc = misc[:miscWidth]
	}
	return fmt.Sprintf("%s %-*s %5s %s %-*s",
		e.Code, account.MaxNameLength, name, e.Number, shared.FormatField(e.Amount), miscWidth, misc)
}

// sentinelRecordLine is the end-of-session line: code 00 followed by 38
// spaces.
func sentinelRecordLine() string {
	return string(transaction.CodeEndOfSession) + strings.Repeat(" ", 38)
}

var _ transaction.LogWriter = (*TransactionLog)(nil)
