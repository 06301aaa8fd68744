// Package flatfile is the data layer: it implements the account store
// and the transaction log against the fixed-width flat files that make
// up the bank's entire persistence.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/account"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/shared"
)

// Account ledger record layout: NNNNN_AAAAAAAAAAAAAAAAAAAA_S_PPPPPPPP
// (37 characters; name at offset 6, status at 27, balance at 29).
const (
	recordLength = 37
	nameOffset   = 6
	statusOffset = 27
	fieldOffset  = 29

	// EndOfFileName in the name field terminates loading.
	EndOfFileName = "END_OF_FILE"
)

// ErrLedgerEmpty indicates there is no record to derive the next
// account number from.
var ErrLedgerEmpty = errors.New("account ledger holds no records")

// ErrMalformedRecord indicates a ledger line that does not follow the
// fixed-width format. Line is 1-based and zero when unknown.
type ErrMalformedRecord struct {
	Line   int
	Reason string
}

func (e ErrMalformedRecord) Error() string {
	if e.Line == 0 {
		return "malformed ledger record: " + e.Reason
	}
	return fmt.Sprintf("malformed ledger record at line %d: %s", e.Line, e.Reason)
}

// Is matches any ErrMalformedRecord when the target carries no detail.
func (e ErrMalformedRecord) Is(target error) bool {
	t, ok := target.(ErrMalformedRecord)
	if !ok {
		return false
	}
	return t.Line == 0 && t.Reason == ""
}

// ParseLine interprets one fixed-width account record.
func ParseLine(line string) (*account.Account, error) {
	if len(line) != recordLength {
		return nil, ErrMalformedRecord{Reason: fmt.Sprintf("expected %d characters, got %d", recordLength, len(line))}
	}

	number := line[:account.NumberWidth]
	if !account.ValidNumber(number) {
		return nil, ErrMalformedRecord{Reason: "account number field is not 5 digits"}
	}

	name := strings.TrimRight(line[nameOffset:nameOffset+account.MaxNameLength], " ")

	status := account.Status(line[statusOffset : statusOffset+1])
	if status != account.StatusActive && status != account.StatusDisabled {
		return nil, ErrMalformedRecord{Reason: "status field must be 'A' or 'D'"}
	}

	balance, err := shared.ParseField(line[fieldOffset:])
	if err != nil {
		return nil, ErrMalformedRecord{Reason: "balance field is not a fixed-point amount"}
	}

	return &account.Account{
		Number:     number,
		HolderName: name,
		Status:     status,
		Balance:    balance,
		Plan:       account.PlanUnset,
	}, nil
}

// FormatLine is the inverse of ParseLine.
func FormatLine(a *account.Account) string {
	return fmt.Sprintf("%5s %-20s %s %s",
		a.Number, a.HolderName, a.Status, shared.FormatField(a.Balance))
}

// LoadAccounts reads records in file order until the END_OF_FILE
// sentinel or end of input. Remaining lines after the sentinel are
// ignored.
func LoadAccounts(path string) ([]*account.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var accounts []*account.Account
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if sentinelLine(line) {
			break
		}
		a, err := ParseLine(line)
		if err != nil {
			var malformed ErrMalformedRecord
			if errors.As(err, &malformed) {
				malformed.Line = lineNo
				return nil, malformed
			}
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

// NextNumber derives the next sequential account number from the last
// record, re-zero-padded to 5 digits.
func NextNumber(accounts []*account.Account) (string, error) {
	if len(accounts) == 0 {
		return "", ErrLedgerEmpty
	}
	last, err := strconv.Atoi(accounts[len(accounts)-1].Number)
	if err != nil {
		return "", ErrMalformedRecord{Reason: "account number field is not numeric"}
	}
	return fmt.Sprintf("%0*d", account.NumberWidth, last+1), nil
}

// sentinelLine reports whether the line's name field is the
// END_OF_FILE marker. Lines too short to carry a name field never
// match.
func sentinelLine(line string) bool {
	if len(line) < nameOffset+len(EndOfFileName) {
		return false
	}
	name := line[nameOffset:]
	if len(name) > account.MaxNameLength {
		name = name[:account.MaxNameLength]
	}
	return strings.TrimRight(name, " ") == EndOfFileName
}
