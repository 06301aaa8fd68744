package flatfile

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/account"
)

// Store is the file-backed account store. It keeps the session's
// in-memory collection and performs the ledger-file maintenance that
// create, delete and the logout flush require. It is not safe for
// concurrent use; the terminal runs one session at a time.
type Store struct {
	logger   *slog.Logger
	path     string
	accounts []*account.Account
}

var _ account.Store = (*Store)(nil)

// NewStore creates a store over the ledger file at path. Call Load
// before the first lookup.
func NewStore(logger *slog.Logger, path string) *Store {
	return &Store{
		logger: logger,
		path:   path,
	}
}

// Load replaces the in-memory collection with the ledger file's
// records.
func (s *Store) Load() error {
	accounts, err := LoadAccounts(s.path)
	if err != nil {
		return fmt.Errorf("loading account ledger %s: %w", s.path, err)
	}
	s.accounts = accounts
	s.logger.Info("account ledger loaded", "path", s.path, "accounts", len(accounts))
	return nil
}

// FindByNameAndNumber returns the account matching both fields exactly,
// or nil. This is the primary authorization check.
func (s *Store) FindByNameAndNumber(name, number string) *account.Account {
	for _, a := range s.accounts {
		if a.HolderName == name && a.Number == number {
			return a
		}
	}
	return nil
}

// FindByName returns the first account held under name, or nil.
func (s *Store) FindByName(name string) *account.Account {
	for _, a := range s.accounts {
		if a.HolderName == name {
			return a
		}
	}
	return nil
}

// FindByNumber returns the account with the given number, or nil.
func (s *Store) FindByNumber(number string) *account.Account {
	for _, a := range s.accounts {
		if a.Number == number {
			return a
		}
	}
	return nil
}

// Create validates the new holder's name and initial balance, derives
// the next account number from the ledger file, and writes the record
// ahead of the END_OF_FILE sentinel. The account is deliberately not
// added to the in-memory collection: it cannot transact until the
// ledger is reloaded in a later session.
func (s *Store) Create(name string, initialBalance int64) (*account.Account, error) {
	if len(name) > account.MaxNameLength {
		return nil, account.ErrNameTooLong
	}
	if initialBalance < 0 || initialBalance > account.MaxBalance {
		return nil, account.ErrBalanceOutOfRange
	}

	// Re-read the file rather than the in-memory set so that accounts
	// created earlier in this session advance the number sequence.
	existing, err := LoadAccounts(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading account ledger %s: %w", s.path, err)
	}
	number, err := NextNumber(existing)
	if err != nil {
		return nil, err
	}

	a := &account.Account{
		Number:     number,
		HolderName: name,
		Status:     account.StatusActive,
		Balance:    initialBalance,
		Plan:       account.PlanUnset,
	}

	lines, err := readLines(s.path)
	if err != nil {
		return nil, err
	}
	record := FormatLine(a)
	inserted := false
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		if !inserted && sentinelLine(line) {
			out = append(out, record)
			inserted = true
		}
		out = append(out, line)
	}
	if !inserted {
		out = append(out, record)
	}

	if err := writeLines(s.path, out); err != nil {
		return nil, err
	}
	s.logger.Info("account created", "number", number, "holder", name)
	return a, nil
}

// Delete rewrites the ledger file omitting the record whose number and
// name both match; the name comparison is case-insensitive. The
// in-memory collection keeps the account until the next Load.
func (s *Store) Delete(name, number string) error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}

	deleted := false
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if !deleted && !sentinelLine(line) && matchesRecord(line, name, number) {
			deleted = true
			continue
		}
		out = append(out, line)
	}
	if !deleted {
		return account.ErrAccountNotFound{Name: name, Number: number}
	}

	if err := writeLines(s.path, out); err != nil {
		return err
	}
	s.logger.Info("account deleted", "number", number, "holder", name)
	return nil
}

// Flush writes in-session balance and status mutations back to the
// ledger file. Records whose in-memory state matches the file, and
// records with no in-memory counterpart (created or deleted this
// session), are left byte-identical.
func (s *Store) Flush() error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}

	changed := 0
	for i, line := range lines {
		if sentinelLine(line) {
			break
		}
		parsed, err := ParseLine(line)
		if err != nil {
			continue
		}
		mem := s.FindByNumber(parsed.Number)
		if mem == nil {
			continue
		}
		if mem.Balance != parsed.Balance || mem.Status != parsed.Status {
			lines[i] = FormatLine(mem)
			changed++
		}
	}
	if changed == 0 {
		return nil
	}

	if err := writeLines(s.path, lines); err != nil {
		return err
	}
	s.logger.Info("account ledger flushed", "path", s.path, "updated", changed)
	return nil
}

// matchesRecord reports whether a raw ledger line carries the given
// number and (case-insensitively) the given holder name.
func matchesRecord(line, name, number string) bool {
	if len(line) != recordLength {
		return false
	}
	if line[:account.NumberWidth] != number {
		return false
	}
	recorded := strings.TrimRight(line[nameOffset:nameOffset+account.MaxNameLength], " ")
	return strings.EqualFold(recorded, name)
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// writeLines replaces the file atomically: the new contents go to a
// temp file in the same directory, then rename swaps it in.
func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
