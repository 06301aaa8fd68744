package account

// Store defines account lookup and ledger-file maintenance operations.
// Lookups return nil when no record matches; the name+number lookup is
// the primary authorization check for account-scoped operations.
type Store interface {
	// Load replaces the in-memory collection with the contents of the
	// ledger file.
	Load() error

	FindByNameAndNumber(name, number string) *Account
	FindByName(name string) *Account
	FindByNumber(number string) *Account

	// Create derives the next sequential account number, validates the
	// name and initial balance, and writes the new record to the ledger
	// file. The new account is not added to the in-memory collection:
	// it becomes transactable only after a reload in a later session.
	Create(name string, initialBalance int64) (*Account, error)

	// Delete removes the matching record from the ledger file. The
	// in-memory collection is left as is; callers must not rely on
	// post-delete absence within the same session.
	Delete(name, number string) error

	// Flush writes in-session balance and status mutations back to the
	// ledger file, leaving untouched records byte-identical.
	Flush() error
}

// ErrAccountNotFound indicates that no ledger record matches the
// presented identity.
type ErrAccountNotFound struct {
	Name   string
	Number string
}

func (e ErrAccountNotFound) Error() string {
	if e.Name == "" {
		return "account not found: " + e.Number
	}
	return "account not found: " + e.Number + " (" + e.Name + ")"
}

// Is matches any ErrAccountNotFound when the target carries no number.
func (e ErrAccountNotFound) Is(target error) bool {
	t, ok := target.(ErrAccountNotFound)
	if !ok {
		return false
	}
	if t.Number == "" && t.Name == "" {
		return true
	}
	return e.Number == t.Number && e.Name == t.Name
}

// ErrAccountDisabled indicates a balance-affecting operation against a
// disabled account.
type ErrAccountDisabled struct {
	Number string
}

func (e ErrAccountDisabled) Error() string {
	return "account is disabled: " + e.Number
}

// Is matches any ErrAccountDisabled when the target carries no number.
func (e ErrAccountDisabled) Is(target error) bool {
	t, ok := target.(ErrAccountDisabled)
	if !ok {
		return false
	}
	return t.Number == "" || e.Number == t.Number
}
