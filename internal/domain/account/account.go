package account

import "errors"

// Field limits imposed by the fixed-width ledger record.
const (
	NumberWidth   = 5
	MaxNameLength = 20
	MaxBalance    = 9999999 // 99999.99 in minor units
)

// Common errors
var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNameTooLong       = errors.New("holder name exceeds 20 characters")
	ErrBalanceOutOfRange = errors.New("balance must be between 0.00 and 99999.99")
	ErrInvalidNumber     = errors.New("account number must be exactly 5 digits")
	ErrInvalidPlan       = errors.New("account plan must be student or non-student")
)

// Status marks whether an account may take part in balance-affecting
// operations.
type Status string

const (
	StatusActive   Status = "A"
	StatusDisabled Status = "D"
)

// Plan is the account payment plan. Ledger records do not carry the
// plan, so accounts loaded from file start out with PlanUnset.
type Plan string

const (
	PlanUnset      Plan = ""
	PlanStudent    Plan = "S"
	PlanNonStudent Plan = "N"
)

// Account represents one bank account. Balance is held in minor units
// (cents); Number is the 5-digit zero-padded identifier and is
// immutable once created.
type Account struct {
	Number     string
	HolderName string
	Status     Status
	Balance    int64
	Plan       Plan
}

// Disabled reports whether the account rejects balance-affecting
// operations.
func (a *Account) Disabled() bool {
	return a.Status == StatusDisabled
}

// Disable marks the account as disabled.
func (a *Account) Disable() {
	a.Status = StatusDisabled
}

// Credit adds the amount to the balance. The balance never exceeds
// MaxBalance: a credit past it fails with ErrBalanceOutOfRange and
// leaves the account untouched.
func (a *Account) Credit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Balance > MaxBalance-amount {
		return ErrBalanceOutOfRange
	}
	a.Balance += amount
	return nil
}

// Debit subtracts the amount from the balance. The balance never goes
// negative: a debit past the balance fails with ErrInsufficientFunds
// and leaves the account untouched.
func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Balance < amount {
		return ErrInsufficientFunds
	}
	a.Balance -= amount
	return nil
}

// TogglePlan switches the plan between student and non-student.
// Accounts whose plan was never populated cannot be toggled.
func (a *Account) TogglePlan() error {
	switch a.Plan {
	case PlanStudent:
		a.Plan = PlanNonStudent
	case PlanNonStudent:
		a.Plan = PlanStudent
	default:
		return ErrInvalidPlan
	}
	return nil
}

// ValidNumber reports whether s is a well-formed account number:
// exactly 5 digits.
func ValidNumber(s string) bool {
	if len(s) != NumberWidth {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
