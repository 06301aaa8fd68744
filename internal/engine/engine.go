// Package engine orchestrates the banking operations of one terminal
// session: it validates every operation against the session and the
// account store, mutates balances, and records completed operations for
// the logout flush. Validation fully precedes mutation in every
// operation, so a failed operation leaves no partial state behind.
package engine

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/account"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/session"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/shared"
	"github.com/matteogeraldo05/CSCI3060U-Course-Project/internal/domain/transaction"
)

// ErrInvalidCompany indicates a bill payment to a payee outside the
// known company codes.
var ErrInvalidCompany = errors.New("payee must be one of EC, CQ or FI")

// payees are the billable companies, by code.
var payees = map[string]struct{}{
	"EC": {},
	"CQ": {},
	"FI": {},
}

// Limits are the cumulative per-session caps applied to standard
// sessions, in minor units. Admin sessions are exempt.
type Limits struct {
	Withdrawal int64
	Transfer   int64
	PayBill    int64
}

// Engine executes one operation at a time against the session, the
// account store and the transaction recorder.
type Engine struct {
	logger   *slog.Logger
	store    account.Store
	translog transaction.LogWriter
	limits   Limits
	session  *session.Session
	recorder *transaction.Recorder
}

// New creates an engine over the given store and transaction log. The
// engine owns the session and the recorder for its lifetime.
func New(logger *slog.Logger, store account.Store, translog transaction.LogWriter, limits Limits) *Engine {
	return &Engine{
		logger:   logger,
		store:    store,
		translog: translog,
		limits:   limits,
		session:  session.New(),
		recorder: transaction.NewRecorder(),
	}
}

// LoggedIn reports whether a session is active.
func (e *Engine) LoggedIn() bool {
	return e.session.LoggedIn
}

// IsAdmin reports whether the active session holds the admin role.
func (e *Engine) IsAdmin() bool {
	return e.session.IsAdmin()
}

// Login opens a session. Kind selects the session type: "admin" opens
// an admin session unconditionally, "standard" requires an existing
// holder name, anything else fails with ErrInvalidSessionType.
func (e *Engine) Login(kind, holder string) error {
	if e.session.LoggedIn {
		return session.ErrAlreadyLoggedIn
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "admin":
		if err := e.session.BeginAdmin(); err != nil {
			return err
		}
	case "standard":
		if e.store.FindByName(holder) == nil {
			return session.ErrUnknownHolder
		}
		if err := e.session.BeginStandard(holder); err != nil {
			return err
		}
	default:
		return session.ErrInvalidSessionType
	}

	e.logger.Info("session opened", "session_id", e.session.ID, "role", e.session.Role, "holder", holder)
	return nil
}

// Logout ends the session: the recorder is drained exactly once and
// written to the transaction log with the end-of-session sentinel,
// in-session account mutations are flushed back to the ledger file, and
// the session resets to logged out with all counters zeroed.
func (e *Engine) Logout() error {
	if err := e.session.RequireLogin(); err != nil {
		return err
	}

	sessionID := e.session.ID
	records := e.recorder.DrainAndClear()
	writeErr := e.translog.Write(records)
	if writeErr != nil {
		e.logger.Error("transaction log write failed", "session_id", sessionID, "error", writeErr)
	}
	if err := e.store.Flush(); err != nil {
		e.logger.Error("ledger flush failed", "session_id", sessionID, "error", err)
		if writeErr == nil {
			writeErr = err
		}
	}

	e.session.End()
	e.logger.Info("session closed", "session_id", sessionID, "records", len(records))
	return writeErr
}

// Deposit records a deposit against the resolved account. The credited
// amount is held rather than added to the balance: it becomes usable
// only in a later session.
func (e *Engine) Deposit(holder, number string, amount int64) (int64, error) {
	acct, name, err := e.resolveTarget(holder, number)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrInvalidAmount
	}

	e.recorder.Record(transaction.CodeDeposit, name, acct.Number, amount, "")
	e.logOp(transaction.CodeDeposit, acct.Number, amount)
	return acct.Balance, nil
}

// Withdraw debits the resolved account. Standard sessions are capped by
// the cumulative withdrawal limit.
func (e *Engine) Withdraw(holder, number string, amount int64) (int64, error) {
	acct, name, err := e.resolveTarget(holder, number)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrInvalidAmount
	}
	if !e.session.IsAdmin() && e.session.Counters.Withdrawn+amount > e.limits.Withdrawal {
		return 0, session.ErrLimitExceeded{Operation: "withdrawal", Limit: e.limits.Withdrawal}
	}
	if err := acct.Debit(amount); err != nil {
		return 0, err
	}
	if !e.session.IsAdmin() {
		e.session.Counters.Withdrawn += amount
	}

	e.recorder.Record(transaction.CodeWithdrawal, name, acct.Number, amount, "")
	e.logOp(transaction.CodeWithdrawal, acct.Number, amount)
	return acct.Balance, nil
}

// Transfer moves funds from the sender, resolved by name and number, to
// the receiver, resolved by number only. Both accounts must be enabled.
// Standard sessions are capped by the cumulative transfer limit.
func (e *Engine) Transfer(holder, senderNumber, receiverNumber string, amount int64) (int64, error) {
	sender, name, err := e.resolveTarget(holder, senderNumber)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrInvalidAmount
	}
	if !e.session.IsAdmin() && e.session.Counters.Transferred+amount > e.limits.Transfer {
		return 0, session.ErrLimitExceeded{Operation: "transfer", Limit: e.limits.Transfer}
	}
	receiver := e.store.FindByNumber(receiverNumber)
	if receiver == nil {
		return 0, account.ErrAccountNotFound{Number: receiverNumber}
	}
	if receiver.Disabled() {
		return 0, account.ErrAccountDisabled{Number: receiverNumber}
	}
	// The credited balance must still fit the fixed-width ledger field.
	if receiver.Balance > account.MaxBalance-amount {
		return 0, account.ErrBalanceOutOfRange
	}
	if err := sender.Debit(amount); err != nil {
		return 0, err
	}
	receiver.Balance += amount
	if !e.session.IsAdmin() {
		e.session.Counters.Transferred += amount
	}

	e.recorder.RecordTransfer(transaction.CodeTransfer, sender.Number, receiver.Number, amount, "", name)
	e.logOp(transaction.CodeTransfer, sender.Number, amount)
	return sender.Balance, nil
}

// PayBill debits the resolved account in favour of one of the known
// payee companies. Standard sessions are capped by the cumulative bill
// payment limit.
func (e *Engine) PayBill(holder, number, company string, amount int64) (int64, error) {
	acct, name, err := e.resolveTarget(holder, number)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, account.ErrInvalidAmount
	}
	if _, ok := payees[company]; !ok {
		return 0, ErrInvalidCompany
	}
	if !e.session.IsAdmin() && e.session.Counters.BillsPaid+amount > e.limits.PayBill {
		return 0, session.ErrLimitExceeded{Operation: "bill payment", Limit: e.limits.PayBill}
	}
	if err := acct.Debit(amount); err != nil {
		return 0, err
	}
	if !e.session.IsAdmin() {
		e.session.Counters.BillsPaid += amount
	}

	e.recorder.Record(transaction.CodePayBill, name, acct.Number, amount, company)
	e.logOp(transaction.CodePayBill, acct.Number, amount)
	return acct.Balance, nil
}

// CreateAccount appends a new record to the ledger file. Admin only.
// The account cannot transact until a later session reloads the ledger.
func (e *Engine) CreateAccount(name string, initialBalance int64) (*account.Account, error) {
	if err := e.session.RequireAdmin(); err != nil {
		return nil, err
	}

	acct, err := e.store.Create(name, initialBalance)
	if err != nil {
		return nil, err
	}

	e.recorder.Record(transaction.CodeCreate, name, acct.Number, initialBalance, "")
	e.logOp(transaction.CodeCreate, acct.Number, initialBalance)
	return acct, nil
}

// DeleteAccount removes the matching record from the ledger file.
// Admin only.
func (e *Engine) DeleteAccount(name, number string) error {
	if err := e.session.RequireAdmin(); err != nil {
		return err
	}
	if !account.ValidNumber(number) {
		return account.ErrInvalidNumber
	}
	if err := e.store.Delete(name, number); err != nil {
		return err
	}

	e.recorder.Record(transaction.CodeDelete, name, number, 0, "")
	e.logOp(transaction.CodeDelete, number, 0)
	return nil
}

// DisableAccount sets the matching account's status to disabled. Admin
// only.
func (e *Engine) DisableAccount(name, number string) error {
	if err := e.session.RequireAdmin(); err != nil {
		return err
	}
	acct := e.store.FindByNameAndNumber(name, number)
	if acct == nil {
		return account.ErrAccountNotFound{Name: name, Number: number}
	}
	acct.Disable()

	e.recorder.Record(transaction.CodeDisable, name, number, 0, "")
	e.logOp(transaction.CodeDisable, number, 0)
	return nil
}

// ChangePlan toggles the matching account's plan between student and
// non-student. Admin only.
func (e *Engine) ChangePlan(name, number string) error {
	if err := e.session.RequireAdmin(); err != nil {
		return err
	}
	acct := e.store.FindByNameAndNumber(name, number)
	if acct == nil {
		return account.ErrAccountNotFound{Name: name, Number: number}
	}
	if err := acct.TogglePlan(); err != nil {
		return err
	}

	e.recorder.Record(transaction.CodeChangePlan, name, number, 0, string(acct.Plan))
	e.logOp(transaction.CodeChangePlan, number, 0)
	return nil
}

// resolveTarget is the common preamble for account-scoped operations:
// standard sessions act on their bound holder, admin sessions on the
// prompted holder; the account must match on both name and number and
// must not be disabled.
func (e *Engine) resolveTarget(holder, number string) (*account.Account, string, error) {
	if err := e.session.RequireLogin(); err != nil {
		return nil, "", err
	}

	name := holder
	if !e.session.IsAdmin() {
		name = e.session.HolderName
	}

	acct := e.store.FindByNameAndNumber(name, number)
	if acct == nil {
		return nil, "", account.ErrAccountNotFound{Name: name, Number: number}
	}
	if acct.Disabled() {
		return nil, "", account.ErrAccountDisabled{Number: number}
	}
	return acct, name, nil
}

func (e *Engine) logOp(code transaction.Code, number string, amount int64) {
	e.logger.Info("operation completed",
		"session_id", e.session.ID,
		"code", string(code),
		"account", number,
		"amount", shared.FormatAmount(amount),
	)
}
