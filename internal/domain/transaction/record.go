// Package transaction defines the session transaction records, the
// operation codes they carry, and the recorder that accumulates them
// until they are flushed to the transaction log at logout.
package transaction

// Code is the two-digit operation tag written to the transaction log.
type Code string

const (
	CodeEndOfSession Code = "00"
	CodeWithdrawal   Code = "01"
	CodeTransfer     Code = "02"
	CodePayBill      Code = "03"
	CodeDeposit      Code = "04"
	CodeCreate       Code = "05"
	CodeDelete       Code = "06"
	CodeDisable      Code = "07"
	CodeChangePlan   Code = "08"
)

// Defaults for fields a record does not meaningfully populate. The
// 2-character wire field clips MiscNone to "N/".
const (
	MiscNone           = "N/A"
	FallbackHolderName = "Standard_Account"
)

// Record is the tagged variant over transaction entries: every record
// exposes its common wire fields through Common, and transfer records
// additionally carry the receiver's account number.
type Record interface {
	Common() Entry
}

// Entry holds the fields every transaction-log line carries. Number is
// the acting account's number (the sender's, for transfers); Amount is
// in minor units.
type Entry struct {
	Code   Code
	Name   string
	Number string
	Amount int64
	Misc   string
}

func (e Entry) Common() Entry { return e }

// TransferEntry is a transfer-shaped record carrying both sides of the
// movement. The embedded Entry's Number is the sender.
type TransferEntry struct {
	Entry
	Receiver string
}

var (
	_ Record = Entry{}
	_ Record = TransferEntry{}
)
