package transaction

// LogWriter persists one session's drained records, terminated by the
// end-of-session sentinel.
type LogWriter interface {
	Write(records []Record) error
}
