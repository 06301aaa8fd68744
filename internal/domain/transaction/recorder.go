package transaction

// Recorder accumulates the records of one session in insertion order.
// Callers are responsible for the correctness of what they record.
type Recorder struct {
	records []Record
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends a common-shaped entry. An empty misc field is stored
// as MiscNone.
func (r *Recorder) Record(code Code, name, number string, amount int64, misc string) {
	if misc == "" {
		misc = MiscNone
	}
	r.records = append(r.records, Entry{
		Code:   code,
		Name:   name,
		Number: number,
		Amount: amount,
		Misc:   misc,
	})
}

// RecordTransfer appends a transfer-shaped entry carrying both account
// numbers. An empty name falls back to FallbackHolderName.
func (r *Recorder) RecordTransfer(code Code, sender, receiver string, amount int64, misc, name string) {
	if misc == "" {
		misc = MiscNone
	}
	if name == "" {
		name = FallbackHolderName
	}
	r.records = append(r.records, TransferEntry{
		Entry: Entry{
			Code:   code,
			Name:   name,
			Number: sender,
			Amount: amount,
			Misc:   misc,
		},
		Receiver: receiver,
	})
}

// Len reports the number of accumulated records.
func (r *Recorder) Len() int {
	return len(r.records)
}

// DrainAndClear returns the accumulated records in insertion order and
// clears the recorder. It is the only way records leave the recorder,
// so each session's records are flushed exactly once.
func (r *Recorder) DrainAndClear() []Record {
	out := r.records
	r.records = nil
	return out
}
