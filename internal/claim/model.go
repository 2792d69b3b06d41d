package claim

import "time"

// Record is one row of the voucher ledger. Rows are append-only: a record
// is written once at claim time and never mutated.
type Record struct {
	ID          string
	Name        string
	Mobile      string
	BillNo      string
	Amount      float64
	Voucher     string
	Nationality string
	Email       string
	Address     string
	CreatedAt   time.Time
}

// Submission carries the customer-entered fields of one claim attempt.
type Submission struct {
	Name        string
	Mobile      string
	BillNo      string
	Amount      float64
	Nationality string
	Email       string
	Address     string
}

// Details aggregates the ledger rows written for a single bill.
type Details struct {
	BillNo   string
	Name     string
	Mobile   string
	Amount   float64
	Vouchers []string
}
