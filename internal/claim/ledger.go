package claim

import (
	"context"
	"errors"
)

// Ledger is the append-only claim store. ReadAll returns every row in
// storage order; Append writes exactly one row. Multi-voucher claims are
// appended row by row with no transaction spanning them.
type Ledger interface {
	ReadAll(ctx context.Context) ([]Record, error)
	Append(ctx context.Context, rec Record) error
}

// ErrLedgerUnavailable reports a failed read from or write to the ledger
// backend. The submission that hit it fails outright; nothing is retried
// beyond the backend adapter's own bounded retry.
var ErrLedgerUnavailable = errors.New("voucher ledger unavailable")
