package claim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the durable Ledger backed by a Postgres claims table.
type Repository struct {
	db  *pgxpool.Pool
	log *slog.Logger
}

func NewRepository(db *pgxpool.Pool, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log,
	}
}

const appendAttempts = 3

// EnsureSchema creates the claims table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS claims (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			mobile TEXT NOT NULL,
			bill_no TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			voucher TEXT NOT NULL UNIQUE,
			nationality TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		r.log.Error("failed to ensure claims schema", "error", err)
		return fmt.Errorf("ensure claims schema: %w", err)
	}
	return nil
}

func (r *Repository) ReadAll(ctx context.Context) ([]Record, error) {
	r.log.Info("reading claim ledger")

	rows, err := r.db.Query(ctx, `
		SELECT id, name, mobile, bill_no, amount, voucher,
		       nationality, email, address, created_at
		FROM claims
		ORDER BY created_at, voucher`)
	if err != nil {
		r.log.Error("failed to read claim ledger", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Mobile,
			&rec.BillNo,
			&rec.Amount,
			&rec.Voucher,
			&rec.Nationality,
			&rec.Email,
			&rec.Address,
			&rec.CreatedAt,
		)
		if err != nil {
			r.log.Error("failed to scan claim row", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("failed while iterating claim rows", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	r.log.Info("claim ledger read", "rows", len(records))
	return records, nil
}

// Append writes one ledger row. Transient write failures are retried a
// bounded number of times with doubling backoff before giving up.
func (r *Repository) Append(ctx context.Context, rec Record) error {
	r.log.Info("appending claim row", "bill_no", rec.BillNo, "voucher", rec.Voucher)

	backoff := 100 * time.Millisecond
	var lastErr error

	for attempt := 1; attempt <= appendAttempts; attempt++ {
		_, err := r.db.Exec(ctx, `
			INSERT INTO claims (
				id, name, mobile, bill_no, amount, voucher,
				nationality, email, address, created_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			rec.ID,
			rec.Name,
			rec.Mobile,
			rec.BillNo,
			rec.Amount,
			rec.Voucher,
			rec.Nationality,
			rec.Email,
			rec.Address,
			rec.CreatedAt,
		)
		if err == nil {
			r.log.Info("claim row appended", "voucher", rec.Voucher, "attempt", attempt)
			return nil
		}

		lastErr = err
		r.log.Warn("failed to append claim row",
			"voucher", rec.Voucher, "attempt", attempt, "error", err)

		if attempt < appendAttempts {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrLedgerUnavailable, ctx.Err())
			}
			backoff *= 2
		}
	}

	r.log.Error("giving up appending claim row",
		"voucher", rec.Voucher, "attempts", appendAttempts, "error", lastErr)
	return fmt.Errorf("%w: %v", ErrLedgerUnavailable, lastErr)
}
