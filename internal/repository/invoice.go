package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

const invoiceColumns = `id, booking_id, number, amount_cents, memo, status,
		approved_at, created_at, updated_at`

type InvoiceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvoiceRepo(db *dbpg.DB) *InvoiceRepository {
	return &InvoiceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the invoice and fills in its number from the invoice
// sequence.
func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (id, booking_id, number, amount_cents, memo, status, created_at, updated_at)
			  VALUES ($1, $2, 'INV-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('invoice_num_seq')::text, 4, '0'),
			  		$3, $4, $5, $6, $7)
			  RETURNING number`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		inv.ID, inv.BookingID, inv.AmountCents, inv.Memo, inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	if err = row.Scan(&inv.Number); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}

	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	var inv domain.Invoice
	if err = row.Scan(
		&inv.ID, &inv.BookingID, &inv.Number, &inv.AmountCents, &inv.Memo, &inv.Status,
		&inv.ApprovedAt, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("scan invoice: %w", err)
	}

	return &inv, nil
}

func (r *InvoiceRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
			  FROM invoices
			  WHERE booking_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var res []*domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err = rows.Scan(
			&inv.ID, &inv.BookingID, &inv.Number, &inv.AmountCents, &inv.Memo, &inv.Status,
			&inv.ApprovedAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		res = append(res, &inv)
	}

	return res, rows.Err()
}

// Approve moves a pending invoice to approved. A customer can only approve
// once; repeats and cancelled invoices are conflicts.
func (r *InvoiceRepository) Approve(ctx context.Context, id string) error {
	query := `UPDATE invoices
			  SET status = $3, approved_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.InvoiceStatusPending, domain.InvoiceStatusApproved,
	)
	if err != nil {
		return fmt.Errorf("approve invoice: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("invoice rows affected: %w", err)
	}
	if rows == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM invoices WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check invoice: %w", err)
		}
		var current string
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrInvoiceNotFound
		}
		return domain.ErrInvoiceNotPending
	}

	return nil
}
