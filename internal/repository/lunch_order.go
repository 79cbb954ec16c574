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

const lunchOrderColumns = `id, booking_id, party_size, per_person_cents, estimate_cents,
		menu_notes, status, approved_at, created_at, updated_at`

type LunchOrderRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLunchOrderRepo(db *dbpg.DB) *LunchOrderRepository {
	return &LunchOrderRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *LunchOrderRepository) Create(ctx context.Context, o *domain.LunchOrder) error {
	query := `INSERT INTO lunch_orders (id, booking_id, party_size, per_person_cents, estimate_cents,
				menu_notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.BookingID, o.PartySize, o.PerPersonCents, o.EstimateCents,
		o.MenuNotes, o.Status, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert lunch order: %w", err)
	}

	return nil
}

func (r *LunchOrderRepository) GetByID(ctx context.Context, id string) (*domain.LunchOrder, error) {
	query := `SELECT ` + lunchOrderColumns + ` FROM lunch_orders WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get lunch order: %w", err)
	}

	var o domain.LunchOrder
	if err = row.Scan(
		&o.ID, &o.BookingID, &o.PartySize, &o.PerPersonCents, &o.EstimateCents,
		&o.MenuNotes, &o.Status, &o.ApprovedAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLunchOrderNotFound
		}
		return nil, fmt.Errorf("scan lunch order: %w", err)
	}

	return &o, nil
}

func (r *LunchOrderRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.LunchOrder, error) {
	query := `SELECT ` + lunchOrderColumns + `
			  FROM lunch_orders
			  WHERE booking_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list lunch orders: %w", err)
	}
	defer rows.Close()

	var res []*domain.LunchOrder
	for rows.Next() {
		var o domain.LunchOrder
		if err = rows.Scan(
			&o.ID, &o.BookingID, &o.PartySize, &o.PerPersonCents, &o.EstimateCents,
			&o.MenuNotes, &o.Status, &o.ApprovedAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lunch order: %w", err)
		}
		res = append(res, &o)
	}

	return res, rows.Err()
}

func (r *LunchOrderRepository) Approve(ctx context.Context, id string) error {
	query := `UPDATE lunch_orders
			  SET status = $3, approved_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.LunchOrderStatusPending, domain.LunchOrderStatusApproved,
	)
	if err != nil {
		return fmt.Errorf("approve lunch order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("lunch order rows affected: %w", err)
	}
	if rows == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM lunch_orders WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check lunch order: %w", err)
		}
		var current string
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrLunchOrderNotFound
		}
		return domain.ErrLunchOrderNotPending
	}

	return nil
}
