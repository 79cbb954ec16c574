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

const offerColumns = `id, booking_id, tour_date, party_size, price_cents, message,
		status, expires_at, responded_at, created_at, updated_at`

type OfferRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOfferRepo(db *dbpg.DB) *OfferRepository {
	return &OfferRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.TourOffer) error {
	query := `INSERT INTO tour_offers (id, booking_id, tour_date, party_size, price_cents, message,
				status, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		o.ID, o.BookingID, o.TourDate, o.PartySize, o.PriceCents, o.Message,
		o.Status, o.ExpiresAt, o.CreatedAt, o.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}

	return nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*domain.TourOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM tour_offers WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	return scanOffer(row.Scan)
}

func (r *OfferRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.TourOffer, error) {
	query := `SELECT ` + offerColumns + `
			  FROM tour_offers
			  WHERE booking_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var res []*domain.TourOffer
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

// Respond records the customer's answer while the offer is still pending
// and unexpired. Atomic check and update in one statement.
func (r *OfferRepository) Respond(ctx context.Context, id string, status domain.OfferStatus) error {
	query := `UPDATE tour_offers
			  SET status = $3, responded_at = now(), updated_at = now()
			  WHERE id = $1 AND status = $2 AND expires_at > now()`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.OfferStatusPending, status)
	if err != nil {
		return fmt.Errorf("respond to offer: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("offer rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: оффера нет, уже отвечен или просрочен
		row, err := r.db.QueryRowWithRetry(
			ctx, r.strategy,
			`SELECT status, expires_at FROM tour_offers WHERE id = $1`, id,
		)
		if err != nil {
			return fmt.Errorf("check offer: %w", err)
		}
		var current string
		var expiresAt time.Time
		if scanErr := row.Scan(&current, &expiresAt); scanErr != nil {
			return domain.ErrOfferNotFound
		}
		if current != string(domain.OfferStatusPending) {
			return domain.ErrOfferNotPending
		}
		if !expiresAt.After(time.Now().UTC()) {
			return domain.ErrOfferExpired
		}
		return domain.ErrOfferNotFound
	}

	return nil
}

// ExpirePending flips every overdue pending offer to expired and returns
// the affected offers so the caller can notify customers.
func (r *OfferRepository) ExpirePending(ctx context.Context) ([]*domain.TourOffer, error) {
	query := `UPDATE tour_offers
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND expires_at < now()
			  RETURNING ` + offerColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.OfferStatusPending, domain.OfferStatusExpired,
	)
	if err != nil {
		return nil, fmt.Errorf("expire offers: %w", err)
	}
	defer rows.Close()

	var res []*domain.TourOffer
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}

	return res, rows.Err()
}

func scanOffer(scan func(dest ...any) error) (*domain.TourOffer, error) {
	var o domain.TourOffer
	if err := scan(
		&o.ID, &o.BookingID, &o.TourDate, &o.PartySize, &o.PriceCents, &o.Message,
		&o.Status, &o.ExpiresAt, &o.RespondedAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}

	return &o, nil
}
