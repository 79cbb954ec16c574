package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

const bookingColumns = `id, reference, service_type, status, tour_date, party_size,
		customer_name, customer_email, customer_phone, pickup_address, notes,
		reminder_sent_at, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and fills in its human reference, which is
// numbered by a database sequence.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, reference, service_type, status, tour_date, party_size,
				customer_name, customer_email, customer_phone, pickup_address, notes,
				created_at, updated_at)
			  VALUES ($1, 'WWT-' || to_char(now(), 'YYYY') || '-' || lpad(nextval('booking_ref_seq')::text, 4, '0'),
			  		$2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING reference`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.ID, b.ServiceType, b.Status, b.TourDate, b.PartySize,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.PickupAddress, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.Reference); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, reference)
	if err != nil {
		return nil, fmt.Errorf("get booking by reference: %w", err)
	}

	return scanBooking(row.Scan)
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`

	var conds []string
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conds = append(conds, fmt.Sprintf("tour_date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conds = append(conds, fmt.Sprintf("tour_date <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus moves an open booking to the given status. Cancelled
// bookings stay cancelled.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, pq.Array(domain.OpenStatuses))
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: брони нет или она уже закрыта
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		var current string
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrBookingClosed
	}

	return nil
}

// ConfirmWithTour confirms a booking and pins the agreed tour date and
// party size, used when the customer accepts an offer for a different
// date than they first asked for.
func (r *BookingRepository) ConfirmWithTour(ctx context.Context, id string, tourDate time.Time, partySize int) error {
	query := `UPDATE bookings
			  SET status = $2, tour_date = $3, party_size = $4, reminder_sent_at = NULL, updated_at = now()
			  WHERE id = $1 AND status = ANY($5)`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.BookingStatusConfirmed, tourDate, partySize, pq.Array(domain.OpenStatuses),
	)
	if err != nil {
		return fmt.Errorf("confirm booking with tour: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check booking: %w", err)
		}
		var current string
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrBookingClosed
	}

	return nil
}

// ListRemindable returns confirmed bookings whose tour date falls inside
// the reminder window and that have not been reminded yet.
func (r *BookingRepository) ListRemindable(ctx context.Context, window time.Duration) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE status = $1
			    AND reminder_sent_at IS NULL
			    AND tour_date >= now()
			    AND tour_date <= now() + make_interval(secs => $2)
			  ORDER BY tour_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusConfirmed, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("list remindable bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE bookings SET reminder_sent_at = now(), updated_at = now() WHERE id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	return nil
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	if err := scan(
		&b.ID, &b.Reference, &b.ServiceType, &b.Status, &b.TourDate, &b.PartySize,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.PickupAddress, &b.Notes,
		&b.ReminderSentAt, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}
