package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type ProposalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewProposalRepo(db *dbpg.DB) *ProposalRepository {
	return &ProposalRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the proposal together with its items in one transaction.
func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO proposals (id, booking_id, title, status, total_cents, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, query,
		p.ID, p.BookingID, p.Title, p.Status, p.TotalCents, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}

	itemQuery := `INSERT INTO proposal_items (id, proposal_id, service_type, description,
					service_date, party_size, duration_hours, price_cents, position)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, item := range p.Items {
		if _, err = tx.ExecContext(
			ctx, itemQuery,
			item.ID, item.ProposalID, item.ServiceType, item.Description,
			item.ServiceDate, item.PartySize, item.DurationHours, item.PriceCents, item.Position,
		); err != nil {
			return fmt.Errorf("insert proposal item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	query := `SELECT id, booking_id, title, status, total_cents, created_at, updated_at
			  FROM proposals
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}

	var p domain.Proposal
	if err = row.Scan(
		&p.ID, &p.BookingID, &p.Title, &p.Status, &p.TotalCents, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("scan proposal: %w", err)
	}

	items, err := r.itemsFor(ctx, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Items = items[p.ID]

	return &p, nil
}

func (r *ProposalRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Proposal, error) {
	query := `SELECT id, booking_id, title, status, total_cents, created_at, updated_at
			  FROM proposals
			  WHERE booking_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var res []*domain.Proposal
	var ids []string
	for rows.Next() {
		var p domain.Proposal
		if err = rows.Scan(
			&p.ID, &p.BookingID, &p.Title, &p.Status, &p.TotalCents, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		res = append(res, &p)
		ids = append(ids, p.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return res, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range res {
		p.Items = items[p.ID]
	}

	return res, nil
}

// UpdateStatus moves a proposal from one status to another. On a no-op it
// reports whether the proposal is missing or in the wrong state.
func (r *ProposalRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ProposalStatus) error {
	query := `UPDATE proposals
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("proposal rows affected: %w", err)
	}
	if rows == 0 {
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM proposals WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("check proposal: %w", err)
		}
		var current string
		if scanErr := row.Scan(&current); scanErr != nil {
			return domain.ErrProposalNotFound
		}
		if from == domain.ProposalStatusDraft {
			return domain.ErrProposalNotDraft
		}
		return domain.ErrProposalNotSent
	}

	return nil
}

func (r *ProposalRepository) itemsFor(ctx context.Context, proposalIDs []string) (map[string][]domain.ServiceItem, error) {
	query := `SELECT id, proposal_id, service_type, description, service_date,
					party_size, duration_hours, price_cents, position
			  FROM proposal_items
			  WHERE proposal_id = ANY($1)
			  ORDER BY position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(proposalIDs))
	if err != nil {
		return nil, fmt.Errorf("list proposal items: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.ServiceItem)
	for rows.Next() {
		var item domain.ServiceItem
		if err = rows.Scan(
			&item.ID, &item.ProposalID, &item.ServiceType, &item.Description, &item.ServiceDate,
			&item.PartySize, &item.DurationHours, &item.PriceCents, &item.Position,
		); err != nil {
			return nil, fmt.Errorf("scan proposal item: %w", err)
		}
		res[item.ProposalID] = append(res[item.ProposalID], item)
	}

	return res, rows.Err()
}
