package ports

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type ProposalRepo interface {
	Create(ctx context.Context, p *domain.Proposal) error
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Proposal, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ProposalStatus) error
}
