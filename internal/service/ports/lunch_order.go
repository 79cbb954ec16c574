package ports

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type LunchOrderRepo interface {
	Create(ctx context.Context, o *domain.LunchOrder) error
	GetByID(ctx context.Context, id string) (*domain.LunchOrder, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.LunchOrder, error)
	Approve(ctx context.Context, id string) error
}
