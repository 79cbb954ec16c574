package ports

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type OfferRepo interface {
	Create(ctx context.Context, o *domain.TourOffer) error
	GetByID(ctx context.Context, id string) (*domain.TourOffer, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.TourOffer, error)
	Respond(ctx context.Context, id string, status domain.OfferStatus) error
	ExpirePending(ctx context.Context) ([]*domain.TourOffer, error)
}
