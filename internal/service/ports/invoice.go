package ports

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Invoice, error)
	Approve(ctx context.Context, id string) error
}
