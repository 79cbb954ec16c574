package ports

import (
	"context"
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ConfirmWithTour(ctx context.Context, id string, tourDate time.Time, partySize int) error
	ListRemindable(ctx context.Context, window time.Duration) ([]*domain.Booking, error)
	MarkReminderSent(ctx context.Context, id string) error
}
