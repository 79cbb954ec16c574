package ports

import (
	"context"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

// CustomerNotifier emails the customer on every booking transition.
// Implementations log delivery failures and never return them; callers
// fire these in a goroutine and move on.
type CustomerNotifier interface {
	BookingReceived(ctx context.Context, b *domain.Booking)
	BookingConfirmed(ctx context.Context, b *domain.Booking)
	BookingReminder(ctx context.Context, b *domain.Booking)
	ProposalSent(ctx context.Context, b *domain.Booking, p *domain.Proposal)
	OfferCreated(ctx context.Context, b *domain.Booking, o *domain.TourOffer)
	OfferAccepted(ctx context.Context, b *domain.Booking, o *domain.TourOffer)
	OfferDeclined(ctx context.Context, b *domain.Booking, o *domain.TourOffer)
	OfferExpired(ctx context.Context, b *domain.Booking, o *domain.TourOffer)
	InvoiceIssued(ctx context.Context, b *domain.Booking, inv *domain.Invoice)
	InvoiceApproved(ctx context.Context, b *domain.Booking, inv *domain.Invoice)
	LunchOrderCreated(ctx context.Context, b *domain.Booking, o *domain.LunchOrder)
	LunchOrderApproved(ctx context.Context, b *domain.Booking, o *domain.LunchOrder)
}

// StaffNotifier pings the staff chat about things that need a human.
type StaffNotifier interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	ProposalResponded(ctx context.Context, b *domain.Booking, p *domain.Proposal)
	OfferResponded(ctx context.Context, b *domain.Booking, o *domain.TourOffer)
	InvoiceApproved(ctx context.Context, b *domain.Booking, inv *domain.Invoice)
	LunchOrderApproved(ctx context.Context, b *domain.Booking, o *domain.LunchOrder)
}
