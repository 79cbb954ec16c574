package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/metrics"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports"
)

type OfferService struct {
	offerRepo   ports.OfferRepo
	bookingRepo ports.BookingRepo
	rates       *pricing.RateTable
	customer    ports.CustomerNotifier
	staff       ports.StaffNotifier
	events      ports.EventPublisher
	defaultTTL  time.Duration
	logger      logger.Logger
}

func NewOfferService(
	offerRepo ports.OfferRepo,
	bookingRepo ports.BookingRepo,
	rates *pricing.RateTable,
	customer ports.CustomerNotifier,
	staff ports.StaffNotifier,
	events ports.EventPublisher,
	defaultTTL time.Duration,
	logger logger.Logger,
) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		bookingRepo: bookingRepo,
		rates:       rates,
		customer:    customer,
		staff:       staff,
		events:      events,
		defaultTTL:  defaultTTL,
		logger:      logger,
	}
}

// Create extends a concrete date and price to the customer. A zero price
// on a wine-tour booking is quoted from the rate table at minimum hours.
func (s *OfferService) Create(ctx context.Context, bookingID string, input domain.CreateOfferInput) (*domain.TourOffer, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingClosed
	}

	if !input.TourDate.After(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: offer date must be in the future", domain.ErrValidation)
	}

	partySize := input.PartySize
	if partySize == 0 {
		partySize = booking.PartySize
	}
	if partySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	priceCents := input.PriceCents
	if priceCents == 0 {
		if booking.ServiceType != domain.ServiceTypeWineTour {
			return nil, fmt.Errorf("%w: transfer offers need a fixed price", domain.ErrValidation)
		}
		priceCents, err = s.rates.WineTourQuote(input.TourDate, partySize, 0)
		if err != nil {
			return nil, fmt.Errorf("quote offer: %w", err)
		}
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	now := time.Now().UTC()
	offer := &domain.TourOffer{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		TourDate:   input.TourDate,
		PartySize:  partySize,
		PriceCents: priceCents,
		Message:    input.Message,
		Status:     domain.OfferStatusPending,
		ExpiresAt:  now.Add(ttl),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	s.logger.Info("offer created",
		logger.String("offer_id", offer.ID),
		logger.String("booking_id", bookingID),
		logger.Int64("price_cents", offer.PriceCents),
		logger.Duration("ttl", ttl),
	)

	go s.customer.OfferCreated(context.WithoutCancel(ctx), booking, offer)

	return offer, nil
}

func (s *OfferService) Get(ctx context.Context, id string) (*domain.TourOffer, error) {
	return s.offerRepo.GetByID(ctx, id)
}

func (s *OfferService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.TourOffer, error) {
	return s.offerRepo.ListByBooking(ctx, bookingID)
}

// Respond records the customer's decision. Accepting confirms the booking
// on the offered date.
func (s *OfferService) Respond(ctx context.Context, id string, decision domain.OfferDecision) (*domain.TourOffer, error) {
	if !decision.IsValid() {
		return nil, fmt.Errorf("%w: decision must be accept or decline", domain.ErrValidation)
	}

	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, offer.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	status := domain.OfferStatusDeclined
	if decision == domain.OfferDecisionAccept {
		status = domain.OfferStatusAccepted
	}

	if err = s.offerRepo.Respond(ctx, id, status); err != nil {
		return nil, fmt.Errorf("respond to offer: %w", err)
	}
	now := time.Now().UTC()
	offer.Status = status
	offer.RespondedAt = &now

	metrics.IncOfferResponses(string(decision))
	s.logger.Info("offer responded",
		logger.String("offer_id", offer.ID),
		logger.String("booking_id", offer.BookingID),
		logger.String("decision", string(decision)),
	)

	if status == domain.OfferStatusAccepted {
		if err = s.bookingRepo.ConfirmWithTour(ctx, booking.ID, offer.TourDate, offer.PartySize); err != nil {
			s.logger.Error("failed to confirm booking after offer accept",
				logger.String("booking_id", booking.ID),
				logger.String("error", err.Error()),
			)
		} else {
			booking.Status = domain.BookingStatusConfirmed
			booking.TourDate = offer.TourDate
			booking.PartySize = offer.PartySize
		}
		go s.customer.OfferAccepted(context.WithoutCancel(ctx), booking, offer)
		s.events.Publish(ctx, events.TypeOfferAccepted, offer)
	} else {
		go s.customer.OfferDeclined(context.WithoutCancel(ctx), booking, offer)
		s.events.Publish(ctx, events.TypeOfferDeclined, offer)
	}

	go s.staff.OfferResponded(context.WithoutCancel(ctx), booking, offer)

	return offer, nil
}

// ExpirePending flips overdue offers to expired and tells their customers.
// The scheduler calls this every tick.
func (s *OfferService) ExpirePending(ctx context.Context) ([]*domain.TourOffer, error) {
	expired, err := s.offerRepo.ExpirePending(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire pending: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("pending offers expired", logger.Int("count", len(expired)))
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *OfferService) notifyExpired(ctx context.Context, offers []*domain.TourOffer) {
	for _, o := range offers {
		booking, err := s.bookingRepo.GetByID(ctx, o.BookingID)
		if err != nil {
			s.logger.Error("failed to get booking for expiry notification",
				logger.String("booking_id", o.BookingID),
			)
			continue
		}

		s.customer.OfferExpired(ctx, booking, o)
		s.events.Publish(ctx, events.TypeOfferExpired, o)
	}
}
