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

type LunchOrderService struct {
	lunchRepo   ports.LunchOrderRepo
	bookingRepo ports.BookingRepo
	rates       *pricing.RateTable
	customer    ports.CustomerNotifier
	staff       ports.StaffNotifier
	events      ports.EventPublisher
	logger      logger.Logger
}

func NewLunchOrderService(
	lunchRepo ports.LunchOrderRepo,
	bookingRepo ports.BookingRepo,
	rates *pricing.RateTable,
	customer ports.CustomerNotifier,
	staff ports.StaffNotifier,
	events ports.EventPublisher,
	logger logger.Logger,
) *LunchOrderService {
	return &LunchOrderService{
		lunchRepo:   lunchRepo,
		bookingRepo: bookingRepo,
		rates:       rates,
		customer:    customer,
		staff:       staff,
		events:      events,
		logger:      logger,
	}
}

// Create estimates lunch at the per-person rate times the party size and
// emails the customer an approval link.
func (s *LunchOrderService) Create(ctx context.Context, bookingID string, input domain.CreateLunchOrderInput) (*domain.LunchOrder, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingClosed
	}

	partySize := input.PartySize
	if partySize == 0 {
		partySize = booking.PartySize
	}
	if partySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}

	now := time.Now().UTC()
	order := &domain.LunchOrder{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		PartySize:      partySize,
		PerPersonCents: s.rates.LunchPerPersonCents,
		EstimateCents:  s.rates.LunchEstimateCents(partySize),
		MenuNotes:      input.MenuNotes,
		Status:         domain.LunchOrderStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = s.lunchRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create lunch order: %w", err)
	}

	s.logger.Info("lunch order created",
		logger.String("lunch_order_id", order.ID),
		logger.String("booking_id", bookingID),
		logger.Int("party_size", order.PartySize),
		logger.Int64("estimate_cents", order.EstimateCents),
	)

	go s.customer.LunchOrderCreated(context.WithoutCancel(ctx), booking, order)

	return order, nil
}

func (s *LunchOrderService) Get(ctx context.Context, id string) (*domain.LunchOrder, error) {
	return s.lunchRepo.GetByID(ctx, id)
}

func (s *LunchOrderService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.LunchOrder, error) {
	return s.lunchRepo.ListByBooking(ctx, bookingID)
}

func (s *LunchOrderService) Approve(ctx context.Context, id string) (*domain.LunchOrder, error) {
	order, err := s.lunchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lunch order: %w", err)
	}

	if err = s.lunchRepo.Approve(ctx, id); err != nil {
		return nil, fmt.Errorf("approve lunch order: %w", err)
	}
	now := time.Now().UTC()
	order.Status = domain.LunchOrderStatusApproved
	order.ApprovedAt = &now

	metrics.IncLunchOrdersApproved()
	s.logger.Info("lunch order approved",
		logger.String("lunch_order_id", order.ID),
		logger.String("booking_id", order.BookingID),
	)

	booking, err := s.bookingRepo.GetByID(ctx, order.BookingID)
	if err != nil {
		s.logger.Error("failed to get booking for lunch order notification",
			logger.String("booking_id", order.BookingID),
			logger.String("error", err.Error()),
		)
		return order, nil
	}

	go s.customer.LunchOrderApproved(context.WithoutCancel(ctx), booking, order)
	go s.staff.LunchOrderApproved(context.WithoutCancel(ctx), booking, order)
	s.events.Publish(ctx, events.TypeLunchOrderApproved, order)

	return order, nil
}
