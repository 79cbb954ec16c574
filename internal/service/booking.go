package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/metrics"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	rates       *pricing.RateTable
	customer    ports.CustomerNotifier
	staff       ports.StaffNotifier
	events      ports.EventPublisher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	rates *pricing.RateTable,
	customer ports.CustomerNotifier,
	staff ports.StaffNotifier,
	events ports.EventPublisher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		rates:       rates,
		customer:    customer,
		staff:       staff,
		events:      events,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if !input.ServiceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown service type %q", domain.ErrValidation, input.ServiceType)
	}
	if input.PartySize < 1 {
		return nil, fmt.Errorf("%w: party size must be at least 1", domain.ErrValidation)
	}
	if max := s.rates.MaxPartySize(); input.PartySize > max {
		return nil, fmt.Errorf("%w: party size is limited to %d guests", domain.ErrValidation, max)
	}
	if !input.TourDate.After(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: tour date must be in the future", domain.ErrValidation)
	}
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		ServiceType:   input.ServiceType,
		Status:        domain.BookingStatusPending,
		TourDate:      input.TourDate,
		PartySize:     input.PartySize,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		PickupAddress: input.PickupAddress,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingsCreated(string(booking.ServiceType))
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("reference", booking.Reference),
		logger.String("service_type", string(booking.ServiceType)),
		logger.Int("party_size", booking.PartySize),
	)

	go s.customer.BookingReceived(context.WithoutCancel(ctx), booking)
	go s.staff.BookingCreated(context.WithoutCancel(ctx), booking)
	s.events.Publish(ctx, events.TypeBookingCreated, booking)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) Confirm(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusConfirmed); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}
	booking.Status = domain.BookingStatusConfirmed

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("reference", booking.Reference),
	)

	go s.customer.BookingConfirmed(context.WithoutCancel(ctx), booking)
	s.events.Publish(ctx, events.TypeBookingConfirmed, booking)

	return nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = domain.BookingStatusCancelled

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("reference", booking.Reference),
	)

	s.events.Publish(ctx, events.TypeBookingCancelled, booking)

	return nil
}

// SendDueReminders emails every confirmed booking whose tour date falls
// within the window and marks it so the next tick skips it.
func (s *BookingService) SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.ListRemindable(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list remindable: %w", err)
	}

	var sent []*domain.Booking
	for _, b := range due {
		if err = s.bookingRepo.MarkReminderSent(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent = append(sent, b)
	}

	if len(sent) > 0 {
		s.logger.Info("booking reminders sent", logger.Int("count", len(sent)))
		go s.notifyReminders(context.WithoutCancel(ctx), sent)
	}

	return sent, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.customer.BookingReminder(ctx, b)
	}
}
