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
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports"
)

type InvoiceService struct {
	invoiceRepo ports.InvoiceRepo
	bookingRepo ports.BookingRepo
	customer    ports.CustomerNotifier
	staff       ports.StaffNotifier
	events      ports.EventPublisher
	logger      logger.Logger
}

func NewInvoiceService(
	invoiceRepo ports.InvoiceRepo,
	bookingRepo ports.BookingRepo,
	customer ports.CustomerNotifier,
	staff ports.StaffNotifier,
	events ports.EventPublisher,
	logger logger.Logger,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		bookingRepo: bookingRepo,
		customer:    customer,
		staff:       staff,
		events:      events,
		logger:      logger,
	}
}

// Issue creates a pending invoice and emails the customer an approval link.
func (s *InvoiceService) Issue(ctx context.Context, bookingID string, input domain.IssueInvoiceInput) (*domain.Invoice, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingClosed
	}
	if input.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: invoice amount must be positive", domain.ErrValidation)
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ID:          uuid.New().String(),
		BookingID:   bookingID,
		AmountCents: input.AmountCents,
		Memo:        input.Memo,
		Status:      domain.InvoiceStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.logger.Info("invoice issued",
		logger.String("invoice_id", invoice.ID),
		logger.String("number", invoice.Number),
		logger.String("booking_id", bookingID),
		logger.Int64("amount_cents", invoice.AmountCents),
	)

	go s.customer.InvoiceIssued(context.WithoutCancel(ctx), booking, invoice)

	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *InvoiceService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Invoice, error) {
	return s.invoiceRepo.ListByBooking(ctx, bookingID)
}

// Approve is the customer's one-shot approval coming from the emailed link.
func (s *InvoiceService) Approve(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	if err = s.invoiceRepo.Approve(ctx, id); err != nil {
		return nil, fmt.Errorf("approve invoice: %w", err)
	}
	now := time.Now().UTC()
	invoice.Status = domain.InvoiceStatusApproved
	invoice.ApprovedAt = &now

	metrics.IncInvoicesApproved()
	s.logger.Info("invoice approved",
		logger.String("invoice_id", invoice.ID),
		logger.String("number", invoice.Number),
		logger.String("booking_id", invoice.BookingID),
	)

	booking, err := s.bookingRepo.GetByID(ctx, invoice.BookingID)
	if err != nil {
		s.logger.Error("failed to get booking for invoice notification",
			logger.String("booking_id", invoice.BookingID),
			logger.String("error", err.Error()),
		)
		return invoice, nil
	}

	go s.customer.InvoiceApproved(context.WithoutCancel(ctx), booking, invoice)
	go s.staff.InvoiceApproved(context.WithoutCancel(ctx), booking, invoice)
	s.events.Publish(ctx, events.TypeInvoiceApproved, invoice)

	return invoice, nil
}
