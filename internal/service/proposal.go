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
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports"
)

type ProposalService struct {
	proposalRepo ports.ProposalRepo
	bookingRepo  ports.BookingRepo
	rates        *pricing.RateTable
	customer     ports.CustomerNotifier
	staff        ports.StaffNotifier
	events       ports.EventPublisher
	logger       logger.Logger
}

func NewProposalService(
	proposalRepo ports.ProposalRepo,
	bookingRepo ports.BookingRepo,
	rates *pricing.RateTable,
	customer ports.CustomerNotifier,
	staff ports.StaffNotifier,
	events ports.EventPublisher,
	logger logger.Logger,
) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
		bookingRepo:  bookingRepo,
		rates:        rates,
		customer:     customer,
		staff:        staff,
		events:       events,
		logger:       logger,
	}
}

// Create builds a draft proposal for a booking. Wine-tour items without an
// explicit price are quoted from the rate table; transfers always need a
// fixed price.
func (s *ProposalService) Create(ctx context.Context, bookingID string, input domain.CreateProposalInput) (*domain.Proposal, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrBookingClosed
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: proposal needs at least one service item", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: proposal title is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	proposal := &domain.Proposal{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Title:     input.Title,
		Status:    domain.ProposalStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for i, in := range input.Items {
		item, err := s.buildItem(booking, proposal.ID, i, in)
		if err != nil {
			return nil, err
		}
		proposal.Items = append(proposal.Items, item)
		proposal.TotalCents += item.PriceCents
	}

	if err = s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}

	s.logger.Info("proposal created",
		logger.String("proposal_id", proposal.ID),
		logger.String("booking_id", bookingID),
		logger.Int("items", len(proposal.Items)),
		logger.Int64("total_cents", proposal.TotalCents),
	)

	return proposal, nil
}

func (s *ProposalService) buildItem(booking *domain.Booking, proposalID string, position int, in domain.CreateServiceItemInput) (domain.ServiceItem, error) {
	if !in.ServiceType.IsValid() {
		return domain.ServiceItem{}, fmt.Errorf("%w: unknown service type %q", domain.ErrValidation, in.ServiceType)
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.ServiceItem{}, fmt.Errorf("%w: item description is required", domain.ErrValidation)
	}

	partySize := in.PartySize
	if partySize == 0 {
		partySize = booking.PartySize
	}
	if partySize < 1 {
		return domain.ServiceItem{}, fmt.Errorf("%w: item party size must be at least 1", domain.ErrValidation)
	}

	serviceDate := in.ServiceDate
	if serviceDate.IsZero() {
		serviceDate = booking.TourDate
	}

	item := domain.ServiceItem{
		ID:            uuid.New().String(),
		ProposalID:    proposalID,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		ServiceDate:   serviceDate,
		PartySize:     partySize,
		DurationHours: in.DurationHours,
		PriceCents:    in.PriceCents,
		Position:      position + 1,
	}

	switch {
	case item.PriceCents > 0:
		// цена задана вручную, не пересчитываем
	case item.ServiceType == domain.ServiceTypeWineTour:
		if item.DurationHours < s.rates.MinimumHours {
			item.DurationHours = s.rates.MinimumHours
		}
		price, err := s.rates.WineTourQuote(item.ServiceDate, item.PartySize, item.DurationHours)
		if err != nil {
			return domain.ServiceItem{}, fmt.Errorf("quote item %d: %w", position+1, err)
		}
		item.PriceCents = price
	default:
		return domain.ServiceItem{}, fmt.Errorf("%w: transfer items need a fixed price", domain.ErrValidation)
	}

	return item, nil
}

func (s *ProposalService) Get(ctx context.Context, id string) (*domain.Proposal, error) {
	return s.proposalRepo.GetByID(ctx, id)
}

func (s *ProposalService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Proposal, error) {
	return s.proposalRepo.ListByBooking(ctx, bookingID)
}

// Send emails the proposal to the customer and locks it against edits.
func (s *ProposalService) Send(ctx context.Context, id string) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proposal: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, proposal.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.proposalRepo.UpdateStatus(ctx, id, domain.ProposalStatusDraft, domain.ProposalStatusSent); err != nil {
		return nil, fmt.Errorf("send proposal: %w", err)
	}
	proposal.Status = domain.ProposalStatusSent

	s.logger.Info("proposal sent",
		logger.String("proposal_id", proposal.ID),
		logger.String("booking_id", proposal.BookingID),
	)

	go s.customer.ProposalSent(context.WithoutCancel(ctx), booking, proposal)

	return proposal, nil
}

// Accept records the customer's yes and confirms the underlying booking.
func (s *ProposalService) Accept(ctx context.Context, id string) error {
	proposal, booking, err := s.respond(ctx, id, domain.ProposalStatusAccepted)
	if err != nil {
		return err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusConfirmed); err != nil {
		s.logger.Error("failed to confirm booking after proposal accept",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	} else {
		booking.Status = domain.BookingStatusConfirmed
		go s.customer.BookingConfirmed(context.WithoutCancel(ctx), booking)
	}

	go s.staff.ProposalResponded(context.WithoutCancel(ctx), booking, proposal)
	s.events.Publish(ctx, events.TypeProposalAccepted, proposal)

	return nil
}

func (s *ProposalService) Decline(ctx context.Context, id string) error {
	proposal, booking, err := s.respond(ctx, id, domain.ProposalStatusDeclined)
	if err != nil {
		return err
	}

	go s.staff.ProposalResponded(context.WithoutCancel(ctx), booking, proposal)
	s.events.Publish(ctx, events.TypeProposalDeclined, proposal)

	return nil
}

func (s *ProposalService) respond(ctx context.Context, id string, to domain.ProposalStatus) (*domain.Proposal, *domain.Booking, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("get proposal: %w", err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, proposal.BookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("get booking: %w", err)
	}

	if err = s.proposalRepo.UpdateStatus(ctx, id, domain.ProposalStatusSent, to); err != nil {
		return nil, nil, fmt.Errorf("update proposal: %w", err)
	}
	proposal.Status = to

	s.logger.Info("proposal responded",
		logger.String("proposal_id", proposal.ID),
		logger.String("booking_id", proposal.BookingID),
		logger.String("status", string(to)),
	)

	return proposal, booking, nil
}
