package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports/mocks"
)

func tourBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "b1",
		Reference:     "WWT-2026-0001",
		ServiceType:   domain.ServiceTypeWineTour,
		Status:        domain.BookingStatusPending,
		TourDate:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		PartySize:     6,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
	}
}

func TestProposalService_Create_QuotesWineTour(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, nil, nil, log)

	booking := tourBooking()
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	proposalRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateProposalInput{
		Title: "Spring tasting day",
		Items: []domain.CreateServiceItemInput{
			{
				ServiceType:   domain.ServiceTypeWineTour,
				Description:   "Full day in the Rocks District",
				DurationHours: 6,
			},
			{
				ServiceType: domain.ServiceTypeTransfer,
				Description: "Airport pickup",
				PriceCents:  8750,
			},
		},
	}

	proposal, err := svc.Create(context.Background(), "b1", input)

	require.NoError(t, err)
	require.Len(t, proposal.Items, 2)

	// 6 guests lands in the 5-8 band at $115/hour, 6 hours.
	assert.Equal(t, int64(69000), proposal.Items[0].PriceCents)
	assert.Equal(t, 6, proposal.Items[0].PartySize)
	assert.Equal(t, booking.TourDate, proposal.Items[0].ServiceDate)
	assert.Equal(t, 1, proposal.Items[0].Position)

	assert.Equal(t, int64(8750), proposal.Items[1].PriceCents)
	assert.Equal(t, 2, proposal.Items[1].Position)

	assert.Equal(t, int64(77750), proposal.TotalCents)
	assert.Equal(t, domain.ProposalStatusDraft, proposal.Status)
}

func TestProposalService_Create_FloorsToMinimumHours(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, nil, nil, log)

	booking := tourBooking()
	booking.PartySize = 4
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	proposalRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateProposalInput{
		Title: "Short visit",
		Items: []domain.CreateServiceItemInput{
			{
				ServiceType:   domain.ServiceTypeWineTour,
				Description:   "Two wineries",
				DurationHours: 2,
			},
		},
	}

	proposal, err := svc.Create(context.Background(), "b1", input)

	require.NoError(t, err)
	require.Len(t, proposal.Items, 1)
	assert.Equal(t, 4, proposal.Items[0].DurationHours)
	assert.Equal(t, int64(38000), proposal.Items[0].PriceCents)
}

func TestProposalService_Create_ManualPriceKept(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, nil, nil, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)
	proposalRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := domain.CreateProposalInput{
		Title: "Negotiated rate",
		Items: []domain.CreateServiceItemInput{
			{
				ServiceType:   domain.ServiceTypeWineTour,
				Description:   "Repeat customer discount",
				DurationHours: 6,
				PriceCents:    50000,
			},
		},
	}

	proposal, err := svc.Create(context.Background(), "b1", input)

	require.NoError(t, err)
	assert.Equal(t, int64(50000), proposal.Items[0].PriceCents)
}

func TestProposalService_Create_TransferNeedsPrice(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(nil, bookingRepo, testRates(t), nil, nil, nil, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)

	input := domain.CreateProposalInput{
		Title: "Transfer only",
		Items: []domain.CreateServiceItemInput{
			{
				ServiceType: domain.ServiceTypeTransfer,
				Description: "Airport pickup",
			},
		},
	}

	_, err := svc.Create(context.Background(), "b1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProposalService_Create_NoRateForParty(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(nil, bookingRepo, testRates(t), nil, nil, nil, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)

	input := domain.CreateProposalInput{
		Title: "Big group",
		Items: []domain.CreateServiceItemInput{
			{
				ServiceType:   domain.ServiceTypeWineTour,
				Description:   "Charter bus day",
				PartySize:     20,
				DurationHours: 6,
			},
		},
	}

	_, err := svc.Create(context.Background(), "b1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoRateConfigured)
}

func TestProposalService_Create_BookingCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(nil, bookingRepo, testRates(t), nil, nil, nil, log)

	booking := tourBooking()
	booking.Status = domain.BookingStatusCancelled
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	input := domain.CreateProposalInput{
		Title: "Too late",
		Items: []domain.CreateServiceItemInput{
			{ServiceType: domain.ServiceTypeWineTour, Description: "x", DurationHours: 4},
		},
	}

	_, err := svc.Create(context.Background(), "b1", input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestProposalService_Create_NoItems(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(nil, bookingRepo, testRates(t), nil, nil, nil, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)

	_, err := svc.Create(context.Background(), "b1", domain.CreateProposalInput{Title: "Empty"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProposalService_Send(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), customer, nil, nil, log)

	booking := tourBooking()
	proposal := &domain.Proposal{ID: "p1", BookingID: "b1", Status: domain.ProposalStatusDraft}

	proposalRepo.EXPECT().GetByID(mock.Anything, "p1").Return(proposal, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	proposalRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProposalStatusDraft, domain.ProposalStatusSent).Return(nil)
	customer.EXPECT().ProposalSent(mock.Anything, booking, proposal).Return()

	sent, err := svc.Send(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusSent, sent.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestProposalService_Send_NotDraft(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, nil, nil, log)

	proposal := &domain.Proposal{ID: "p1", BookingID: "b1", Status: domain.ProposalStatusSent}

	proposalRepo.EXPECT().GetByID(mock.Anything, "p1").Return(proposal, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)
	proposalRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProposalStatusDraft, domain.ProposalStatusSent).Return(domain.ErrProposalNotDraft)

	_, err := svc.Send(context.Background(), "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProposalNotDraft)
}

func TestProposalService_Accept(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), customer, staff, publisher, log)

	booking := tourBooking()
	proposal := &domain.Proposal{ID: "p1", BookingID: "b1", Status: domain.ProposalStatusSent}

	proposalRepo.EXPECT().GetByID(mock.Anything, "p1").Return(proposal, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	proposalRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProposalStatusSent, domain.ProposalStatusAccepted).Return(nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil)
	customer.EXPECT().BookingConfirmed(mock.Anything, booking).Return()
	staff.EXPECT().ProposalResponded(mock.Anything, booking, proposal).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeProposalAccepted, proposal).Return()

	err := svc.Accept(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusAccepted, proposal.Status)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestProposalService_Decline(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, staff, publisher, log)

	booking := tourBooking()
	proposal := &domain.Proposal{ID: "p1", BookingID: "b1", Status: domain.ProposalStatusSent}

	proposalRepo.EXPECT().GetByID(mock.Anything, "p1").Return(proposal, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	proposalRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProposalStatusSent, domain.ProposalStatusDeclined).Return(nil)
	staff.EXPECT().ProposalResponded(mock.Anything, booking, proposal).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeProposalDeclined, proposal).Return()

	err := svc.Decline(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusDeclined, proposal.Status)
	// booking stays pending on a declined proposal
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestProposalService_Accept_NotSent(t *testing.T) {
	proposalRepo := mocks.NewMockProposalRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewProposalService(proposalRepo, bookingRepo, testRates(t), nil, nil, nil, log)

	proposal := &domain.Proposal{ID: "p1", BookingID: "b1", Status: domain.ProposalStatusDraft}

	proposalRepo.EXPECT().GetByID(mock.Anything, "p1").Return(proposal, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)
	proposalRepo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProposalStatusSent, domain.ProposalStatusAccepted).Return(domain.ErrProposalNotSent)

	err := svc.Accept(context.Background(), "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProposalNotSent)
}
