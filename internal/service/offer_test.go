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

const testOfferTTL = 48 * time.Hour

func TestOfferService_Create_QuotesFromRateTable(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), customer, nil, nil, testOfferTTL, log)

	booking := tourBooking() // wine tour, party of 6
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().OfferCreated(mock.Anything, booking, mock.Anything).Return()

	tourDate := time.Now().UTC().Add(96 * time.Hour)
	offer, err := svc.Create(context.Background(), "b1", domain.CreateOfferInput{
		TourDate: tourDate,
		Message:  "We had a cancellation on Saturday",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusPending, offer.Status)
	assert.Equal(t, 6, offer.PartySize)
	// quoted at minimum hours: 4h x $115
	assert.Equal(t, int64(46000), offer.PriceCents)
	assert.WithinDuration(t, time.Now().UTC().Add(testOfferTTL), offer.ExpiresAt, time.Minute)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestOfferService_Create_CustomTTLAndPrice(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), customer, nil, nil, testOfferTTL, log)

	booking := tourBooking()
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().OfferCreated(mock.Anything, booking, mock.Anything).Return()

	offer, err := svc.Create(context.Background(), "b1", domain.CreateOfferInput{
		TourDate:   time.Now().UTC().Add(24 * time.Hour),
		PriceCents: 52500,
		TTL:        2 * time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(52500), offer.PriceCents)
	assert.WithinDuration(t, time.Now().UTC().Add(2*time.Hour), offer.ExpiresAt, time.Minute)

	time.Sleep(50 * time.Millisecond)
}

func TestOfferService_Create_TransferNeedsPrice(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewOfferService(nil, bookingRepo, testRates(t), nil, nil, nil, testOfferTTL, newTestLogger(t))

	booking := tourBooking()
	booking.ServiceType = domain.ServiceTypeTransfer
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Create(context.Background(), "b1", domain.CreateOfferInput{
		TourDate: time.Now().UTC().Add(24 * time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOfferService_Create_PastDate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewOfferService(nil, bookingRepo, testRates(t), nil, nil, nil, testOfferTTL, newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)

	_, err := svc.Create(context.Background(), "b1", domain.CreateOfferInput{
		TourDate: time.Now().UTC().Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOfferService_Respond_Accept(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), customer, staff, publisher, testOfferTTL, log)

	booking := tourBooking()
	offerDate := time.Date(2026, 3, 21, 10, 0, 0, 0, time.UTC)
	offer := &domain.TourOffer{
		ID:         "o1",
		BookingID:  "b1",
		TourDate:   offerDate,
		PartySize:  8,
		PriceCents: 46000,
		Status:     domain.OfferStatusPending,
		ExpiresAt:  time.Now().UTC().Add(time.Hour),
	}

	offerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offer, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	offerRepo.EXPECT().Respond(mock.Anything, "o1", domain.OfferStatusAccepted).Return(nil)
	bookingRepo.EXPECT().ConfirmWithTour(mock.Anything, "b1", offerDate, 8).Return(nil)
	customer.EXPECT().OfferAccepted(mock.Anything, booking, offer).Return()
	staff.EXPECT().OfferResponded(mock.Anything, booking, offer).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeOfferAccepted, offer).Return()

	responded, err := svc.Respond(context.Background(), "o1", domain.OfferDecisionAccept)

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusAccepted, responded.Status)
	require.NotNil(t, responded.RespondedAt)

	// accepting pins the offered date and party on the booking
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, offerDate, booking.TourDate)
	assert.Equal(t, 8, booking.PartySize)

	time.Sleep(50 * time.Millisecond)
}

func TestOfferService_Respond_Decline(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), customer, staff, publisher, testOfferTTL, log)

	booking := tourBooking()
	offer := &domain.TourOffer{
		ID:        "o1",
		BookingID: "b1",
		Status:    domain.OfferStatusPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	offerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offer, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	offerRepo.EXPECT().Respond(mock.Anything, "o1", domain.OfferStatusDeclined).Return(nil)
	customer.EXPECT().OfferDeclined(mock.Anything, booking, offer).Return()
	staff.EXPECT().OfferResponded(mock.Anything, booking, offer).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeOfferDeclined, offer).Return()

	responded, err := svc.Respond(context.Background(), "o1", domain.OfferDecisionDecline)

	require.NoError(t, err)
	assert.Equal(t, domain.OfferStatusDeclined, responded.Status)
	// booking untouched on decline
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestOfferService_Respond_Expired(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), nil, nil, nil, testOfferTTL, log)

	offer := &domain.TourOffer{ID: "o1", BookingID: "b1", Status: domain.OfferStatusPending}

	offerRepo.EXPECT().GetByID(mock.Anything, "o1").Return(offer, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)
	offerRepo.EXPECT().Respond(mock.Anything, "o1", domain.OfferStatusAccepted).Return(domain.ErrOfferExpired)

	_, err := svc.Respond(context.Background(), "o1", domain.OfferDecisionAccept)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOfferExpired)
}

func TestOfferService_Respond_InvalidDecision(t *testing.T) {
	svc := NewOfferService(nil, nil, testRates(t), nil, nil, nil, testOfferTTL, newTestLogger(t))

	_, err := svc.Respond(context.Background(), "o1", "maybe")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOfferService_ExpirePending(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewOfferService(offerRepo, bookingRepo, testRates(t), customer, nil, publisher, testOfferTTL, log)

	booking := tourBooking()
	expired := []*domain.TourOffer{
		{ID: "o1", BookingID: "b1", Status: domain.OfferStatusExpired},
		{ID: "o2", BookingID: "b1", Status: domain.OfferStatusExpired},
	}

	offerRepo.EXPECT().ExpirePending(mock.Anything).Return(expired, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil).Times(2)
	customer.EXPECT().OfferExpired(mock.Anything, booking, expired[0]).Return()
	customer.EXPECT().OfferExpired(mock.Anything, booking, expired[1]).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeOfferExpired, expired[0]).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeOfferExpired, expired[1]).Return()

	got, err := svc.ExpirePending(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestOfferService_ExpirePending_Empty(t *testing.T) {
	offerRepo := mocks.NewMockOfferRepo(t)
	svc := NewOfferService(offerRepo, nil, testRates(t), nil, nil, nil, testOfferTTL, newTestLogger(t))

	offerRepo.EXPECT().ExpirePending(mock.Anything).Return(nil, nil)

	got, err := svc.ExpirePending(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}
