package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testRates(t *testing.T) *pricing.RateTable {
	t.Helper()
	return &pricing.RateTable{
		Currency:            "USD",
		LunchPerPersonCents: 1750,
		MinimumHours:        4,
		BaseBands: []pricing.Band{
			{MinGuests: 1, MaxGuests: 4, HourlyCents: 9500},
			{MinGuests: 5, MaxGuests: 8, HourlyCents: 11500},
			{MinGuests: 9, MaxGuests: 14, HourlyCents: 14000},
		},
	}
}

func TestBookingService_Create_WineTour(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, testRates(t), customer, staff, publisher, log)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().BookingReceived(mock.Anything, mock.Anything).Return()
	staff.EXPECT().BookingCreated(mock.Anything, mock.Anything).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeBookingCreated, mock.Anything).Return()

	input := domain.CreateBookingInput{
		ServiceType:   domain.ServiceTypeWineTour,
		TourDate:      time.Now().UTC().Add(72 * time.Hour),
		PartySize:     6,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
		PickupAddress: "Marcus Whitman Hotel",
	}

	booking, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.ServiceTypeWineTour, booking.ServiceType)
	assert.Equal(t, 6, booking.PartySize)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_UnknownServiceType(t *testing.T) {
	svc := NewBookingService(nil, testRates(t), nil, nil, nil, newTestLogger(t))

	input := domain.CreateBookingInput{
		ServiceType:   "helicopter",
		TourDate:      time.Now().UTC().Add(72 * time.Hour),
		PartySize:     2,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PartyTooLarge(t *testing.T) {
	svc := NewBookingService(nil, testRates(t), nil, nil, nil, newTestLogger(t))

	input := domain.CreateBookingInput{
		ServiceType:   domain.ServiceTypeWineTour,
		TourDate:      time.Now().UTC().Add(72 * time.Hour),
		PartySize:     15,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_PastDate(t *testing.T) {
	svc := NewBookingService(nil, testRates(t), nil, nil, nil, newTestLogger(t))

	input := domain.CreateBookingInput{
		ServiceType:   domain.ServiceTypeTransfer,
		TourDate:      time.Now().UTC().Add(-time.Hour),
		PartySize:     2,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_MissingContact(t *testing.T) {
	svc := NewBookingService(nil, testRates(t), nil, nil, nil, newTestLogger(t))

	input := domain.CreateBookingInput{
		ServiceType: domain.ServiceTypeWineTour,
		TourDate:    time.Now().UTC().Add(72 * time.Hour),
		PartySize:   4,
		CustomerName: "  ",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, testRates(t), nil, nil, nil, newTestLogger(t))

	repoErr := errors.New("db error")
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	input := domain.CreateBookingInput{
		ServiceType:   domain.ServiceTypeWineTour,
		TourDate:      time.Now().UTC().Add(72 * time.Hour),
		PartySize:     4,
		CustomerName:  "Dana Whitman",
		CustomerEmail: "dana@example.com",
	}

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestBookingService_Confirm(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, testRates(t), customer, nil, publisher, log)

	booking := &domain.Booking{
		ID:        "b1",
		Reference: "WWT-2026-0007",
		Status:    domain.BookingStatusPending,
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil)
	customer.EXPECT().BookingConfirmed(mock.Anything, booking).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeBookingConfirmed, booking).Return()

	err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_AlreadyClosed(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, testRates(t), nil, nil, nil, newTestLogger(t))

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(domain.ErrBookingClosed)

	err := svc.Confirm(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestBookingService_Cancel(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, testRates(t), nil, nil, publisher, log)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(nil)
	publisher.EXPECT().Publish(mock.Anything, events.TypeBookingCancelled, booking).Return()

	err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, testRates(t), nil, nil, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_SendDueReminders(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, testRates(t), customer, nil, nil, log)

	due := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", Status: domain.BookingStatusConfirmed},
	}

	bookingRepo.EXPECT().ListRemindable(mock.Anything, 48*time.Hour).Return(due, nil)
	bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b1").Return(nil)
	bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b2").Return(nil)
	customer.EXPECT().BookingReminder(mock.Anything, due[0]).Return()
	customer.EXPECT().BookingReminder(mock.Anything, due[1]).Return()

	sent, err := svc.SendDueReminders(context.Background(), 48*time.Hour)

	require.NoError(t, err)
	assert.Len(t, sent, 2)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SendDueReminders_MarkFails(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, testRates(t), customer, nil, nil, log)

	due := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusConfirmed},
		{ID: "b2", Status: domain.BookingStatusConfirmed},
	}

	bookingRepo.EXPECT().ListRemindable(mock.Anything, 48*time.Hour).Return(due, nil)
	bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b1").Return(errors.New("db error"))
	bookingRepo.EXPECT().MarkReminderSent(mock.Anything, "b2").Return(nil)
	customer.EXPECT().BookingReminder(mock.Anything, due[1]).Return()

	sent, err := svc.SendDueReminders(context.Background(), 48*time.Hour)

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "b2", sent[0].ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SendDueReminders_NothingDue(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, testRates(t), nil, nil, nil, newTestLogger(t))

	bookingRepo.EXPECT().ListRemindable(mock.Anything, 48*time.Hour).Return(nil, nil)

	sent, err := svc.SendDueReminders(context.Background(), 48*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, sent)
}
