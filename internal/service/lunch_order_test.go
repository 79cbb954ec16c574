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

func TestLunchOrderService_Create_DefaultsToBookingParty(t *testing.T) {
	lunchRepo := mocks.NewMockLunchOrderRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewLunchOrderService(lunchRepo, bookingRepo, testRates(t), customer, nil, nil, log)

	booking := tourBooking() // party of 6
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	lunchRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().LunchOrderCreated(mock.Anything, booking, mock.Anything).Return()

	order, err := svc.Create(context.Background(), "b1", domain.CreateLunchOrderInput{
		MenuNotes: "Two vegetarian boxes",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, order.PartySize)
	assert.Equal(t, int64(1750), order.PerPersonCents)
	assert.Equal(t, int64(10500), order.EstimateCents) // 6 x $17.50
	assert.Equal(t, domain.LunchOrderStatusPending, order.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestLunchOrderService_Create_ExplicitPartySize(t *testing.T) {
	lunchRepo := mocks.NewMockLunchOrderRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewLunchOrderService(lunchRepo, bookingRepo, testRates(t), customer, nil, nil, log)

	booking := tourBooking()
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	lunchRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().LunchOrderCreated(mock.Anything, booking, mock.Anything).Return()

	order, err := svc.Create(context.Background(), "b1", domain.CreateLunchOrderInput{PartySize: 10})

	require.NoError(t, err)
	assert.Equal(t, 10, order.PartySize)
	assert.Equal(t, int64(17500), order.EstimateCents)

	time.Sleep(50 * time.Millisecond)
}

func TestLunchOrderService_Create_BookingCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewLunchOrderService(nil, bookingRepo, testRates(t), nil, nil, nil, newTestLogger(t))

	booking := tourBooking()
	booking.Status = domain.BookingStatusCancelled
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Create(context.Background(), "b1", domain.CreateLunchOrderInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestLunchOrderService_Approve(t *testing.T) {
	lunchRepo := mocks.NewMockLunchOrderRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewLunchOrderService(lunchRepo, bookingRepo, testRates(t), customer, staff, publisher, log)

	booking := tourBooking()
	order := &domain.LunchOrder{
		ID:             "l1",
		BookingID:      "b1",
		PartySize:      6,
		PerPersonCents: 1750,
		EstimateCents:  10500,
		Status:         domain.LunchOrderStatusPending,
	}

	lunchRepo.EXPECT().GetByID(mock.Anything, "l1").Return(order, nil)
	lunchRepo.EXPECT().Approve(mock.Anything, "l1").Return(nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	customer.EXPECT().LunchOrderApproved(mock.Anything, booking, order).Return()
	staff.EXPECT().LunchOrderApproved(mock.Anything, booking, order).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeLunchOrderApproved, order).Return()

	approved, err := svc.Approve(context.Background(), "l1")

	require.NoError(t, err)
	assert.Equal(t, domain.LunchOrderStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	time.Sleep(50 * time.Millisecond)
}

func TestLunchOrderService_Approve_NotPending(t *testing.T) {
	lunchRepo := mocks.NewMockLunchOrderRepo(t)
	svc := NewLunchOrderService(lunchRepo, nil, testRates(t), nil, nil, nil, newTestLogger(t))

	order := &domain.LunchOrder{ID: "l1", BookingID: "b1", Status: domain.LunchOrderStatusApproved}

	lunchRepo.EXPECT().GetByID(mock.Anything, "l1").Return(order, nil)
	lunchRepo.EXPECT().Approve(mock.Anything, "l1").Return(domain.ErrLunchOrderNotPending)

	_, err := svc.Approve(context.Background(), "l1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLunchOrderNotPending)
}
