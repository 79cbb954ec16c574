package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/scheduler/mocks"
)

const testWindow = 48 * time.Hour

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresAndReminds(t *testing.T) {
	offers := mocks.NewMockOfferExpirer(t)
	bookings := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(offers, bookings, 50*time.Millisecond, testWindow, log)

	offers.EXPECT().ExpirePending(mock.Anything).Return([]*domain.TourOffer{
		{ID: "o1", BookingID: "b1"},
	}, nil)
	bookings.EXPECT().SendDueReminders(mock.Anything, testWindow).Return([]*domain.Booking{
		{ID: "b2", Reference: "WWT-2026-0002"},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(offers.Calls), 1)
	assert.GreaterOrEqual(t, len(bookings.Calls), 1)
}

func TestScheduler_Tick_OfferErrorStillReminds(t *testing.T) {
	offers := mocks.NewMockOfferExpirer(t)
	bookings := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(offers, bookings, 50*time.Millisecond, testWindow, log)

	offers.EXPECT().ExpirePending(mock.Anything).Return(nil, errors.New("db error"))
	bookings.EXPECT().SendDueReminders(mock.Anything, testWindow).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(bookings.Calls), 1)
}

func TestScheduler_Tick_ReminderError(t *testing.T) {
	offers := mocks.NewMockOfferExpirer(t)
	bookings := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(offers, bookings, 50*time.Millisecond, testWindow, log)

	offers.EXPECT().ExpirePending(mock.Anything).Return(nil, nil)
	bookings.EXPECT().SendDueReminders(mock.Anything, testWindow).Return(nil, errors.New("smtp down"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(bookings.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	offers := mocks.NewMockOfferExpirer(t)
	bookings := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(offers, bookings, time.Second, testWindow, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	offers := mocks.NewMockOfferExpirer(t)
	bookings := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(offers, bookings, 30*time.Millisecond, testWindow, log)

	offers.EXPECT().ExpirePending(mock.Anything).Return(nil, nil)
	bookings.EXPECT().SendDueReminders(mock.Anything, testWindow).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(offers.Calls), 3)
	assert.GreaterOrEqual(t, len(bookings.Calls), 3)
}
