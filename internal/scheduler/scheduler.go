package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
)

type OfferExpirer interface {
	ExpirePending(ctx context.Context) ([]*domain.TourOffer, error)
}

type ReminderSender interface {
	SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Booking, error)
}

// Scheduler drives the two background jobs: expiring unanswered tour
// offers and emailing reminders for upcoming tours.
type Scheduler struct {
	offers         OfferExpirer
	bookings       ReminderSender
	interval       time.Duration
	reminderWindow time.Duration
	logger         logger.Logger
}

func New(
	offers OfferExpirer,
	bookings ReminderSender,
	interval time.Duration,
	reminderWindow time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		offers:         offers,
		bookings:       bookings,
		interval:       interval,
		reminderWindow: reminderWindow,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_window", s.reminderWindow),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.offers.ExpirePending(ctx)
	if err != nil {
		s.logger.Error("failed to expire offers",
			logger.String("error", err.Error()),
		)
	} else {
		for _, o := range expired {
			s.logger.Info("offer expired",
				logger.String("offer_id", o.ID),
				logger.String("booking_id", o.BookingID),
			)
		}
	}

	reminded, err := s.bookings.SendDueReminders(ctx, s.reminderWindow)
	if err != nil {
		s.logger.Error("failed to send reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Info("reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("reference", b.Reference),
		)
	}
}
