package notification

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/auth"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/mailer"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
)

type captureSender struct {
	mu     sync.Mutex
	emails []mailer.Email
	err    error
}

func (c *captureSender) Send(_ context.Context, e mailer.Email) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.emails = append(c.emails, e)
	return nil
}

func (c *captureSender) last(t *testing.T) mailer.Email {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.emails)
	return c.emails[len(c.emails)-1]
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testNotifier(t *testing.T, sender mailer.Sender) (*EmailNotifier, *auth.TokenManager) {
	t.Helper()

	registry, err := mailer.NewRegistry()
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	rates := &pricing.RateTable{
		Currency:            "USD",
		LunchPerPersonCents: 1750,
		MinimumHours:        4,
		BaseBands: []pricing.Band{
			{MinGuests: 1, MaxGuests: 8, HourlyCents: 11500},
		},
	}

	n := NewEmailNotifier(sender, registry, tokens, rates, "https://wallawalla.travel", 72*time.Hour, newTestLogger(t))
	return n, tokens
}

func testBooking() *domain.Booking {
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

func TestEmailNotifier_BookingReceived(t *testing.T) {
	sender := &captureSender{}
	n, _ := testNotifier(t, sender)

	n.BookingReceived(context.Background(), testBooking())

	email := sender.last(t)
	assert.Equal(t, "dana@example.com", email.To)
	assert.Equal(t, "We received your request (WWT-2026-0001)", email.Subject)
	assert.Contains(t, email.HTML, "Dana Whitman")
	assert.Contains(t, email.HTML, "wine tour")
}

func TestEmailNotifier_ProposalSent_PricingBranches(t *testing.T) {
	sender := &captureSender{}
	n, tokens := testNotifier(t, sender)

	booking := testBooking()
	proposal := &domain.Proposal{
		ID:        "p1",
		BookingID: "b1",
		Title:     "Spring tasting day",
		Status:    domain.ProposalStatusSent,
		Items: []domain.ServiceItem{
			{
				ServiceType:   domain.ServiceTypeWineTour,
				Description:   "Full day in the Rocks District",
				ServiceDate:   booking.TourDate,
				PartySize:     6,
				DurationHours: 6,
				PriceCents:    69000,
			},
			{
				ServiceType: domain.ServiceTypeTransfer,
				Description: "Airport pickup",
				ServiceDate: booking.TourDate,
				PartySize:   6,
				PriceCents:  8750,
			},
		},
		TotalCents: 77750,
	}

	n.ProposalSent(context.Background(), booking, proposal)

	email := sender.last(t)

	// wine tour shows the hourly breakdown plus the lunch estimate
	assert.Contains(t, email.HTML, "$115.00/hour")
	assert.Contains(t, email.HTML, "Lunch estimate $105.00")
	assert.Contains(t, email.HTML, "billed at cost")

	// transfer shows a flat price and nothing else
	assert.Contains(t, email.HTML, "Flat rate: <strong>$87.50</strong>")

	assert.Contains(t, email.HTML, "$777.50")

	// the view link carries a signed token scoped to this proposal
	start := strings.Index(email.HTML, "https://wallawalla.travel/proposals/p1?token=")
	require.GreaterOrEqual(t, start, 0)
	rest := email.HTML[start+len("https://wallawalla.travel/proposals/p1?token="):]
	token := rest[:strings.IndexAny(rest, "\"&")]

	id, err := tokens.ParseAction(token, auth.ActionViewProposal)
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
}

func TestEmailNotifier_OfferCreated_RespondLinks(t *testing.T) {
	sender := &captureSender{}
	n, tokens := testNotifier(t, sender)

	booking := testBooking()
	offer := &domain.TourOffer{
		ID:         "o1",
		BookingID:  "b1",
		TourDate:   time.Date(2026, 3, 21, 10, 0, 0, 0, time.UTC),
		PartySize:  6,
		PriceCents: 46000,
		Status:     domain.OfferStatusPending,
		ExpiresAt:  time.Now().UTC().Add(48 * time.Hour),
	}

	n.OfferCreated(context.Background(), booking, offer)

	email := sender.last(t)
	assert.Contains(t, email.HTML, "$460.00")
	assert.Contains(t, email.HTML, "decision=accept")
	assert.Contains(t, email.HTML, "decision=decline")

	start := strings.Index(email.HTML, "https://wallawalla.travel/offers/o1/respond?token=")
	require.GreaterOrEqual(t, start, 0)
	rest := email.HTML[start+len("https://wallawalla.travel/offers/o1/respond?token="):]
	token := rest[:strings.IndexAny(rest, "\"&")]

	id, err := tokens.ParseAction(token, auth.ActionRespondOffer)
	require.NoError(t, err)
	assert.Equal(t, "o1", id)
}

func TestEmailNotifier_InvoiceIssued_ApproveLink(t *testing.T) {
	sender := &captureSender{}
	n, tokens := testNotifier(t, sender)

	booking := testBooking()
	invoice := &domain.Invoice{
		ID:          "i1",
		BookingID:   "b1",
		Number:      "INV-2026-0003",
		AmountCents: 77750,
		Status:      domain.InvoiceStatusPending,
	}

	n.InvoiceIssued(context.Background(), booking, invoice)

	email := sender.last(t)
	assert.Equal(t, "Invoice INV-2026-0003 from Walla Walla Travel", email.Subject)
	assert.Contains(t, email.HTML, "$777.50")

	start := strings.Index(email.HTML, "https://wallawalla.travel/invoices/i1/approve?token=")
	require.GreaterOrEqual(t, start, 0)
	rest := email.HTML[start+len("https://wallawalla.travel/invoices/i1/approve?token="):]
	token := rest[:strings.IndexAny(rest, "\"&")]

	id, err := tokens.ParseAction(token, auth.ActionApproveInvoice)
	require.NoError(t, err)
	assert.Equal(t, "i1", id)
}

func TestEmailNotifier_LunchOrderCreated_Estimate(t *testing.T) {
	sender := &captureSender{}
	n, _ := testNotifier(t, sender)

	booking := testBooking()
	order := &domain.LunchOrder{
		ID:             "l1",
		BookingID:      "b1",
		PartySize:      6,
		PerPersonCents: 1750,
		EstimateCents:  10500,
		MenuNotes:      "Two vegetarian boxes",
		Status:         domain.LunchOrderStatusPending,
	}

	n.LunchOrderCreated(context.Background(), booking, order)

	email := sender.last(t)
	assert.Contains(t, email.HTML, "$17.50")
	assert.Contains(t, email.HTML, "$105.00")
	assert.Contains(t, email.HTML, "Two vegetarian boxes")
	assert.Contains(t, email.HTML, "/lunch-orders/l1/approve?token=")
}

func TestEmailNotifier_SendFailureSwallowed(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	n, _ := testNotifier(t, sender)

	// must not panic and must not retry
	n.BookingReceived(context.Background(), testBooking())

	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Empty(t, sender.emails)
}
