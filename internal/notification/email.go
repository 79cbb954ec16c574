package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/auth"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/mailer"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/metrics"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
)

const (
	dateFormat     = "Monday, January 2, 2006"
	dateTimeFormat = "January 2, 2006 at 3:04 PM"
)

// EmailNotifier renders and sends the customer emails. Delivery failures
// are logged, never retried and never surfaced to callers.
type EmailNotifier struct {
	sender   mailer.Sender
	registry *mailer.Registry
	tokens   *auth.TokenManager
	rates    *pricing.RateTable
	baseURL  string
	linkTTL  time.Duration
	logger   logger.Logger
}

func NewEmailNotifier(
	sender mailer.Sender,
	registry *mailer.Registry,
	tokens *auth.TokenManager,
	rates *pricing.RateTable,
	baseURL string,
	linkTTL time.Duration,
	logger logger.Logger,
) *EmailNotifier {
	return &EmailNotifier{
		sender:   sender,
		registry: registry,
		tokens:   tokens,
		rates:    rates,
		baseURL:  baseURL,
		linkTTL:  linkTTL,
		logger:   logger,
	}
}

func (n *EmailNotifier) BookingReceived(ctx context.Context, b *domain.Booking) {
	n.send(ctx, mailer.TplBookingReceived, b.CustomerEmail, n.bookingData(b))
}

func (n *EmailNotifier) BookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, mailer.TplBookingConfirmed, b.CustomerEmail, n.bookingData(b))
}

func (n *EmailNotifier) BookingReminder(ctx context.Context, b *domain.Booking) {
	n.send(ctx, mailer.TplBookingReminder, b.CustomerEmail, n.bookingData(b))
}

func (n *EmailNotifier) ProposalSent(ctx context.Context, b *domain.Booking, p *domain.Proposal) {
	items := make([]map[string]any, 0, len(p.Items))
	for _, it := range p.Items {
		d := n.rates.DisplayFields(it)
		items = append(items, map[string]any{
			"Description":   it.Description,
			"ServiceDate":   it.ServiceDate.Format(dateFormat),
			"PartySize":     it.PartySize,
			"DurationHours": it.DurationHours,
			"Price":         d.Price,
			"HourlyRate":    d.HourlyRate,
			"LunchEstimate": d.LunchEstimate,
			"LunchNote":     d.LunchNote,
		})
	}

	data := map[string]any{
		"CustomerName": b.CustomerName,
		"Reference":    b.Reference,
		"Title":        p.Title,
		"Items":        items,
		"Total":        pricing.FormatUSD(p.TotalCents),
		"ViewURL":      n.actionURL(p.ID, auth.ActionViewProposal, n.linkTTL, "/proposals/%s"),
	}
	n.send(ctx, mailer.TplProposalSent, b.CustomerEmail, data)
}

func (n *EmailNotifier) OfferCreated(ctx context.Context, b *domain.Booking, o *domain.TourOffer) {
	// ссылка живёт столько же, сколько сам оффер
	ttl := time.Until(o.ExpiresAt)
	data := n.offerData(b, o)
	data["AcceptURL"] = n.actionURL(o.ID, auth.ActionRespondOffer, ttl, "/offers/%s/respond") + "&decision=accept"
	data["DeclineURL"] = n.actionURL(o.ID, auth.ActionRespondOffer, ttl, "/offers/%s/respond") + "&decision=decline"
	data["ExpiresAt"] = o.ExpiresAt.Format(dateTimeFormat)
	data["Message"] = o.Message

	n.send(ctx, mailer.TplOfferCreated, b.CustomerEmail, data)
}

func (n *EmailNotifier) OfferAccepted(ctx context.Context, b *domain.Booking, o *domain.TourOffer) {
	n.send(ctx, mailer.TplOfferAccepted, b.CustomerEmail, n.offerData(b, o))
}

func (n *EmailNotifier) OfferDeclined(ctx context.Context, b *domain.Booking, o *domain.TourOffer) {
	n.send(ctx, mailer.TplOfferDeclined, b.CustomerEmail, n.offerData(b, o))
}

func (n *EmailNotifier) OfferExpired(ctx context.Context, b *domain.Booking, o *domain.TourOffer) {
	n.send(ctx, mailer.TplOfferExpired, b.CustomerEmail, n.offerData(b, o))
}

func (n *EmailNotifier) InvoiceIssued(ctx context.Context, b *domain.Booking, inv *domain.Invoice) {
	data := n.invoiceData(b, inv)
	data["ApproveURL"] = n.actionURL(inv.ID, auth.ActionApproveInvoice, n.linkTTL, "/invoices/%s/approve")
	n.send(ctx, mailer.TplInvoiceIssued, b.CustomerEmail, data)
}

func (n *EmailNotifier) InvoiceApproved(ctx context.Context, b *domain.Booking, inv *domain.Invoice) {
	n.send(ctx, mailer.TplInvoiceApproved, b.CustomerEmail, n.invoiceData(b, inv))
}

func (n *EmailNotifier) LunchOrderCreated(ctx context.Context, b *domain.Booking, o *domain.LunchOrder) {
	data := n.lunchData(b, o)
	data["ApproveURL"] = n.actionURL(o.ID, auth.ActionApproveLunchOrder, n.linkTTL, "/lunch-orders/%s/approve")
	n.send(ctx, mailer.TplLunchOrderCreated, b.CustomerEmail, data)
}

func (n *EmailNotifier) LunchOrderApproved(ctx context.Context, b *domain.Booking, o *domain.LunchOrder) {
	n.send(ctx, mailer.TplLunchOrderApproved, b.CustomerEmail, n.lunchData(b, o))
}

func (n *EmailNotifier) bookingData(b *domain.Booking) map[string]any {
	return map[string]any{
		"CustomerName":  b.CustomerName,
		"Reference":     b.Reference,
		"ServiceLabel":  serviceLabel(b.ServiceType),
		"TourDate":      b.TourDate.Format(dateTimeFormat),
		"PartySize":     b.PartySize,
		"PickupAddress": b.PickupAddress,
	}
}

func (n *EmailNotifier) offerData(b *domain.Booking, o *domain.TourOffer) map[string]any {
	return map[string]any{
		"CustomerName": b.CustomerName,
		"Reference":    b.Reference,
		"TourDate":     o.TourDate.Format(dateTimeFormat),
		"PartySize":    o.PartySize,
		"Price":        pricing.FormatUSD(o.PriceCents),
	}
}

func (n *EmailNotifier) invoiceData(b *domain.Booking, inv *domain.Invoice) map[string]any {
	return map[string]any{
		"CustomerName": b.CustomerName,
		"Reference":    b.Reference,
		"Number":       inv.Number,
		"Amount":       pricing.FormatUSD(inv.AmountCents),
		"Memo":         inv.Memo,
	}
}

func (n *EmailNotifier) lunchData(b *domain.Booking, o *domain.LunchOrder) map[string]any {
	return map[string]any{
		"CustomerName": b.CustomerName,
		"Reference":    b.Reference,
		"PartySize":    o.PartySize,
		"PerPerson":    pricing.FormatUSD(o.PerPersonCents),
		"Estimate":     pricing.FormatUSD(o.EstimateCents),
		"MenuNotes":    o.MenuNotes,
	}
}

// actionURL builds a signed one-click link like
// https://wallawalla.travel/invoices/<id>/approve?token=<jwt>.
func (n *EmailNotifier) actionURL(resourceID, action string, ttl time.Duration, pathFormat string) string {
	token, err := n.tokens.ActionToken(resourceID, action, ttl)
	if err != nil {
		n.logger.Error("failed to sign action link",
			logger.String("action", action),
			logger.String("resource_id", resourceID),
			logger.String("error", err.Error()),
		)
		return ""
	}
	return n.baseURL + fmt.Sprintf(pathFormat, resourceID) + "?token=" + token
}

func (n *EmailNotifier) send(ctx context.Context, tpl, to string, data map[string]any) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("template", tpl))
		return
	}

	email, err := n.registry.Render(tpl, to, data)
	if err != nil {
		metrics.IncEmailsSent(tpl, "error")
		n.logger.Error("failed to render email",
			logger.String("template", tpl),
			logger.String("error", err.Error()),
		)
		return
	}

	if err = n.sender.Send(ctx, email); err != nil {
		metrics.IncEmailsSent(tpl, "error")
		n.logger.Error("failed to send email",
			logger.String("template", tpl),
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.IncEmailsSent(tpl, "ok")
}

func serviceLabel(t domain.ServiceType) string {
	if t == domain.ServiceTypeTransfer {
		return "transfer"
	}
	return "wine tour"
}
