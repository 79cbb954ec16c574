package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
)

// TelegramNotifier pings the staff chat about bookings that need a human.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, staff notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) BookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\n"+"Ref: %s\n"+"Service: %s\n"+"Date: %s\n"+"Party: %d\n"+"Customer: %s (%s)",
		b.Reference,
		serviceLabel(b.ServiceType),
		b.TourDate.Format("Jan 2, 2006 15:04"),
		b.PartySize,
		b.CustomerName, b.CustomerEmail,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) ProposalResponded(ctx context.Context, b *domain.Booking, p *domain.Proposal) {
	text := fmt.Sprintf(
		"*Proposal %s*\n\n"+"Ref: %s\n"+"Title: %s\n"+"Total: %s",
		p.Status, b.Reference, p.Title, pricing.FormatUSD(p.TotalCents),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) OfferResponded(ctx context.Context, b *domain.Booking, o *domain.TourOffer) {
	text := fmt.Sprintf(
		"*Tour offer %s*\n\n"+"Ref: %s\n"+"Date: %s\n"+"Party: %d\n"+"Price: %s",
		o.Status, b.Reference,
		o.TourDate.Format("Jan 2, 2006 15:04"),
		o.PartySize,
		pricing.FormatUSD(o.PriceCents),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) InvoiceApproved(ctx context.Context, b *domain.Booking, inv *domain.Invoice) {
	text := fmt.Sprintf(
		"*Invoice %s approved*\n\n"+"Ref: %s\n"+"Amount: %s",
		inv.Number, b.Reference, pricing.FormatUSD(inv.AmountCents),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) LunchOrderApproved(ctx context.Context, b *domain.Booking, o *domain.LunchOrder) {
	text := fmt.Sprintf(
		"*Lunch order approved*\n\n"+"Ref: %s\n"+"Party: %d\n"+"Estimate: %s",
		b.Reference, o.PartySize, pricing.FormatUSD(o.EstimateCents),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("staff notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("staff notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("staff notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send staff notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
