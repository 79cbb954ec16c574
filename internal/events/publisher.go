package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

// Event types pushed to the back-office queue.
const (
	TypeBookingCreated     = "booking.created"
	TypeBookingConfirmed   = "booking.confirmed"
	TypeBookingCancelled   = "booking.cancelled"
	TypeProposalAccepted   = "proposal.accepted"
	TypeProposalDeclined   = "proposal.declined"
	TypeInvoiceApproved    = "invoice.approved"
	TypeOfferAccepted      = "offer.accepted"
	TypeOfferDeclined      = "offer.declined"
	TypeOfferExpired       = "offer.expired"
	TypeLunchOrderApproved = "lunch_order.approved"
)

const queueName = "wwt.events"

type envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher pushes domain events to a durable RabbitMQ queue. An empty URL
// disables it. Publish failures are logged and swallowed so the request
// flow never depends on the broker.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

func NewPublisher(url string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("amqp url is empty, event publishing disabled")
		return &Publisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// durable, survives broker restarts
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, logger: log}, nil
}

// Publish sends one event. Failures are logged, never returned.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload any) {
	if p.ch == nil {
		p.logger.Debug("event skipped (publisher disabled)", logger.String("type", eventType))
		return
	}

	body, err := json.Marshal(envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.logger.Error("failed to marshal event",
			logger.String("type", eventType),
			logger.String("error", err.Error()),
		)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.logger.Error("failed to publish event",
			logger.String("type", eventType),
			logger.String("error", err.Error()),
		)
	}
}

// Close releases the broker connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
