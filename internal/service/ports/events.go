package ports

import "context"

// EventPublisher pushes domain events to the back-office queue.
// Implementations swallow broker errors.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any)
}
