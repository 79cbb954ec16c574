package domain

import "time"

type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"
	OfferStatusExpired  OfferStatus = "expired"
)

// TourOffer is a concrete date and price extended to the customer,
// usually when the requested date is full or a better slot opens up.
// Unanswered offers expire after ExpiresAt.
type TourOffer struct {
	ID          string      `json:"id"`
	BookingID   string      `json:"booking_id"`
	TourDate    time.Time   `json:"tour_date"`
	PartySize   int         `json:"party_size"`
	PriceCents  int64       `json:"price_cents"`
	Message     string      `json:"message"`
	Status      OfferStatus `json:"status"`
	ExpiresAt   time.Time   `json:"expires_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateOfferInput struct {
	TourDate   time.Time
	PartySize  int
	PriceCents int64
	Message    string
	// TTL == 0 means "use the configured default".
	TTL time.Duration
}

// OfferDecision is the customer's answer to a pending offer.
type OfferDecision string

const (
	OfferDecisionAccept  OfferDecision = "accept"
	OfferDecisionDecline OfferDecision = "decline"
)

func (d OfferDecision) IsValid() bool {
	return d == OfferDecisionAccept || d == OfferDecisionDecline
}
