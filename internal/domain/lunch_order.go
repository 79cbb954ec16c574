package domain

import "time"

type LunchOrderStatus string

const (
	LunchOrderStatusPending   LunchOrderStatus = "pending"
	LunchOrderStatusApproved  LunchOrderStatus = "approved"
	LunchOrderStatusCancelled LunchOrderStatus = "cancelled"
)

// LunchOrder is the catered picnic lunch attached to a wine tour.
// EstimateCents is always PartySize x PerPersonCents; the customer
// approves the estimate before the order is placed with the caterer.
type LunchOrder struct {
	ID             string           `json:"id"`
	BookingID      string           `json:"booking_id"`
	PartySize      int              `json:"party_size"`
	PerPersonCents int64            `json:"per_person_cents"`
	EstimateCents  int64            `json:"estimate_cents"`
	MenuNotes      string           `json:"menu_notes"`
	Status         LunchOrderStatus `json:"status"`
	ApprovedAt     *time.Time       `json:"approved_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type CreateLunchOrderInput struct {
	// PartySize == 0 means "use the booking's party size".
	PartySize int
	MenuNotes string
}
