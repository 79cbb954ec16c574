package domain

import "time"

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusDeclined ProposalStatus = "declined"
)

// Proposal is the customer-facing quote document: one or more priced
// service items for a booking.
type Proposal struct {
	ID         string         `json:"id"`
	BookingID  string         `json:"booking_id"`
	Title      string         `json:"title"`
	Status     ProposalStatus `json:"status"`
	Items      []ServiceItem  `json:"items"`
	TotalCents int64          `json:"total_cents"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type ServiceItem struct {
	ID            string      `json:"id"`
	ProposalID    string      `json:"proposal_id"`
	ServiceType   ServiceType `json:"service_type"`
	Description   string      `json:"description"`
	ServiceDate   time.Time   `json:"service_date"`
	PartySize     int         `json:"party_size"`
	DurationHours int         `json:"duration_hours"` // 0 for transfers
	PriceCents    int64       `json:"price_cents"`
	Position      int         `json:"position"`
}

type CreateProposalInput struct {
	Title string
	Items []CreateServiceItemInput
}

type CreateServiceItemInput struct {
	ServiceType   ServiceType
	Description   string
	ServiceDate   time.Time
	PartySize     int
	DurationHours int
	// PriceCents == 0 on a wine tour means "quote from the rate table".
	PriceCents int64
}
