package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

type Invoice struct {
	ID          string        `json:"id"`
	BookingID   string        `json:"booking_id"`
	Number      string        `json:"number"`
	AmountCents int64         `json:"amount_cents"`
	Memo        string        `json:"memo"`
	Status      InvoiceStatus `json:"status"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type IssueInvoiceInput struct {
	AmountCents int64
	Memo        string
}
