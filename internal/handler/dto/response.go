package dto

import (
	"time"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
)

type BookingResponse struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	ServiceType   string `json:"service_type"`
	Status        string `json:"status"`
	TourDate      string `json:"tour_date"`
	PartySize     int    `json:"party_size"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	PickupAddress string `json:"pickup_address,omitempty"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type ProposalResponse struct {
	ID         string                `json:"id"`
	BookingID  string                `json:"booking_id"`
	Title      string                `json:"title"`
	Status     string                `json:"status"`
	Items      []ServiceItemResponse `json:"items"`
	TotalCents int64                 `json:"total_cents"`
	Total      string                `json:"total"`
	CreatedAt  string                `json:"created_at"`
}

// ServiceItemResponse mirrors the customer-facing price display: wine
// tours carry the hourly rate and the lunch estimate next to the total,
// transfers carry the fixed price only.
type ServiceItemResponse struct {
	ID            string `json:"id"`
	ServiceType   string `json:"service_type"`
	Description   string `json:"description"`
	ServiceDate   string `json:"service_date"`
	PartySize     int    `json:"party_size"`
	DurationHours int    `json:"duration_hours,omitempty"`
	PriceCents    int64  `json:"price_cents"`
	Price         string `json:"price"`
	HourlyRate    string `json:"hourly_rate,omitempty"`
	LunchEstimate string `json:"lunch_estimate,omitempty"`
	LunchNote     string `json:"lunch_note,omitempty"`
	Position      int    `json:"position"`
}

type InvoiceResponse struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	Number      string `json:"number"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Memo        string `json:"memo,omitempty"`
	Status      string `json:"status"`
	ApprovedAt  string `json:"approved_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type LunchOrderResponse struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	PartySize      int    `json:"party_size"`
	PerPersonCents int64  `json:"per_person_cents"`
	PerPerson      string `json:"per_person"`
	EstimateCents  int64  `json:"estimate_cents"`
	Estimate       string `json:"estimate"`
	MenuNotes      string `json:"menu_notes,omitempty"`
	Status         string `json:"status"`
	ApprovedAt     string `json:"approved_at,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type OfferResponse struct {
	ID          string `json:"id"`
	BookingID   string `json:"booking_id"`
	TourDate    string `json:"tour_date"`
	PartySize   int    `json:"party_size"`
	PriceCents  int64  `json:"price_cents"`
	Price       string `json:"price"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
	RespondedAt string `json:"responded_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		ServiceType:   string(b.ServiceType),
		Status:        string(b.Status),
		TourDate:      b.TourDate.Format(time.RFC3339),
		PartySize:     b.PartySize,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		PickupAddress: b.PickupAddress,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToProposalResponse(p *domain.Proposal, rates *pricing.RateTable) ProposalResponse {
	items := make([]ServiceItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, toServiceItemResponse(item, rates))
	}

	return ProposalResponse{
		ID:         p.ID,
		BookingID:  p.BookingID,
		Title:      p.Title,
		Status:     string(p.Status),
		Items:      items,
		TotalCents: p.TotalCents,
		Total:      pricing.FormatUSD(p.TotalCents),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func toServiceItemResponse(item domain.ServiceItem, rates *pricing.RateTable) ServiceItemResponse {
	display := rates.DisplayFields(item)

	return ServiceItemResponse{
		ID:            item.ID,
		ServiceType:   string(item.ServiceType),
		Description:   item.Description,
		ServiceDate:   item.ServiceDate.Format(time.RFC3339),
		PartySize:     item.PartySize,
		DurationHours: item.DurationHours,
		PriceCents:    item.PriceCents,
		Price:         display.Price,
		HourlyRate:    display.HourlyRate,
		LunchEstimate: display.LunchEstimate,
		LunchNote:     display.LunchNote,
		Position:      item.Position,
	}
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          inv.ID,
		BookingID:   inv.BookingID,
		Number:      inv.Number,
		AmountCents: inv.AmountCents,
		Amount:      pricing.FormatUSD(inv.AmountCents),
		Memo:        inv.Memo,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.ApprovedAt != nil {
		resp.ApprovedAt = inv.ApprovedAt.Format(time.RFC3339)
	}

	return resp
}

func ToLunchOrderResponse(o *domain.LunchOrder) LunchOrderResponse {
	resp := LunchOrderResponse{
		ID:             o.ID,
		BookingID:      o.BookingID,
		PartySize:      o.PartySize,
		PerPersonCents: o.PerPersonCents,
		PerPerson:      pricing.FormatUSD(o.PerPersonCents),
		EstimateCents:  o.EstimateCents,
		Estimate:       pricing.FormatUSD(o.EstimateCents),
		MenuNotes:      o.MenuNotes,
		Status:         string(o.Status),
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
	if o.ApprovedAt != nil {
		resp.ApprovedAt = o.ApprovedAt.Format(time.RFC3339)
	}

	return resp
}

func ToOfferResponse(o *domain.TourOffer) OfferResponse {
	resp := OfferResponse{
		ID:          o.ID,
		BookingID:   o.BookingID,
		TourDate:    o.TourDate.Format(time.RFC3339),
		PartySize:   o.PartySize,
		PriceCents:  o.PriceCents,
		Price:       pricing.FormatUSD(o.PriceCents),
		Message:     o.Message,
		Status:      string(o.Status),
		ExpiresAt:   o.ExpiresAt.Format(time.RFC3339),
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
	if o.RespondedAt != nil {
		resp.RespondedAt = o.RespondedAt.Format(time.RFC3339)
	}

	return resp
}
