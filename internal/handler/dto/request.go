package dto

type CreateBookingRequest struct {
	ServiceType   string `json:"service_type" binding:"required"`
	TourDate      string `json:"tour_date" binding:"required"`
	PartySize     int    `json:"party_size" binding:"required,gt=0"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	PickupAddress string `json:"pickup_address"`
	Notes         string `json:"notes"`
}

type CreateProposalRequest struct {
	Title string               `json:"title" binding:"required"`
	Items []ServiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ServiceItemRequest struct {
	ServiceType   string `json:"service_type" binding:"required"`
	Description   string `json:"description" binding:"required"`
	ServiceDate   string `json:"service_date"`
	PartySize     int    `json:"party_size"`
	DurationHours int    `json:"duration_hours"`
	PriceCents    int64  `json:"price_cents"`
}

type IssueInvoiceRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Memo        string `json:"memo"`
}

type CreateLunchOrderRequest struct {
	PartySize int    `json:"party_size"`
	MenuNotes string `json:"menu_notes"`
}

type CreateOfferRequest struct {
	TourDate   string `json:"tour_date" binding:"required"`
	PartySize  int    `json:"party_size"`
	PriceCents int64  `json:"price_cents"`
	Message    string `json:"message"`
	TTLHours   int    `json:"ttl_hours"`
}

type RespondOfferRequest struct {
	Decision string `json:"decision" binding:"required"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
