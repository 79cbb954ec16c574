package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var OpenStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID             string        `json:"id"`
	Reference      string        `json:"reference"`
	ServiceType    ServiceType   `json:"service_type"`
	Status         BookingStatus `json:"status"`
	TourDate       time.Time     `json:"tour_date"`
	PartySize      int           `json:"party_size"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerPhone  string        `json:"customer_phone"`
	PickupAddress  string        `json:"pickup_address"`
	Notes          string        `json:"notes"`
	ReminderSentAt *time.Time    `json:"reminder_sent_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	ServiceType   ServiceType
	TourDate      time.Time
	PartySize     int
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PickupAddress string
	Notes         string
}

// BookingFilter narrows admin listings. Zero values mean "no constraint".
type BookingFilter struct {
	Status BookingStatus
	From   time.Time
	To     time.Time
}
