package domain

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrLunchOrderNotFound = errors.New("lunch order not found")
	ErrOfferNotFound      = errors.New("offer not found")
)

var (
	ErrBookingClosed        = errors.New("booking is cancelled")
	ErrProposalNotDraft     = errors.New("proposal is not in draft status")
	ErrProposalNotSent      = errors.New("proposal has not been sent")
	ErrInvoiceNotPending    = errors.New("invoice is not pending")
	ErrLunchOrderNotPending = errors.New("lunch order is not pending")
	ErrOfferNotPending      = errors.New("offer is not pending")
	ErrOfferExpired         = errors.New("offer has expired")
	ErrDuplicateReference   = errors.New("booking reference already exists")
)

var (
	ErrNoRateConfigured = errors.New("no hourly rate configured for date and party size")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
)
