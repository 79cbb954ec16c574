package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/events"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/service/ports/mocks"
)

func TestInvoiceService_Issue(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	log := newTestLogger(t)

	svc := NewInvoiceService(invoiceRepo, bookingRepo, customer, nil, nil, log)

	booking := tourBooking()
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	invoiceRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	customer.EXPECT().InvoiceIssued(mock.Anything, booking, mock.Anything).Return()

	input := domain.IssueInvoiceInput{AmountCents: 77750, Memo: "Deposit for March 14 tour"}

	invoice, err := svc.Issue(context.Background(), "b1", input)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
	assert.Equal(t, int64(77750), invoice.AmountCents)
	assert.Equal(t, "b1", invoice.BookingID)
	assert.NotEmpty(t, invoice.ID)
	assert.Nil(t, invoice.ApprovedAt)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestInvoiceService_Issue_NonPositiveAmount(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewInvoiceService(nil, bookingRepo, nil, nil, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(tourBooking(), nil)

	_, err := svc.Issue(context.Background(), "b1", domain.IssueInvoiceInput{AmountCents: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_Issue_BookingCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewInvoiceService(nil, bookingRepo, nil, nil, nil, newTestLogger(t))

	booking := tourBooking()
	booking.Status = domain.BookingStatusCancelled
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	_, err := svc.Issue(context.Background(), "b1", domain.IssueInvoiceInput{AmountCents: 1000})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingClosed)
}

func TestInvoiceService_Approve(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	customer := mocks.NewMockCustomerNotifier(t)
	staff := mocks.NewMockStaffNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	log := newTestLogger(t)

	svc := NewInvoiceService(invoiceRepo, bookingRepo, customer, staff, publisher, log)

	booking := tourBooking()
	invoice := &domain.Invoice{
		ID:          "i1",
		BookingID:   "b1",
		Number:      "INV-2026-0003",
		AmountCents: 77750,
		Status:      domain.InvoiceStatusPending,
	}

	invoiceRepo.EXPECT().GetByID(mock.Anything, "i1").Return(invoice, nil)
	invoiceRepo.EXPECT().Approve(mock.Anything, "i1").Return(nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	customer.EXPECT().InvoiceApproved(mock.Anything, booking, invoice).Return()
	staff.EXPECT().InvoiceApproved(mock.Anything, booking, invoice).Return()
	publisher.EXPECT().Publish(mock.Anything, events.TypeInvoiceApproved, invoice).Return()

	approved, err := svc.Approve(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	time.Sleep(50 * time.Millisecond)
}

func TestInvoiceService_Approve_NotPending(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepo(t)
	svc := NewInvoiceService(invoiceRepo, nil, nil, nil, nil, newTestLogger(t))

	invoice := &domain.Invoice{ID: "i1", BookingID: "b1", Status: domain.InvoiceStatusApproved}

	invoiceRepo.EXPECT().GetByID(mock.Anything, "i1").Return(invoice, nil)
	invoiceRepo.EXPECT().Approve(mock.Anything, "i1").Return(domain.ErrInvoiceNotPending)

	_, err := svc.Approve(context.Background(), "i1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotPending)
}

func TestInvoiceService_Approve_NotFound(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepo(t)
	svc := NewInvoiceService(invoiceRepo, nil, nil, nil, nil, newTestLogger(t))

	invoiceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrInvoiceNotFound)

	_, err := svc.Approve(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceService_Approve_BookingLookupFails(t *testing.T) {
	invoiceRepo := mocks.NewMockInvoiceRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	log := newTestLogger(t)

	svc := NewInvoiceService(invoiceRepo, bookingRepo, nil, nil, nil, log)

	invoice := &domain.Invoice{ID: "i1", BookingID: "b1", Status: domain.InvoiceStatusPending}

	invoiceRepo.EXPECT().GetByID(mock.Anything, "i1").Return(invoice, nil)
	invoiceRepo.EXPECT().Approve(mock.Anything, "i1").Return(nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound)

	// approval sticks even when the notification lookup fails
	approved, err := svc.Approve(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusApproved, approved.Status)
}
