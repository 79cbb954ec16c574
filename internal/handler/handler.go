package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/WallaWallaTravel/walla-walla-travel/internal/auth"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/domain"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/export"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/handler/dto"
	"github.com/WallaWallaTravel/walla-walla-travel/internal/pricing"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type ProposalSvc interface {
	Create(ctx context.Context, bookingID string, input domain.CreateProposalInput) (*domain.Proposal, error)
	Get(ctx context.Context, id string) (*domain.Proposal, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Proposal, error)
	Send(ctx context.Context, id string) (*domain.Proposal, error)
	Accept(ctx context.Context, id string) error
	Decline(ctx context.Context, id string) error
}

type InvoiceSvc interface {
	Issue(ctx context.Context, bookingID string, input domain.IssueInvoiceInput) (*domain.Invoice, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Invoice, error)
	Approve(ctx context.Context, id string) (*domain.Invoice, error)
}

type LunchOrderSvc interface {
	Create(ctx context.Context, bookingID string, input domain.CreateLunchOrderInput) (*domain.LunchOrder, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.LunchOrder, error)
	Approve(ctx context.Context, id string) (*domain.LunchOrder, error)
}

type OfferSvc interface {
	Create(ctx context.Context, bookingID string, input domain.CreateOfferInput) (*domain.TourOffer, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.TourOffer, error)
	Respond(ctx context.Context, id string, decision domain.OfferDecision) (*domain.TourOffer, error)
}

type Handler struct {
	bookingService    BookingSvc
	proposalService   ProposalSvc
	invoiceService    InvoiceSvc
	lunchOrderService LunchOrderSvc
	offerService      OfferSvc
	tokens            *auth.TokenManager
	rates             *pricing.RateTable
	staffPasswordHash string
}

func NewHandler(
	bookingService BookingSvc,
	proposalService ProposalSvc,
	invoiceService InvoiceSvc,
	lunchOrderService LunchOrderSvc,
	offerService OfferSvc,
	tokens *auth.TokenManager,
	rates *pricing.RateTable,
	staffPasswordHash string,
) *Handler {
	return &Handler{
		bookingService:    bookingService,
		proposalService:   proposalService,
		invoiceService:    invoiceService,
		lunchOrderService: lunchOrderService,
		offerService:      offerService,
		tokens:            tokens,
		rates:             rates,
		staffPasswordHash: staffPasswordHash,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tourDate, err := time.Parse(time.RFC3339, req.TourDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid tour_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateBookingInput{
		ServiceType:   domain.ServiceType(req.ServiceType),
		TourDate:      tourDate,
		PartySize:     req.PartySize,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PickupAddress: req.PickupAddress,
		Notes:         req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBookingByReference(c *ginext.Context) {
	booking, err := h.bookingService.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter, err := bookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Confirm(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// Proposals

func (h *Handler) CreateProposal(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateProposalInput{Title: req.Title}
	for _, item := range req.Items {
		in := domain.CreateServiceItemInput{
			ServiceType:   domain.ServiceType(item.ServiceType),
			Description:   item.Description,
			PartySize:     item.PartySize,
			DurationHours: item.DurationHours,
			PriceCents:    item.PriceCents,
		}
		if item.ServiceDate != "" {
			serviceDate, err := time.Parse(time.RFC3339, item.ServiceDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "invalid service_date format, expected RFC3339",
				})
				return
			}
			in.ServiceDate = serviceDate
		}
		input.Items = append(input.Items, in)
	}

	proposal, err := h.proposalService.Create(c.Request.Context(), bookingID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProposalResponse(proposal, h.rates))
}

func (h *Handler) ListProposals(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	proposals, err := h.proposalService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		resp = append(resp, dto.ToProposalResponse(p, h.rates))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SendProposal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proposal id"})
		return
	}

	proposal, err := h.proposalService.Send(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal, h.rates))
}

// GetProposal serves the customer view behind the signed link from the
// proposal email.
func (h *Handler) GetProposal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionViewProposal) {
		return
	}

	proposal, err := h.proposalService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalResponse(proposal, h.rates))
}

func (h *Handler) AcceptProposal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionViewProposal) {
		return
	}

	if err := h.proposalService.Accept(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "accepted"})
}

func (h *Handler) DeclineProposal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proposal id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionViewProposal) {
		return
	}

	if err := h.proposalService.Decline(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "declined"})
}

// Invoices

func (h *Handler) IssueInvoice(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.invoiceService.Issue(c.Request.Context(), bookingID, domain.IssueInvoiceInput{
		AmountCents: req.AmountCents,
		Memo:        req.Memo,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) ListInvoices(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	invoices, err := h.invoiceService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, dto.ToInvoiceResponse(inv))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveInvoice(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid invoice id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionApproveInvoice) {
		return
	}

	invoice, err := h.invoiceService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// Lunch orders

func (h *Handler) CreateLunchOrder(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CreateLunchOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.lunchOrderService.Create(c.Request.Context(), bookingID, domain.CreateLunchOrderInput{
		PartySize: req.PartySize,
		MenuNotes: req.MenuNotes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLunchOrderResponse(order))
}

func (h *Handler) ListLunchOrders(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	orders, err := h.lunchOrderService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.LunchOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.ToLunchOrderResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveLunchOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid lunch order id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionApproveLunchOrder) {
		return
	}

	order, err := h.lunchOrderService.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLunchOrderResponse(order))
}

// Tour offers

func (h *Handler) CreateOffer(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	tourDate, err := time.Parse(time.RFC3339, req.TourDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid tour_date format, expected RFC3339",
		})
		return
	}

	offer, err := h.offerService.Create(c.Request.Context(), bookingID, domain.CreateOfferInput{
		TourDate:   tourDate,
		PartySize:  req.PartySize,
		PriceCents: req.PriceCents,
		Message:    req.Message,
		TTL:        time.Duration(req.TTLHours) * time.Hour,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

func (h *Handler) ListOffers(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	offers, err := h.offerService.ListByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, dto.ToOfferResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RespondOffer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}
	if !h.customerLink(c, id, auth.ActionRespondOffer) {
		return
	}

	// ссылки из письма несут решение в query, формы шлют его в теле
	decision := c.Query("decision")
	if decision == "" {
		var req dto.RespondOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		decision = req.Decision
	}

	offer, err := h.offerService.Respond(c.Request.Context(), id, domain.OfferDecision(decision))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// Admin

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := auth.CheckStaffPassword(h.staffPasswordHash, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	token, err := h.tokens.StaffToken()
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

func (h *Handler) ExportBookings(c *ginext.Context) {
	filter, err := bookingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	buf, err := export.BookingsXLSX(bookings)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// customerLink validates the signed token from an emailed link and makes
// sure it was minted for this very resource.
func (h *Handler) customerLink(c *ginext.Context, id, action string) bool {
	resourceID, err := h.tokens.ParseAction(c.Query("token"), action)
	if err != nil || resourceID != id {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired link"})
		return false
	}

	return true
}

func bookingFilter(c *ginext.Context) (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if status := c.Query("status"); status != "" {
		filter.Status = domain.BookingStatus(status)
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid from date, expected RFC3339")
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid to date, expected RFC3339")
		}
		filter.To = to
	}

	return filter, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrProposalNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrLunchOrderNotFound),
		errors.Is(err, domain.ErrOfferNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingClosed),
		errors.Is(err, domain.ErrProposalNotDraft),
		errors.Is(err, domain.ErrProposalNotSent),
		errors.Is(err, domain.ErrInvoiceNotPending),
		errors.Is(err, domain.ErrLunchOrderNotPending),
		errors.Is(err, domain.ErrOfferNotPending),
		errors.Is(err, domain.ErrOfferExpired),
		errors.Is(err, domain.ErrDuplicateReference):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoRateConfigured):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
