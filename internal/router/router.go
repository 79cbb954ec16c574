package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetBookingByReference(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateProposal(c *ginext.Context)
	ListProposals(c *ginext.Context)
	SendProposal(c *ginext.Context)
	GetProposal(c *ginext.Context)
	AcceptProposal(c *ginext.Context)
	DeclineProposal(c *ginext.Context)
	IssueInvoice(c *ginext.Context)
	ListInvoices(c *ginext.Context)
	ApproveInvoice(c *ginext.Context)
	CreateLunchOrder(c *ginext.Context)
	ListLunchOrders(c *ginext.Context)
	ApproveLunchOrder(c *ginext.Context)
	CreateOffer(c *ginext.Context)
	ListOffers(c *ginext.Context)
	RespondOffer(c *ginext.Context)
	Login(c *ginext.Context)
	ExportBookings(c *ginext.Context)
}

// InitRouter wires three surfaces: the open booking form, the
// token-gated customer actions from emailed links, and the staff API
// behind bearer auth. rateLimit covers the open form only.
func InitRouter(mode string, h Handler, staffAuth, rateLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/bookings", rateLimit, h.CreateBooking)
		api.GET("/bookings/by-ref/:reference", h.GetBookingByReference)
		api.POST("/admin/login", h.Login)

		// Customer actions, each checks the signed token from the email
		api.GET("/proposals/:id", h.GetProposal)
		api.POST("/proposals/:id/accept", h.AcceptProposal)
		api.POST("/proposals/:id/decline", h.DeclineProposal)
		api.POST("/invoices/:id/approve", h.ApproveInvoice)
		api.POST("/lunch-orders/:id/approve", h.ApproveLunchOrder)
		api.POST("/offers/:id/respond", h.RespondOffer)

		// Staff
		staff := api.Group("", staffAuth)
		{
			staff.GET("/bookings", h.ListBookings)
			staff.GET("/bookings/:id", h.GetBooking)
			staff.POST("/bookings/:id/confirm", h.ConfirmBooking)
			staff.POST("/bookings/:id/cancel", h.CancelBooking)

			staff.POST("/bookings/:id/proposals", h.CreateProposal)
			staff.GET("/bookings/:id/proposals", h.ListProposals)
			staff.POST("/proposals/:id/send", h.SendProposal)

			staff.POST("/bookings/:id/invoices", h.IssueInvoice)
			staff.GET("/bookings/:id/invoices", h.ListInvoices)

			staff.POST("/bookings/:id/lunch-orders", h.CreateLunchOrder)
			staff.GET("/bookings/:id/lunch-orders", h.ListLunchOrders)

			staff.POST("/bookings/:id/offers", h.CreateOffer)
			staff.GET("/bookings/:id/offers", h.ListOffers)

			staff.GET("/admin/bookings/export", h.ExportBookings)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
